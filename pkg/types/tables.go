package types

// Standard entity names. Each is also the path segment under /api/ on the
// server, except EntityRequests which lives under /auth/register/accept.
const (
	EntityCoordinates = "coordinates"
	EntityLocations   = "locations"
	EntityEvents      = "events"
	EntityPersons     = "persons"
	EntityVenues      = "venues"
	EntityTickets     = "tickets"
	EntityRequests    = "requests"
)

// StandardEntityNames lists all entity names for enumeration, in menu order.
var StandardEntityNames = []string{
	EntityTickets,
	EntityLocations,
	EntityEvents,
	EntityCoordinates,
	EntityPersons,
	EntityVenues,
	EntityRequests,
}
