package schema

import "github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"

// Enum value sets shared by several entities.
var (
	colors     = []string{"BLUE", "ORANGE", "WHITE"}
	eventTypes = []string{"FOOTBALL", "BASKETBALL", "EXPOSITION"}
	venueTypes = []string{"BAR", "LOFT", "THEATRE", "CINEMA", "STADIUM"}
	ticketType = []string{"VIP", "USUAL", "BUDGETARY", "CHEAP"}
)

func idField() types.Field {
	return types.Field{Name: types.FieldID, Label: "ID", Kind: types.KindID, ReadOnly: true, Filterable: true}
}

func creatorField() types.Field {
	return types.Field{Name: types.FieldCreatorID, Label: "Creator ID", Kind: types.KindID, ReadOnly: true}
}

var coordinates = &types.Schema{
	Name:     types.EntityCoordinates,
	Singular: "Coordinates",
	Fields: []types.Field{
		idField(),
		creatorField(),
		{Name: "x", Label: "X", Kind: types.KindFloat, Required: true, Max: types.Bound(182)},
		{Name: "y", Label: "Y", Kind: types.KindInteger, Required: true, Max: types.Bound(329)},
	},
}

var locations = &types.Schema{
	Name:     types.EntityLocations,
	Singular: "Location",
	Fields: []types.Field{
		idField(),
		creatorField(),
		{Name: "x", Label: "X", Kind: types.KindInteger},
		{Name: "y", Label: "Y", Kind: types.KindInteger},
		{Name: "z", Label: "Z", Kind: types.KindFloat},
		{Name: "name", Label: "Name", Kind: types.KindText, Required: true, Filterable: true},
	},
}

var events = &types.Schema{
	Name:     types.EntityEvents,
	Singular: "Event",
	Fields: []types.Field{
		idField(),
		creatorField(),
		{Name: "name", Label: "Name", Kind: types.KindText, Required: true, Filterable: true},
		{Name: "minAge", Label: "Min age", Kind: types.KindInteger},
		{Name: "eventType", Label: "Event type", Kind: types.KindEnum, Enum: eventTypes},
	},
}

var persons = &types.Schema{
	Name:     types.EntityPersons,
	Singular: "Person",
	Fields: []types.Field{
		idField(),
		creatorField(),
		{Name: "eyeColor", Label: "Eye color", Kind: types.KindEnum, Required: true, Enum: colors},
		{Name: "hairColor", Label: "Hair color", Kind: types.KindEnum, Required: true, Enum: colors},
		{Name: "locationId", Label: "Location ID", Kind: types.KindID, Required: true},
		{Name: "height", Label: "Height", Kind: types.KindFloat, Min: types.Bound(0), MinExclusive: true},
		{Name: "passportID", Label: "Passport ID", Kind: types.KindText, Filterable: true, MinLen: 10, MaxLen: 33},
	},
}

var venues = &types.Schema{
	Name:     types.EntityVenues,
	Singular: "Venue",
	Fields: []types.Field{
		idField(),
		creatorField(),
		{Name: "name", Label: "Name", Kind: types.KindText, Required: true, Filterable: true},
		{Name: "capacity", Label: "Capacity", Kind: types.KindInteger, Required: true, Min: types.Bound(0)},
		{Name: "type", Label: "Venue type", Kind: types.KindEnum, Required: true, Enum: venueTypes},
	},
}

var tickets = &types.Schema{
	Name:     types.EntityTickets,
	Singular: "Ticket",
	Fields: []types.Field{
		idField(),
		creatorField(),
		{Name: "name", Label: "Name", Kind: types.KindText, Required: true, Filterable: true},
		{Name: "coordinatesId", Label: "Coordinates ID", Kind: types.KindID, Required: true},
		{Name: "creationDate", Label: "Creation date", Kind: types.KindTimestamp, ReadOnly: true},
		{Name: "personId", Label: "Person ID", Kind: types.KindID, Required: true},
		{Name: "eventId", Label: "Event ID", Kind: types.KindID},
		{Name: "price", Label: "Price", Kind: types.KindFloat, Required: true, Min: types.Bound(0), MinExclusive: true},
		{Name: "type", Label: "Ticket type", Kind: types.KindEnum, Enum: ticketType},
		{Name: "discount", Label: "Discount", Kind: types.KindFloat, Min: types.Bound(0), MinExclusive: true, Max: types.Bound(100)},
		{Name: "number", Label: "Number", Kind: types.KindInteger, Min: types.Bound(0), MinExclusive: true},
		{Name: "comment", Label: "Comment", Kind: types.KindText, Required: true, Filterable: true},
		{Name: "refundable", Label: "Refundable", Kind: types.KindBool, Required: true},
		{Name: "venueId", Label: "Venue ID", Kind: types.KindID, Required: true},
	},
}

// requests are pending admin registrations. They are listed and accepted,
// never created or edited by the client.
var requests = &types.Schema{
	Name:     types.EntityRequests,
	Singular: "Request",
	Fields: []types.Field{
		idField(),
		{Name: "username", Label: "Username", Kind: types.KindText, ReadOnly: true, Filterable: true},
		{Name: "reviewerId", Label: "Reviewer ID", Kind: types.KindID, ReadOnly: true},
	},
}
