package types

import (
	"context"
	"errors"
)

// Collection provides the remote CRUD operations for a single entity type.
// List returns the full collection in server order; there is no server-side
// filtering or paging.
type Collection interface {
	// List fetches every record of the entity.
	List(ctx context.Context) ([]Record, error)

	// Create submits a new record. The server assigns id and creatorId.
	Create(ctx context.Context, rec Record) error

	// Update replaces the record with the given id.
	Update(ctx context.Context, id int64, rec Record) error

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id int64) error
}

// Reporter surfaces an error to the user. The CLI prints it; tests record it.
type Reporter interface {
	Report(ctx context.Context, err error)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(ctx context.Context, err error)

// Report calls f(ctx, err).
func (f ReporterFunc) Report(ctx context.Context, err error) { f(ctx, err) }

// Validator checks form input for a mutation and converts it into the
// record sent to the server. For update and delete the returned id is the
// target record.
type Validator interface {
	Validate(kind MutationKind, payload map[string]string) (id int64, rec Record, err error)
}

// MutationKind selects the remote operation performed by a mutation.
type MutationKind string

// Mutation kinds.
const (
	MutationCreate MutationKind = "create"
	MutationUpdate MutationKind = "update"
	MutationDelete MutationKind = "delete"
)

// Error classes. Concrete errors wrap one of these so callers can branch
// with errors.Is.
var (
	ErrValidation  = errors.New("validation failed")
	ErrRemote      = errors.New("request rejected by server")
	ErrTransport   = errors.New("request could not be sent")
	ErrUnsupported = errors.New("operation not supported for this entity")
)

// Lookup and state errors.
var (
	ErrEntityNotFound   = errors.New("unknown entity")
	ErrUnknownField     = errors.New("unknown field")
	ErrInvalidMutation  = errors.New("invalid mutation kind")
	ErrRecordNotFound   = errors.New("record not found")
	ErrNotAuthenticated = errors.New("not logged in")
	ErrSessionExpired   = errors.New("session expired, log in again")
)
