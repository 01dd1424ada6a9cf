package apiclient

import (
	"fmt"

	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

// RemoteError is a response with an unexpected HTTP status. Message comes
// from the ErrMessage header, or a generic text for the operation when the
// server sent none.
type RemoteError struct {
	Op      string
	Status  int
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

func (e *RemoteError) Unwrap() error { return types.ErrRemote }

// TransportError is a request that produced no response: the server was
// unreachable, the connection dropped or the request timed out.
type TransportError struct {
	Op      string
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: could not reach the server", e.Message)
}

// Unwrap exposes both the error class and the underlying cause.
func (e *TransportError) Unwrap() []error { return []error{types.ErrTransport, e.Err} }
