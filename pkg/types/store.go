package types

import "errors"

// Store is the local key/value storage that survives between runs of the
// client. It holds the session token the way a browser's local storage
// would. Callers attach to a data directory and detach when done.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting a missing key succeeds.
	Delete(key string) error

	// Clear removes every key.
	Clear() error

	// Attach opens the storage in dataDir, creating it if needed.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(dataDir string) error

	// Detach releases storage resources. Idempotent: multiple calls succeed.
	// After Detach, operations return ErrStoreDetached.
	Detach() error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("local storage is detached")
	ErrAlreadyAttached = errors.New("local storage is already attached")
	ErrKeyNotFound     = errors.New("key not found")
	ErrInvalidKey      = errors.New("key must not be empty")
)
