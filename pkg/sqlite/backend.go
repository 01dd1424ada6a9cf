// Package sqlite provides the public API for the SQLite local storage.
// This package exposes the factory function for creating stores while
// keeping implementation details internal.
package sqlite

import (
	"github.com/ArturMukhamedjanov/is-lab1-front/internal/sqlite"
	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

// NewBackend creates a new SQLite store instance.
// The store is not attached; call Attach with a data directory to open it.
//
// Example:
//
//	store := sqlite.NewBackend()
//	err := store.Attach(dataDir)
//	defer store.Detach()
func NewBackend() types.Store {
	return sqlite.NewBackend()
}
