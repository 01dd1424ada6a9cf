// Tests for the SQLite local storage backend.
package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

func TestBackend_Attach(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested", "data")

	b := NewBackend()
	if err := b.Attach(tmpDir); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	// Verify database file created
	dbPath := filepath.Join(tmpDir, dbFileName)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("%s not created", dbFileName)
	}
	if b.Path() != dbPath {
		t.Errorf("Path() = %q, want %q", b.Path(), dbPath)
	}

	// Verify double attach fails
	if err := b.Attach(tmpDir); err != types.ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}
}

func TestBackend_Detach(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(t.TempDir()); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Verify idempotent
	if err := b.Detach(); err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}

	// Verify operations fail after detach
	if _, err := b.Get("token"); err != types.ErrStoreDetached {
		t.Errorf("Get: expected ErrStoreDetached, got %v", err)
	}
	if err := b.Set("token", "x"); err != types.ErrStoreDetached {
		t.Errorf("Set: expected ErrStoreDetached, got %v", err)
	}
	if err := b.Delete("token"); err != types.ErrStoreDetached {
		t.Errorf("Delete: expected ErrStoreDetached, got %v", err)
	}
	if err := b.Clear(); err != types.ErrStoreDetached {
		t.Errorf("Clear: expected ErrStoreDetached, got %v", err)
	}
}

func TestBackend_GetSetDelete(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(t.TempDir()); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	if _, err := b.Get("token"); !errors.Is(err, types.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	if err := b.Set("token", "first"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := b.Set("token", "second"); err != nil {
		t.Fatalf("Set (replace) failed: %v", err)
	}
	got, err := b.Get("token")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "second" {
		t.Errorf("Get = %q, want %q", got, "second")
	}

	if err := b.Delete("token"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := b.Get("token"); !errors.Is(err, types.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}

	// Deleting a missing key succeeds
	if err := b.Delete("token"); err != nil {
		t.Errorf("Delete of missing key failed: %v", err)
	}
}

func TestBackend_Clear(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(t.TempDir()); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	for _, k := range []string{"token", "session_id"} {
		if err := b.Set(k, "v"); err != nil {
			t.Fatalf("Set %s failed: %v", k, err)
		}
	}
	if err := b.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	for _, k := range []string{"token", "session_id"} {
		if _, err := b.Get(k); !errors.Is(err, types.ErrKeyNotFound) {
			t.Errorf("%s survived Clear: %v", k, err)
		}
	}
}

func TestBackend_InvalidKey(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(t.TempDir()); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	if _, err := b.Get(""); err != types.ErrInvalidKey {
		t.Errorf("Get: expected ErrInvalidKey, got %v", err)
	}
	if err := b.Set("", "v"); err != types.ErrInvalidKey {
		t.Errorf("Set: expected ErrInvalidKey, got %v", err)
	}
	if err := b.Delete(""); err != types.ErrInvalidKey {
		t.Errorf("Delete: expected ErrInvalidKey, got %v", err)
	}
}

func TestBackend_PersistsAcrossAttach(t *testing.T) {
	dir := t.TempDir()

	b := NewBackend()
	if err := b.Attach(dir); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if err := b.Set("token", "kept"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Reattach the same directory with a fresh backend
	b2 := NewBackend()
	if err := b2.Attach(dir); err != nil {
		t.Fatalf("reattach failed: %v", err)
	}
	defer b2.Detach()

	got, err := b2.Get("token")
	if err != nil {
		t.Fatalf("Get after reattach failed: %v", err)
	}
	if got != "kept" {
		t.Errorf("Get = %q, want %q", got, "kept")
	}
}
