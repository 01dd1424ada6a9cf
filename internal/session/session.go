// Package session holds the bearer token of the logged-in user. A session
// begins at login, ends at logout, and is kept in local storage between
// runs. HTTP collaborators read the token through Context.Token.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ArturMukhamedjanov/is-lab1-front/internal/logging"
	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

// Storage keys.
const (
	KeyToken     = "token"
	KeySessionID = "session_id"
)

// TokenChecker verifies a token with the server.
type TokenChecker interface {
	CheckToken(ctx context.Context) error
}

// Context is the process-wide session. It is safe for concurrent use.
type Context struct {
	store  types.Store
	logger *slog.Logger

	mu    sync.RWMutex
	token string
	id    string
}

// Load restores the session saved in store, if any. store must be attached.
func Load(store types.Store, logger *slog.Logger) (*Context, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Context{store: store, logger: logger}

	tok, err := store.Get(KeyToken)
	switch {
	case errors.Is(err, types.ErrKeyNotFound):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("load session: %w", err)
	}
	id, err := store.Get(KeySessionID)
	if err != nil && !errors.Is(err, types.ErrKeyNotFound) {
		return nil, fmt.Errorf("load session: %w", err)
	}
	s.token, s.id = tok, id
	return s, nil
}

// Token returns the bearer token, or "" when logged out.
func (s *Context) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ID returns the identifier of the current session, used to correlate logs.
func (s *Context) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Active reports whether a token is held.
func (s *Context) Active() bool {
	return s.Token() != ""
}

// Require returns ErrNotAuthenticated when no session is active.
func (s *Context) Require() error {
	if !s.Active() {
		return types.ErrNotAuthenticated
	}
	return nil
}

// Begin starts a session with token and persists it. A session already in
// progress is replaced.
func (s *Context) Begin(token string) error {
	if token == "" {
		return fmt.Errorf("begin session: %w", types.ErrNotAuthenticated)
	}
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Set(KeyToken, token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if err := s.store.Set(KeySessionID, id.String()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.token, s.id = token, id.String()
	s.logger.Debug("session started", logging.SessionID(s.id))
	return nil
}

// Renew swaps the token of the current session, e.g. after the account
// is renamed. The session id is kept.
func (s *Context) Renew(token string) error {
	if s.ID() == "" {
		return s.Begin(token)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Set(KeyToken, token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.token = token
	return nil
}

// End clears the session from memory and local storage. Ending an inactive
// session succeeds.
func (s *Context) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.id != "" {
		s.logger.Debug("session ended", logging.SessionID(s.id))
	}
	s.token, s.id = "", ""
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Verify checks the token with the server. A rejected token ends the
// session and yields ErrSessionExpired. Transport failures are returned
// as is and keep the session, since the token may still be valid.
func (s *Context) Verify(ctx context.Context, checker TokenChecker) error {
	if err := s.Require(); err != nil {
		return err
	}
	err := checker.CheckToken(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, types.ErrRemote) {
		return err
	}
	s.logger.Warn("token rejected, logging out", logging.SessionID(s.ID()), logging.Error(err))
	if endErr := s.End(); endErr != nil {
		return errors.Join(types.ErrSessionExpired, endErr)
	}
	return types.ErrSessionExpired
}
