// Package logging builds the process logger and the canonical field helpers
// used across islab. Logs go to stderr so they never mix with table output.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

// ParseLevel maps a level name (debug, info, warn, error) to slog.Level.
// An empty name selects warn.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w %q", types.ErrLogLevelUnknown, name)
	}
}

// New returns a logger writing to w at the given level. format is
// types.LogFormatJSON or types.LogFormatText; empty means text.
func New(w io.Writer, level slog.Level, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case "", types.LogFormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case types.LogFormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrLogFormatUnknown, format)
	}
}

// Discard returns a logger that drops every record. Packages fall back to it
// when no logger is injected.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
