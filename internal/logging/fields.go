package logging

import (
	"log/slog"
	"time"
)

// Canonical log field names shared by every package.
const (
	KeyEntity     = "entity"
	KeyOperation  = "op"
	KeyMethod     = "method"
	KeyURL        = "url"
	KeyStatus     = "status"
	KeyRequestID  = "request_id"
	KeySessionID  = "session_id"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyGeneration = "generation"
	KeyRecordID   = "record_id"
	KeyError      = "error"
)

func Entity(name string) slog.Attr  { return slog.String(KeyEntity, name) }
func Operation(op string) slog.Attr { return slog.String(KeyOperation, op) }
func Method(m string) slog.Attr     { return slog.String(KeyMethod, m) }
func URL(u string) slog.Attr        { return slog.String(KeyURL, u) }
func Status(code int) slog.Attr     { return slog.Int(KeyStatus, code) }
func RequestID(id string) slog.Attr { return slog.String(KeyRequestID, id) }
func SessionID(id string) slog.Attr { return slog.String(KeySessionID, id) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }
func Generation(g uint64) slog.Attr { return slog.Uint64(KeyGeneration, g) }
func RecordID(id int64) slog.Attr   { return slog.Int64(KeyRecordID, id) }
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
