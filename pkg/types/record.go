package types

import (
	"math"
	"strconv"
)

// Well-known record keys assigned by the server.
const (
	FieldID        = "id"
	FieldCreatorID = "creatorId"
)

// Record is one entity instance as returned by the API: a mapping from
// field name to a scalar value (string, float64, bool or nil after JSON
// decoding).
type Record map[string]any

// ID returns the server-assigned identifier. ok is false when the record
// has no integral id.
func (r Record) ID() (int64, bool) {
	return IntValue(r[FieldID])
}

// CreatorID returns the owner reference set by the server.
func (r Record) CreatorID() (int64, bool) {
	return IntValue(r[FieldCreatorID])
}

// Clone returns a shallow copy of the record. Values are scalars, so the
// copy shares nothing mutable with the original.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// FloatValue converts a decoded JSON number (or a Go numeric) to float64.
func FloatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		// Some servers serialize longs as strings.
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// IntValue converts v to int64 when it holds an integral number.
func IntValue(v any) (int64, bool) {
	f, ok := FloatValue(v)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}
