package schema

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

// ValidationError reports the first field of a form that failed validation.
// Message is the user-facing text and always names the field.
type ValidationError struct {
	Entity  string
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap lets callers match any validation failure with types.ErrValidation.
func (e *ValidationError) Unwrap() error { return types.ErrValidation }

// Validator checks mutation payloads against an entity schema.
type Validator struct {
	schema *types.Schema
}

var _ types.Validator = (*Validator)(nil)

// NewValidator returns a Validator for s.
func NewValidator(s *types.Schema) *Validator {
	return &Validator{schema: s}
}

// Validate checks payload for the given mutation kind and converts it into
// the record sent to the server. Payload values are raw form input; blank
// values count as absent. Rules are checked in field order and the first
// failure is returned, so the message is stable for a given input.
func (v *Validator) Validate(kind types.MutationKind, payload map[string]string) (int64, types.Record, error) {
	switch kind {
	case types.MutationCreate, types.MutationUpdate, types.MutationDelete:
	default:
		return 0, nil, fmt.Errorf("%w %q", types.ErrInvalidMutation, kind)
	}
	if !v.schema.Mutable() {
		return 0, nil, fmt.Errorf("%s %s: %w", kind, v.schema.Name, types.ErrUnsupported)
	}

	var id int64
	if kind != types.MutationCreate {
		var err error
		if id, err = v.targetID(payload); err != nil {
			return 0, nil, err
		}
	}
	if kind == types.MutationDelete {
		return id, nil, nil
	}

	if err := v.checkKeys(payload); err != nil {
		return 0, nil, err
	}

	rec := make(types.Record, len(v.schema.Fields))
	for _, f := range v.schema.Fields {
		if f.ReadOnly {
			continue
		}
		raw := strings.TrimSpace(payload[f.Name])
		if raw == "" {
			if f.Required {
				return 0, nil, v.fail(f, requiredMessage(f))
			}
			rec[f.Name] = nil
			continue
		}
		val, err := v.convert(f, raw)
		if err != nil {
			return 0, nil, err
		}
		rec[f.Name] = val
	}
	if kind == types.MutationUpdate {
		rec[types.FieldID] = id
	}
	return id, rec, nil
}

// targetID extracts the id of the record an update or delete applies to.
func (v *Validator) targetID(payload map[string]string) (int64, error) {
	raw := strings.TrimSpace(payload[types.FieldID])
	if raw == "" {
		return 0, &ValidationError{Entity: v.schema.Name, Field: types.FieldID,
			Message: v.schema.Singular + " ID can't be empty"}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{Entity: v.schema.Name, Field: types.FieldID,
			Message: v.schema.Singular + " ID must be a positive whole number"}
	}
	return id, nil
}

// checkKeys rejects fields the schema does not define and fields the server
// assigns. Keys are checked in sorted order for deterministic messages.
func (v *Validator) checkKeys(payload map[string]string) error {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == types.FieldID {
			continue
		}
		f, ok := v.schema.Field(k)
		if !ok {
			return &ValidationError{Entity: v.schema.Name, Field: k,
				Message: fmt.Sprintf("unknown field %q for %s", k, v.schema.Name)}
		}
		if f.ReadOnly {
			return v.fail(f, f.Label+" is assigned by the server")
		}
	}
	return nil
}

func (v *Validator) convert(f types.Field, raw string) (any, error) {
	switch f.Kind {
	case types.KindID, types.KindInteger:
		n, ok := parseWhole(raw)
		if !ok || !inBounds(f, float64(n)) {
			return nil, v.fail(f, numberMessage(f, "a whole number"))
		}
		if f.Kind == types.KindID && n <= 0 {
			return nil, v.fail(f, f.Label+" must be a positive whole number")
		}
		return n, nil
	case types.KindFloat:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || !inBounds(f, n) {
			return nil, v.fail(f, numberMessage(f, "a number"))
		}
		return n, nil
	case types.KindEnum:
		upper := strings.ToUpper(raw)
		if !f.AcceptsEnum(upper) {
			return nil, v.fail(f, fmt.Sprintf("%s must be one of the following: %s", f.Label, strings.Join(f.Enum, ", ")))
		}
		return upper, nil
	case types.KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, v.fail(f, f.Label+" must be true or false")
		}
		return b, nil
	case types.KindTimestamp:
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, v.fail(f, f.Label+" must be an RFC 3339 timestamp")
		}
		return ts.Format(time.RFC3339), nil
	default:
		n := utf8.RuneCountInString(raw)
		if (f.MinLen > 0 && n < f.MinLen) || (f.MaxLen > 0 && n > f.MaxLen) {
			return nil, v.fail(f, lengthMessage(f))
		}
		return raw, nil
	}
}

func (v *Validator) fail(f types.Field, msg string) error {
	return &ValidationError{Entity: v.schema.Name, Field: f.Name, Message: msg}
}

// maxExactWhole is the magnitude below which a parsed float64 is known to
// be the exact whole number the user typed.
const maxExactWhole = 1 << 53

// parseWhole parses a whole number that fits int64. Decimal forms such as
// "3.0" or "1e3" are accepted only where float64 is still exact.
func parseWhole(raw string) (int64, bool) {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) >= maxExactWhole {
		return 0, false
	}
	return int64(f), true
}

func inBounds(f types.Field, n float64) bool {
	if f.Min != nil {
		if (f.MinExclusive && n <= *f.Min) || (!f.MinExclusive && n < *f.Min) {
			return false
		}
	}
	if f.Max != nil {
		if (f.MaxExclusive && n >= *f.Max) || (!f.MaxExclusive && n > *f.Max) {
			return false
		}
	}
	return true
}

func requiredMessage(f types.Field) string {
	if f.Kind == types.KindEnum {
		return fmt.Sprintf("%s must be one of the following: %s", f.Label, strings.Join(f.Enum, ", "))
	}
	return f.Label + " can't be null or empty"
}

// numberMessage renders e.g. "X must be a number and cannot be greater than 182".
func numberMessage(f types.Field, noun string) string {
	var bounds []string
	if f.Min != nil {
		if f.MinExclusive {
			bounds = append(bounds, "must be greater than "+formatBound(*f.Min))
		} else {
			bounds = append(bounds, "cannot be less than "+formatBound(*f.Min))
		}
	}
	if f.Max != nil {
		if f.MaxExclusive {
			bounds = append(bounds, "must be less than "+formatBound(*f.Max))
		} else {
			bounds = append(bounds, "cannot be greater than "+formatBound(*f.Max))
		}
	}
	msg := f.Label + " must be " + noun
	if len(bounds) > 0 {
		msg += " and " + strings.Join(bounds, " and ")
	}
	return msg
}

func lengthMessage(f types.Field) string {
	switch {
	case f.MinLen > 0 && f.MaxLen > 0:
		return fmt.Sprintf("%s must be between %d and %d characters", f.Label, f.MinLen, f.MaxLen)
	case f.MinLen > 0:
		return fmt.Sprintf("%s must be at least %d characters", f.Label, f.MinLen)
	default:
		return fmt.Sprintf("%s must be at most %d characters", f.Label, f.MaxLen)
	}
}
