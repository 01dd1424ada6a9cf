package listmanager

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

// Filters maps a filter key (a field name) to the raw user input. An empty
// or blank value means no constraint for that key.
type Filters map[string]string

// Active reports whether any filter carries a constraint.
func (f Filters) Active() bool {
	for _, v := range f {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// ApplyFilters returns the records of source that satisfy every non-empty
// filter. It never modifies source; the result shares record maps with it.
//
// Matching depends on the field kind in s: identifier and numeric fields
// compare numerically, text and timestamp fields by case-insensitive
// substring, enum fields by case-insensitive equality and boolean fields by
// equality. Input that does not parse for a numeric or boolean field imposes
// no constraint. Keys the schema does not define match as text.
func ApplyFilters(s *types.Schema, source []types.Record, filters Filters) []types.Record {
	preds := make([]predicate, 0, len(filters))
	for key, raw := range filters {
		if p := compile(s, key, strings.TrimSpace(raw)); p != nil {
			preds = append(preds, p)
		}
	}

	out := make([]types.Record, 0, len(source))
	for _, rec := range source {
		if matchAll(rec, preds) {
			out = append(out, rec)
		}
	}
	return out
}

type predicate func(types.Record) bool

func matchAll(rec types.Record, preds []predicate) bool {
	for _, p := range preds {
		if !p(rec) {
			return false
		}
	}
	return true
}

// compile builds the predicate for one filter, or nil when the input
// imposes no constraint.
func compile(s *types.Schema, key, input string) predicate {
	if input == "" {
		return nil
	}
	kind := types.KindText
	if s != nil {
		if f, ok := s.Field(key); ok {
			kind = f.Kind
		}
	}

	switch {
	case kind.Numeric():
		want, err := strconv.ParseFloat(input, 64)
		if err != nil || math.IsNaN(want) || math.IsInf(want, 0) {
			return nil
		}
		return func(rec types.Record) bool {
			got, ok := types.FloatValue(rec[key])
			return ok && got == want
		}
	case kind == types.KindBool:
		want, err := strconv.ParseBool(input)
		if err != nil {
			return nil
		}
		return func(rec types.Record) bool {
			got, ok := rec[key].(bool)
			return ok && got == want
		}
	case kind == types.KindEnum:
		return func(rec types.Record) bool {
			got, ok := stringValue(rec[key])
			return ok && strings.EqualFold(got, input)
		}
	default:
		fold := cases.Fold()
		needle := fold.String(input)
		return func(rec types.Record) bool {
			got, ok := stringValue(rec[key])
			return ok && strings.Contains(fold.String(got), needle)
		}
	}
}

func stringValue(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", false
	case string:
		return s, true
	default:
		return fmt.Sprint(s), true
	}
}
