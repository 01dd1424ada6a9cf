package listmanager

import (
	"cmp"
	"slices"

	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

// Direction is the order of a sorted column.
type Direction string

// Sort directions.
const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortState is the current ordering. An empty Key keeps server order.
type SortState struct {
	Key       string    `json:"key,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

// Sorted reports whether an ordering is applied.
func (s SortState) Sorted() bool { return s.Key != "" }

// NextSort returns the state after the user picks key: the same key while
// ascending flips to descending, anything else sorts key ascending.
// Repeated picks of one key cycle asc, desc, asc and never return to
// unsorted.
func NextSort(cur SortState, key string) SortState {
	if cur.Key == key && cur.Direction == Ascending {
		return SortState{Key: key, Direction: Descending}
	}
	return SortState{Key: key, Direction: Ascending}
}

// ApplySort returns a new slice holding view ordered by state. view is not
// modified. The sort is stable, so ties keep their relative order.
func ApplySort(view []types.Record, state SortState) []types.Record {
	out := slices.Clone(view)
	if !state.Sorted() {
		return out
	}
	slices.SortStableFunc(out, func(a, b types.Record) int {
		c := compareValues(a[state.Key], b[state.Key])
		if state.Direction == Descending {
			return -c
		}
		return c
	})
	return out
}

// compareValues orders two field values. Numbers compare numerically,
// strings lexically and booleans false before true. Nulls and pairs of
// different types compare equal.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		return 0
	}
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(av, bv)
		}
		return 0
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			default:
				return 1
			}
		}
		return 0
	}
	af, aok := number(a)
	bf, bok := number(b)
	if aok && bok {
		return cmp.Compare(af, bf)
	}
	return 0
}

// number accepts Go numeric types only; numeric-looking strings stay strings.
func number(v any) (float64, bool) {
	if _, ok := v.(string); ok {
		return 0, false
	}
	return types.FloatValue(v)
}
