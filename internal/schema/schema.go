// Package schema holds the field descriptors of every entity the API
// exposes and derives form validation from them.
package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

var registry = map[string]*types.Schema{
	types.EntityCoordinates: coordinates,
	types.EntityLocations:   locations,
	types.EntityEvents:      events,
	types.EntityPersons:     persons,
	types.EntityVenues:      venues,
	types.EntityTickets:     tickets,
	types.EntityRequests:    requests,
}

// For returns the schema registered under name. It returns an error wrapping
// types.ErrEntityNotFound for unknown names.
func For(name string) (*types.Schema, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (valid: %s)", types.ErrEntityNotFound, name, strings.Join(types.StandardEntityNames, ", "))
	}
	return s, nil
}

// All returns every registered schema in menu order.
func All() []*types.Schema {
	out := make([]*types.Schema, 0, len(types.StandardEntityNames))
	for _, name := range types.StandardEntityNames {
		out = append(out, registry[name])
	}
	return out
}

// Constraints describes the validation rules of f in a short human-readable
// form, e.g. "required, > 0, <= 100".
func Constraints(f types.Field) string {
	var parts []string
	if f.ReadOnly {
		parts = append(parts, "server-assigned")
	}
	if f.Required {
		parts = append(parts, "required")
	}
	if f.Min != nil {
		op := ">="
		if f.MinExclusive {
			op = ">"
		}
		parts = append(parts, op+" "+formatBound(*f.Min))
	}
	if f.Max != nil {
		op := "<="
		if f.MaxExclusive {
			op = "<"
		}
		parts = append(parts, op+" "+formatBound(*f.Max))
	}
	switch {
	case f.MinLen > 0 && f.MaxLen > 0:
		parts = append(parts, fmt.Sprintf("length %d..%d", f.MinLen, f.MaxLen))
	case f.MinLen > 0:
		parts = append(parts, fmt.Sprintf("length >= %d", f.MinLen))
	case f.MaxLen > 0:
		parts = append(parts, fmt.Sprintf("length <= %d", f.MaxLen))
	}
	if len(f.Enum) > 0 {
		parts = append(parts, "one of "+strings.Join(f.Enum, "|"))
	}
	return strings.Join(parts, ", ")
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
