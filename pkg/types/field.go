package types

import "strings"

// FieldKind determines how a field is filtered, compared and validated.
type FieldKind string

// Field kinds.
const (
	KindID        FieldKind = "id"
	KindInteger   FieldKind = "integer"
	KindFloat     FieldKind = "float"
	KindText      FieldKind = "text"
	KindEnum      FieldKind = "enum"
	KindBool      FieldKind = "boolean"
	KindTimestamp FieldKind = "timestamp"
)

// validKinds is the set of recognized field kinds.
var validKinds = map[FieldKind]bool{
	KindID:        true,
	KindInteger:   true,
	KindFloat:     true,
	KindText:      true,
	KindEnum:      true,
	KindBool:      true,
	KindTimestamp: true,
}

// IsValidKind reports whether k is a recognized field kind.
func IsValidKind(k FieldKind) bool {
	return validKinds[k]
}

// Numeric reports whether values of this kind are matched and validated as
// numbers. Identifiers and references are numeric.
func (k FieldKind) Numeric() bool {
	return k == KindID || k == KindInteger || k == KindFloat
}

// Field describes one column of an entity.
type Field struct {
	Name       string    `json:"name"`       // JSON key on the wire.
	Label      string    `json:"label"`      // Display name used in headers and messages.
	Kind       FieldKind `json:"kind"`       // Drives filtering, sorting and validation.
	Required   bool      `json:"required"`   // Must be present on create and update.
	ReadOnly   bool      `json:"readOnly"`   // Assigned by the server; never sent by the client.
	Filterable bool      `json:"filterable"` // Exposed as a list filter.

	// Numeric bounds. Nil means unbounded.
	Min          *float64 `json:"min,omitempty"`
	Max          *float64 `json:"max,omitempty"`
	MinExclusive bool     `json:"minExclusive,omitempty"`
	MaxExclusive bool     `json:"maxExclusive,omitempty"`

	// Text length bounds in characters. Zero means unbounded.
	MinLen int `json:"minLen,omitempty"`
	MaxLen int `json:"maxLen,omitempty"`

	// Enum lists the accepted values for KindEnum fields.
	Enum []string `json:"enum,omitempty"`
}

// Bound returns a pointer to v for use as Field.Min or Field.Max.
func Bound(v float64) *float64 {
	return &v
}

// AcceptsEnum reports whether value is one of the field's enum values.
// Comparison is exact; enum values are upper case on the wire.
func (f Field) AcceptsEnum(value string) bool {
	for _, e := range f.Enum {
		if e == value {
			return true
		}
	}
	return false
}

// Schema describes an entity: its name, the singular noun used in messages,
// and its fields in display order.
type Schema struct {
	Name     string
	Singular string
	Fields   []Field
}

// Field returns the field with the given name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FilterKeys returns the names of the filterable fields in display order.
func (s *Schema) FilterKeys() []string {
	var keys []string
	for _, f := range s.Fields {
		if f.Filterable {
			keys = append(keys, f.Name)
		}
	}
	return keys
}

// Columns returns every field name in display order.
func (s *Schema) Columns() []string {
	cols := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		cols[i] = f.Name
	}
	return cols
}

// Mutable reports whether the entity accepts create, update and delete.
// An entity whose fields are all read-only is list-only.
func (s *Schema) Mutable() bool {
	for _, f := range s.Fields {
		if !f.ReadOnly {
			return true
		}
	}
	return false
}

// String returns the entity name and its columns, for diagnostics.
func (s *Schema) String() string {
	return s.Name + "(" + strings.Join(s.Columns(), ", ") + ")"
}
