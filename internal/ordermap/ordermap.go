package ordermap

import (
	"slices"
	"sort"
)

// DefaultFile is the conventional file name of the order-map artifact.
const DefaultFile = "order_map.json"

// Map maps a schema type name to the ordered names of its child elements.
// A Map is immutable once built and safe for concurrent use.
type Map struct {
	types map[string][]string
}

// Empty returns a Map without ordering rules.
func Empty() Map {
	return Map{}
}

// New builds a Map from raw sequences. The input is copied. Types with an empty
// sequence are dropped: absence means "no ordering constraint".
func New(raw map[string][]string) Map {
	types := make(map[string][]string, len(raw))

	for name, seq := range raw {
		if len(seq) == 0 {
			continue
		}

		types[name] = slices.Clone(seq)
	}

	return Map{types: types}
}

// Lookup returns a copy of the declared child sequence of typeName.
func (m Map) Lookup(typeName string) ([]string, bool) {
	seq, ok := m.types[typeName]
	if !ok {
		return nil, false
	}

	return slices.Clone(seq), true
}

// Has reports whether typeName carries an ordering rule.
func (m Map) Has(typeName string) bool {
	_, ok := m.types[typeName]
	return ok
}

// Len returns the number of types with an ordering rule.
func (m Map) Len() int {
	return len(m.types)
}

// Types returns the type names in lexical order.
func (m Map) Types() []string {
	names := make([]string, 0, len(m.types))
	for name := range m.types {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Raw returns a copy of the underlying sequences.
func (m Map) Raw() map[string][]string {
	out := make(map[string][]string, len(m.types))
	for name, seq := range m.types {
		out[name] = slices.Clone(seq)
	}

	return out
}
