// Package record provides the ordered mapping used to carry one schema element's
// content through normalization.
//
// A Record maps field names to values. Values are scalars, nested *Record values
// or sequences ([]any) holding either. Unlike a Go map, a Record remembers the
// order its keys were first set in, which is the order they are emitted in.
package record

import (
	"iter"
	"reflect"
	"sort"

	"github.com/speakeasy-api/openapi/sequencedmap"
)

// Field is a single key/value pair used to build a Record.
type Field struct {
	Key   string
	Value any
}

// F is a shorthand for constructing a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Record is an insertion-ordered mapping from field name to value.
// The zero value is not usable, construct records with New or FromMap.
type Record struct {
	fields *sequencedmap.Map[string, any]
}

// New creates a Record holding the given fields in order.
// A repeated key keeps its first position and takes the last value.
func New(fields ...Field) *Record {
	r := &Record{fields: sequencedmap.New[string, any]()}
	for _, f := range fields {
		r.Set(f.Key, f.Value)
	}

	return r
}

// FromMap builds a Record from an unordered map. Keys are sorted so the result
// is deterministic; nested maps and slices are converted recursively.
func FromMap(m map[string]any) *Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	r := New()
	for _, k := range keys {
		r.Set(k, fromAny(m[k]))
	}

	return r
}

func fromAny(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return FromMap(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = fromAny(e)
		}
		return out
	default:
		return v
	}
}

// Set stores value under key. A new key is appended at the end, an existing
// key keeps its position.
func (r *Record) Set(key string, value any) {
	r.fields.Set(key, value)
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}

	return r.fields.Get(key)
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Len returns the number of fields. A nil Record has no fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}

	return r.fields.Len()
}

// Keys returns the field names in order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.Len())
	for k := range r.All() {
		keys = append(keys, k)
	}

	return keys
}

// All iterates over the fields in order.
func (r *Record) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if r == nil {
			return
		}

		for k, v := range r.fields.All() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Equal reports whether both records hold the same keys in the same order with
// deeply equal values. Nested records are compared with Equal as well.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}

	if r.Len() != other.Len() {
		return false
	}

	keys, otherKeys := r.Keys(), other.Keys()
	for i, k := range keys {
		if otherKeys[i] != k {
			return false
		}

		a, _ := r.Get(k)
		b, _ := other.Get(k)

		if !valuesEqual(a, b) {
			return false
		}
	}

	return true
}

func valuesEqual(a, b any) bool {
	switch a := a.(type) {
	case *Record:
		b, ok := b.(*Record)
		return ok && a.Equal(b)
	case []any:
		b, ok := b.([]any)
		if !ok || len(a) != len(b) {
			return false
		}

		for i := range a {
			if !valuesEqual(a[i], b[i]) {
				return false
			}
		}

		return true
	case []*Record:
		b, ok := b.([]*Record)
		if !ok || len(a) != len(b) {
			return false
		}

		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}

		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}
