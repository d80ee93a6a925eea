// Package order rearranges record fields into the child order declared by the
// schema for the record's type.
package order

import (
	"xsdnorm/internal/ordermap"
	"xsdnorm/record"
)

// TypeNamer returns the type name used when descending into the value of field.
type TypeNamer func(field string) string

// FieldType names the complex type of field after the schema convention:
// the type of element X is XType. This is a guess, not a schema lookup.
func FieldType(field string) string {
	return field + "Type"
}

// Option configures an Orderer.
type Option func(*Orderer)

// WithTypeNamer replaces FieldType as the strategy used to name nested types.
func WithTypeNamer(fn TypeNamer) Option {
	return func(o *Orderer) {
		if fn != nil {
			o.typeName = fn
		}
	}
}

// Orderer reorders records following an order map. It holds no mutable state
// and is safe for concurrent use.
type Orderer struct {
	orders   ordermap.Map
	typeName TypeNamer
}

// New creates an Orderer over m.
func New(m ordermap.Map, opts ...Option) *Orderer {
	o := &Orderer{
		orders:   m,
		typeName: FieldType,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Reorder returns r with its keys arranged in the sequence declared for typeName.
//
// Declared fields present in r come first, in declaration order, and their values
// are reordered recursively. Keys that are not declared follow in their original
// relative order, untouched. Missing declared fields are not synthesized.
// When typeName has no ordering rule r itself is returned.
func (o *Orderer) Reorder(r *record.Record, typeName string) *record.Record {
	if r == nil {
		return nil
	}

	seq, ok := o.orders.Lookup(typeName)
	if !ok || len(seq) == 0 {
		return r
	}

	out := record.New()

	for _, field := range seq {
		val, ok := r.Get(field)
		if !ok {
			continue
		}

		out.Set(field, o.normalize(field, val))
	}

	for k, v := range r.All() {
		if out.Has(k) {
			continue
		}

		out.Set(k, v)
	}

	return out
}

// normalize reorders nested records held by the value of field.
// Sequences keep their element order; only record elements are rewritten.
func (o *Orderer) normalize(field string, val any) any {
	switch v := val.(type) {
	case *record.Record:
		return o.Reorder(v, o.typeName(field))

	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			if rec, ok := item.(*record.Record); ok {
				out[i] = o.Reorder(rec, o.typeName(field))
				continue
			}

			out[i] = item
		}

		return out

	case []*record.Record:
		out := make([]*record.Record, len(v))
		for i, rec := range v {
			out[i] = o.Reorder(rec, o.typeName(field))
		}

		return out

	default:
		return val
	}
}
