package naming

import (
	"reflect"
	"strings"

	"xsdnorm/primitive"
	"xsdnorm/record"
)

//go:generate go tool stringer -type=Direction -output=direction_string.go

// Direction selects the target convention of a key conversion.
type Direction int

const (
	_ Direction = iota

	External // snake_case -> schema PascalCase
	Internal // schema PascalCase -> snake_case
)

// ParseDirection parses "external" or "internal" (case-insensitive).
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "external":
		return External, true
	case "internal":
		return Internal, true
	default:
		return 0, false
	}
}

// Convert converts a single name in direction dir. Unknown directions leave
// the name unchanged.
func (c *Converter) Convert(name string, dir Direction) string {
	switch dir {
	case External:
		return c.ToExternal(name)
	case Internal:
		return c.ToInternal(name)
	default:
		return name
	}
}

// ConvertKeys returns a copy of v in which every mapping key has been converted
// in direction dir.
//
// Records keep their key order; map[string]any values stay maps. Structs and
// pointers to structs are viewed as records of their exported fields, in
// declaration order, named after their json tag when one is set. Slices and
// arrays are walked element by element. Anything else is returned unchanged.
// When two keys convert to the same name the last value wins and the first
// position is kept.
func (c *Converter) ConvertKeys(v any, dir Direction) any {
	switch v := v.(type) {
	case nil:
		return nil

	case *record.Record:
		if v == nil {
			return v
		}

		out := record.New()
		for k, val := range v.All() {
			out.Set(c.Convert(k, dir), c.ConvertKeys(val, dir))
		}

		return out

	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[c.Convert(k, dir)] = c.ConvertKeys(val, dir)
		}

		return out

	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = c.ConvertKeys(item, dir)
		}

		return out

	case []*record.Record:
		out := make([]*record.Record, len(v))
		for i, item := range v {
			converted, _ := c.ConvertKeys(item, dir).(*record.Record)
			out[i] = converted
		}

		return out
	}

	return c.convertReflect(v, dir)
}

func (c *Converter) convertReflect(v any, dir Direction) any {
	if primitive.Of(v).IsScalar() {
		return v
	}

	rv, ok := primitive.Indirect(v)
	if !ok {
		return v
	}

	switch rv.Kind() {
	case reflect.Struct:
		if !hasExportedFields(rv.Type()) {
			// opaque values such as time.Time
			return v
		}

		return c.convertStruct(rv, dir)

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return v
		}

		if !holdsContainers(rv.Type().Elem()) {
			return v
		}

		out := make([]any, rv.Len())
		for i := range out {
			out[i] = c.ConvertKeys(rv.Index(i).Interface(), dir)
		}

		return out

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
			return v
		}

		out := make(map[string]any, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			out[c.Convert(iter.Key().String(), dir)] = c.ConvertKeys(iter.Value().Interface(), dir)
		}

		return out

	default:
		return v
	}
}

// holdsContainers reports whether values of type t may carry keys to convert.
func holdsContainers(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Interface:
		return true
	default:
		return false
	}
}

func hasExportedFields(t reflect.Type) bool {
	for i := range t.NumField() {
		if t.Field(i).IsExported() {
			return true
		}
	}

	return false
}

// convertStruct views a struct as a record of its exported fields.
func (c *Converter) convertStruct(rv reflect.Value, dir Direction) *record.Record {
	out := record.New()

	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		name := sf.Name
		if tag, ok := sf.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}

			if tagName != "" {
				name = tagName
			}
		}

		out.Set(c.Convert(name, dir), c.ConvertKeys(rv.Field(i).Interface(), dir))
	}

	return out
}

// ConvertKeys converts keys with the default tables.
func ConvertKeys(v any, dir Direction) any {
	return defaultConverter.ConvertKeys(v, dir)
}
