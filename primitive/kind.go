// Package primitive classifies loosely typed scalar values (decoded documents,
// form input, values read from storage) and extracts their integer or textual
// representation.
package primitive

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindNull     // nil, nil pointer or nil interface
	KindSigned   // int, int8 ... int64 and named types over them
	KindUnsigned // uint, uint8 ... uint64, uintptr and named types over them
	KindFloat    // float32, float64
	KindBool
	KindString
	KindComposite // structs, maps, slices and anything else
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindSigned, KindUnsigned, KindFloat:
		return true
	}
}

func (k KindEnum) IsScalar() bool {
	switch k {
	default:
		return false
	case KindSigned, KindUnsigned, KindFloat, KindBool, KindString:
		return true
	}
}

// FromReflectKind maps a reflect.Kind onto a KindEnum.
func FromReflectKind(kind reflect.Kind) KindEnum {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindSigned
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindUnsigned
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	case reflect.Invalid:
		return KindNull
	default:
		return KindComposite
	}
}

// Indirect follows pointers and interfaces down to the underlying value.
// It reports false when a nil is met on the way.
func Indirect(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}

		rv = rv.Elem()
	}

	return rv, rv.IsValid()
}

// Of returns the kind of v after pointer indirection.
func Of(v any) KindEnum {
	rv, ok := Indirect(v)
	if !ok {
		return KindNull
	}

	return FromReflectKind(rv.Kind())
}

// IsNull reports whether v is nil or a nil pointer.
func IsNull(v any) bool {
	return Of(v) == KindNull
}

// Int64 interprets v as an integer, the way an integer conversion of a loosely
// typed value would.
//
// Signed and unsigned integers (named types included) convert directly. Finite
// floats are truncated toward zero. Booleans are 0 and 1. Strings must contain a
// base-10 integer surrounded by optional white space.
func Int64(v any) (int64, bool) {
	rv, ok := Indirect(v)
	if !ok {
		return 0, false
	}

	switch FromReflectKind(rv.Kind()) {
	case KindSigned:
		return rv.Int(), true

	case KindUnsigned:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}

		return int64(u), true

	case KindFloat:
		f := math.Trunc(rv.Float())
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}

		return int64(f), true

	case KindBool:
		if rv.Bool() {
			return 1, true
		}

		return 0, true

	case KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(rv.String()), 10, 64)
		if err != nil {
			return 0, false
		}

		return n, true

	default:
		return 0, false
	}
}

// Text returns the textual form of v after pointer indirection.
// Nil values render as the empty string.
func Text(v any) string {
	rv, ok := Indirect(v)
	if !ok {
		return ""
	}

	if s, ok := rv.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	if rv.Kind() == reflect.String {
		return rv.String()
	}

	return fmt.Sprint(rv.Interface())
}
