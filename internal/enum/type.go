package enum

import (
	"fmt"
	"slices"
	"strings"
)

// Integer is the set of types an enumeration can be declared over.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Member is one named value of an enumeration.
type Member[T Integer] struct {
	Name  string
	Value T
}

// Type describes an enumeration: its name and its members.
// Member names are matched in upper case.
type Type[T Integer] struct {
	name    string
	members []Member[T]
	byValue map[int64]T
	byName  map[string]T
}

// NewType declares an enumeration. Names are upper-cased; when two members share
// a name or a value the first one wins.
func NewType[T Integer](name string, members ...Member[T]) *Type[T] {
	t := &Type[T]{
		name:    name,
		byValue: make(map[int64]T, len(members)),
		byName:  make(map[string]T, len(members)),
	}

	for _, m := range members {
		m.Name = strings.ToUpper(m.Name)
		t.members = append(t.members, m)

		if _, ok := t.byValue[int64(m.Value)]; !ok {
			t.byValue[int64(m.Value)] = m.Value
		}

		if _, ok := t.byName[m.Name]; !ok {
			t.byName[m.Name] = m.Value
		}
	}

	return t
}

// Stringers builds members named after the String method of each value,
// typically generated by stringer.
func Stringers[T interface {
	Integer
	fmt.Stringer
}](values ...T) []Member[T] {
	members := make([]Member[T], 0, len(values))
	for _, v := range values {
		members = append(members, Member[T]{Name: v.String(), Value: v})
	}

	return members
}

// Name returns the enumeration name used in log output.
func (t *Type[T]) Name() string {
	return t.name
}

// Members returns the members in declaration order.
func (t *Type[T]) Members() []Member[T] {
	return slices.Clone(t.members)
}

// ByValue returns the member with numeric value n.
func (t *Type[T]) ByValue(n int64) (T, bool) {
	v, ok := t.byValue[n]
	return v, ok
}

// ByName returns the member called name. The lookup is exact: callers
// normalize the case.
func (t *Type[T]) ByName(name string) (T, bool) {
	v, ok := t.byName[name]
	return v, ok
}

// NameOf returns the name of the member with value v, or its number when v is
// not a member.
func (t *Type[T]) NameOf(v T) string {
	for _, m := range t.members {
		if m.Value == v {
			return m.Name
		}
	}

	return fmt.Sprintf("%s(%d)", t.name, int64(v))
}
