package ordermap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCopiesInput(t *testing.T) {
	raw := map[string][]string{"FooType": {"b", "a"}}
	m := New(raw)

	raw["FooType"][0] = "changed"
	raw["BarType"] = []string{"x"}

	seq, ok := m.Lookup("FooType")
	assert.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, seq)
	assert.False(t, m.Has("BarType"))
}

func TestLookupReturnsCopy(t *testing.T) {
	m := New(map[string][]string{"FooType": {"b", "a"}})

	seq, _ := m.Lookup("FooType")
	seq[0] = "changed"

	again, _ := m.Lookup("FooType")
	assert.Equal(t, []string{"b", "a"}, again)
}

func TestEmptyMap(t *testing.T) {
	var zero Map

	for _, m := range []Map{zero, Empty(), New(nil)} {
		_, ok := m.Lookup("FooType")
		assert.False(t, ok)
		assert.Equal(t, 0, m.Len())
		assert.Empty(t, m.Types())
	}
}

func TestNewDropsEmptySequences(t *testing.T) {
	m := New(map[string][]string{"FooType": {}, "BarType": nil, "BazType": {"x"}})

	assert.Equal(t, []string{"BazType"}, m.Types())
}
