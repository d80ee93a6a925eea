package ordermap

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	data := `{
  "PraticaType": ["Intestatario", "Impianto"],
  "ImpiantoType": ["Codice", "QuotaCE", "AlfaPC"]
}`

	m, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"ImpiantoType", "PraticaType"}, m.Types())

	seq, ok := m.Lookup("ImpiantoType")
	require.True(t, ok)
	assert.Equal(t, []string{"Codice", "QuotaCE", "AlfaPC"}, seq)
}

func TestParseYAML(t *testing.T) {
	data := `
PraticaType:
  - Intestatario
  - Impianto
`

	m, err := Parse([]byte(data))
	require.NoError(t, err)

	seq, ok := m.Lookup("PraticaType")
	require.True(t, ok)
	assert.Equal(t, []string{"Intestatario", "Impianto"}, seq)
}

func TestParseEmpty(t *testing.T) {
	for _, data := range []string{"", "  \n", "{}"} {
		m, err := Parse([]byte(data))
		require.NoError(t, err)
		assert.Equal(t, 0, m.Len())
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"broken json", `{"FooType": ["a",`, "failed to parse order map JSON"},
		{"wrong value type", `{"FooType": "a"}`, "failed to parse order map JSON"},
		{"broken yaml", "FooType: [a, b\n", "failed to parse order map YAML"},
		{"duplicate field", `{"FooType": ["a", "b", "a"]}`, "field is declared more than once"},
		{"empty field", `{"FooType": ["a", ""]}`, CodeEmptyFieldName},
		{"empty type", `{"": ["a"]}`, CodeEmptyTypeName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			require.ErrorIs(t, err, ErrMalformed)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateCollectsAllTypes(t *testing.T) {
	diags := Validate(map[string][]string{
		"BType":     {"x", "x", ""},
		"AType":     {"a", "b"},
		"EmptyType": nil,
		" ":         {"a"},
	})

	require.Len(t, diags.Errors, 3)
	assert.Equal(t, CodeEmptyTypeName, diags.Errors[0].Code)
	assert.Equal(t, CodeDuplicateField, diags.Errors[1].Code)
	assert.Equal(t, "BType", diags.Errors[1].TypeName)
	assert.Equal(t, CodeEmptyFieldName, diags.Errors[2].Code)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "EmptyType", diags.Warnings[0].TypeName)

	clean := Validate(map[string][]string{"AType": {"a"}})
	assert.False(t, clean.HasErrors())
}

func TestParseWarnsOnEmptySequence(t *testing.T) {
	var buf bytes.Buffer
	loader := NewLoader(slog.New(slog.NewTextHandler(&buf, nil)))

	m, err := loader.Parse([]byte(`{"EmptyType": [], "NullType": null, "FooType": ["a"]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"FooType"}, m.Types())
	assert.False(t, m.Has("EmptyType"))
	assert.Contains(t, buf.String(), "type=EmptyType")
	assert.Contains(t, buf.String(), "type=NullType")
}

func TestLoadFileMissing(t *testing.T) {
	m, err := LoadFile(filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestLoadFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(`{"FooType": `), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), path)
}

func TestLoadFileUnreadable(t *testing.T) {
	// a directory cannot be read as a file
	_, err := LoadFile(t.TempDir())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformed)
}

func TestWriteFileRoundTrip(t *testing.T) {
	src := New(map[string][]string{
		"PraticaType": {"Intestatario", "Impianto"},
		"SedeType":    {"Città", "Via"},
		"EmptyType":   nil,
	})

	for _, name := range []string{"order_map.json", "order_map.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteFile(src, path))

			loaded, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, src.Raw(), loaded.Raw())
		})
	}
}

func TestMarshalJSONKeepsNonASCII(t *testing.T) {
	data, err := Marshal(New(map[string][]string{"SedeType": {"Città"}}), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"SedeType\": [\n    \"Città\"\n  ]\n}\n", string(data))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("order_map.json"))
	assert.Equal(t, FormatYAML, FormatFromPath("order_map.YML"))
	assert.Equal(t, FormatYAML, FormatFromPath("dir/order_map.yaml"))
	assert.Equal(t, FormatJSON, FormatFromPath("order_map"))
}
