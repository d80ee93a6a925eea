package ordermap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"xsdnorm/internal/diagnostic"
)

// ErrMalformed is wrapped by every error caused by an artifact that could be
// read but does not describe a valid order map.
var ErrMalformed = errors.New("malformed order map")

// Diagnostic codes reported by Validate.
const (
	CodeEmptyTypeName  = "EMPTY_TYPE_NAME"
	CodeEmptyFieldName = "EMPTY_FIELD_NAME"
	CodeDuplicateField = "DUPLICATE_FIELD"
	CodeEmptySequence  = "EMPTY_SEQUENCE"
)

// Loader reads order-map artifacts.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader reporting through logger (slog.Default when nil).
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}

	return &Loader{logger: logger}
}

// LoadFile loads the artifact at path.
//
// A missing file is the normal state before the artifact has been generated:
// it yields an empty Map and no error. Any other read failure and any parse or
// validation failure is returned.
func (l *Loader) LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("Order map not found, ordering disabled", slog.String("path", path))
		return Empty(), nil
	}

	if err != nil {
		return Map{}, fmt.Errorf("failed to read order map %s: %w", path, err)
	}

	m, err := l.Parse(data)
	if err != nil {
		return Map{}, fmt.Errorf("%s: %w", path, err)
	}

	l.logger.Debug("Loaded order map", slog.String("path", path), slog.Int("types", m.Len()))

	return m, nil
}

// Parse decodes and validates artifact content. JSON objects are decoded with
// encoding/json, anything else as YAML. Empty content yields an empty Map.
func (l *Loader) Parse(data []byte) (Map, error) {
	raw, err := decode(data)
	if err != nil {
		return Map{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	diags := Validate(raw)
	if diags.HasErrors() {
		return Map{}, fmt.Errorf("%w: %w", ErrMalformed, diags.Error())
	}

	diags.LogWarnings(l.logger)

	return New(raw), nil
}

func decode(data []byte) (map[string][]string, error) {
	var raw map[string][]string

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return raw, nil
	}

	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse order map JSON: %w", err)
		}

		return raw, nil
	}

	if err := yaml.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse order map YAML: %w", err)
	}

	return raw, nil
}

// Validate checks raw sequences. Empty names and repeated fields within one
// sequence are errors; empty sequences are warnings.
func Validate(raw map[string][]string) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		diags.Merge(validateSequence(name, raw[name]))
	}

	return diags
}

// validateSequence checks the declared child sequence of one type.
func validateSequence(name string, seq []string) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if strings.TrimSpace(name) == "" {
		diags.AddError(CodeEmptyTypeName, "type name is empty", "", "")
		return diags
	}

	if len(seq) == 0 {
		diags.AddWarning(CodeEmptySequence, "type declares no child elements", name, "")
		return diags
	}

	seen := make(map[string]struct{}, len(seq))
	for i, field := range seq {
		if strings.TrimSpace(field) == "" {
			diags.AddError(CodeEmptyFieldName, fmt.Sprintf("field #%d is empty", i), name, "")
			continue
		}

		if _, dup := seen[field]; dup {
			diags.AddError(CodeDuplicateField, "field is declared more than once", name, field)
			continue
		}

		seen[field] = struct{}{}
	}

	return diags
}

// Marshal serializes m. JSON output uses two-space indentation and keeps
// non-ASCII characters as they are.
func Marshal(m Map, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer

		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")

		if err := enc.Encode(m.Raw()); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil

	case FormatYAML:
		return yaml.Marshal(m.Raw())

	default:
		return nil, fmt.Errorf("unsupported order map format %q", format)
	}
}

// WriteFile writes m to path, choosing the format from the file extension.
func WriteFile(m Map, path string) error {
	data, err := Marshal(m, FormatFromPath(path))
	if err != nil {
		return fmt.Errorf("failed to marshal order map: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write order map %s: %w", path, err)
	}

	return nil
}

// Format is the serialization of an artifact.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath returns FormatYAML for .yaml and .yml files and FormatJSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile loads an artifact with the default logger.
func LoadFile(path string) (Map, error) {
	return NewLoader(nil).LoadFile(path)
}

// Parse parses artifact content with the default logger.
func Parse(data []byte) (Map, error) {
	return NewLoader(nil).Parse(data)
}
