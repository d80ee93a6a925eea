package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the record as a JSON object with keys in record order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	i := 0
	for k, v := range r.All() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %q: %w", k, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)

		i++
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping the key order of the document.
// A JSON null leaves the record unchanged.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to parse record JSON: %w", err)
	}

	if tok == nil {
		if r.fields == nil {
			r.fields = New().fields
		}

		return nil
	}

	if tok != json.Delim('{') {
		return fmt.Errorf("failed to parse record JSON: expected an object, got %v", tok)
	}

	decoded, err := decodeJSONObject(dec)
	if err != nil {
		return fmt.Errorf("failed to parse record JSON: %w", err)
	}

	r.fields = decoded.fields

	return nil
}

// JSONDecoder reads a stream of JSON objects as records.
type JSONDecoder struct {
	dec *json.Decoder
}

// NewJSONDecoder creates a JSONDecoder reading from r.
func NewJSONDecoder(r io.Reader) *JSONDecoder {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	return &JSONDecoder{dec: dec}
}

// Decode reads the next top-level object. It returns io.EOF at the end of the stream.
func (d *JSONDecoder) Decode() (*Record, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return nil, err
	}

	if tok != json.Delim('{') {
		return nil, fmt.Errorf("offset %d: expected an object, got %v", d.dec.InputOffset(), tok)
	}

	return decodeJSONObject(d.dec)
}

// decodeJSONObject reads the members of an object whose opening brace has
// been consumed.
func decodeJSONObject(dec *json.Decoder) (*Record, error) {
	out := New()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("offset %d: object key must be a string", dec.InputOffset())
		}

		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}

		out.Set(key, val)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return out, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch tok := tok.(type) {
	case json.Delim:
		if tok == '{' {
			return decodeJSONObject(dec)
		}

		out := make([]any, 0)
		for dec.More() {
			v, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		// closing bracket
		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return out, nil

	case json.Number:
		return jsonNumber(tok), nil

	default:
		// string, bool or nil
		return tok, nil
	}
}

// jsonNumber returns n as an int when it is an integer, as a float64 when it
// fits one, and as the json.Number itself otherwise so it is written back
// unchanged.
func jsonNumber(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		if i == int64(int(i)) {
			return int(i)
		}

		return i
	}

	if f, err := n.Float64(); err == nil {
		return f
	}

	return n
}

// MarshalYAML encodes the record as a YAML mapping node with keys in record order.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for k, v := range r.All() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}

		val := new(yaml.Node)
		if err := val.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to encode field %q: %w", k, err)
		}

		node.Content = append(node.Content, key, val)
	}

	return node, nil
}

// UnmarshalYAML decodes a YAML mapping keeping the key order of the document.
// Nested mappings become *Record values and sequences become []any.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	node = resolve(node)
	if node.Kind == 0 {
		// empty document
		r.fields = New().fields
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping, got %s", node.Line, kindName(node.Kind))
	}

	decoded, err := decodeMapping(node)
	if err != nil {
		return err
	}

	r.fields = decoded.fields

	return nil
}

func decodeMapping(node *yaml.Node) (*Record, error) {
	out := New()

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := resolve(node.Content[i]), node.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping key must be a scalar", keyNode.Line)
		}

		val, err := decodeValue(valNode)
		if err != nil {
			return nil, err
		}

		out.Set(keyNode.Value, val)
	}

	return out, nil
}

func decodeValue(node *yaml.Node) (any, error) {
	node = resolve(node)

	switch node.Kind {
	case yaml.MappingNode:
		return decodeMapping(node)

	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := decodeValue(item)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		return out, nil

	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return v, nil
	}
}

// resolve unwraps document and alias nodes.
func resolve(node *yaml.Node) *yaml.Node {
	for {
		switch {
		case node.Kind == yaml.DocumentNode && len(node.Content) == 1:
			node = node.Content[0]
		case node.Kind == yaml.DocumentNode:
			return &yaml.Node{}
		case node.Kind == yaml.AliasNode && node.Alias != nil:
			node = node.Alias
		default:
			return node
		}
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
