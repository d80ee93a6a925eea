package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"xsdnorm/internal/config"
	"xsdnorm/internal/naming"
	"xsdnorm/internal/order"
	"xsdnorm/record"
)

const stdinArg = "-"

func (a *app) normalizeCmd() *cobra.Command {
	var (
		rootType string
		format   string
		keys     string
	)

	cmd := &cobra.Command{
		Use:   "normalize [paths|globs...]",
		Short: "Convert keys and reorder fields of YAML or JSON records",
		Long: `Reads one or more YAML or JSON documents, each a mapping describing one
element of the schema type given by --type, converts their keys and reorders
their fields into the declared sequence. Reads stdin when no path is given or
for "-". Globs such as records/**/*.yaml are expanded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cfg.Merge(&config.Config{
				RootType: rootType,
				Output:   config.OutputConfig{Format: format, Keys: keys},
			})

			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			return a.runNormalize(cmd.OutOrStdout(), args)
		},
	}

	cmd.Flags().StringVarP(&rootType, "type", "t", "", "Schema type of the top-level records")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, yaml)")
	cmd.Flags().StringVarP(&keys, "keys", "k", "", "Key conversion (external, internal, keep)")

	return cmd
}

func (a *app) runNormalize(out io.Writer, args []string) error {
	m, err := a.loadOrderMap()
	if err != nil {
		return err
	}

	if a.cfg.RootType != "" && !m.Has(a.cfg.RootType) {
		a.logger.Warn("Type has no declared sequence, records keep their order", "type", a.cfg.RootType)
	}

	inputs, err := expandInputs(args)
	if err != nil {
		return err
	}

	return a.normalizeInputs(newEncoder(out, a.cfg.Output.Format), order.New(m), inputs)
}

// normalizeInputs writes the normalized records of every input to enc, then
// closes enc. A failing Close is reported unless an earlier error occurred.
func (a *app) normalizeInputs(enc recordEncoder, orderer *order.Orderer, inputs []string) (err error) {
	defer func() {
		if cerr := enc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("flush output: %w", cerr)
		}
	}()

	for _, in := range inputs {
		records, err := a.readRecords(in)
		if err != nil {
			return err
		}

		a.logger.Debug("Normalizing", "input", in, "records", len(records))

		for _, rec := range records {
			rec = convertRecord(rec, a.cfg.Output.Keys)
			rec = orderer.Reorder(rec, a.cfg.RootType)

			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("write %s: %w", in, err)
			}
		}
	}

	return nil
}

// expandInputs resolves globs into file paths, keeping the argument order.
// Arguments without glob metacharacters are kept as given so a missing file is
// reported by name.
func expandInputs(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{stdinArg}, nil
	}

	var inputs []string

	for _, arg := range args {
		if arg == stdinArg || !hasMeta(arg) {
			inputs = append(inputs, arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}

		inputs = append(inputs, matches...)
	}

	return inputs, nil
}

func hasMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}

	return false
}

// readRecords decodes every document of one input. Content starting with '{'
// is read as a stream of JSON objects, anything else as YAML documents.
func (a *app) readRecords(path string) ([]*record.Record, error) {
	var (
		data []byte
		err  error
	)

	name := "<stdin>"
	if path == stdinArg {
		data, err = io.ReadAll(a.stdin)
	} else {
		name = path
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	var records []*record.Record
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		records, err = decodeJSONRecords(data)
	} else {
		records, err = decodeYAMLRecords(data)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return records, nil
}

func decodeJSONRecords(data []byte) ([]*record.Record, error) {
	dec := record.NewJSONDecoder(bytes.NewReader(data))

	var records []*record.Record

	for {
		rec, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return records, nil
		}

		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}
}

func decodeYAMLRecords(data []byte) ([]*record.Record, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var records []*record.Record

	for {
		rec := record.New()

		err := dec.Decode(rec)
		if errors.Is(err, io.EOF) {
			return records, nil
		}

		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}
}

func convertRecord(rec *record.Record, keys string) *record.Record {
	dir, ok := naming.ParseDirection(keys)
	if !ok {
		return rec
	}

	converted, _ := naming.ConvertKeys(rec, dir).(*record.Record)

	return converted
}

// recordEncoder writes normalized records in the configured format.
type recordEncoder interface {
	Encode(rec *record.Record) error
	Close() error
}

func newEncoder(w io.Writer, format string) recordEncoder {
	if format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		return yamlEncoder{enc}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return jsonEncoder{enc}
}

type jsonEncoder struct{ enc *json.Encoder }

func (e jsonEncoder) Encode(rec *record.Record) error { return e.enc.Encode(rec) }
func (e jsonEncoder) Close() error                    { return nil }

type yamlEncoder struct{ enc *yaml.Encoder }

func (e yamlEncoder) Encode(rec *record.Record) error { return e.enc.Encode(rec) }
func (e yamlEncoder) Close() error                    { return e.enc.Close() }
