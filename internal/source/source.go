// Package source reads table documents and option files.
package source

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for unknown document or option formats.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format names accepted by [Read] and [ReadFile].
const (
	CSV  = "csv"
	TSV  = "tsv"
	JSON = "json"
	YAML = "yaml"
	TOML = "toml"
)

// Document is a table read from a file. It carries its own labels, so a
// textable.Table built from it picks them up.
type Document struct {
	Cells   any
	Rows    []string
	Columns []string
}

// Values returns the cells.
func (d *Document) Values() any { return d.Cells }

// RowLabels returns the row labels, or nil if the document has none.
func (d *Document) RowLabels() []string { return d.Rows }

// ColumnLabels returns the column labels, or nil if the document has none.
func (d *Document) ColumnLabels() []string { return d.Columns }

// ReadOptions controls how delimited documents are split into labels and
// cells.
type ReadOptions struct {
	// Header treats the first record as column labels.
	Header bool
	// RowLabels treats the first field of every record as its row label.
	RowLabels bool
}

// InferFormat returns the format implied by the extension of path, or ""
// when the extension is not recognized.
func InferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV
	case ".tsv", ".tab":
		return TSV
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	default:
		return ""
	}
}

// Read parses a table document in format. Delimited formats honor opts;
// structured formats accept either a bare two-dimensional array or an object
// with "cells", "row_labels" and "column_labels".
func Read(r io.Reader, format string, opts ReadOptions) (*Document, error) {
	switch format {
	case CSV:
		return readDelimited(r, ',', opts)
	case TSV:
		return readDelimited(r, '\t', opts)
	case JSON, YAML, TOML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		raw, err := decode(data, format)
		if err != nil {
			return nil, err
		}
		return fromStructured(raw, format)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ReadFile reads a document from path. An empty format is inferred from the
// extension.
func ReadFile(path, format string, opts ReadOptions) (*Document, error) {
	if format == "" {
		format = InferFormat(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Read(f, format, opts)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return doc, nil
}

func readDelimited(r io.Reader, comma rune, opts ReadOptions) (*Document, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse delimited data: %w", err)
	}

	doc := &Document{}
	if opts.Header && len(records) > 0 {
		doc.Columns = records[0]
		records = records[1:]
		if opts.RowLabels && len(doc.Columns) > 0 {
			doc.Columns = doc.Columns[1:]
		}
	}
	if opts.RowLabels {
		doc.Rows = make([]string, len(records))
		for i, rec := range records {
			if len(rec) > 0 {
				doc.Rows[i] = rec[0]
				records[i] = rec[1:]
			}
		}
	}
	doc.Cells = records
	return doc, nil
}

func decode(data []byte, format string) (any, error) {
	var raw any
	switch format {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	case TOML:
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse TOML: %w", err)
		}
		raw = m
	}
	return raw, nil
}

func fromStructured(raw any, format string) (*Document, error) {
	switch v := raw.(type) {
	case []any:
		return &Document{Cells: v}, nil
	case map[string]any:
		doc := &Document{Cells: v["cells"]}
		if doc.Cells == nil {
			return nil, fmt.Errorf("%s document has no \"cells\"", format)
		}
		var err error
		if doc.Rows, err = labels(v["row_labels"]); err != nil {
			return nil, fmt.Errorf("row_labels: %w", err)
		}
		if doc.Columns, err = labels(v["column_labels"]); err != nil {
			return nil, fmt.Errorf("column_labels: %w", err)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("%s document must be an array or an object, got %T", format, raw)
	}
}

func labels(v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("must be a list, got %T", v)
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, err := cast.ToStringE(item)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// ReadOptionsFile reads an option file into a map keyed by option name. The
// format is inferred from the extension: YAML, JSON or TOML.
func ReadOptionsFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read options file %s: %w", path, err)
	}
	format := InferFormat(path)
	switch format {
	case JSON, YAML, TOML:
	default:
		return nil, fmt.Errorf("%w: options file %s (supported: yaml, json, toml)", ErrUnsupportedFormat, path)
	}
	raw, err := decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("options file %s: %w", path, err)
	}
	if raw == nil {
		return map[string]any{}, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("options file %s must hold a mapping, got %T", path, raw)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

// ParseAssignment splits "name=value" and decodes value as a YAML scalar,
// so "false" is a bool, "2" an int and "c" a string.
func ParseAssignment(s string) (string, any, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return "", nil, fmt.Errorf("expected name=value, got %q", s)
	}
	var v any
	if err := yaml.Unmarshal([]byte(value), &v); err != nil || v == nil {
		return name, value, nil
	}
	return name, v, nil
}
