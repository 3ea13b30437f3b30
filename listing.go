package textable

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is an output format for listing options.
type Format string

const (
	Plain    Format = "plain"
	Boxed    Format = "table"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	JSON     Format = "json"
	YAML     Format = "yaml"
	TOML     Format = "toml"
)

var formats = []Format{Plain, Boxed, Markdown, CSV, JSON, YAML, TOML}

var listingHeader = []string{"Option", "Value"}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported listing formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a listing format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// WriteOptions writes the current options to w in format f. The JSON, YAML
// and TOML forms can be read back as option files.
func (t *Table) WriteOptions(w io.Writer, f Format) error {
	return WriteOptions(w, f, t.st.opts)
}

// MarshalOptions returns the current options in format f.
func (t *Table) MarshalOptions(f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.WriteOptions(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteOptions writes o to w in format f.
func WriteOptions(w io.Writer, f Format, o Options) error {
	switch f {
	case Plain:
		return writePlain(w, o.Pairs())
	case Boxed:
		return writeBoxed(w, listingHeader, o.Pairs())
	case Markdown:
		return writeMarkdown(w, listingHeader, o.Pairs())
	case CSV:
		return writeCSV(w, listingHeader, o.Pairs())
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(o)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(o); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(o)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func writePlain(w io.Writer, pairs []KeyValue) error {
	for _, kv := range pairs {
		if _, err := fmt.Fprintf(w, "%s: %s\n", kv.Key, kv.Value); err != nil {
			return err
		}
	}
	return nil
}
