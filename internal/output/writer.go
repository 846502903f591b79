// Package output writes extracted table-sets in spreadsheet or text
// formats.
package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/prozkosny/pydata-zdenka/pkg/vypis"
)

// Format represents output format types.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrEmptyTableSet is returned by the xlsx writer when every table in
// the set has zero rows: a workbook must contain at least one sheet, so
// nothing is written. Callers should treat it as "nothing to write",
// not as a failure.
var ErrEmptyTableSet = errors.New("output: table-set has no rows")

// Writer serializes one extracted table-set. Every format skips tables
// with zero rows.
type Writer interface {
	Write(ts vypis.TableSet) error
}

// WriterOption configures a writer.
type WriterOption func(*writerConfig)

type writerConfig struct {
	pretty     bool
	indent     string
	sheetNames map[string]string
}

// WithPretty enables pretty-printing for the JSON format.
func WithPretty(enabled bool) WriterOption {
	return func(c *writerConfig) {
		c.pretty = enabled
	}
}

// WithIndent sets the indentation string for the JSON format.
func WithIndent(indent string) WriterOption {
	return func(c *writerConfig) {
		c.indent = indent
	}
}

// WithSheetNames overrides output names per logical table name. Tables
// absent from the map keep their logical name.
func WithSheetNames(names map[string]string) WriterOption {
	return func(c *writerConfig) {
		for k, v := range names {
			c.sheetNames[k] = v
		}
	}
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format, opts ...WriterOption) (Writer, error) {
	cfg := &writerConfig{
		pretty:     true,
		indent:     "  ",
		sheetNames: make(map[string]string),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	switch format {
	case FormatXLSX:
		return NewXLSXWriter(w, cfg.sheetNames), nil
	case FormatJSON:
		return NewJSONWriter(w, cfg.pretty, cfg.indent, cfg.sheetNames), nil
	case FormatYAML:
		return NewYAMLWriter(w, cfg.sheetNames), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// tableDoc is the text-format rendition of one table.
type tableDoc struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// document builds the name→table mapping serialized by the text
// formats, skipping empty tables and applying name overrides.
func document(ts vypis.TableSet, names map[string]string) map[string]tableDoc {
	doc := make(map[string]tableDoc)
	for _, s := range ts.Sheets() {
		if s.Table.Empty() {
			continue
		}
		name := s.Name
		if n, ok := names[s.Name]; ok {
			name = n
		}
		doc[name] = tableDoc{Columns: s.Table.Columns, Rows: s.Table.Rows}
	}
	return doc
}
