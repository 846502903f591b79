package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/prozkosny/pydata-zdenka/pkg/vypis"
)

// YAMLWriter writes a table-set as a single YAML document keyed by
// table name.
type YAMLWriter struct {
	w     *bufio.Writer
	names map[string]string
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer, names map[string]string) *YAMLWriter {
	return &YAMLWriter{
		w:     bufio.NewWriter(w),
		names: names,
	}
}

// Write serializes the table-set. Empty tables are omitted; an
// all-empty set serializes as "{}".
func (w *YAMLWriter) Write(ts vypis.TableSet) error {
	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)

	if err := encoder.Encode(document(ts, w.names)); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}

	return w.w.Flush()
}
