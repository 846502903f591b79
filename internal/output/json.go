package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/prozkosny/pydata-zdenka/pkg/vypis"
)

// JSONWriter writes a table-set as a single JSON document keyed by
// table name.
type JSONWriter struct {
	w      *bufio.Writer
	pretty bool
	indent string
	names  map[string]string
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, pretty bool, indent string, names map[string]string) *JSONWriter {
	return &JSONWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
		indent: indent,
		names:  names,
	}
}

// Write serializes the table-set. Empty tables are omitted; an
// all-empty set serializes as "{}".
func (w *JSONWriter) Write(ts vypis.TableSet) error {
	doc := document(ts, w.names)

	var out []byte
	var err error
	if w.pretty {
		out, err = json.MarshalIndent(doc, "", w.indent)
	} else {
		out, err = json.Marshal(doc)
	}
	if err != nil {
		return err
	}

	if _, err := w.w.Write(out); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}

	return w.w.Flush()
}
