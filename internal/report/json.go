package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/nao1215/trainingaudit/internal/model"
)

// DefaultJSONIndent matches the four-space indentation of the reports as
// they were first delivered.
const DefaultJSONIndent = "    "

// JSONWriter outputs reports as JSON arrays of rows.
// Report parameters (fiscal year, reference date) are not part of the
// output; consumers receive exactly the rows.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentString is the indentation string for each level.
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithCompact disables indentation.
func WithCompact() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = false
		w.indentString = ""
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
// Output is indented with DefaultJSONIndent unless WithCompact is given.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter:   newBaseWriter(output),
		indent:       true,
		indentString: DefaultJSONIndent,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteCounts implements Writer.
func (w *JSONWriter) WriteCounts(rows []model.TrainingCount) (int, error) {
	if rows == nil {
		rows = []model.TrainingCount{}
	}
	return w.writeJSON(rows)
}

// WriteFiscalYear implements Writer.
func (w *JSONWriter) WriteFiscalYear(_ int, rows []model.FiscalYearTraining) (int, error) {
	if rows == nil {
		rows = []model.FiscalYearTraining{}
	}
	return w.writeJSON(rows)
}

// WriteExpiring implements Writer.
func (w *JSONWriter) WriteExpiring(_ string, rows []model.ExpiringTraining) (int, error) {
	if rows == nil {
		rows = []model.ExpiringTraining{}
	}
	return w.writeJSON(rows)
}

// writeJSON encodes the given value as JSON and writes it to the output.
// Training names are written as-is; "&" stays "&" rather than "\u0026".
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if w.indent {
		enc.SetIndent("", w.indentString)
	}

	// Encode terminates the document with a newline.
	if err := enc.Encode(v); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
