package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/nao1215/trainingaudit/internal/model"
)

// ErrUnknownFormat is returned when a report format name is not recognized.
var ErrUnknownFormat = errors.New("unknown report format")

// Writer defines the interface for report output.
// Each method writes one report and returns the number of bytes written.
type Writer interface {
	// WriteCounts outputs the completion count report.
	WriteCounts(rows []model.TrainingCount) (int, error)

	// WriteFiscalYear outputs the fiscal-year report for fiscalYear.
	WriteFiscalYear(fiscalYear int, rows []model.FiscalYearTraining) (int, error)

	// WriteExpiring outputs the expiration report as of referenceDate.
	WriteExpiring(referenceDate string, rows []model.ExpiringTraining) (int, error)
}

// Kind names one of the three reports.
type Kind string

const (
	// KindCounts is the completion count report.
	KindCounts Kind = "completed_training_counts"

	// KindFiscalYear is the fiscal-year completion report.
	KindFiscalYear Kind = "fiscal_year_trainings"

	// KindExpiring is the expired and expiring-soon report.
	KindExpiring Kind = "expiring_trainings"
)

// Kinds lists every report kind in output order.
func Kinds() []Kind {
	return []Kind{KindCounts, KindFiscalYear, KindExpiring}
}

// Format is an output encoding.
type Format string

const (
	// FormatJSON writes indented JSON arrays.
	FormatJSON Format = "json"

	// FormatMarkdown writes Markdown documents.
	FormatMarkdown Format = "markdown"

	// FormatText writes plain text.
	FormatText Format = "text"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatMarkdown, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (use json, markdown or text)", ErrUnknownFormat, s)
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatText:
		return ".txt"
	default:
		return ".json"
	}
}

// FileName returns the output file name of a report.
func FileName(kind Kind, format Format) string {
	return string(kind) + format.Extension()
}

// NewWriter creates a Writer for format that outputs to w.
// opts apply to JSON output and are ignored for other formats.
func NewWriter(format Format, w io.Writer, opts ...JSONWriterOption) (Writer, error) {
	switch format {
	case FormatJSON:
		return NewJSONWriter(w, opts...), nil
	case FormatMarkdown:
		return NewMarkdownWriter(w), nil
	case FormatText:
		return NewSimpleWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// MultiWriter writes to multiple Writers in turn, such as a report file
// and the terminal.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteCounts outputs the count report to all Writers.
// Stops on first error encountered.
func (m *MultiWriter) WriteCounts(rows []model.TrainingCount) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteCounts(rows) })
}

// WriteFiscalYear outputs the fiscal-year report to all Writers.
func (m *MultiWriter) WriteFiscalYear(fiscalYear int, rows []model.FiscalYearTraining) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteFiscalYear(fiscalYear, rows) })
}

// WriteExpiring outputs the expiration report to all Writers.
func (m *MultiWriter) WriteExpiring(referenceDate string, rows []model.ExpiringTraining) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteExpiring(referenceDate, rows) })
}

func (m *MultiWriter) each(write func(Writer) (int, error)) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := write(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
