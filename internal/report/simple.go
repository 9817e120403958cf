package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/trainingaudit/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// lineWidth is the width of section separators.
const lineWidth = 70

// SimpleWriter outputs human-readable text reports for terminal display.
//
// Numbers are formatted through golang.org/x/text/message so large rosters
// print with English digit grouping.
type SimpleWriter struct {
	baseWriter

	// printer formats counts.
	printer *message.Printer
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
// Counts are formatted for English.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
		printer:    message.NewPrinter(language.English),
	}
}

// WriteCounts implements Writer.
func (w *SimpleWriter) WriteCounts(rows []model.TrainingCount) (int, error) {
	var sb strings.Builder
	w.writeHeader(&sb, "COMPLETED TRAINING COUNTS")

	if len(rows) == 0 {
		sb.WriteString("  No completed trainings\n\n")
	}

	total := 0
	for _, r := range rows {
		sb.WriteString(w.printer.Sprintf("  %-50s %8d\n", r.Training, r.Count))
		total += r.Count
	}
	if len(rows) > 0 {
		sb.WriteString("\n")
		sb.WriteString(w.printer.Sprintf("  %-50s %8d\n\n", "TOTAL", total))
	}

	w.writeFooter(&sb)
	return w.output.Write([]byte(sb.String()))
}

// WriteFiscalYear implements Writer.
func (w *SimpleWriter) WriteFiscalYear(fiscalYear int, rows []model.FiscalYearTraining) (int, error) {
	var sb strings.Builder
	w.writeHeader(&sb, "FISCAL YEAR TRAININGS")

	// Years bypass the printer: "2,024" is not a year.
	year, prev := strconv.Itoa(fiscalYear), strconv.Itoa(fiscalYear-1)
	sb.WriteString("Fiscal Year: " + year + " (07/01/" + prev + " - 06/30/" + year + ")\n\n")

	if len(rows) == 0 {
		sb.WriteString("  No completions in this fiscal year\n\n")
	}

	for _, r := range rows {
		sb.WriteString(w.printer.Sprintf("[%s] %d people\n", r.Training, len(r.People)))
		for _, p := range r.People {
			sb.WriteString("  * " + p + "\n")
		}
		sb.WriteString("\n")
	}

	w.writeFooter(&sb)
	return w.output.Write([]byte(sb.String()))
}

// WriteExpiring implements Writer.
func (w *SimpleWriter) WriteExpiring(referenceDate string, rows []model.ExpiringTraining) (int, error) {
	var sb strings.Builder
	w.writeHeader(&sb, "EXPIRING TRAININGS")

	expired, soon := model.CountStatuses(rows)
	sb.WriteString("Reference Date: " + referenceDate + "\n")
	sb.WriteString(w.printer.Sprintf("  EXPIRED:      %d\n", expired))
	sb.WriteString(w.printer.Sprintf("  EXPIRES SOON: %d\n\n", soon))

	for _, r := range rows {
		indicator := "-"
		if r.Status == model.StatusExpired {
			indicator = "!"
		}
		sb.WriteString(w.printer.Sprintf("  [%s] %-25s %-35s %-10s %s\n",
			indicator, r.Name, r.Training, r.ExpirationDate, r.Status))
	}
	if len(rows) > 0 {
		sb.WriteString("\n")
	}

	w.writeFooter(&sb)
	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes a section title between separators.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("=", lineWidth))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", lineWidth))
	sb.WriteString("\n\n")
}

// writeFooter writes the closing separator.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("-", lineWidth))
	sb.WriteString("\n")
}
