package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/trainingaudit/internal/model"
)

// MarkdownWriter outputs reports as Markdown documents for sharing with
// training coordinators. The count report carries a mermaid pie chart and
// the expiration report leads with a GitHub-flavored alert.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteCounts implements Writer.
func (w *MarkdownWriter) WriteCounts(rows []model.TrainingCount) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Completed Training Counts")
	md.PlainText("")

	if len(rows) == 0 {
		md.Note("No completed trainings found.")
		return len(md.String()), md.Build()
	}

	tableRows := make([][]string, len(rows))
	total := 0
	for i, r := range rows {
		tableRows[i] = []string{r.Training, strconv.Itoa(r.Count)}
		total += r.Count
	}
	tableRows = append(tableRows, []string{"**Total**", "**" + strconv.Itoa(total) + "**"})

	md.Table(markdown.TableSet{
		Header: []string{"Training", "People"},
		Rows:   tableRows,
	})
	md.PlainText("")

	w.writePieChart(md, rows)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writePieChart writes a mermaid pie chart of completions per training.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, rows []model.TrainingCount) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Completions by Training"),
		piechart.WithShowData(true),
	)

	for _, r := range rows {
		if r.Count > 0 {
			chart.LabelAndIntValue(r.Training, uint64(r.Count))
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// WriteFiscalYear implements Writer.
func (w *MarkdownWriter) WriteFiscalYear(fiscalYear int, rows []model.FiscalYearTraining) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(fmt.Sprintf("Fiscal Year %d Trainings", fiscalYear))
	md.PlainText("")
	md.PlainTextf("Completions from 07/01/%d through 06/30/%d.", fiscalYear-1, fiscalYear)
	md.PlainText("")

	if len(rows) == 0 {
		md.Note("Nobody completed the selected trainings in this fiscal year.")
		return len(md.String()), md.Build()
	}

	for _, r := range rows {
		md.H2(fmt.Sprintf("%s (%d)", r.Training, len(r.People)))
		md.PlainText("")
		md.BulletList(r.People...)
		md.PlainText("")
	}
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteExpiring implements Writer.
func (w *MarkdownWriter) WriteExpiring(referenceDate string, rows []model.ExpiringTraining) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Expiring Trainings")
	md.PlainText("")
	md.PlainTextf("Reference date: %s", referenceDate)
	md.PlainText("")

	expired, soon := model.CountStatuses(rows)
	switch {
	case expired > 0:
		md.Cautionf("%d training(s) have expired and %d expire within 30 days.", expired, soon)
	case soon > 0:
		md.Warningf("%d training(s) expire within 30 days.", soon)
	default:
		md.Tip("No trainings are expired or expiring soon.")
		return len(md.String()), md.Build()
	}
	md.PlainText("")

	tableRows := make([][]string, len(rows))
	for i, r := range rows {
		tableRows[i] = []string{r.Name, r.Training, r.ExpirationDate, statusLabel(r.Status)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Name", "Training", "Expiration Date", "Status"},
		Rows:   tableRows,
	})
	md.PlainText("")
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// statusLabel decorates a status for display.
func statusLabel(s model.ExpirationStatus) string {
	switch s {
	case model.StatusExpired:
		return "🔴 " + strings.ToUpper(s.String())
	case model.StatusExpiresSoon:
		return "🟡 " + strings.ToUpper(s.String())
	default:
		return s.String()
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by trainingaudit*")
}
