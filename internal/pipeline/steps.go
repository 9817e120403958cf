package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nao1215/trainingaudit/internal/model"
	"github.com/nao1215/trainingaudit/internal/report"
	"github.com/nao1215/trainingaudit/internal/source"
	"github.com/nao1215/trainingaudit/internal/training"
	"golang.org/x/sync/errgroup"
)

// LoadStep reads the roster into the audit.
type LoadStep struct {
	loader source.Loader
	logger *slog.Logger
}

// NewLoadStep creates a step that loads people with loader.
func NewLoadStep(loader source.Loader, logger *slog.Logger) *LoadStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoadStep{loader: loader, logger: logger}
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return "load"
}

// Do executes the load step.
func (s *LoadStep) Do(ctx context.Context, audit *Audit) error {
	people, err := s.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	audit.People = people
	s.logger.Info("roster loaded",
		"run_id", audit.RunID,
		"roster_size", len(people),
		"completions", model.TotalCompletions(people),
	)
	return nil
}

// GenerateStep builds the three reports from the loaded roster.
type GenerateStep struct {
	trainings     []string
	fiscalYear    int
	referenceDate time.Time
	logger        *slog.Logger
}

// NewGenerateStep creates a step that generates the reports for the given
// fiscal-year selection and reference date.
func NewGenerateStep(trainings []string, fiscalYear int, referenceDate time.Time, logger *slog.Logger) *GenerateStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerateStep{
		trainings:     trainings,
		fiscalYear:    fiscalYear,
		referenceDate: referenceDate,
		logger:        logger,
	}
}

// Name returns the step name.
func (s *GenerateStep) Name() string {
	return "generate"
}

// Do executes the generate step.
// The generators only read audit.People and each writes its own field, so
// they run concurrently. The first failure cancels the step and no report
// of the run is kept.
func (s *GenerateStep) Do(ctx context.Context, audit *Audit) error {
	var (
		counts   []model.TrainingCount
		fiscal   []model.FiscalYearTraining
		expiring []model.ExpiringTraining
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := training.CountCompletions(audit.People)
		if err != nil {
			return fmt.Errorf("completion counts: %w", err)
		}
		counts = rows
		return ctx.Err()
	})

	g.Go(func() error {
		rows, err := training.CompletedInFiscalYear(audit.People, s.trainings, s.fiscalYear)
		if err != nil {
			return fmt.Errorf("fiscal year %d trainings: %w", s.fiscalYear, err)
		}
		fiscal = rows
		return ctx.Err()
	})

	g.Go(func() error {
		rows, err := training.FindExpiringAt(audit.People, s.referenceDate)
		if err != nil {
			return fmt.Errorf("expiring trainings: %w", err)
		}
		expiring = rows
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return err
	}

	audit.Counts = counts
	audit.FiscalYear = fiscal
	audit.Expiring = expiring

	expired, soon := model.CountStatuses(expiring)
	s.logger.Info("reports generated",
		"run_id", audit.RunID,
		"trainings", len(counts),
		"fiscal_year", s.fiscalYear,
		"fiscal_year_trainings", len(fiscal),
		"expired", expired,
		"expires_soon", soon,
	)
	return nil
}

// WriteStep writes the generated reports to files in a directory.
// Each report is written to a temporary file beside its target and the set
// is renamed into place only once all of them were written.
type WriteStep struct {
	dir           string
	format        report.Format
	fiscalYear    int
	referenceDate string
	logger        *slog.Logger

	jsonOpts []report.JSONWriterOption
	echo     io.Writer

	// newWriter creates the report writer for one destination.
	newWriter func(io.Writer) (report.Writer, error)
}

// WriteStepOption configures a WriteStep.
type WriteStepOption func(*WriteStep)

// WithCompactJSON writes JSON reports without indentation.
func WithCompactJSON() WriteStepOption {
	return func(s *WriteStep) {
		s.jsonOpts = append(s.jsonOpts, report.WithCompact())
	}
}

// WithReportEcho copies every report to w in the same format.
func WithReportEcho(w io.Writer) WriteStepOption {
	return func(s *WriteStep) {
		s.echo = w
	}
}

// NewWriteStep creates a step that writes the reports into dir.
// fiscalYear and referenceDate are passed to writers that print them.
func NewWriteStep(dir string, format report.Format, fiscalYear int, referenceDate string, logger *slog.Logger, opts ...WriteStepOption) *WriteStep {
	if logger == nil {
		logger = slog.Default()
	}
	s := &WriteStep{
		dir:           dir,
		format:        format,
		fiscalYear:    fiscalYear,
		referenceDate: referenceDate,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.newWriter = func(w io.Writer) (report.Writer, error) {
		return report.NewWriter(s.format, w, s.jsonOpts...)
	}
	return s
}

// Name returns the step name.
func (s *WriteStep) Name() string {
	return "write"
}

// pendingReport is a fully written temporary file and its final path.
type pendingReport struct {
	tmp  string
	path string
}

// Do executes the write step.
// A failed write removes only this run's temporary files; report files of
// an earlier run stay untouched.
func (s *WriteStep) Do(_ context.Context, audit *Audit) error {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	pending := make([]pendingReport, 0, len(report.Kinds()))
	for _, kind := range report.Kinds() {
		path := filepath.Join(s.dir, report.FileName(kind, s.format))
		tmp, err := s.writeTemp(path, kind, audit)
		if err != nil {
			s.discard(pending)
			return err
		}
		pending = append(pending, pendingReport{tmp: tmp, path: path})
	}

	written := make([]string, 0, len(pending))
	for i, p := range pending {
		if err := os.Rename(p.tmp, p.path); err != nil {
			s.discard(pending[i:])
			return fmt.Errorf("failed to move report into place: %w", err)
		}
		written = append(written, p.path)
		s.logger.Debug("report written", "run_id", audit.RunID, "path", p.path)
	}

	audit.Written = append(audit.Written, written...)
	return nil
}

// discard deletes the temporary files of a failed write.
func (s *WriteStep) discard(pending []pendingReport) {
	for _, p := range pending {
		if err := os.Remove(p.tmp); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("failed to remove temporary report", "path", p.tmp, "error", err)
		}
	}
}

// writeTemp writes one report to a new temporary file in the output
// directory and returns its path. The file is removed again on error.
func (s *WriteStep) writeTemp(path string, kind report.Kind, audit *Audit) (tmp string, err error) {
	f, err := os.CreateTemp(s.dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report file: %w", cerr)
		}
		if err != nil {
			s.discard([]pendingReport{{tmp: f.Name(), path: path}})
		}
	}()

	w, err := s.writerFor(f)
	if err != nil {
		return "", err
	}

	switch kind {
	case report.KindCounts:
		_, err = w.WriteCounts(audit.Counts)
	case report.KindFiscalYear:
		_, err = w.WriteFiscalYear(s.fiscalYear, audit.FiscalYear)
	case report.KindExpiring:
		_, err = w.WriteExpiring(s.referenceDate, audit.Expiring)
	}
	if err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Name(), nil
}

// writerFor returns the writer for one report file, fanned out to the echo
// destination when one is set.
func (s *WriteStep) writerFor(f io.Writer) (report.Writer, error) {
	w, err := s.newWriter(f)
	if err != nil || s.echo == nil {
		return w, err
	}
	echo, err := s.newWriter(s.echo)
	if err != nil {
		return nil, err
	}
	return report.NewMultiWriter(w, echo), nil
}
