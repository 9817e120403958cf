package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nao1215/trainingaudit/internal/config"
	"github.com/nao1215/trainingaudit/internal/model"
	"github.com/nao1215/trainingaudit/internal/source"
	"github.com/nao1215/trainingaudit/internal/training"
)

// Result holds the outcome of a successful run.
type Result struct {
	// RunID identifies the run in the logs.
	RunID string

	Counts     []model.TrainingCount
	FiscalYear []model.FiscalYearTraining
	Expiring   []model.ExpiringTraining

	// Written lists the report files produced.
	Written []string

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// Run loads the roster with loader, generates the three reports and writes
// them to cfg.OutputDir. The configuration is validated first. On error no
// report file is written and reports of an earlier run are left in place.
func Run(ctx context.Context, cfg *config.Config, loader source.Loader, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	format, err := cfg.ReportFormat()
	if err != nil {
		return nil, err
	}

	ref, err := model.ParseReferenceDate(cfg.ReferenceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", training.ErrInvalidReferenceDate, err)
	}

	p := New(opts...)
	runID := uuid.NewString()
	logger := p.logger.With("run_id", runID)

	var writeOpts []WriteStepOption
	if cfg.Compact {
		writeOpts = append(writeOpts, WithCompactJSON())
	}
	if p.echo != nil {
		writeOpts = append(writeOpts, WithReportEcho(p.echo))
	}

	p.AddSteps(
		NewLoadStep(loader, p.logger),
		NewGenerateStep(cfg.Trainings, cfg.FiscalYear, ref, p.logger),
		NewWriteStep(cfg.OutputDir, format, cfg.FiscalYear, cfg.ReferenceDate, p.logger, writeOpts...),
	)

	start := time.Now()
	audit := &Audit{RunID: runID}

	logger.Info("report run started",
		"input", cfg.Input,
		"output_dir", cfg.OutputDir,
		"format", format,
		"steps", p.StepNames(),
	)

	if err := p.Execute(ctx, audit); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:      runID,
		Counts:     audit.Counts,
		FiscalYear: audit.FiscalYear,
		Expiring:   audit.Expiring,
		Written:    audit.Written,
		Elapsed:    time.Since(start),
	}

	logger.Info("report run complete",
		"files", len(result.Written),
		"elapsed", result.Elapsed,
	)

	return result, nil
}
