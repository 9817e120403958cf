package pipeline

import (
	"context"
	"io"
	"log/slog"

	"github.com/nao1215/trainingaudit/internal/model"
)

// Audit is the state shared by the steps of one run.
type Audit struct {
	// RunID tags every log record of the run.
	RunID string

	// People is the loaded roster.
	People []model.Person

	// Counts is the completion count report.
	Counts []model.TrainingCount

	// FiscalYear is the fiscal-year completion report.
	FiscalYear []model.FiscalYearTraining

	// Expiring is the expired and expiring-soon report.
	Expiring []model.ExpiringTraining

	// Written lists the report files produced, in write order.
	Written []string

	// PerformedSteps lists the steps that completed, in order.
	PerformedSteps []string
}

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the audit filled
// in by the previous steps.
type Step interface {
	// Do executes the pipeline step.
	// It receives the context for cancellation, and the audit to modify.
	Do(ctx context.Context, audit *Audit) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
// It stops at the first failing step.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// echo receives a copy of every report written by Run, if set.
	echo io.Writer
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithEcho makes Run copy each report to w as it is written to its file.
func WithEcho(w io.Writer) Option {
	return func(p *Pipeline) {
		p.echo = w
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence.
// Cancellation is checked before each step; steps handle it themselves
// while running. The first error is returned unchanged.
func (p *Pipeline) Execute(ctx context.Context, audit *Audit) error {
	for i, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"run_id", audit.RunID,
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"position", i+1,
			"of", p.StepCount(),
			"run_id", audit.RunID,
		)

		if err := step.Do(ctx, audit); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"run_id", audit.RunID,
				"error", err,
			)
			return err
		}

		p.logger.Debug("step completed",
			"step", step.Name(),
			"run_id", audit.RunID,
		)
		audit.PerformedSteps = append(audit.PerformedSteps, step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
