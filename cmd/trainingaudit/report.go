package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nao1215/trainingaudit/internal/config"
	"github.com/nao1215/trainingaudit/internal/model"
	"github.com/nao1215/trainingaudit/internal/pipeline"
	"github.com/nao1215/trainingaudit/internal/source"
	"github.com/spf13/cobra"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [input]",
		Short: "Generate the training completion reports",
		Long: `Report reads a roster and writes the three training reports into the
output directory. Nothing is written if any record cannot be processed;
reports left by an earlier run are then kept as they were.

The input is a JSON file (.json or .txt), a YAML file (.yaml or .yml) or a
roster database (.db, .sqlite, .sqlite3) created by the import command.

Settings are read from the configuration file (.trainingaudit.yaml in the
current directory, or config.yaml in the user config directory), then from
TRAININGAUDIT_* environment variables, then from the flags below.

Examples:
  # Use trainings.txt and the defaults
  trainingaudit report

  # Read a YAML roster and write Markdown into ./out
  trainingaudit report roster.yaml -f markdown -o out

  # Also print the reports, as single-line JSON
  trainingaudit report --stdout --compact

  # Fiscal year 2025, two trainings, expirations as of today
  trainingaudit report -y 2025 -t "X-Ray Safety" -t "Laboratory Safety Training" \
    -r $(date +%F)`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReportCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .trainingaudit.yaml or the user config directory)")
	cmd.Flags().StringP("output-dir", "o", config.DefaultOutputDir,
		"Directory to write the reports to (created if needed)")
	cmd.Flags().StringP("format", "f", config.DefaultFormat,
		"Report format: json, markdown or text")
	cmd.Flags().StringArrayP("training", "t", nil,
		"Training to include in the fiscal-year report (repeatable)")
	cmd.Flags().IntP("fiscal-year", "y", config.DefaultFiscalYear,
		"Fiscal year Y, covering 07/01/Y-1 through 06/30/Y")
	cmd.Flags().StringP("reference-date", "r", config.DefaultReferenceDate,
		"Reference date for expirations (YYYY-MM-DD)")
	cmd.Flags().Bool("compact", false,
		"Write JSON reports without indentation")
	cmd.Flags().Bool("stdout", false,
		"Also print each report to stdout as it is written")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger, err := newLogger(cmd, cfg.Verbose)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runReport(ctx, cmd, cfg, logger)
}

// buildConfig creates a Config from the configuration layers and the flags
// the user set explicitly.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		if cfg.OutputDir, err = flags.GetString("output-dir"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("training") {
		if cfg.Trainings, err = flags.GetStringArray("training"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("fiscal-year") {
		if cfg.FiscalYear, err = flags.GetInt("fiscal-year"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("reference-date") {
		if cfg.ReferenceDate, err = flags.GetString("reference-date"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("compact") {
		if cfg.Compact, err = flags.GetBool("compact"); err != nil {
			return nil, err
		}
	}

	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if getVerboseFlag(cmd) {
		cfg.Verbose = true
	}

	return cfg, nil
}

// runReport runs the report pipeline and prints a summary.
func runReport(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	loader, err := source.Open(cfg.Input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	echo, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	opts := []pipeline.Option{pipeline.WithLogger(logger)}
	if echo {
		opts = append(opts, pipeline.WithEcho(out))
	}

	result, err := pipeline.Run(ctx, cfg, loader, opts...)
	if err != nil {
		return err
	}

	expired, soon := model.CountStatuses(result.Expiring)

	if echo {
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Read %s in %s\n", cfg.Input, result.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "  %d trainings completed\n", len(result.Counts))
	fmt.Fprintf(out, "  %d selected trainings completed in fiscal year %d\n", len(result.FiscalYear), cfg.FiscalYear)
	fmt.Fprintf(out, "  %d expired, %d expiring soon as of %s\n\n", expired, soon, cfg.ReferenceDate)

	for _, path := range result.Written {
		fmt.Fprintf(out, "Wrote %s\n", path)
	}

	return nil
}
