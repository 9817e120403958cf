package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nao1215/trainingaudit/internal/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for trainingaudit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trainingaudit",
		Short: "Training completion reports for lab safety compliance",
		Long: `trainingaudit reads a roster of people and their training completions
and writes three reports:

  completed_training_counts  people who completed each training
  fiscal_year_trainings      selected trainings completed in a fiscal year
  expiring_trainings         trainings expired or expiring within 30 days

Only the most recent completion of a training by a person is considered.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging (shows personnel names)")
	cmd.PersistentFlags().String("log-format", logFormatText, "Log record format on stderr: text or json")

	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// Log record formats accepted by --log-format.
const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// newLogger creates the redacting logger selected by --log-format, writing
// to the command's stderr.
func newLogger(cmd *cobra.Command, verbose bool) (*slog.Logger, error) {
	format, err := cmd.Flags().GetString("log-format")
	if err != nil {
		format, err = cmd.Root().PersistentFlags().GetString("log-format")
		if err != nil {
			format = logFormatText
		}
	}

	switch format {
	case logFormatText:
		return log.NewLogger(cmd.ErrOrStderr(), verbose), nil
	case logFormatJSON:
		return log.NewJSONLogger(cmd.ErrOrStderr(), verbose), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q (want %s or %s)", format, logFormatText, logFormatJSON)
	}
}
