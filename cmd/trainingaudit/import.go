package main

import (
	"fmt"

	"github.com/nao1215/trainingaudit/internal/database"
	"github.com/nao1215/trainingaudit/internal/model"
	"github.com/nao1215/trainingaudit/internal/source"
	"github.com/spf13/cobra"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <input> <db>",
		Short: "Import a roster file into a roster database",
		Long: `Import reads a JSON or YAML roster and appends its people and
completions to a SQLite roster database, creating the database if needed.
The database can then be given to the report command as its input.

Records are stored as they are; dates are checked when reports are built.

Examples:
  # Build a roster database from the exported roster
  trainingaudit import trainings.txt roster.db

  # Generate reports from it
  trainingaudit report roster.db`,
		Args: cobra.ExactArgs(2),
		RunE: runImportCmd,
	}
}

// runImportCmd executes the import command.
func runImportCmd(cmd *cobra.Command, args []string) (err error) {
	input, dbPath := args[0], args[1]

	logger, err := newLogger(cmd, getVerboseFlag(cmd))
	if err != nil {
		return err
	}

	loader, err := source.Open(input)
	if err != nil {
		return err
	}

	people, err := loader.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	db, err := database.Open(dbPath, database.DefaultOptions())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close database: %w", cerr)
		}
	}()

	if err := db.ImportPeople(cmd.Context(), people); err != nil {
		return err
	}

	total, err := db.CountPeople(cmd.Context())
	if err != nil {
		return err
	}

	logger.Info("roster imported", "input", input, "db", dbPath, "roster_size", len(people))

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d people (%d completions) into %s\n",
		len(people), model.TotalCompletions(people), db.Path())
	fmt.Fprintf(cmd.OutOrStdout(), "The database now holds %d people\n", total)

	return nil
}
