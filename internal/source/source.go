package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nao1215/trainingaudit/internal/database"
	"github.com/nao1215/trainingaudit/internal/model"
)

// Loader reads a roster.
type Loader interface {
	// Load returns every person in the roster, in source order.
	Load(ctx context.Context) ([]model.Person, error)
}

// Format names a roster encoding.
type Format string

const (
	// FormatJSON is a JSON array of people.
	FormatJSON Format = "json"

	// FormatYAML is a YAML sequence of people.
	FormatYAML Format = "yaml"

	// FormatSQLite is a roster database created by the import command.
	FormatSQLite Format = "sqlite"
)

// DetectFormat infers the roster format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".txt":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Open returns a Loader for path chosen by its extension.
func Open(path string) (Loader, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatYAML:
		return NewYAMLFile(path), nil
	case FormatSQLite:
		return NewRosterDatabase(path), nil
	default:
		return NewJSONFile(path), nil
	}
}

// RosterDatabase loads people from a SQLite roster database.
// The database must already exist; it is never created by loading.
type RosterDatabase struct {
	path string
}

// NewRosterDatabase creates a loader for the roster database at path.
func NewRosterDatabase(path string) *RosterDatabase {
	return &RosterDatabase{path: path}
}

// Load implements Loader.
func (r *RosterDatabase) Load(ctx context.Context) ([]model.Person, error) {
	db, err := database.Open(r.path, database.Options{CreateIfNotExists: false})
	if err != nil {
		return nil, fmt.Errorf("failed to open roster database: %w", err)
	}
	defer db.Close()

	return db.LoadPeople(ctx)
}
