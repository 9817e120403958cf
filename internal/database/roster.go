package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/trainingaudit/internal/model"
)

// ErrDatabaseNotFound is returned by Open when the database file does not
// exist and CreateIfNotExists is false.
var ErrDatabaseNotFound = errors.New("roster database not found")

// RosterDB provides SQLite-based storage for a personnel roster.
type RosterDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// path is the path to the SQLite database file.
	path string
}

// Options configures RosterDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file and its directory if they
	// don't exist. Loading a roster leaves this false so a typo in the path
	// is reported instead of producing an empty roster.
	CreateIfNotExists bool
}

// DefaultOptions returns the options used when importing a roster.
func DefaultOptions() Options {
	return Options{CreateIfNotExists: true}
}

// Open opens or creates a roster database at path.
func Open(path string, opts Options) (*RosterDB, error) {
	if !opts.CreateIfNotExists {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrDatabaseNotFound, path)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		dir := filepath.Dir(path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	// mode=rw refuses to create a new file; mode=rwc allows it.
	dsn := path + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = path + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &RosterDB{
		db:   db,
		path: path,
	}

	if err := rdb.createTables(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Path returns the database file path.
func (r *RosterDB) Path() string {
	return r.path
}

// Close closes the database connection.
func (r *RosterDB) Close() error {
	return r.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (r *RosterDB) createTables(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS people (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	);

	-- expires is NULL for trainings that do not expire
	CREATE TABLE IF NOT EXISTS completions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		person_id INTEGER NOT NULL REFERENCES people(id),
		name TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		expires TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_completions_person ON completions(person_id);
	`

	_, err := r.db.ExecContext(ctx, schema)
	return err
}

// ImportPeople appends people and their completions in a single transaction.
// Dates are stored as given; they are validated when reports are built.
func (r *RosterDB) ImportPeople(ctx context.Context, people []model.Person) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback() //nolint:errcheck // The original error is more useful
		}
	}()

	personStmt, err := tx.PrepareContext(ctx, `INSERT INTO people (name) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare person insert: %w", err)
	}
	defer personStmt.Close()

	completionStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO completions (person_id, name, timestamp, expires)
	VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare completion insert: %w", err)
	}
	defer completionStmt.Close()

	for _, p := range people {
		result, err := personStmt.ExecContext(ctx, p.Name)
		if err != nil {
			return fmt.Errorf("failed to insert person %q: %w", p.Name, err)
		}
		personID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read person id: %w", err)
		}

		for _, c := range p.Completions {
			var expires sql.NullString
			if c.Expires != nil {
				expires = sql.NullString{String: *c.Expires, Valid: true}
			}
			if _, err := completionStmt.ExecContext(ctx, personID, c.Name, c.Timestamp, expires); err != nil {
				return fmt.Errorf("failed to insert completion %q for %q: %w", c.Name, p.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// LoadPeople returns every person with their completions, in import order.
// People without completions are included with an empty list.
func (r *RosterDB) LoadPeople(ctx context.Context) ([]model.Person, error) {
	query := `
	SELECT p.id, p.name, c.name, c.timestamp, c.expires
	FROM people p
	LEFT JOIN completions c ON c.person_id = p.id
	ORDER BY p.id, c.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster: %w", err)
	}
	defer rows.Close()

	people := make([]model.Person, 0)
	lastID := int64(-1)
	for rows.Next() {
		var (
			personID             int64
			personName           string
			name, ts, expiresCol sql.NullString
		)
		if err := rows.Scan(&personID, &personName, &name, &ts, &expiresCol); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}

		if personID != lastID {
			people = append(people, model.Person{Name: personName})
			lastID = personID
		}

		// LEFT JOIN yields a NULL completion for people without any.
		if !name.Valid {
			continue
		}

		c := model.Completion{Name: name.String, Timestamp: ts.String}
		if expiresCol.Valid {
			expires := expiresCol.String
			c.Expires = &expires
		}
		last := &people[len(people)-1]
		last.Completions = append(last.Completions, c)
	}

	return people, rows.Err()
}

// CountPeople returns the number of people in the roster.
func (r *RosterDB) CountPeople(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM people`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count people: %w", err)
	}
	return count, nil
}
