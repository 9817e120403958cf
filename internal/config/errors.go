package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and Load() and can be
// checked with errors.Is().
var (
	// ErrNoInput is returned when no roster input path is configured.
	ErrNoInput = errors.New("no input specified: provide a roster file or database")

	// ErrNoTrainings is returned when the fiscal-year report has no trainings to select.
	ErrNoTrainings = errors.New("no trainings specified for the fiscal-year report")

	// ErrInvalidFiscalYear is returned when the fiscal year is outside 1..9999.
	ErrInvalidFiscalYear = errors.New("invalid fiscal year: must be between 1 and 9999")

	// ErrInvalidReferenceDate is returned when the reference date is not YYYY-MM-DD.
	ErrInvalidReferenceDate = errors.New("invalid reference date: use YYYY-MM-DD")

	// ErrUnsupportedFormat is returned for an output format other than
	// json, markdown or text.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrConfigNotFound is returned when an explicitly given configuration
	// file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
