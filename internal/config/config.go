package config

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	"github.com/nao1215/trainingaudit/internal/model"
	"github.com/nao1215/trainingaudit/internal/report"
)

// Default configuration values.
// They reproduce the report run the tool was built for.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "trainingaudit"

	// DefaultInput is the roster file read when none is given.
	// The file holds JSON despite its extension.
	DefaultInput = "trainings.txt"

	// DefaultOutputDir is the directory the reports are written to.
	DefaultOutputDir = "."

	// DefaultFormat is the report encoding.
	DefaultFormat = string(report.FormatJSON)

	// DefaultFiscalYear is the fiscal year of the fiscal-year report.
	DefaultFiscalYear = 2024

	// DefaultReferenceDate is the "today" of the expiration report.
	DefaultReferenceDate = "2023-10-01"
)

// DefaultTrainings returns the trainings selected for the fiscal-year report
// when none are configured. A fresh slice is returned on every call.
func DefaultTrainings() []string {
	return []string{
		"Electrical Safety for Labs",
		"X-Ray Safety",
		"Laboratory Safety Training",
	}
}

// Config holds all options of a report run.
// The koanf tags are the keys used in the YAML file and, upper-cased with the
// TRAININGAUDIT_ prefix, in the environment.
type Config struct {
	// Input is the roster path: JSON (.json, .txt), YAML or a SQLite roster.
	Input string `koanf:"input"`

	// OutputDir is the directory receiving the three report files.
	// It is created when missing.
	OutputDir string `koanf:"output_dir"`

	// Format is the report encoding: json, markdown or text.
	Format string `koanf:"format"`

	// Trainings is the selection for the fiscal-year report.
	Trainings []string `koanf:"trainings"`

	// FiscalYear Y covers July 1 of Y-1 through June 30 of Y.
	FiscalYear int `koanf:"fiscal_year"`

	// ReferenceDate is the YYYY-MM-DD date expirations are measured against.
	ReferenceDate string `koanf:"reference_date"`

	// Compact writes JSON reports without indentation.
	Compact bool `koanf:"compact"`

	// Verbose enables debug logging and unmasks personnel names in logs.
	Verbose bool `koanf:"verbose"`

	// ConfigFilePath is the configuration file the values were read from,
	// empty when only defaults and the environment applied.
	ConfigFilePath string `koanf:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Input:         DefaultInput,
		OutputDir:     DefaultOutputDir,
		Format:        DefaultFormat,
		Trainings:     DefaultTrainings(),
		FiscalYear:    DefaultFiscalYear,
		ReferenceDate: DefaultReferenceDate,
	}
}

// XDGConfigDir returns the XDG config directory for trainingaudit.
// On Linux: ~/.config/trainingaudit
// On macOS: ~/Library/Application Support/trainingaudit
// On Windows: %APPDATA%\trainingaudit
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the path of the configuration file inside the XDG
// config directory.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), XDGConfigFileName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found, wrapping one of the sentinel errors.
func (c *Config) Validate() error {
	if c.Input == "" {
		return ErrNoInput
	}

	if !slices.ContainsFunc(c.Trainings, func(s string) bool { return s != "" }) {
		return ErrNoTrainings
	}

	if c.FiscalYear < 1 || c.FiscalYear > 9999 {
		return fmt.Errorf("%w: %d", ErrInvalidFiscalYear, c.FiscalYear)
	}

	if _, err := model.ParseReferenceDate(c.ReferenceDate); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidReferenceDate, c.ReferenceDate)
	}

	if _, err := c.ReportFormat(); err != nil {
		return err
	}

	return nil
}

// ReportFormat returns Format as a report.Format.
func (c *Config) ReportFormat() (report.Format, error) {
	f, err := report.ParseFormat(c.Format)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}
	return f, nil
}
