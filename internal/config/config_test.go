package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// writeConfig writes content to a YAML file in a temporary directory and
// returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default Input is trainings.txt", func(t *testing.T) {
		t.Parallel()
		if cfg.Input != "trainings.txt" {
			t.Errorf("expected Input to be 'trainings.txt', got '%s'", cfg.Input)
		}
	})

	t.Run("default Format is json", func(t *testing.T) {
		t.Parallel()
		if cfg.Format != "json" {
			t.Errorf("expected Format to be 'json', got '%s'", cfg.Format)
		}
	})

	t.Run("default FiscalYear is 2024", func(t *testing.T) {
		t.Parallel()
		if cfg.FiscalYear != 2024 {
			t.Errorf("expected FiscalYear to be 2024, got %d", cfg.FiscalYear)
		}
	})

	t.Run("default ReferenceDate is 2023-10-01", func(t *testing.T) {
		t.Parallel()
		if cfg.ReferenceDate != "2023-10-01" {
			t.Errorf("expected ReferenceDate to be '2023-10-01', got '%s'", cfg.ReferenceDate)
		}
	})

	t.Run("default Trainings are the three lab safety courses", func(t *testing.T) {
		t.Parallel()
		want := []string{"Electrical Safety for Labs", "X-Ray Safety", "Laboratory Safety Training"}
		if !slices.Equal(cfg.Trainings, want) {
			t.Errorf("expected Trainings %v, got %v", want, cfg.Trainings)
		}
	})

	t.Run("default config is valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected default config to be valid, got %v", err)
		}
	})
}

// TestDefaultTrainingsIsFresh checks callers cannot alter the defaults.
func TestDefaultTrainingsIsFresh(t *testing.T) {
	t.Parallel()

	a := DefaultTrainings()
	a[0] = "changed"
	if DefaultTrainings()[0] != "Electrical Safety for Labs" {
		t.Error("expected DefaultTrainings to return a new slice")
	}
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{
			name:   "valid config returns nil",
			modify: func(*Config) {},
			want:   nil,
		},
		{
			name:   "empty input",
			modify: func(c *Config) { c.Input = "" },
			want:   ErrNoInput,
		},
		{
			name:   "no trainings",
			modify: func(c *Config) { c.Trainings = nil },
			want:   ErrNoTrainings,
		},
		{
			name:   "only blank trainings",
			modify: func(c *Config) { c.Trainings = []string{""} },
			want:   ErrNoTrainings,
		},
		{
			name:   "fiscal year zero",
			modify: func(c *Config) { c.FiscalYear = 0 },
			want:   ErrInvalidFiscalYear,
		},
		{
			name:   "fiscal year too large",
			modify: func(c *Config) { c.FiscalYear = 10000 },
			want:   ErrInvalidFiscalYear,
		},
		{
			name:   "reference date in US layout",
			modify: func(c *Config) { c.ReferenceDate = "10/01/2023" },
			want:   ErrInvalidReferenceDate,
		},
		{
			name:   "unpadded reference date is accepted",
			modify: func(c *Config) { c.ReferenceDate = "2023-9-5" },
			want:   nil,
		},
		{
			name:   "unknown format",
			modify: func(c *Config) { c.Format = "csv" },
			want:   ErrUnsupportedFormat,
		},
		{
			name:   "markdown format",
			modify: func(c *Config) { c.Format = "markdown" },
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("expected nil, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

// TestLoad tests layering of defaults and the configuration file.
func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("file values override defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `input: roster.yaml
output_dir: out
format: markdown
fiscal_year: 2025
reference_date: "2024-03-15"
trainings:
  - X-Ray Safety
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Input != "roster.yaml" {
			t.Errorf("expected input roster.yaml, got %q", cfg.Input)
		}
		if cfg.OutputDir != "out" {
			t.Errorf("expected output_dir out, got %q", cfg.OutputDir)
		}
		if cfg.Format != "markdown" {
			t.Errorf("expected format markdown, got %q", cfg.Format)
		}
		if cfg.FiscalYear != 2025 {
			t.Errorf("expected fiscal year 2025, got %d", cfg.FiscalYear)
		}
		if cfg.ReferenceDate != "2024-03-15" {
			t.Errorf("expected reference date 2024-03-15, got %q", cfg.ReferenceDate)
		}
		if !slices.Equal(cfg.Trainings, []string{"X-Ray Safety"}) {
			t.Errorf("expected trainings to be replaced, got %v", cfg.Trainings)
		}
		if cfg.ConfigFilePath != path {
			t.Errorf("expected ConfigFilePath %q, got %q", path, cfg.ConfigFilePath)
		}
	})

	t.Run("keys missing from file keep defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "fiscal_year: 2023\n")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Input != DefaultInput {
			t.Errorf("expected default input, got %q", cfg.Input)
		}
		if !slices.Equal(cfg.Trainings, DefaultTrainings()) {
			t.Errorf("expected default trainings, got %v", cfg.Trainings)
		}
	})

	t.Run("missing explicit file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns error", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `invalid: yaml: content: [}`)
		if _, err := Load(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestLoadEnv tests that TRAININGAUDIT_* variables override the file.
// It cannot run in parallel because it sets environment variables.
func TestLoadEnv(t *testing.T) {
	path := writeConfig(t, `fiscal_year: 2025
format: text
compact: false
`)

	t.Setenv("TRAININGAUDIT_FISCAL_YEAR", "2026")
	t.Setenv("TRAININGAUDIT_OUTPUT_DIR", "reports")
	t.Setenv("TRAININGAUDIT_TRAININGS", "X-Ray Safety, Laboratory Safety Training,")
	t.Setenv("TRAININGAUDIT_VERBOSE", "true")
	t.Setenv("TRAININGAUDIT_COMPACT", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FiscalYear != 2026 {
		t.Errorf("expected env fiscal year 2026, got %d", cfg.FiscalYear)
	}
	if cfg.Format != "text" {
		t.Errorf("expected file format text, got %q", cfg.Format)
	}
	if cfg.OutputDir != "reports" {
		t.Errorf("expected env output dir, got %q", cfg.OutputDir)
	}
	want := []string{"X-Ray Safety", "Laboratory Safety Training"}
	if !slices.Equal(cfg.Trainings, want) {
		t.Errorf("expected trainings %v, got %v", want, cfg.Trainings)
	}
	if !cfg.Verbose {
		t.Error("expected verbose from env")
	}
	if !cfg.Compact {
		t.Error("expected compact from env")
	}
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()

		configPath := writeConfig(t, "format: json\n")
		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		t.Parallel()

		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})
}

// TestXDGConfigFile tests the XDG config path helpers.
func TestXDGConfigFile(t *testing.T) {
	t.Parallel()

	if XDGConfigDir() == "" {
		t.Error("expected non-empty XDG config dir")
	}
	if filepath.Base(XDGConfigFile()) != XDGConfigFileName {
		t.Errorf("unexpected XDG config file %q", XDGConfigFile())
	}
	if filepath.Base(filepath.Dir(XDGConfigFile())) != AppName {
		t.Errorf("expected XDG config file under %s, got %q", AppName, XDGConfigFile())
	}
}

// TestSplitList tests comma-separated list parsing.
func TestSplitList(t *testing.T) {
	t.Parallel()

	got := splitList(" a ,b,, c ")
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("unexpected split: %v", got)
	}
	if got := splitList(""); len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
}
