package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultConfigFile is the configuration file looked up in the
	// current directory.
	DefaultConfigFile = ".trainingaudit.yaml"

	// XDGConfigFileName is the configuration file looked up in the XDG
	// config directory.
	XDGConfigFileName = "config.yaml"

	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "TRAININGAUDIT_"
)

// Load builds a Config by layering defaults, an optional file and env vars.
// Order of precedence (low -> high):
//  1. defaults (NewConfig)
//  2. YAML file found by FindConfigFile(configPath)
//  3. env (prefix TRAININGAUDIT_), e.g. TRAININGAUDIT_FISCAL_YEAR=2025
//
// TRAININGAUDIT_TRAININGS is a comma-separated list. A configPath that does
// not exist yields ErrConfigNotFound; a missing implicit file is not an error.
func Load(configPath string) (*Config, error) {
	base := NewConfig()

	k := koanf.New(".")

	path := FindConfigFile(configPath)
	if configPath != "" && path == "" {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load configuration file %s: %w", path, err)
		}
	}

	// TRAININGAUDIT_OUTPUT_DIR -> output_dir. Underscores are kept so the
	// keys match the koanf tags.
	envProvider := env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, any) {
		key = strings.TrimPrefix(strings.ToLower(key), strings.ToLower(EnvPrefix))
		if key == "trainings" {
			return key, splitList(value)
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	// Unmarshal into a copy. The decoder merges into existing slices, so the
	// default trainings are only restored when no layer set them.
	cfg := *base
	cfg.Trainings = nil
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if !k.Exists("trainings") {
		cfg.Trainings = DefaultTrainings()
	}
	cfg.ConfigFilePath = path

	return &cfg, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .trainingaudit.yaml in the current directory
// 3. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	if _, err := os.Stat(XDGConfigFile()); err == nil {
		return XDGConfigFile()
	}

	return ""
}

// splitList splits a comma-separated value, dropping blank items.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
