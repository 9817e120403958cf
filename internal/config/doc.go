// Package config provides the run configuration for trainingaudit.
// Settings are layered from built-in defaults, an optional YAML file and
// TRAININGAUDIT_* environment variables; the CLI applies explicit flags last.
package config
