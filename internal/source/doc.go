// Package source loads personnel rosters.
//
// A roster is a sequence of people, each with an optional list of training
// completions. Rosters are read from JSON files (the historical input,
// trainings.txt, is JSON despite its extension), YAML files, or a SQLite
// roster database created by "trainingaudit import".
//
// Each Loader opens its source, reads it once and releases it before
// returning. I/O errors are wrapped with %w so callers can inspect the
// underlying cause.
package source
