// Package database provides SQLite-based roster storage for trainingaudit.
//
// A roster database holds the same data as a JSON roster file: people and
// their training completions, in the order they were imported. It is an
// input source only; reports are never written back to it.
//
// Design decision: We use SQLite (via modernc.org/sqlite) because:
// 1. The database is a single file that can be shared like a roster file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Large rosters can be maintained with ordinary SQL tooling
package database
