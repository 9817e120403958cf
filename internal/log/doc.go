// Package log provides logging with personnel names redacted, built on top
// of the standard slog package.
//
// Roster data names real people. Log output is often attached to tickets or
// shared with other teams, so attributes that carry a person's name are
// masked by default:
//   - person, people, name, trainee and names
//   - any key containing "person" or "people" (e.g. person_name)
//
// Verbose mode lowers the level to Debug and reveals the names, which is
// what an operator wants when tracking down a bad roster entry.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, false)
//	logger.Warn("invalid completion", "person", "Ann Lee", "training", "X-Ray Safety")
//	// person=***REDACTED*** training="X-Ray Safety"
//
//	slog.SetDefault(logger)
package log
