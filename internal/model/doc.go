// Package model defines the core data structures used throughout trainingaudit.
//
// This package contains the following main types:
//   - Person: A member of staff and the trainings they have completed
//   - Completion: One timestamped completion of a training
//   - TrainingCount, FiscalYearTraining, ExpiringTraining: report rows
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The source, training, database and report packages all need
// these types, so centralizing them prevents import cycles.
//
// The models are serializable to JSON and YAML, using the same field names
// as the roster files and the report outputs.
package model
