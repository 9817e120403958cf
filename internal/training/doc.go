// Package training builds the training-completion reports.
//
// Every report starts from the same step: Deduplicate reduces the raw roster
// to one Entry per (person, training), keeping only the most recent
// completion. The three generators then work on that ledger:
//   - CountCompletions: how many people completed each training
//   - CompletedInFiscalYear: who completed selected trainings in a fiscal year
//   - FindExpiring: which trainings are expired or expire within 30 days
//
// The generators are pure functions of their input. Each one runs its own
// deduplication pass, so they can be called in any order or concurrently.
package training
