// Package main provides the entry point for the trainingaudit CLI.
//
// trainingaudit reads a personnel training roster and writes three reports:
// completion counts per training, completions within a fiscal year, and
// trainings that have expired or expire soon.
//
// Usage:
//
//	trainingaudit report [input]
//	trainingaudit import <input> <db>
//
// See --help for all available options.
package main

// main is the entry point for trainingaudit.
func main() {
	Execute()
}
