package model

import (
	"time"
)

const (
	// CompletionDateLayout is the layout of completion and expiration dates.
	// Single-digit months and days are accepted as well as zero-padded ones.
	CompletionDateLayout = "1/2/2006"

	// ReferenceDateLayout is the layout of the reference date used by the
	// expiration report. Zero padding is optional.
	ReferenceDateLayout = "2006-1-2"

	// DisplayDateLayout is how dates are rendered in human-readable reports.
	DisplayDateLayout = "01/02/2006"
)

// ParseCompletionDate parses a MM/DD/YYYY date as a UTC calendar day.
func ParseCompletionDate(s string) (time.Time, error) {
	return time.Parse(CompletionDateLayout, s)
}

// ParseReferenceDate parses a YYYY-MM-DD date as a UTC calendar day.
func ParseReferenceDate(s string) (time.Time, error) {
	return time.Parse(ReferenceDateLayout, s)
}

// Day returns midnight UTC of the given calendar day.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
