package model

// ExpirationStatus classifies an expiring training.
type ExpirationStatus string

const (
	// StatusExpired means the expiration date is before the reference date.
	StatusExpired ExpirationStatus = "expired"

	// StatusExpiresSoon means the expiration date is on or after the reference
	// date and no later than the soon cutoff.
	StatusExpiresSoon ExpirationStatus = "expires soon"
)

// String returns the status as written in reports.
func (s ExpirationStatus) String() string {
	return string(s)
}

// TrainingCount is one row of the completion count report.
type TrainingCount struct {
	Training string `json:"training"`
	Count    int    `json:"count"`
}

// FiscalYearTraining is one row of the fiscal-year report: a training and
// the people whose latest completion of it falls in the fiscal year.
type FiscalYearTraining struct {
	Training string   `json:"training"`
	People   []string `json:"people"`
}

// ExpiringTraining is one row of the expiration report.
type ExpiringTraining struct {
	Name     string `json:"name"`
	Training string `json:"training"`

	// ExpirationDate is kept exactly as written in the roster.
	ExpirationDate string           `json:"expiration_date"`
	Status         ExpirationStatus `json:"status"`
}

// CountStatuses tallies expiring rows by status.
func CountStatuses(rows []ExpiringTraining) (expired, soon int) {
	for _, r := range rows {
		switch r.Status {
		case StatusExpired:
			expired++
		case StatusExpiresSoon:
			soon++
		}
	}
	return expired, soon
}
