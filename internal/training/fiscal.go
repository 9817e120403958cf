package training

import (
	"slices"
	"time"

	"github.com/nao1215/trainingaudit/internal/model"
)

// FiscalYearWindow returns the first and last day of fiscal year y:
// July 1 of y-1 through June 30 of y.
func FiscalYearWindow(y int) (start, end time.Time) {
	return model.Day(y-1, time.July, 1), model.Day(y, time.June, 30)
}

// InFiscalYear reports whether d falls in fiscal year y, both ends included.
func InFiscalYear(d time.Time, y int) bool {
	start, end := FiscalYearWindow(y)
	return !d.Before(start) && !d.After(end)
}

// CompletedInFiscalYear lists, for each of the given trainings, the people
// whose most recent completion of it falls in fiscal year fiscalYear.
// Trainings nobody completed in that window are left out.
func CompletedInFiscalYear(people []model.Person, trainings []string, fiscalYear int) ([]model.FiscalYearTraining, error) {
	ledger, err := Deduplicate(people)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	result := make([]model.FiscalYearTraining, 0)
	for _, e := range ledger.Entries() {
		if !slices.Contains(trainings, e.Training) || !InFiscalYear(e.Completed, fiscalYear) {
			continue
		}

		i, ok := index[e.Training]
		if !ok {
			i = len(result)
			index[e.Training] = i
			result = append(result, model.FiscalYearTraining{Training: e.Training})
		}
		result[i].People = append(result[i].People, e.Person)
	}

	return result, nil
}
