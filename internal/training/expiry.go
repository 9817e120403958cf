package training

import (
	"fmt"
	"time"

	"github.com/nao1215/trainingaudit/internal/model"
)

// SoonDays is how many days past the reference date a training still counts
// as expiring soon.
const SoonDays = 30

// soonCutoff returns ref plus SoonDays calendar days.
func soonCutoff(ref time.Time) time.Time {
	return ref.AddDate(0, 0, SoonDays)
}

// Classify returns the status of a training expiring on expires, as seen on
// ref. The second result is false when the training is neither expired nor
// expiring within 30 days.
func Classify(expires, ref time.Time) (model.ExpirationStatus, bool) {
	switch {
	case expires.Before(ref):
		return model.StatusExpired, true
	case !expires.After(soonCutoff(ref)):
		return model.StatusExpiresSoon, true
	default:
		return "", false
	}
}

// FindExpiring parses referenceDate (YYYY-MM-DD) and calls FindExpiringAt.
func FindExpiring(people []model.Person, referenceDate string) ([]model.ExpiringTraining, error) {
	ref, err := model.ParseReferenceDate(referenceDate)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidReferenceDate, referenceDate, err)
	}
	return FindExpiringAt(people, ref)
}

// FindExpiringAt lists the latest completions that are expired, or expire
// within 30 days (inclusive), as of ref. Completions that never expire are
// skipped.
func FindExpiringAt(people []model.Person, ref time.Time) ([]model.ExpiringTraining, error) {
	ledger, err := Deduplicate(people)
	if err != nil {
		return nil, err
	}

	result := make([]model.ExpiringTraining, 0)
	for _, e := range ledger.Entries() {
		if e.Expires == "" {
			continue
		}

		expires, err := model.ParseCompletionDate(e.Expires)
		if err != nil {
			return nil, fmt.Errorf("%w: %q training %q expires %q: %w", ErrInvalidDate, e.Person, e.Training, e.Expires, err)
		}

		status, ok := Classify(expires, ref)
		if !ok {
			continue
		}
		result = append(result, model.ExpiringTraining{
			Name:           e.Person,
			Training:       e.Training,
			ExpirationDate: e.Expires,
			Status:         status,
		})
	}

	return result, nil
}
