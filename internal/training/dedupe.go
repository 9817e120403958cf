package training

import (
	"fmt"
	"time"

	"github.com/nao1215/trainingaudit/internal/model"
)

// Key identifies a (person, training) pair.
type Key struct {
	Person   string
	Training string
}

// Entry is the most recent completion of a training by a person.
type Entry struct {
	Key

	// Completed is the latest completion date for the key.
	Completed time.Time

	// Expires is the raw expiration text of that same completion,
	// or "" when it does not expire.
	Expires string
}

// Ledger holds one Entry per Key and remembers the order in which keys were
// first seen. Iteration follows that order so report output is stable.
type Ledger struct {
	order   []Key
	entries map[Key]Entry
}

func newLedger() *Ledger {
	return &Ledger{entries: make(map[Key]Entry)}
}

// Deduplicate reduces the roster to the latest completion per (person, training).
//
// When two completions of the same key share a date, the first one seen is
// kept. A completion whose timestamp cannot be parsed, or a person or
// completion without a name, aborts the whole pass.
func Deduplicate(people []model.Person) (*Ledger, error) {
	ledger := newLedger()

	for i, person := range people {
		if person.Name == "" {
			return nil, fmt.Errorf("%w: person #%d has no name", ErrMissingField, i+1)
		}

		for j, c := range person.Completions {
			if c.Name == "" {
				return nil, fmt.Errorf("%w: completion #%d of %q has no name", ErrMissingField, j+1, person.Name)
			}

			completed, err := model.ParseCompletionDate(c.Timestamp)
			if err != nil {
				return nil, fmt.Errorf("%w: %q completed %q on %q: %w", ErrInvalidDate, person.Name, c.Name, c.Timestamp, err)
			}

			ledger.offer(Entry{
				Key:       Key{Person: person.Name, Training: c.Name},
				Completed: completed,
				Expires:   c.ExpiresText(),
			})
		}
	}

	return ledger, nil
}

// offer records e if its key is new or e is strictly more recent than the
// current entry.
func (l *Ledger) offer(e Entry) {
	current, ok := l.entries[e.Key]
	if !ok {
		l.order = append(l.order, e.Key)
		l.entries[e.Key] = e
		return
	}
	if e.Completed.After(current.Completed) {
		l.entries[e.Key] = e
	}
}

// Entries returns all entries in first-seen order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, 0, len(l.order))
	for _, k := range l.order {
		out = append(out, l.entries[k])
	}
	return out
}
