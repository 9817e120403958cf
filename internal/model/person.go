package model

// Person is a member of staff as found in the roster.
// Name is the join key across reports; it is not guaranteed to be globally
// unique, but two records with the same name are treated as the same person.
type Person struct {
	// Name identifies the person. Required.
	Name string `json:"name" yaml:"name"`

	// Completions lists every recorded completion, in roster order.
	// A missing list is treated as empty.
	Completions []Completion `json:"completions,omitempty" yaml:"completions,omitempty"`
}

// Completion is a single completion of a training by a person.
type Completion struct {
	// Name is the training title. Required.
	Name string `json:"name" yaml:"name"`

	// Timestamp is the completion date in MM/DD/YYYY form.
	Timestamp string `json:"timestamp" yaml:"timestamp"`

	// Expires is the expiration date in MM/DD/YYYY form.
	// nil (or an empty string) means the training does not expire.
	Expires *string `json:"expires" yaml:"expires"`
}

// ExpiresText returns the raw expiration text, or "" when the completion
// does not expire.
func (c Completion) ExpiresText() string {
	if c.Expires == nil {
		return ""
	}
	return *c.Expires
}

// TotalCompletions returns the number of raw completion records across people.
func TotalCompletions(people []Person) int {
	total := 0
	for _, p := range people {
		total += len(p.Completions)
	}
	return total
}
