package model

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func strPtr(s string) *string { return &s }

// TestCompletionExpiry tests ExpiresText on Completion.
func TestCompletionExpiry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expires  *string
		wantText string
	}{
		{name: "nil expires", expires: nil, wantText: ""},
		{name: "empty expires", expires: strPtr(""), wantText: ""},
		{name: "dated expires", expires: strPtr("10/15/2023"), wantText: "10/15/2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := Completion{Name: "CPR", Timestamp: "01/01/2023", Expires: tt.expires}
			if got := c.ExpiresText(); got != tt.wantText {
				t.Errorf("ExpiresText() = %q, want %q", got, tt.wantText)
			}
		})
	}
}

// TestPersonDecoding tests that roster records decode from JSON and YAML
// with optional fields treated as absent.
func TestPersonDecoding(t *testing.T) {
	t.Parallel()

	t.Run("json with null expires and missing completions", func(t *testing.T) {
		t.Parallel()

		data := `[
			{"name": "Alice", "completions": [{"name": "CPR", "timestamp": "01/01/2023", "expires": null}]},
			{"name": "Bob"}
		]`

		var people []Person
		if err := json.Unmarshal([]byte(data), &people); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(people) != 2 {
			t.Fatalf("expected 2 people, got %d", len(people))
		}
		if people[0].Completions[0].Expires != nil {
			t.Error("expected nil expires for JSON null")
		}
		if len(people[1].Completions) != 0 {
			t.Errorf("expected no completions, got %d", len(people[1].Completions))
		}
	})

	t.Run("yaml with expires", func(t *testing.T) {
		t.Parallel()

		data := `
- name: Alice
  completions:
    - name: CPR
      timestamp: 01/01/2023
      expires: 01/01/2024
`
		var people []Person
		if err := yaml.Unmarshal([]byte(data), &people); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := people[0].Completions[0].ExpiresText(); got != "01/01/2024" {
			t.Errorf("expected expires 01/01/2024, got %q", got)
		}
	})
}

// TestTotalCompletions tests counting raw completion records.
func TestTotalCompletions(t *testing.T) {
	t.Parallel()

	people := []Person{
		{Name: "Alice", Completions: []Completion{{Name: "CPR"}, {Name: "CPR"}}},
		{Name: "Bob"},
		{Name: "Carol", Completions: []Completion{{Name: "X-Ray Safety"}}},
	}

	if got := TotalCompletions(people); got != 3 {
		t.Errorf("expected 3 completions, got %d", got)
	}
	if got := TotalCompletions(nil); got != 0 {
		t.Errorf("expected 0 completions for nil roster, got %d", got)
	}
}
