package training

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/nao1215/trainingaudit/internal/model"
)

// TestFiscalYearWindow tests the fiscal year boundaries.
func TestFiscalYearWindow(t *testing.T) {
	t.Parallel()

	start, end := FiscalYearWindow(2024)
	if !start.Equal(model.Day(2023, time.July, 1)) {
		t.Errorf("expected start 2023-07-01, got %v", start)
	}
	if !end.Equal(model.Day(2024, time.June, 30)) {
		t.Errorf("expected end 2024-06-30, got %v", end)
	}
}

// TestInFiscalYear tests inclusive boundaries.
func TestInFiscalYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "day before window", date: model.Day(2023, time.June, 30), want: false},
		{name: "first day", date: model.Day(2023, time.July, 1), want: true},
		{name: "middle", date: model.Day(2023, time.December, 1), want: true},
		{name: "last day", date: model.Day(2024, time.June, 30), want: true},
		{name: "day after window", date: model.Day(2024, time.July, 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := InFiscalYear(tt.date, 2024); got != tt.want {
				t.Errorf("InFiscalYear(%v, 2024) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

// TestCompletedInFiscalYear tests the fiscal-year report.
func TestCompletedInFiscalYear(t *testing.T) {
	t.Parallel()

	trainings := []string{"Electrical Safety for Labs", "X-Ray Safety", "Laboratory Safety Training"}

	t.Run("filters by training list and window", func(t *testing.T) {
		t.Parallel()

		people := []model.Person{
			{Name: "Bob", Completions: []model.Completion{
				completion("X-Ray Safety", "12/01/2023", nil),
				completion("CPR", "12/01/2023", nil),
			}},
			{Name: "Carol", Completions: []model.Completion{
				completion("X-Ray Safety", "06/30/2023", nil),
				completion("Laboratory Safety Training", "07/01/2023", nil),
			}},
			{Name: "Dave", Completions: []model.Completion{
				completion("X-Ray Safety", "06/30/2024", nil),
			}},
		}

		got, err := CompletedInFiscalYear(people, trainings, 2024)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []model.FiscalYearTraining{
			{Training: "X-Ray Safety", People: []string{"Bob", "Dave"}},
			{Training: "Laboratory Safety Training", People: []string{"Carol"}},
		}
		if len(got) != len(want) {
			t.Fatalf("expected %d rows, got %d: %v", len(want), len(got), got)
		}
		for i := range want {
			if got[i].Training != want[i].Training || !slices.Equal(got[i].People, want[i].People) {
				t.Errorf("row %d: expected %v, got %v", i, want[i], got[i])
			}
		}
	})

	t.Run("uses only the most recent completion", func(t *testing.T) {
		t.Parallel()

		people := []model.Person{
			{Name: "Erin", Completions: []model.Completion{
				completion("X-Ray Safety", "12/01/2023", nil),
				completion("X-Ray Safety", "08/01/2024", nil),
			}},
		}

		got, err := CompletedInFiscalYear(people, trainings, 2024)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no rows since latest completion is outside the window, got %v", got)
		}
	})

	t.Run("trainings with nobody qualifying are omitted", func(t *testing.T) {
		t.Parallel()

		people := []model.Person{
			{Name: "Frank", Completions: []model.Completion{completion("CPR", "12/01/2023", nil)}},
		}

		got, err := CompletedInFiscalYear(people, trainings, 2024)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil report, got %#v", got)
		}
	})

	t.Run("propagates missing field errors", func(t *testing.T) {
		t.Parallel()

		_, err := CompletedInFiscalYear([]model.Person{{Completions: []model.Completion{completion("CPR", "01/01/2024", nil)}}}, trainings, 2024)
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("expected ErrMissingField, got %v", err)
		}
	})
}
