package validation

import (
	"testing"

	"github.com/weekendly/weekendly/internal/models"
)

func TestIsValidTime(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"0:00", true},
		{"00:00", true},
		{"9:30", true},
		{"09:30", true},
		{"19:59", true},
		{"23:59", true},
		{"24:00", false},
		{"25:00", false},
		{"12:60", false},
		{"12:5", false},
		{"12", false},
		{"", false},
		{"ab:cd", false},
		{"12:30pm", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidTime(tt.input); got != tt.want {
				t.Errorf("IsValidTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateActivity_AllRulesCollected(t *testing.T) {
	result := ValidateActivity(models.ScheduledActivity{
		Name:     "",
		Time:     "25:00",
		Duration: 0,
	})

	if result.IsValid {
		t.Fatal("expected invalid result")
	}
	// Name, time, duration, mood, and status each fail independently.
	if len(result.Errors) != 5 {
		t.Errorf("got %d errors, want 5: %v", len(result.Errors), result.Errors)
	}
}

func TestValidateActivity_Valid(t *testing.T) {
	result := ValidateActivity(models.ScheduledActivity{
		Name:     "Brunch",
		Time:     "10:00",
		Duration: 120,
		Mood:     models.MoodHappy,
		Status:   models.StatusPending,
	})

	if !result.IsValid {
		t.Fatalf("expected valid result, got errors: %v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Errorf("valid result carries %d errors", len(result.Errors))
	}
}

func TestValidateActivity_SingleFailures(t *testing.T) {
	base := models.ScheduledActivity{
		Name:     "Reading",
		Time:     "15:00",
		Duration: 90,
		Mood:     models.MoodRelaxed,
		Status:   models.StatusPending,
	}

	tests := []struct {
		name    string
		mutate  func(*models.ScheduledActivity)
		wantErr string
	}{
		{"blank name", func(a *models.ScheduledActivity) { a.Name = "   " }, "Activity name is required"},
		{"bad time", func(a *models.ScheduledActivity) { a.Time = "24:30" }, "Valid time is required"},
		{"negative duration", func(a *models.ScheduledActivity) { a.Duration = -10 }, "Valid duration is required"},
		{"missing mood", func(a *models.ScheduledActivity) { a.Mood = "" }, "Mood selection is required"},
		{"missing status", func(a *models.ScheduledActivity) { a.Status = "" }, "Status selection is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := base
			tt.mutate(&a)
			result := ValidateActivity(a)
			if result.IsValid {
				t.Fatal("expected invalid result")
			}
			if len(result.Errors) != 1 || result.Errors[0] != tt.wantErr {
				t.Errorf("got errors %v, want exactly [%q]", result.Errors, tt.wantErr)
			}
		})
	}
}

func TestFormatReport(t *testing.T) {
	ok := Result{IsValid: true}
	if ok.FormatReport() != "No problems detected." {
		t.Errorf("unexpected report for valid result: %q", ok.FormatReport())
	}

	bad := ValidateActivity(models.ScheduledActivity{Name: "x", Time: "10:00", Duration: 30, Mood: models.MoodHappy})
	report := bad.FormatReport()
	if report == "No problems detected." {
		t.Error("invalid result reported as clean")
	}
}
