// Package validation checks user-supplied activity data before it reaches
// the scheduling core. Failures are reported as value results, never errors;
// the caller decides whether to block the mutation.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/weekendly/weekendly/internal/models"
)

// Accepts 0:00 through 23:59 with a single- or double-digit hour.
var timeRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidTime reports whether s is a well-formed 24-hour HH:MM time. The
// core time functions assume validated input, so this must be called on any
// user-entered time first.
func IsValidTime(s string) bool {
	return timeRegex.MatchString(s)
}

// Result collects the outcome of validating one activity. Every violated
// rule appears once in Errors; validation never stops at the first failure.
type Result struct {
	IsValid bool
	Errors  []string
}

// FormatReport returns a human-readable summary of the result.
func (r Result) FormatReport() string {
	if r.IsValid {
		return "No problems detected."
	}
	report := "Problems detected:\n"
	for _, e := range r.Errors {
		report += fmt.Sprintf("- %s\n", e)
	}
	return report
}

// ValidateActivity checks an activity against all placement rules: non-empty
// name, valid time, positive duration, and mood and status selections.
func ValidateActivity(a models.ScheduledActivity) Result {
	var errs []string

	if strings.TrimSpace(a.Name) == "" {
		errs = append(errs, "Activity name is required")
	}
	if a.Time == "" || !IsValidTime(a.Time) {
		errs = append(errs, "Valid time is required")
	}
	if a.Duration <= 0 {
		errs = append(errs, "Valid duration is required")
	}
	if a.Mood == "" {
		errs = append(errs, "Mood selection is required")
	}
	if a.Status == "" {
		errs = append(errs, "Status selection is required")
	}

	return Result{IsValid: len(errs) == 0, Errors: errs}
}
