// Package errors funnels command failures to the terminal. Commands return
// plain errors; main hands them to Fatal so each failure is logged and shown
// to the user exactly once.
package errors

import (
	"fmt"
	"os"

	"github.com/weekendly/weekendly/internal/logger"
)

// Format prefixes the error message for terminal display. A nil error
// formats to the empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs the error and exits with status 1. A nil error is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("command failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}
