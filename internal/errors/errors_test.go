package errors

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format(fmt.Errorf("storage unreachable")); got != "Error: storage unreachable" {
		t.Errorf("Format = %q", got)
	}
}
