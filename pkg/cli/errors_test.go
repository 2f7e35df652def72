package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("max_age", "must be a positive integer")
	if !strings.Contains(err.Error(), "max_age") {
		t.Errorf("Error() = %q, want it to name the field", err.Error())
	}
	if !strings.Contains(err.Error(), "must be a positive integer") {
		t.Errorf("Error() = %q, want it to contain the message", err.Error())
	}
}

func TestConfigErrorWithoutField(t *testing.T) {
	err := NewConfigError("", "failed to load config")
	if strings.Contains(err.Error(), "in :") {
		t.Errorf("Error() = %q, field separator should be omitted", err.Error())
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("file not found")
	err := NewCommandError("check", inner)

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
	if !strings.Contains(err.Error(), "check") {
		t.Errorf("Error() = %q, want it to name the command", err.Error())
	}
}
