package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestFmtKeepsIdentity(t *testing.T) {
	sentinel := &Error{Message: "no session found with id %s"}

	err := sentinel.Fmt("abc123")

	if !errors.Is(err, sentinel) {
		t.Error("formatted error must match its sentinel")
	}

	if got := err.Error(); got != "no session found with id abc123" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrapExposesCause(t *testing.T) {
	sentinel := &Error{Message: "reading config file failed"}
	cause := errors.New("permission denied")

	err := sentinel.Wrap(cause)

	if !errors.Is(err, sentinel) {
		t.Error("wrapped error must match its sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("wrapped error must expose its cause")
	}

	want := "reading config file failed: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWorksWithFmtErrorf(t *testing.T) {
	sentinel := &Error{Message: "location information is unavailable"}

	err := fmt.Errorf("looking up address: %w", sentinel)

	if !errors.Is(err, sentinel) {
		t.Error("sentinel must survive fmt.Errorf wrapping")
	}
}
