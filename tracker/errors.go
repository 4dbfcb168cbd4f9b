package tracker

import "github.com/adipramono/chargelog/internal/apperr"

var (
	// ErrAlreadyCharging rejects a start while a session is active.
	ErrAlreadyCharging = &apperr.Error{
		Message: "a charging session is already active: end it before starting another",
	}

	// ErrNotCharging rejects an end without an active session.
	ErrNotCharging = &apperr.Error{
		Message: "no active charging session",
	}

	// ErrInvalidStartBattery rejects a start percentage outside [0, 99].
	ErrInvalidStartBattery = &apperr.Error{
		Message: "start battery must be between 0 and 99, got %d",
	}

	// ErrInvalidEndBattery rejects an end percentage outside [0, 100].
	ErrInvalidEndBattery = &apperr.Error{
		Message: "end battery must be between 0 and 100, got %d",
	}

	// ErrNoProgress rejects an end percentage that does not exceed the
	// session's start percentage.
	ErrNoProgress = &apperr.Error{
		Message: "end battery (%d%%) must be greater than start battery (%d%%)",
	}

	// ErrSessionNotFound rejects a delete for an unknown id.
	ErrSessionNotFound = &apperr.Error{
		Message: "no session found with id %s",
	}
)
