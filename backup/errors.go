package backup

import "github.com/adipramono/chargelog/internal/apperr"

var (
	// ErrEmptyBackup rejects a backup file with no session rows.
	ErrEmptyBackup = &apperr.Error{
		Message: "backup file is empty or contains no session rows",
	}

	// ErrUnreadableBackup rejects a file that cannot be read as a
	// spreadsheet.
	ErrUnreadableBackup = &apperr.Error{
		Message: "unable to read backup file: make sure it is a valid xlsx file",
	}

	// ErrMissingStartTime rejects the whole file when a row lacks its
	// authoritative start timestamp.
	ErrMissingStartTime = &apperr.Error{
		Message: "row %d is missing a valid Start Time ISO value",
	}
)
