package config

import "github.com/adipramono/chargelog/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidTimezone = &apperr.Error{
		Message: "timezone must be one of WIB, WITA, or WIT, got %s",
	}

	errInvalidChargeRate = &apperr.Error{
		Message: "minutes_to_full must be a positive number of minutes, got %d",
	}
)
