package config

import "github.com/ayoisaiah/fast/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnknownPreset = &apperr.Error{
		Message: "unknown preset %q: run 'fast presets' to see the available presets",
	}

	errPresetAndHours = &apperr.Error{
		Message: "--preset and --hours cannot be used together",
	}

	errInvalidHours = &apperr.Error{
		Message: "invalid --hours value",
	}

	errInvalidSince = &apperr.Error{
		Message: "invalid --since value",
	}

	errSinceInFuture = &apperr.Error{
		Message: "a fast cannot start in the future (--since %s)",
	}

	errInvalidColor = &apperr.Error{
		Message: "accent color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidWeeklyGoal = &apperr.Error{
		Message: "weekly goal must be between 1 and %d days, got %d",
	}

	errInvalidVolume = &apperr.Error{
		Message: "sound volume must be between %d and %d, got %d",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time must be earlier than the end time",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period",
	}

	errInvalidStartDate = &apperr.Error{
		Message: "please provide a valid start date",
	}
)
