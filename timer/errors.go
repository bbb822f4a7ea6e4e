package timer

import (
	"github.com/ayoisaiah/fast/internal/apperr"
	"github.com/ayoisaiah/fast/internal/fasting"
)

var (
	errCustomDuration = &apperr.Error{
		Message: fasting.CustomDurationHint,
	}

	errUnknownPreset = &apperr.Error{
		Message: "unknown preset %q",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to parse session command",
	}

	errReadStatus = &apperr.Error{
		Message: "unable to read the status of the running fast",
	}
)
