package fasting

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinCustomHours is the shortest fast that can be typed in.
	MinCustomHours = 16
	// MaxCustomHours is the longest fast that can be typed in (one week).
	MaxCustomHours = 168
)

// CustomDurationHint is shown to the user when custom input is rejected.
const CustomDurationHint = "Please enter a duration between 16 hours and 1 week (168 hours)"

// ErrInvalidCustomDuration matches every rejection from ParseCustomHours.
var ErrInvalidCustomDuration = errors.New("invalid custom duration")

// Reason names why a custom duration was rejected.
type Reason int

const (
	ReasonUnparsable Reason = iota + 1
	ReasonTooShort
	ReasonTooLong
)

func (r Reason) String() string {
	switch r {
	case ReasonUnparsable:
		return "does not start with a number of hours"
	case ReasonTooShort:
		return fmt.Sprintf("shorter than %d hours", MinCustomHours)
	case ReasonTooLong:
		return fmt.Sprintf("longer than %d hours", MaxCustomHours)
	}

	return "unknown"
}

// CustomDurationError is returned for custom duration input that cannot be
// used to start a fast.
type CustomDurationError struct {
	Input  string
	Reason Reason
}

func (e *CustomDurationError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrInvalidCustomDuration, e.Input, e.Reason)
}

func (e *CustomDurationError) Is(target error) bool {
	return target == ErrInvalidCustomDuration
}

// ParseCustomHours validates free-form duration input. The hours are read
// from the leading base-10 integer of the trimmed input, so "20h" and "16.5"
// give 20 and 16. They must fall within [MinCustomHours, MaxCustomHours].
func ParseCustomHours(input string) (int, error) {
	s := strings.TrimSpace(input)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digitsAt := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digitsAt {
		return 0, &CustomDurationError{Input: input, Reason: ReasonUnparsable}
	}

	hours, err := strconv.Atoi(s[:end])
	if err != nil {
		// only overflow is possible here
		hours = MaxCustomHours + 1
		if s[0] == '-' {
			hours = MinCustomHours - 1
		}
	}

	switch {
	case hours < MinCustomHours:
		return 0, &CustomDurationError{Input: input, Reason: ReasonTooShort}
	case hours > MaxCustomHours:
		return 0, &CustomDurationError{Input: input, Reason: ReasonTooLong}
	}

	return hours, nil
}
