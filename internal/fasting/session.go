package fasting

import "errors"

// ErrInvalidTarget is returned when a fast is started without a positive
// target duration.
var ErrInvalidTarget = errors.New("target duration must be greater than zero")

// Session tracks the elapsed time of a fast against its target. The zero
// value is an inactive session with nothing elapsed.
type Session struct {
	TargetHours    float64 `json:"target_hours"`
	ElapsedSeconds int64   `json:"elapsed_seconds"`
	Active         bool    `json:"active"`
}

// TargetSeconds is the completion threshold of the session.
func (s *Session) TargetSeconds() int64 {
	return int64(s.TargetHours * secondsInAnHour)
}

// Start begins a new fast lasting targetHours.
func (s *Session) Start(targetHours float64) error {
	if targetHours <= 0 {
		return ErrInvalidTarget
	}

	s.TargetHours = targetHours
	s.ElapsedSeconds = 0
	s.Active = true

	return nil
}

// Resume begins a fast lasting targetHours that has already been running for
// elapsedSeconds. It reports whether the fast is complete already, in which
// case the session is left inactive at the last second before the target.
func (s *Session) Resume(targetHours float64, elapsedSeconds int64) (bool, error) {
	if err := s.Start(targetHours); err != nil {
		return false, err
	}

	if elapsedSeconds <= 0 {
		return false, nil
	}

	if elapsedSeconds >= s.TargetSeconds() {
		s.ElapsedSeconds = max(s.TargetSeconds()-1, 0)
		s.Active = false

		return true, nil
	}

	s.ElapsedSeconds = elapsedSeconds

	return false, nil
}

// Tick advances an active session by one second. When the increment would
// reach the target, the session becomes inactive instead and the elapsed
// time is left as it was. Tick reports whether the fast was completed by this
// call.
func (s *Session) Tick() bool {
	if !s.Active {
		return false
	}

	next := s.ElapsedSeconds + 1

	if next >= s.TargetSeconds() {
		s.Active = false
		return true
	}

	s.ElapsedSeconds = next

	return false
}

// Stop ends the session and clears the elapsed time.
func (s *Session) Stop() {
	s.Active = false
	s.ElapsedSeconds = 0
}

// ProgressFraction returns how much of the target has elapsed, capped at 1.
func (s *Session) ProgressFraction() float64 {
	target := s.TargetSeconds()
	if target <= 0 {
		return 0
	}

	return min(float64(s.ElapsedSeconds)/float64(target), 1)
}

// Classification classifies the current elapsed time.
func (s *Session) Classification() Classification {
	return Classify(s.ElapsedSeconds)
}
