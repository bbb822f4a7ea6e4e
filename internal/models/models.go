// Package models defines the records kept in the fasting history
package models

import "time"

// Fast is a finished fast, completed or stopped early.
type Fast struct {
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Preset         string    `json:"preset"`
	MaxState       string    `json:"max_state"`
	Tags           []string  `json:"tags"`
	TargetHours    float64   `json:"target_hours"`
	ElapsedSeconds int64     `json:"elapsed_seconds"`
	Completed      bool      `json:"completed"`
}

// Duration is the time fasted.
func (f *Fast) Duration() time.Duration {
	return time.Duration(f.ElapsedSeconds) * time.Second
}

// Target is the duration the fast aimed for.
func (f *Fast) Target() time.Duration {
	return time.Duration(f.TargetHours * float64(time.Hour))
}
