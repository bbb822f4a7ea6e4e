package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/ayoisaiah/fast/internal/fasting"
	"github.com/ayoisaiah/fast/internal/timeutil"
	"github.com/ayoisaiah/fast/store"
)

// Status represents the status of a running fast.
type Status struct {
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Preset      string    `json:"preset"`
	Tags        []string  `json:"tags"`
	TargetHours float64   `json:"target_hours"`
}

// Elapsed reports how long the fast has been running at now, capped at the
// target.
func (s *Status) Elapsed(now time.Time) int64 {
	elapsed := int64(now.Sub(s.StartTime).Seconds())

	target := int64(s.TargetHours * 3600)
	if elapsed > target {
		elapsed = target
	}

	return max(elapsed, 0)
}

// String describes the fast at now in a single line.
func (s *Status) String(now time.Time) string {
	elapsed := s.Elapsed(now)
	c := fasting.Classify(elapsed)

	text := fmt.Sprintf(
		"[%s] %s / %s: %s",
		s.Preset,
		timeutil.Clock(elapsed),
		timeutil.Hours(s.EndTime.Sub(s.StartTime)),
		c.Current.Name,
	)

	if c.Next != c.Current {
		text += fmt.Sprintf(
			" (%s in %s)",
			c.Next.Name,
			timeutil.Clock(c.SecondsToNext),
		)
	}

	return text
}

func (t *Timer) writeStatusFile() error {
	if t.statusPath == "" {
		return nil
	}

	s := Status{
		StartTime:   t.snap.StartedAt,
		EndTime:     t.snap.EndTime(),
		Preset:      t.preset,
		Tags:        t.Opts.Tags(),
		TargetHours: t.snap.TargetHours,
	}

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(t.statusPath, b, 0o600)
}

// ReportStatus prints the status of the fast being timed by another
// instance, if there is one.
func ReportStatus(w io.Writer, dbPath, statusPath string) error {
	return reportStatus(w, dbPath, statusPath, time.Now())
}

func reportStatus(w io.Writer, dbPath, statusPath string, now time.Time) error {
	running, err := store.Locked(dbPath)
	if err != nil {
		return errReadStatus.Wrap(err)
	}

	// fast is not running, so no status to report
	if !running {
		return nil
	}

	fileBytes, err := os.ReadFile(statusPath)
	if err != nil {
		// the timer is open but no fast is in progress
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return errReadStatus.Wrap(err)
	}

	var s Status

	err = json.Unmarshal(fileBytes, &s)
	if err != nil {
		return errReadStatus.Wrap(err)
	}

	_, err = fmt.Fprintln(w, s.String(now))

	return err
}
