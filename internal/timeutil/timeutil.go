// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// Clock formats a number of seconds as HH:MM:SS. Hours are not wrapped at 24
// and negative values are formatted as zero.
func Clock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}

	h := seconds / secondsInAnHour
	m := (seconds % secondsInAnHour) / secondsInAMinute
	s := seconds % secondsInAMinute

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Hours formats a duration as a short number of hours (e.g. "17.5h").
func Hours(d time.Duration) string {
	h := d.Hours()

	if h == math.Trunc(h) {
		return fmt.Sprintf("%dh", int(h))
	}

	return fmt.Sprintf("%.1fh", h)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// FromStr parses absolute or relative dates such as "2024-01-15 20:00" or
// "3 hours ago".
func FromStr(s string) (time.Time, error) {
	return fromStr(s, time.Now())
}

func fromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime:         now,
		PreferredDateSource: dateparser.Past,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}

// keyLayout is fixed-width so that keys sort in chronological order.
const keyLayout = "2006-01-02T15:04:05.000000000Z"

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
