// Package stats reports fasting statistics
package stats

import (
	"sort"
	"time"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/fast/internal/fasting"
	"github.com/ayoisaiah/fast/internal/models"
	"github.com/ayoisaiah/fast/internal/timeutil"
)

const untagged = "untagged"

// Summary holds the statistics for the fasts in a reporting period.
type Summary struct {
	StartTime    time.Time
	EndTime      time.Time
	States       map[string]int
	Tags         map[string]time.Duration
	Weekdays     map[time.Weekday]time.Duration
	TotalTime    time.Duration
	LongestTime  time.Duration
	Total        int
	Completed    int
	Incomplete   int
	Streak       int
	// Achievements and Goal cover the whole history. They are only set by
	// Track.
	Achievements []Achievement
	Goal         *Goal
}

// SuccessRate is the percentage of fasts that reached their target.
func (s *Summary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}

	return float64(s.Completed) / float64(s.Total) * 100
}

// AverageTime is the mean duration of a fast.
func (s *Summary) AverageTime() time.Duration {
	if s.Total == 0 {
		return 0
	}

	return s.TotalTime / time.Duration(s.Total)
}

// TagNames returns the tags in natural order.
func (s *Summary) TagNames() []string {
	names := make([]string, 0, len(s.Tags))
	for k := range s.Tags {
		names = append(names, k)
	}

	sort.Sort(natural.StringSlice(names))

	return names
}

// validFasts ignores fasts with an invalid end date.
func validFasts(fasts []*models.Fast) []*models.Fast {
	filtered := make([]*models.Fast, 0, len(fasts))

	for _, f := range fasts {
		if f.EndTime.IsZero() || f.EndTime.Before(f.StartTime) {
			continue
		}

		filtered = append(filtered, f)
	}

	return filtered
}

// addWeekdays spreads the time spent fasting in [start, end) over the days of
// the week it covered, within the bounds of the reporting period.
func (s *Summary) addWeekdays(start, end time.Time) {
	if start.Before(s.StartTime) {
		start = s.StartTime
	}

	if end.After(s.EndTime) {
		end = s.EndTime
	}

	for start.Before(end) {
		next := timeutil.RoundToStart(start).AddDate(0, 0, 1)
		if next.After(end) {
			next = end
		}

		s.Weekdays[start.Weekday()] += next.Sub(start)

		start = next
	}
}

// streak counts the consecutive days, ending today or yesterday, on which a
// fast was completed.
func streak(fasts []*models.Fast, now time.Time) int {
	days := make(map[time.Time]bool)

	for _, f := range fasts {
		if f.Completed {
			days[timeutil.RoundToStart(f.EndTime.In(now.Location()))] = true
		}
	}

	day := timeutil.RoundToStart(now)
	if !days[day] {
		day = day.AddDate(0, 0, -1)
	}

	var count int

	for days[day] {
		count++

		day = day.AddDate(0, 0, -1)
	}

	return count
}

// Compute calculates the statistics for the fasts recorded between start and
// end. The streak is counted back from now.
func Compute(fasts []*models.Fast, start, end, now time.Time) *Summary {
	fasts = validFasts(fasts)

	// For all-time, start from the date of the first fast
	if start.IsZero() && len(fasts) > 0 {
		start = timeutil.RoundToStart(fasts[0].StartTime)
	}

	s := &Summary{
		StartTime: start,
		EndTime:   end,
		States:    make(map[string]int),
		Tags:      make(map[string]time.Duration),
		Weekdays:  make(map[time.Weekday]time.Duration),
		Streak:    streak(fasts, now),
	}

	for _, state := range fasting.States {
		s.States[state.Name] = 0
	}

	for _, f := range fasts {
		d := f.Duration()

		s.Total++
		s.TotalTime += d
		s.LongestTime = max(s.LongestTime, d)

		if f.Completed {
			s.Completed++
		} else {
			s.Incomplete++
		}

		if f.MaxState != "" {
			s.States[f.MaxState]++
		}

		for _, tag := range f.Tags {
			s.Tags[tag] += d
		}

		if len(f.Tags) == 0 {
			s.Tags[untagged] += d
		}

		s.addWeekdays(f.StartTime, f.StartTime.Add(d))
	}

	return s
}
