package stats

import (
	"time"

	"github.com/ayoisaiah/fast/internal/fasting"
	"github.com/ayoisaiah/fast/internal/models"
	"github.com/ayoisaiah/fast/internal/timeutil"
)

const (
	extendedFast    = 24 * time.Hour
	streakMilestone = 7
	autophagy       = "Autophagy"
)

// Achievement is a milestone reached over the whole fasting history.
type Achievement struct {
	UnlockedAt  time.Time
	Name        string
	Description string
}

// Unlocked reports whether the milestone has been reached.
func (a Achievement) Unlocked() bool {
	return !a.UnlockedAt.IsZero()
}

// unlock records t if it is earlier than the current unlock time.
func (a *Achievement) unlock(t time.Time) {
	if !a.Unlocked() || t.Before(a.UnlockedAt) {
		a.UnlockedAt = t
	}
}

// Goal is the progress towards completing a fast on a number of days in the
// current week.
type Goal struct {
	WeekStart time.Time
	Days      int
	Target    int
}

// Percent is the share of the target reached, capped at 100.
func (g *Goal) Percent() float64 {
	if g.Target <= 0 {
		return 0
	}

	return min(float64(g.Days)/float64(g.Target)*100, 100)
}

// completedDays maps each day on which a fast was completed to the earliest
// completion that day.
func completedDays(fasts []*models.Fast, loc *time.Location) map[time.Time]time.Time {
	days := make(map[time.Time]time.Time)

	for _, f := range fasts {
		if !f.Completed {
			continue
		}

		end := f.EndTime.In(loc)
		day := timeutil.RoundToStart(end)

		if first, ok := days[day]; !ok || end.Before(first) {
			days[day] = end
		}
	}

	return days
}

// Achievements reports the milestones reached in fasts. Days are counted in
// the location of now.
func Achievements(fasts []*models.Fast, now time.Time) []Achievement {
	fasts = validFasts(fasts)

	first := Achievement{
		Name:        "First 24h Fast",
		Description: "Complete a fast of 24 hours or more",
	}

	run7 := Achievement{
		Name:        "7-Day Streak",
		Description: "Complete a fast on 7 consecutive days",
	}

	master := Achievement{
		Name:        "Autophagy Master",
		Description: "Reach the autophagy state",
	}

	state, _ := fasting.StateByName(autophagy)
	reachedAfter := time.Duration(state.StartHour * float64(time.Hour))

	for _, f := range fasts {
		if f.Completed && f.Duration() >= extendedFast {
			first.unlock(f.EndTime.In(now.Location()))
		}

		if f.MaxState == autophagy || fasting.Deeper(f.MaxState, autophagy) {
			master.unlock(f.StartTime.Add(reachedAfter).In(now.Location()))
		}
	}

	days := completedDays(fasts, now.Location())

	for day, end := range days {
		run := 1

		for d := day.AddDate(0, 0, -1); run < streakMilestone; d = d.AddDate(0, 0, -1) {
			if _, ok := days[d]; !ok {
				break
			}

			run++
		}

		if run == streakMilestone {
			run7.unlock(end)
		}
	}

	return []Achievement{first, run7, master}
}

// WeeklyGoal counts the days since the start of the week containing now on
// which a fast was completed. Weeks start on Monday.
func WeeklyGoal(fasts []*models.Fast, target int, now time.Time) Goal {
	today := timeutil.RoundToStart(now)
	offset := (int(today.Weekday()) + 6) % 7

	g := Goal{
		WeekStart: today.AddDate(0, 0, -offset),
		Target:    target,
	}

	for day := range completedDays(validFasts(fasts), now.Location()) {
		if !day.Before(g.WeekStart) && !day.After(today) {
			g.Days++
		}
	}

	return g
}

// Track adds the achievements and the weekly goal, which are computed from the
// whole history rather than the reporting period.
func (s *Summary) Track(history []*models.Fast, weeklyGoal int, now time.Time) {
	s.Achievements = Achievements(history, now)
	goal := WeeklyGoal(history, weeklyGoal, now)
	s.Goal = &goal
}
