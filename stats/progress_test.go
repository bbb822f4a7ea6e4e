package stats

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/fast/internal/models"
)

// daily returns completed 16 hour fasts that start at 18:00 on each of the
// given days of January 2024.
func daily(days ...int) []*models.Fast {
	fasts := make([]*models.Fast, 0, len(days))
	for _, d := range days {
		fasts = append(fasts, fast(date(d, 18), 16, true, "Ketosis"))
	}

	return fasts
}

func byName(t *testing.T, achievements []Achievement, name string) Achievement {
	t.Helper()

	for _, a := range achievements {
		if a.Name == name {
			return a
		}
	}

	t.Fatalf("no achievement named %q", name)

	return Achievement{}
}

func TestAchievements(t *testing.T) {
	got := Achievements(testFasts(), now)
	require.Len(t, got, 3)

	first := byName(t, got, "First 24h Fast")
	assert.True(t, first.Unlocked())
	assert.Equal(t, date(13, 20), first.UnlockedAt)

	master := byName(t, got, "Autophagy Master")
	assert.True(t, master.Unlocked())
	assert.Equal(t, date(13, 8), master.UnlockedAt)

	seven := byName(t, got, "7-Day Streak")
	assert.False(t, seven.Unlocked())
}

func TestAchievementsIgnoreIncompleteExtendedFasts(t *testing.T) {
	got := Achievements([]*models.Fast{
		fast(date(10, 8), 30, false, "Autophagy"),
		fast(date(12, 8), 20, true, "Deep Ketosis"),
	}, now)

	assert.False(t, byName(t, got, "First 24h Fast").Unlocked())

	// reaching the state counts even if the fast was stopped
	assert.Equal(t, date(11, 8), byName(t, got, "Autophagy Master").UnlockedAt)
}

func TestAchievementsDeeperStateCounts(t *testing.T) {
	got := Achievements([]*models.Fast{
		fast(date(1, 8), 80, false, "Deep Autophagy"),
	}, now)

	assert.Equal(t, date(2, 8), byName(t, got, "Autophagy Master").UnlockedAt)
}

func TestStreakAchievement(t *testing.T) {
	cases := []struct {
		name  string
		fasts []*models.Fast
		want  time.Time
	}{
		{"seven days", daily(2, 3, 4, 5, 6, 7, 8), date(9, 10)},
		{"first time seven days were reached", daily(2, 3, 4, 5, 6, 7, 8, 9, 10), date(9, 10)},
		{"broken run", daily(2, 3, 4, 5, 6, 8, 9, 10, 11, 12), time.Time{}},
		{"six days", daily(2, 3, 4, 5, 6, 7), time.Time{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := byName(t, Achievements(tc.fasts, now), "7-Day Streak")
			assert.Equal(t, tc.want, a.UnlockedAt)
		})
	}
}

func TestWeeklyGoal(t *testing.T) {
	cases := []struct {
		name    string
		fasts   []*models.Fast
		target  int
		days    int
		percent float64
	}{
		{"this week only", testFasts(), 5, 2, 40},
		{"last week is ignored", daily(8, 9, 10, 11, 12), 5, 0, 0},
		{"several fasts on one day", append(daily(15), fast(date(16, 0), 16, true, "Ketosis")), 7, 1, 100.0 / 7},
		{"goal exceeded", daily(14, 15, 16), 1, 3, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := WeeklyGoal(tc.fasts, tc.target, now)

			assert.Equal(t, date(15, 0), g.WeekStart)
			assert.Equal(t, tc.days, g.Days)
			assert.InDelta(t, tc.percent, g.Percent(), 1e-9)
		})
	}
}

func TestWeeklyGoalOnSunday(t *testing.T) {
	sunday := date(21, 12)

	g := WeeklyGoal(daily(13, 20), 7, sunday)

	assert.Equal(t, date(15, 0), g.WeekStart)
	assert.Equal(t, 1, g.Days)
}

func TestRenderProgress(t *testing.T) {
	s := Compute(testFasts(), date(10, 0), date(17, 23), now)
	s.Track(testFasts(), 5, now)

	var buf bytes.Buffer

	s.Render(&buf)

	out := buf.String()

	for _, want := range []string{
		"Weekly goal",
		"2/5 days (40%)",
		"Achievements",
		"First 24h Fast: January 13, 2024",
		"7-Day Streak: locked",
		"Autophagy Master: January 13, 2024",
	} {
		assert.Contains(t, out, want)
	}
}

func TestProgressToJSON(t *testing.T) {
	s := Compute(testFasts(), date(10, 0), date(17, 23), now)
	s.Track(testFasts(), 5, now)

	b, err := s.ToJSON()
	require.NoError(t, err)

	var got struct {
		WeeklyGoal struct {
			Days    int     `json:"days"`
			Target  int     `json:"target"`
			Percent float64 `json:"percent"`
		} `json:"weekly_goal"`
		Achievements []map[string]any `json:"achievements"`
	}
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, 2, got.WeeklyGoal.Days)
	assert.Equal(t, 5, got.WeeklyGoal.Target)
	assert.Equal(t, 40.0, got.WeeklyGoal.Percent)

	require.Len(t, got.Achievements, 3)
	assert.Equal(t, true, got.Achievements[0]["unlocked"])
	assert.Contains(t, got.Achievements[0], "unlocked_at")
	assert.Equal(t, false, got.Achievements[1]["unlocked"])
	assert.NotContains(t, got.Achievements[1], "unlocked_at")
}

func TestSummaryWithoutProgress(t *testing.T) {
	b, err := Compute(testFasts(), date(10, 0), date(17, 23), now).ToJSON()
	require.NoError(t, err)

	assert.NotContains(t, string(b), "weekly_goal")
	assert.NotContains(t, string(b), "achievements")
}
