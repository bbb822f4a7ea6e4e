package stats

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/fast/internal/models"
	"github.com/ayoisaiah/fast/store"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()

	os.Exit(m.Run())
}

func date(day, hour int) time.Time {
	return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
}

func fast(start time.Time, hours int, completed bool, state string, tags ...string) *models.Fast {
	elapsed := int64(hours) * 3600

	return &models.Fast{
		StartTime:      start,
		EndTime:        start.Add(time.Duration(elapsed) * time.Second),
		Preset:         "test",
		MaxState:       state,
		Tags:           tags,
		TargetHours:    float64(hours),
		ElapsedSeconds: elapsed,
		Completed:      completed,
	}
}

func testFasts() []*models.Fast {
	return []*models.Fast{
		fast(date(12, 8), 36, true, "Autophagy", "extended", "2day"),
		fast(date(14, 20), 16, true, "Ketosis", "daily"),
		fast(date(15, 20), 16, true, "Ketosis", "daily"),
		fast(date(16, 20), 10, false, "Catabolic State"),
	}
}

var now = date(17, 10)

func TestCompute(t *testing.T) {
	s := Compute(testFasts(), date(10, 0), date(17, 23), now)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 3, s.Completed)
	assert.Equal(t, 1, s.Incomplete)
	assert.InDelta(t, 75.0, s.SuccessRate(), 1e-9)
	assert.Equal(t, 78*time.Hour, s.TotalTime)
	assert.Equal(t, 19*time.Hour+30*time.Minute, s.AverageTime())
	assert.Equal(t, 36*time.Hour, s.LongestTime)
	assert.Equal(t, 2, s.Streak)

	assert.Equal(t, map[string]int{
		"Fed State":       0,
		"Catabolic State": 1,
		"Ketosis":         2,
		"Deep Ketosis":    0,
		"Autophagy":       1,
		"Deep Autophagy":  0,
	}, s.States)

	assert.Equal(t, []string{"2day", "daily", "extended", "untagged"}, s.TagNames())
	assert.Equal(t, 32*time.Hour, s.Tags["daily"])
	assert.Equal(t, 10*time.Hour, s.Tags[untagged])

	assert.Equal(t, map[time.Weekday]time.Duration{
		time.Friday:    16 * time.Hour,
		time.Saturday:  20 * time.Hour,
		time.Sunday:    4 * time.Hour,
		time.Monday:    16 * time.Hour,
		time.Tuesday:   16 * time.Hour,
		time.Wednesday: 6 * time.Hour,
	}, s.Weekdays)
}

func TestComputeClipsWeekdaysToPeriod(t *testing.T) {
	s := Compute(testFasts(), date(13, 0), date(17, 23), now)

	assert.Equal(t, time.Duration(0), s.Weekdays[time.Friday])
	assert.Equal(t, 20*time.Hour, s.Weekdays[time.Saturday])
}

func TestComputeAllTime(t *testing.T) {
	s := Compute(testFasts(), time.Time{}, date(17, 23), now)

	assert.Equal(t, date(12, 0), s.StartTime)
}

func TestComputeIgnoresInvalidFasts(t *testing.T) {
	broken := fast(date(14, 20), 16, true, "Ketosis")
	broken.EndTime = time.Time{}

	s := Compute([]*models.Fast{broken}, date(10, 0), date(17, 23), now)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0.0, s.SuccessRate())
	assert.Equal(t, time.Duration(0), s.AverageTime())
}

func TestStreak(t *testing.T) {
	cases := []struct {
		name  string
		fasts []*models.Fast
		want  int
	}{
		{"no fasts", nil, 0},
		{
			"ending today",
			[]*models.Fast{
				fast(date(15, 18), 16, true, "Ketosis"),
				fast(date(16, 18), 16, true, "Ketosis"),
			},
			2,
		},
		{
			"broken by a stopped fast",
			[]*models.Fast{
				fast(date(14, 18), 16, true, "Ketosis"),
				fast(date(15, 18), 10, false, "Catabolic State"),
				fast(date(16, 18), 16, true, "Ketosis"),
			},
			1,
		},
		{
			"ended two days ago",
			[]*models.Fast{fast(date(14, 18), 16, true, "Ketosis")},
			0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, streak(tc.fasts, now))
		})
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer

	Compute(testFasts(), date(10, 0), date(17, 23), now).Render(&buf)

	out := buf.String()

	for _, want := range []string{
		"Reporting period: January 10, 2024 - January 17, 2024",
		"Fasts: 4",
		"Incomplete: 1",
		"Success rate: 75%",
		"Time fasted: 78h",
		"Average fast: 19.5h",
		"Longest fast: 36h",
		"Current streak: 2 days",
		"Ketosis: 2",
		"daily: 32h",
		"Weekly breakdown (hours)",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer

	Compute(nil, date(10, 0), date(17, 23), now).Render(&buf)

	assert.Equal(t, noFastsMsg+"\n", buf.String())
}

func TestToJSON(t *testing.T) {
	b, err := Compute(testFasts(), date(10, 0), date(17, 23), now).ToJSON()
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, 78.0, got["total_hours"])
	assert.Equal(t, 19.5, got["average_hours"])
	assert.Equal(t, 75.0, got["success_rate"])
	assert.Equal(t, 2.0, got["current_streak"])
	assert.Equal(t, 16.0, got["weekdays"].(map[string]any)["Monday"])
}

func TestList(t *testing.T) {
	var buf bytes.Buffer

	List(&buf, testFasts())

	out := buf.String()
	assert.Contains(t, out, "DEEPEST STATE")
	assert.Contains(t, out, "36:00:00")
	assert.Contains(t, out, "stopped")
	assert.Equal(t, 2, strings.Count(out, "daily"))
}

func TestDelete(t *testing.T) {
	db, err := store.NewClient(filepath.Join(t.TempDir(), "fast_test.db"))
	require.NoError(t, err)

	defer db.Close()

	for _, f := range testFasts() {
		require.NoError(t, db.SaveFast(f))
	}

	selected, err := db.GetFasts(date(14, 0), date(17, 23), []string{"daily"})
	require.NoError(t, err)
	require.Len(t, selected, 2)

	var out bytes.Buffer

	deleted, err := Delete(&out, strings.NewReader("n\n"), db, selected)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = Delete(&out, strings.NewReader("y\n"), db, selected)
	require.NoError(t, err)
	assert.True(t, deleted)

	remaining, err := db.GetFasts(time.Time{}, date(17, 23), nil)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}
