package timer

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/fast/store"
)

var statusStart = time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

func testStatus() *Status {
	return &Status{
		StartTime:   statusStart,
		EndTime:     statusStart.Add(16 * time.Hour),
		Preset:      "16:8 Fast",
		TargetHours: 16,
	}
}

func TestStatusString(t *testing.T) {
	cases := []struct {
		name  string
		after time.Duration
		want  string
	}{
		{
			"catabolic",
			5 * time.Hour,
			"[16:8 Fast] 05:00:00 / 16h: Catabolic State (Ketosis in 07:00:00)",
		},
		{
			"just started",
			0,
			"[16:8 Fast] 00:00:00 / 16h: Fed State (Catabolic State in 04:00:00)",
		},
		{
			"past the target",
			20 * time.Hour,
			"[16:8 Fast] 16:00:00 / 16h: Ketosis (Deep Ketosis in 02:00:00)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, testStatus().String(statusStart.Add(tc.after)))
		})
	}
}

func TestStatusStringTerminalState(t *testing.T) {
	s := &Status{
		StartTime:   statusStart,
		EndTime:     statusStart.Add(168 * time.Hour),
		Preset:      "1 Week Fast",
		TargetHours: 168,
	}

	assert.Equal(
		t,
		"[1 Week Fast] 100:00:00 / 168h: Deep Autophagy",
		s.String(statusStart.Add(100*time.Hour)),
	)
}

func TestReportStatus(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "fast.db")
	statusPath := filepath.Join(dir, "status.json")

	f := newFixture(t, testConfig())
	f.timer.statusPath = statusPath
	f.timer.preset = "16:8 Fast"
	f.timer.snap.StartedAt = statusStart
	f.timer.snap.TargetHours = 16

	require.NoError(t, f.timer.writeStatusFile())

	var buf bytes.Buffer

	// no timer holds the database
	require.NoError(t, reportStatus(&buf, dbPath, statusPath, statusStart))
	assert.Empty(t, buf.String())

	client, err := store.NewClient(dbPath)
	require.NoError(t, err)

	defer client.Close()

	require.NoError(
		t,
		reportStatus(&buf, dbPath, statusPath, statusStart.Add(5*time.Hour)),
	)
	assert.Equal(
		t,
		"[16:8 Fast] 05:00:00 / 16h: Catabolic State (Ketosis in 07:00:00)\n",
		buf.String(),
	)

	// the timer is open between fasts
	buf.Reset()
	f.timer.removeStatusFile()

	require.NoError(t, reportStatus(&buf, dbPath, statusPath, statusStart))
	assert.Empty(t, buf.String())
}
