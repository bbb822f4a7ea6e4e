package timeutil

import (
	"testing"
	"time"
)

func TestClock(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{14400, "04:00:00"},
		{57599, "15:59:59"},
		{605000, "168:03:20"},
		{-5, "00:00:00"},
	}

	for _, tc := range cases {
		if got := Clock(tc.seconds); got != tc.want {
			t.Errorf("Clock(%d) = %s, want %s", tc.seconds, got, tc.want)
		}
	}
}

func TestHours(t *testing.T) {
	if got := Hours(16 * time.Hour); got != "16h" {
		t.Errorf("expected 16h, got %s", got)
	}

	if got := Hours(17*time.Hour + 30*time.Minute); got != "17.5h" {
		t.Errorf("expected 17.5h, got %s", got)
	}
}

func TestFromStr(t *testing.T) {
	now := time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC)

	got, err := fromStr("3 hours ago", now)
	if err != nil {
		t.Fatal(err)
	}

	if want := now.Add(-3 * time.Hour); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRoundToStartAndEnd(t *testing.T) {
	d := time.Date(2024, 1, 15, 13, 45, 10, 0, time.UTC)

	if got := RoundToStart(d); !got.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start of day: %v", got)
	}

	if got := RoundToEnd(d); !got.Equal(time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("unexpected end of day: %v", got)
	}
}
