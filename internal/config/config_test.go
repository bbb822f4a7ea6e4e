package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/fast/internal/fasting"
	"github.com/ayoisaiah/fast/internal/testutil"
	"github.com/ayoisaiah/fast/internal/timeutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *Config {
	return &Config{
		Fast: FastConfig{
			DefaultPreset: "16:8",
			Tags:          []string{},
			WeeklyGoal:    7,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  50,
		},
		Display: DisplayConfig{
			AccentColor: "#60A5FA",
			DarkTheme:   true,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Empty(t, cfg.Fast.Tags)
	cfg.Fast.Tags = []string{}

	assert.Equal(t, defaultConfig(), cfg)
	assert.FileExists(t, configPath)

	// the written file loads back to the same values
	again, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Empty(t, again.Fast.Tags)
	again.Fast.Tags = []string{}

	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(t, testutil.CopyFile("testdata/modified_config.yml", configPath))

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	want := &Config{
		Fast: FastConfig{
			DefaultPreset: "omad",
			Tags:          []string{"daily"},
			WeeklyGoal:    5,
		},
		Notifications: NotificationConfig{
			Enabled: false,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  80,
		},
		Display: DisplayConfig{
			AccentColor:    "#F472B6",
			DarkTheme:      false,
			TwentyFourHour: true,
		},
		Settings: SettingsConfig{
			Cmd: "notify-send done",
		},
	}

	assert.Equal(t, want, cfg)
	assert.Equal(t, float64(23), cfg.DefaultPreset().Hours)
	assert.Equal(t, 5, cfg.WeeklyGoal())
}

func TestViperInvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(t, testutil.CopyFile("testdata/invalid_preset.yml", configPath))

	_, err := New(WithViperConfig(configPath))
	assert.ErrorIs(t, err, errConfigValidation)
	assert.ErrorIs(t, err, errUnknownPreset)
}

func TestPromptValuesAreWritten(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(
		func(c *Config) error {
			applyPromptOptions(c, PromptOptions{
				DefaultPreset: "48h",
				Notifications: false,
				Sound:         true,
			})

			return nil
		},
		WithViperConfig(configPath),
	)
	require.NoError(t, err)
	assert.Equal(t, "48h", cfg.Fast.DefaultPreset)
	assert.False(t, cfg.Notifications.Enabled)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "48h")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{"defaults", func(*Config) {}, nil},
		{"unknown preset", func(c *Config) { c.Fast.DefaultPreset = "10h" }, errUnknownPreset},
		{"volume too loud", func(c *Config) { c.Sound.Volume = 101 }, errInvalidVolume},
		{"bad color", func(c *Config) { c.Display.AccentColor = "blue" }, errInvalidColor},
		{"goal beyond a week", func(c *Config) { c.Fast.WeeklyGoal = 8 }, errInvalidWeeklyGoal},
		{"negative goal", func(c *Config) { c.Fast.WeeklyGoal = -1 }, errInvalidWeeklyGoal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := defaultConfig()
			tc.modify(c)

			err := c.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWeeklyGoalDefaultsToEveryDay(t *testing.T) {
	c := &Config{}
	assert.Equal(t, 7, c.WeeklyGoal())

	c.Fast.WeeklyGoal = 3
	assert.Equal(t, 3, c.WeeklyGoal())
}

func TestApplyCLIOptions(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name    string
		opts    CLIOptions
		want    CLIConfig
		wantErr error
	}{
		{
			name: "preset by key",
			opts: CLIOptions{Preset: "omad"},
			want: CLIConfig{Preset: "OMAD (23:1)", TargetHours: 23},
		},
		{
			name: "custom hours",
			opts: CLIOptions{Hours: "100", Tags: "weekend, extended ,"},
			want: CLIConfig{
				Preset:      "Custom 100h Fast",
				TargetHours: 100,
				Tags:        []string{"weekend", "extended"},
			},
		},
		{
			name:    "custom hours below the minimum",
			opts:    CLIOptions{Hours: "12"},
			wantErr: fasting.ErrInvalidCustomDuration,
		},
		{
			name:    "unknown preset",
			opts:    CLIOptions{Preset: "12:12"},
			wantErr: errUnknownPreset,
		},
		{
			name:    "preset and hours",
			opts:    CLIOptions{Preset: "16:8", Hours: "20"},
			wantErr: errPresetAndHours,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := defaultConfig()

			err := applyCLIOptions(c, tc.opts, now)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, c.CLI)
		})
	}
}

func TestApplyCLIOptionsOverrides(t *testing.T) {
	c := defaultConfig()

	err := applyCLIOptions(c, CLIOptions{
		DisableNotify: true,
		NoSound:       true,
		SessionCmd:    "echo done",
		Since:         "2 hours ago",
	}, time.Now())
	require.NoError(t, err)

	assert.False(t, c.Notifications.Enabled)
	assert.False(t, c.Sound.Enabled)
	assert.Equal(t, "echo done", c.Settings.Cmd)
	assert.WithinDuration(t, time.Now().Add(-2*time.Hour), c.CLI.StartTime, time.Minute)
}

func TestTags(t *testing.T) {
	c := defaultConfig()
	c.Fast.Tags = []string{"daily"}

	assert.Equal(t, []string{"daily"}, c.Tags())

	c.CLI.Tags = []string{"weekend"}
	assert.Equal(t, []string{"weekend"}, c.Tags())
}

func TestFilterPeriod(t *testing.T) {
	now := time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC)

	f, err := newFilter(FilterOptions{Period: "7days", Tags: "daily"}, now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), f.StartTime)
	assert.Equal(t, timeutil.RoundToEnd(now), f.EndTime)
	assert.Equal(t, []string{"daily"}, f.Tags)

	_, err = newFilter(FilterOptions{Period: "fortnight"}, now)
	assert.True(t, errors.Is(err, errInvalidPeriod))

	_, err = newFilter(FilterOptions{}, now)
	assert.ErrorIs(t, err, errInvalidStartDate)
}

func TestFilterFromContext(t *testing.T) {
	set := flag.NewFlagSet("history", flag.ContinueOnError)
	_ = set.String("period", "", "")
	_ = set.String("start", "", "")
	_ = set.String("end", "", "")
	_ = set.String("tag", "", "")

	require.NoError(t, set.Set("tag", "daily,weekend"))

	ctx := cli.NewContext(&cli.App{}, set, nil)

	f, err := Filter(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"daily", "weekend"}, f.Tags)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -6), f.StartTime, 24*time.Hour)
}
