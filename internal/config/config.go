// Package config loads the settings used by the timer and the history
// commands from the config file and the command line
package config

import "time"

type (
	// Config holds all configuration settings
	Config struct {
		CLI           CLIConfig          `mapstructure:"-"`
		Fast          FastConfig         `mapstructure:"fast"`
		Display       DisplayConfig      `mapstructure:"display"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Notifications NotificationConfig `mapstructure:"notifications"`
	}

	// FastConfig holds the defaults for new fasts
	FastConfig struct {
		DefaultPreset string   `mapstructure:"default_preset"`
		Tags          []string `mapstructure:"tags"`
		// WeeklyGoal is the number of days a week on which the user aims
		// to complete a fast
		WeeklyGoal int `mapstructure:"weekly_goal"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SoundConfig holds the settings for the completion chime
	SoundConfig struct {
		Enabled bool `mapstructure:"enabled"`
		Volume  int  `mapstructure:"volume"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		AccentColor    string `mapstructure:"accent_color"`
		DarkTheme      bool   `mapstructure:"dark_theme"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
	}

	// SettingsConfig holds miscellaneous settings
	SettingsConfig struct {
		Cmd string `mapstructure:"cmd"`
	}

	// CLIConfig holds the options that only apply to the current invocation
	CLIConfig struct {
		StartTime   time.Time
		Preset      string
		Tags        []string
		TargetHours float64
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Tags returns the tags to attach to a new fast. Tags from the command line
// replace the configured ones.
func (c *Config) Tags() []string {
	if len(c.CLI.Tags) > 0 {
		return c.CLI.Tags
	}

	return c.Fast.Tags
}
