package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viper keys as they appear in the config file.
const (
	keyDefaultPreset        = "fast.default_preset"
	keyTags                 = "fast.tags"
	keyWeeklyGoal           = "fast.weekly_goal"
	keyNotificationsEnabled = "notifications.enabled"
	keySoundEnabled         = "sound.enabled"
	keySoundVolume          = "sound.volume"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyAccentColor          = "display.accent_color"
	keySessionCmd           = "settings.cmd"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, creating it with default values if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and any values chosen in the
// first-run prompt.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyDefaultPreset, "16:8")
	v.SetDefault(keyTags, []string{})
	v.SetDefault(keyWeeklyGoal, daysInAWeek)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySoundEnabled, true)
	v.SetDefault(keySoundVolume, defaultVolume)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyAccentColor, "#60A5FA")
	v.SetDefault(keySessionCmd, "")

	if c.Fast.DefaultPreset != "" {
		v.Set(keyDefaultPreset, c.Fast.DefaultPreset)
		v.Set(keyNotificationsEnabled, c.Notifications.Enabled)
		v.Set(keySoundEnabled, c.Sound.Enabled)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
