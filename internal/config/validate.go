package config

import (
	"regexp"

	"github.com/ayoisaiah/fast/internal/fasting"
)

const (
	minVolume     = 0
	maxVolume     = 100
	defaultVolume = 50
	daysInAWeek   = 7
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Fast.DefaultPreset != "" {
		if _, ok := fasting.LookupPreset(c.Fast.DefaultPreset); !ok {
			return errUnknownPreset.Fmt(c.Fast.DefaultPreset)
		}
	}

	if c.Sound.Volume < minVolume || c.Sound.Volume > maxVolume {
		return errInvalidVolume.Fmt(minVolume, maxVolume, c.Sound.Volume)
	}

	if c.Fast.WeeklyGoal < 0 || c.Fast.WeeklyGoal > daysInAWeek {
		return errInvalidWeeklyGoal.Fmt(daysInAWeek, c.Fast.WeeklyGoal)
	}

	if c.Display.AccentColor != "" &&
		!hexColorRegex.MatchString(c.Display.AccentColor) {
		return errInvalidColor.Fmt(c.Display.AccentColor)
	}

	return nil
}

// DefaultPreset returns the preset used when a fast is started without
// choosing a duration.
func (c *Config) DefaultPreset() fasting.Preset {
	p, ok := fasting.LookupPreset(c.Fast.DefaultPreset)
	if !ok {
		return fasting.Presets[0]
	}

	return p
}

// WeeklyGoal returns the number of days a week on which the user aims to
// complete a fast. An unset goal means every day.
func (c *Config) WeeklyGoal() int {
	if c.Fast.WeeklyGoal == 0 {
		return daysInAWeek
	}

	return c.Fast.WeeklyGoal
}
