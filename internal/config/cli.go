package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/fast/internal/fasting"
	"github.com/ayoisaiah/fast/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Preset        string
	Hours         string
	Since         string
	Tags          string
	SessionCmd    string
	DisableNotify bool
	NoSound       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Preset:        ctx.String("preset"),
			Hours:         ctx.String("hours"),
			Since:         ctx.String("since"),
			Tags:          ctx.String("tag"),
			SessionCmd:    ctx.String("session-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoSound:       ctx.Bool("no-sound"),
		}

		return applyCLIOptions(c, opts, time.Now())
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions, now time.Time) error {
	if err := applyCLITarget(c, opts); err != nil {
		return err
	}

	if opts.Tags != "" {
		c.CLI.Tags = splitAndTrimTags(opts.Tags)
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.NoSound {
		c.Sound.Enabled = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.Since != "" {
		startTime, err := timeutil.FromStr(opts.Since)
		if err != nil {
			return errInvalidSince.Wrap(err)
		}

		if startTime.After(now) {
			return errSinceInFuture.Fmt(opts.Since)
		}

		c.CLI.StartTime = startTime
	}

	return nil
}

// applyCLITarget resolves the target duration chosen on the command line,
// either a preset or a custom number of hours.
func applyCLITarget(c *Config, opts CLIOptions) error {
	if opts.Preset != "" && opts.Hours != "" {
		return errPresetAndHours
	}

	if opts.Preset != "" {
		p, ok := fasting.LookupPreset(opts.Preset)
		if !ok {
			return errUnknownPreset.Fmt(opts.Preset)
		}

		c.CLI.Preset = p.Label
		c.CLI.TargetHours = p.Hours

		return nil
	}

	if opts.Hours != "" {
		hours, err := fasting.ParseCustomHours(opts.Hours)
		if err != nil {
			return errInvalidHours.Wrap(err)
		}

		c.CLI.TargetHours = float64(hours)
		c.CLI.Preset = fasting.PresetLabel(c.CLI.TargetHours)
	}

	return nil
}

// splitAndTrimTags splits a comma-separated tag string and trims whitespace.
func splitAndTrimTags(tags string) []string {
	split := strings.Split(tags, ",")

	trimmed := make([]string, 0, len(split))

	for _, tag := range split {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			trimmed = append(trimmed, tag)
		}
	}

	return trimmed
}
