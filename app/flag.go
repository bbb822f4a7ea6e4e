package app

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/fast/internal/timeutil"
)

var (
	presetFlag = &cli.StringFlag{
		Name:    "preset",
		Aliases: []string{"p"},
		Usage:   "Start a fast with a preset duration (16:8, 18:6, 20:4, omad, 36h, 48h, 72h, week)",
	}

	hoursFlag = &cli.StringFlag{
		Name:    "hours",
		Aliases: []string{"H"},
		Usage:   "Start a fast with a custom duration between 16 and 168 hours",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Start the fast in the past (e.g. '3 hours ago' or '2024-01-15 20:00')",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug messages to the log file",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a fast is completed",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Do not play a chime when a fast is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after a fast is completed",
	}

	addTagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Add comma-delimited tags to a fast",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}
)

// filterFlags returns the flags that select fasts from the history, followed
// by extra.
func filterFlags(extra ...cli.Flag) []cli.Flag {
	periods := make([]string, len(timeutil.PeriodCollection))
	for i, p := range timeutil.PeriodCollection {
		periods[i] = string(p)
	}

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "period",
			Aliases: []string{"p"},
			Usage:   "Select a time period (" + strings.Join(periods, ", ") + ")",
		},
		&cli.StringFlag{
			Name:    "start",
			Aliases: []string{"s"},
			Usage:   "Select fasts in progress after this date (e.g. '2024-01-15' or 'last monday')",
		},
		&cli.StringFlag{
			Name:    "end",
			Aliases: []string{"e"},
			Usage:   "Select fasts that started before this date",
		},
		&cli.StringFlag{
			Name:    "tag",
			Aliases: []string{"t"},
			Usage:   "Select fasts with any of the comma-delimited tags",
		},
	}

	return append(flags, extra...)
}
