// Package app defines the command-line interface of fast
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/fast/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the fast app instance.
func Get() *cli.App {
	fastApp := &cli.App{
		Name: "fast",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Fast is an intermittent fasting timer for the command-line. It counts up
		towards your target and shows which metabolic state your body is in.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:    "history",
				Aliases: []string{"list"},
				Usage:   "List the fasts recorded in a time period. Defaults to the last 7 days",
				Flags:   filterFlags(jsonFlag),
				Action:  historyAction,
			},
			{
				Name:   "delete",
				Usage:  "Delete the fasts recorded in a time period",
				Flags:  filterFlags(),
				Action: deleteAction,
			},
			{
				Name: "stats",
				Usage: `
				Track your progress with statistics for a time period. Defaults to a
				reporting period of 7 days`,
				Flags:  filterFlags(jsonFlag),
				Action: statsAction,
			},
			{
				Name:   "presets",
				Usage:  "List the preset fasting durations",
				Flags:  []cli.Flag{jsonFlag},
				Action: presetsAction,
			},
			{
				Name:   "states",
				Usage:  "List the metabolic states and when they begin",
				Flags:  []cli.Flag{jsonFlag},
				Action: statesAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running fast",
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			presetFlag,
			hoursFlag,
			sinceFlag,
			addTagFlag,
			disableNotificationFlag,
			noSoundFlag,
			sessionCmdFlag,
			noColorFlag,
			debugFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return fastApp
}
