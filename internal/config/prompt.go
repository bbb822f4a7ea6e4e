package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/fast/internal/fasting"
)

const asciiLogo = `
███████╗ █████╗ ███████╗████████╗
██╔════╝██╔══██╗██╔════╝╚══██╔══╝
█████╗  ███████║███████╗   ██║   
██╔══╝  ██╔══██║╚════██║   ██║   
██║     ██║  ██║███████║   ██║   
╚═╝     ╚═╝  ╚═╝╚══════╝   ╚═╝   `

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	DefaultPreset string
	Notifications bool
	Sound         bool
}

// WithPromptConfig returns an Option that asks for the main settings
// interactively the first time the program runs.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return err
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

func presetOptions() []huh.Option[string] {
	options := make([]huh.Option[string], len(fasting.Presets))

	for i, p := range fasting.Presets {
		options[i] = huh.NewOption(p.Label, p.Key).Selected(i == 0)
	}

	return options
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Notifications: true,
		Sound:         true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure fast for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'fast edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default fast").
				Options(presetOptions()...).
				Value(&opts.DefaultPreset),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show a desktop notification when a fast is complete?").
				Value(&opts.Notifications),
			huh.NewConfirm().
				Title("Play a chime when a fast is complete?").
				Value(&opts.Sound),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, errPrompt.Wrap(err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Fast.DefaultPreset = opts.DefaultPreset
	c.Notifications.Enabled = opts.Notifications
	c.Sound.Enabled = opts.Sound
}
