package timer

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/fast/internal/fasting"
)

const customChoice = "custom"

func pickerOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(fasting.Presets)+1)

	for _, p := range fasting.Presets {
		options = append(options, huh.NewOption(p.Label, p.Key))
	}

	return append(options, huh.NewOption("Custom duration", customChoice))
}

// validateCustomHours rejects custom durations outside the accepted range
// with a message the user can act on.
func validateCustomHours(s string) error {
	if _, err := fasting.ParseCustomHours(s); err != nil {
		return errCustomDuration
	}

	return nil
}

// openPicker shows the form used to choose the duration of the next fast.
func (t *Timer) openPicker() tea.Cmd {
	t.choice = t.Opts.DefaultPreset().Key
	t.custom = ""

	t.picker = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose your fast").
				Options(pickerOptions()...).
				Value(&t.choice),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Custom duration (hours)").
				Description(fasting.CustomDurationHint).
				Placeholder("24").
				Validate(validateCustomHours).
				Value(&t.custom),
		).WithHideFunc(func() bool {
			return t.choice != customChoice
		}),
	).WithShowHelp(true)

	t.previous = t.view
	t.view = pickerView

	return t.picker.Init()
}

func (t *Timer) closePicker() {
	t.picker = nil
	t.view = t.previous
}

// pickedTarget returns the duration and label chosen in the picker.
func (t *Timer) pickedTarget() (float64, string, error) {
	if t.choice == customChoice {
		hours, err := fasting.ParseCustomHours(t.custom)
		if err != nil {
			return 0, "", err
		}

		return float64(hours), fasting.PresetLabel(float64(hours)), nil
	}

	p, ok := fasting.LookupPreset(t.choice)
	if !ok {
		return 0, "", errUnknownPreset.Fmt(t.choice)
	}

	return p.Hours, p.Label, nil
}
