package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/fast/internal/fasting"
	"github.com/ayoisaiah/fast/internal/timeutil"
)

func (t *Timer) timeFormat() string {
	if t.Opts.Display.TwentyFourHour {
		return "Mon 15:04"
	}

	return "Mon 03:04 PM"
}

// stoppedMessage describes a fast that was ended before its target.
func stoppedMessage(o fasting.Outcome) string {
	return fmt.Sprintf(
		"Fast stopped after %s (%s)",
		timeutil.Clock(o.ElapsedSeconds),
		o.MaxState,
	)
}

func (t *Timer) idleView() string {
	var s strings.Builder

	s.WriteString(t.style.Main.SetString("No fast in progress").String())

	if t.message != "" {
		s.WriteString("\n\n" + t.style.Hint.SetString(t.message).String())
	}

	s.WriteString(t.errorView())
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.start,
		defaultKeymap.quit,
	}))

	return s.String()
}

// nextStateView describes how far away the next metabolic state is.
func (t *Timer) nextStateView() string {
	c := t.snap.Classification

	if c.Next == c.Current {
		return "Deepest state reached"
	}

	return fmt.Sprintf(
		"Next: %s in %s",
		c.Next.Name,
		timeutil.Clock(c.SecondsToNext),
	)
}

func (t *Timer) runningView() string {
	var s strings.Builder

	current := t.snap.Classification.Current

	s.WriteString(t.style.stateBadge(current.Name, current.Color))
	s.WriteString(" " + t.style.Secondary.SetString(t.preset).String())

	s.WriteString(
		t.style.Hint.SetString(
			" until " + t.snap.EndTime().Format(t.timeFormat()),
		).String(),
	)

	s.WriteString("\n\n")
	s.WriteString(
		t.style.Main.SetString(timeutil.Clock(t.snap.ElapsedSeconds)).String(),
	)
	s.WriteString(t.style.Hint.SetString(
		fmt.Sprintf(
			" of %s (%d%%)",
			timeutil.Hours(time.Duration(t.snap.TargetHours*float64(time.Hour))),
			timeutil.Round(t.snap.Progress*100),
		),
	).String())

	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.snap.Progress))
	s.WriteString("\n\n" + t.style.Hint.SetString(t.nextStateView()).String())

	if tags := t.Opts.Tags(); len(tags) > 0 {
		s.WriteString(
			"\n" + t.style.Hint.SetString(strings.Join(tags, " | ")).String(),
		)
	}

	s.WriteString(t.errorView())
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.stop,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) completeView() string {
	var s strings.Builder

	o := t.runner.Outcome()

	s.WriteString(
		t.style.Main.SetString(
			fmt.Sprintf("Your %s is complete", t.preset),
		).String(),
	)

	s.WriteString("\n\n" + t.style.Secondary.SetString(
		fmt.Sprintf(
			"You fasted for %s and reached %s",
			timeutil.Hours(time.Duration(o.ElapsedSeconds)*time.Second),
			o.MaxState,
		),
	).String())

	s.WriteString(t.errorView())
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.start,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) errorView() string {
	if t.err == nil {
		return ""
	}

	return "\n\n" + t.style.Error.SetString(t.err.Error()).String()
}

func (t *Timer) View() string {
	var view string

	switch t.view {
	case pickerView:
		view = t.picker.View()
	case runningView:
		view = t.runningView()
	case completeView:
		view = t.completeView()
	default:
		view = t.idleView()
	}

	return t.style.Base.Render(view)
}
