package timer

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/fast/internal/fasting"
	"github.com/ayoisaiah/fast/internal/models"
)

// snapshotMsg carries the latest state of the runner.
type snapshotMsg fasting.Snapshot

// recordedMsg reports that a finished fast was saved to the history.
type recordedMsg struct {
	fast *models.Fast
	err  error
}

// waitForSnapshot blocks until the runner publishes a new snapshot. Exactly
// one of these commands is outstanding at any time.
func waitForSnapshot(r *fasting.Runner) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(<-r.Updates())
	}
}

// handleSnapshot processes a snapshot published by the runner.
func (t *Timer) handleSnapshot(msg snapshotMsg) (tea.Model, tea.Cmd) {
	cmd := waitForSnapshot(t.runner)

	snap := fasting.Snapshot(msg)

	// snapshots of a fast that has since been replaced or stopped
	if t.view != runningView || !snap.StartedAt.Equal(t.snap.StartedAt) {
		return t, cmd
	}

	t.snap = snap

	if snap.Active {
		if err := t.writeStatusFile(); err != nil {
			slog.Warn("unable to write status file", slog.Any("error", err))
		}
	}

	if !snap.Completed {
		return t, cmd
	}

	t.view = completeView
	t.removeStatusFile()

	return t, tea.Batch(cmd, t.finish(t.runner.Outcome()))
}

// handleRecorded processes the result of saving a finished fast.
func (t *Timer) handleRecorded(msg recordedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error(
			"unable to save fast",
			slog.Time("start_time", msg.fast.StartTime),
			slog.Any("error", msg.err),
		)

		t.err = msg.err

		return t, nil
	}

	t.last = msg.fast

	return t, nil
}

// handlePicker forwards messages to the duration picker until it is
// submitted or dismissed.
func (t *Timer) handlePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return t, t.quit()
		case key.Matches(keyMsg, defaultKeymap.esc):
			t.closePicker()
			return t, nil
		}
	}

	form, cmd := t.picker.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.picker = f
	}

	switch t.picker.State {
	case huh.StateCompleted:
		hours, label, err := t.pickedTarget()

		t.closePicker()

		if err != nil {
			t.err = err
			return t, nil
		}

		t.begin(hours, label, time.Time{})

		return t, nil
	case huh.StateAborted:
		t.closePicker()
		return t, nil
	}

	return t, cmd
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return t, t.quit()

	case key.Matches(msg, defaultKeymap.start):
		if t.view == runningView {
			return t, nil
		}

		return t, t.openPicker()

	case key.Matches(msg, defaultKeymap.stop):
		if t.view != runningView {
			return t, nil
		}

		return t, t.stop()
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(snapshotMsg); !ok &&
		slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case snapshotMsg:
		return t.handleSnapshot(msg)

	case recordedMsg:
		return t.handleRecorded(msg)
	}

	if t.view == pickerView {
		return t.handlePicker(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
