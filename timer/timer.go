// Package timer runs the interactive fasting timer
package timer

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/fast/internal/config"
	"github.com/ayoisaiah/fast/internal/fasting"
	"github.com/ayoisaiah/fast/internal/models"
	"github.com/ayoisaiah/fast/store"
)

const (
	padding  = 2
	maxWidth = 60
)

type view int

const (
	idleView view = iota
	pickerView
	runningView
	completeView
)

// actions are the side effects of finishing a fast. They are swapped out in
// tests.
type actions struct {
	notify     func(title, msg string) error
	chime      func(volume int) error
	sessionCmd func(cmd string) error
}

// Timer is the bubbletea model for the fasting timer. It owns a single
// fasting.Runner for its whole lifetime.
type Timer struct {
	ctx        context.Context
	db         store.DB
	Opts       *config.Config
	runner     *fasting.Runner
	picker     *huh.Form
	actions    actions
	statusPath string
	preset     string
	choice     string
	custom     string
	// message is shown on the idle screen after a fast is stopped
	message  string
	err      error
	snap     fasting.Snapshot
	last     *models.Fast
	style    style
	progress progress.Model
	help     help.Model
	view     view
	previous view
	pending  sync.WaitGroup
}

// Option configures a Timer.
type Option func(*Timer)

// WithRunner replaces the runner that drives the timer.
func WithRunner(r *fasting.Runner) Option {
	return func(t *Timer) {
		t.runner = r
	}
}

// WithStatusFile sets where the status of a running fast is written for the
// status command. An empty path disables the status file.
func WithStatusFile(path string) Option {
	return func(t *Timer) {
		t.statusPath = path
	}
}

// New creates a timer that records finished fasts in db.
func New(
	ctx context.Context,
	db store.DB,
	cfg *config.Config,
	opts ...Option,
) *Timer {
	t := &Timer{
		ctx:  ctx,
		db:   db,
		Opts: cfg,
		actions: actions{
			notify:     notify,
			chime:      playChime,
			sessionCmd: runSessionCmd,
		},
		style: newStyle(cfg.Display),
		progress: progress.New(
			progress.WithSolidFill(cfg.Display.AccentColor),
			progress.WithoutPercentage(),
		),
		help: help.New(),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.runner == nil {
		t.runner = fasting.NewRunner()
	}

	return t
}

// Init starts a fast straight away when a duration or start time was given
// on the command line.
func (t *Timer) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForSnapshot(t.runner)}

	cli := t.Opts.CLI

	if cli.TargetHours > 0 || !cli.StartTime.IsZero() {
		hours, label := cli.TargetHours, cli.Preset

		if hours == 0 {
			p := t.Opts.DefaultPreset()
			hours, label = p.Hours, p.Label
		}

		t.begin(hours, label, cli.StartTime)
	}

	return tea.Batch(cmds...)
}

// begin starts a new fast of targetHours that began at since.
func (t *Timer) begin(targetHours float64, label string, since time.Time) {
	err := t.runner.Resume(t.ctx, targetHours, since)
	if err != nil {
		t.err = err
		t.view = idleView

		return
	}

	t.err = nil
	t.message = ""
	t.preset = label
	t.snap = t.runner.Snapshot()
	t.view = runningView
}

// stop ends the fast in progress and returns a command that records it.
func (t *Timer) stop() tea.Cmd {
	outcome := t.runner.Stop()
	t.snap = t.runner.Snapshot()
	t.view = idleView

	t.removeStatusFile()

	t.message = stoppedMessage(outcome)

	return t.finish(outcome)
}

// finish returns a command that saves a finished fast and, if the fast was
// completed, runs the completion actions.
func (t *Timer) finish(o fasting.Outcome) tea.Cmd {
	if o.ElapsedSeconds == 0 {
		return nil
	}

	f := t.record(o)

	t.pending.Add(1)

	return func() tea.Msg {
		defer t.pending.Done()

		err := t.db.SaveFast(f)

		if f.Completed {
			t.celebrate(f)
		}

		return recordedMsg{fast: f, err: err}
	}
}

// record converts the outcome of a fast into a history entry.
func (t *Timer) record(o fasting.Outcome) *models.Fast {
	return &models.Fast{
		StartTime:      o.StartedAt,
		EndTime:        o.EndedAt,
		Preset:         t.preset,
		MaxState:       o.MaxState,
		Tags:           t.Opts.Tags(),
		TargetHours:    o.TargetHours,
		ElapsedSeconds: o.ElapsedSeconds,
		Completed:      o.Completed,
	}
}

// quit records a fast in progress as stopped before exiting. A fast whose
// completion has not reached Update yet is recorded as completed.
func (t *Timer) quit() tea.Cmd {
	t.runner.Close()

	snap := t.runner.Snapshot()

	switch {
	case snap.Active:
		t.persist(t.runner.Stop())
	case snap.Completed && t.view == runningView:
		t.view = completeView
		t.persist(t.runner.Outcome())
	}

	t.removeStatusFile()

	return tea.Batch(tea.ClearScreen, tea.Quit)
}

// persist saves a finished fast immediately, since commands returned while
// quitting are not guaranteed to run.
func (t *Timer) persist(o fasting.Outcome) {
	if o.ElapsedSeconds == 0 {
		return
	}

	f := t.record(o)

	if err := t.db.SaveFast(f); err != nil {
		slog.Error(
			"unable to save fast",
			slog.Time("start_time", f.StartTime),
			slog.Any("error", err),
		)
	}

	if f.Completed {
		t.celebrate(f)
	}
}

// Close waits for finished fasts to be recorded and releases the runner.
func (t *Timer) Close() error {
	t.runner.Close()
	t.pending.Wait()
	t.removeStatusFile()

	return t.db.Close()
}

func (t *Timer) removeStatusFile() {
	if t.statusPath == "" {
		return
	}

	_ = os.Remove(t.statusPath)
}
