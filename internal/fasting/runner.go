package fasting

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Snapshot is a read-only view of the session owned by a Runner.
type Snapshot struct {
	StartedAt      time.Time      `json:"started_at"`
	Classification Classification `json:"classification"`
	TargetHours    float64        `json:"target_hours"`
	Progress       float64        `json:"progress"`
	ElapsedSeconds int64          `json:"elapsed_seconds"`
	Active         bool           `json:"active"`
	// Completed is set on the snapshot published by the tick that reached
	// the target.
	Completed bool `json:"completed"`
}

// EndTime is the time at which the fast reaches its target.
func (s Snapshot) EndTime() time.Time {
	return s.StartedAt.Add(time.Duration(s.TargetHours * float64(time.Hour)))
}

// Outcome records how a fast ended.
type Outcome struct {
	StartedAt   time.Time `json:"started_at"`
	EndedAt     time.Time `json:"ended_at"`
	MaxState    string    `json:"max_state"`
	TargetHours float64   `json:"target_hours"`
	// ElapsedSeconds is the full target for completed fasts and the time
	// fasted before stopping otherwise.
	ElapsedSeconds int64 `json:"elapsed_seconds"`
	Completed      bool  `json:"completed"`
}

// Runner owns a Session and the loop that advances it once per interval.
// Only one loop exists at a time: starting a fast releases the previous one.
type Runner struct {
	now       func() time.Time
	cancel    context.CancelFunc
	done      chan struct{}
	updates   chan Snapshot
	startedAt time.Time
	session   Session
	interval  time.Duration
	mu        sync.Mutex
	completed bool
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithInterval changes how often the session is ticked. A fast always
// advances by one second per tick.
func WithInterval(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithClock sets the source of wall-clock time used for start and end
// timestamps.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRunner returns an idle Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		now:      time.Now,
		interval: time.Second,
		updates:  make(chan Snapshot, 1),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Updates delivers the latest snapshot after every change. Stale snapshots
// are dropped when the receiver falls behind.
func (r *Runner) Updates() <-chan Snapshot {
	return r.updates
}

// Snapshot returns the current state of the session.
func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshotLocked()
}

// Start begins a new fast of targetHours, discarding any fast in progress.
func (r *Runner) Start(ctx context.Context, targetHours float64) error {
	return r.Resume(ctx, targetHours, time.Time{})
}

// Resume begins a fast of targetHours that started at since. A zero since
// starts the fast now.
func (r *Runner) Resume(
	ctx context.Context,
	targetHours float64,
	since time.Time,
) error {
	r.release()

	r.mu.Lock()

	now := r.now()
	if since.IsZero() || since.After(now) {
		since = now
	}

	completed, err := r.session.Resume(
		targetHours,
		int64(now.Sub(since).Seconds()),
	)
	if err != nil {
		r.mu.Unlock()
		return err
	}

	r.startedAt = since
	r.completed = completed

	if !completed {
		loopCtx, cancel := context.WithCancel(ctx)
		r.cancel = cancel
		r.done = make(chan struct{})

		go r.loop(loopCtx, r.done)
	}

	snap := r.snapshotLocked()

	r.mu.Unlock()

	slog.Info(
		"fast started",
		slog.Float64("target_hours", targetHours),
		slog.Time("started_at", since),
		slog.Bool("completed", completed),
	)

	r.publish(snap)

	return nil
}

// Stop ends the fast in progress and reports its outcome. The loop has
// exited by the time Stop returns.
func (r *Runner) Stop() Outcome {
	r.release()

	r.mu.Lock()

	outcome := r.outcomeLocked()

	r.session.Stop()
	r.completed = false

	snap := r.snapshotLocked()

	r.mu.Unlock()

	slog.Info(
		"fast stopped",
		slog.Int64("elapsed_seconds", outcome.ElapsedSeconds),
		slog.Bool("completed", outcome.Completed),
	)

	r.publish(snap)

	return outcome
}

// Outcome reports how the current or most recent fast stands without
// changing it.
func (r *Runner) Outcome() Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.outcomeLocked()
}

// Close releases the loop. The session is left untouched.
func (r *Runner) Close() {
	r.release()
}

// release cancels the running loop, if any, and waits for it to exit.
func (r *Runner) release() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

func (r *Runner) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.mu.Lock()

			completed := r.session.Tick()
			if completed {
				r.completed = true
			}

			snap := r.snapshotLocked()

			r.mu.Unlock()

			r.publish(snap)

			if completed {
				slog.Info(
					"fast completed",
					slog.Float64("target_hours", snap.TargetHours),
				)

				return
			}
		}
	}
}

// publish replaces any unread snapshot with snap.
func (r *Runner) publish(snap Snapshot) {
	for {
		select {
		case r.updates <- snap:
			return
		default:
		}

		select {
		case <-r.updates:
		default:
		}
	}
}

func (r *Runner) snapshotLocked() Snapshot {
	return Snapshot{
		StartedAt:      r.startedAt,
		Classification: r.session.Classification(),
		TargetHours:    r.session.TargetHours,
		Progress:       r.session.ProgressFraction(),
		ElapsedSeconds: r.session.ElapsedSeconds,
		Active:         r.session.Active,
		Completed:      r.completed,
	}
}

func (r *Runner) outcomeLocked() Outcome {
	elapsed := r.session.ElapsedSeconds
	if r.completed {
		elapsed = r.session.TargetSeconds()
	}

	return Outcome{
		StartedAt:      r.startedAt,
		EndedAt:        r.startedAt.Add(time.Duration(elapsed) * time.Second),
		MaxState:       Classify(elapsed).Current.Name,
		TargetHours:    r.session.TargetHours,
		ElapsedSeconds: elapsed,
		Completed:      r.completed,
	}
}
