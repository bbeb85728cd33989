package race

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/algotrace/step"
)

// Entry is one participant of a Runner: a name and its pre-generated trace.
type Entry struct {
	Name  string
	Trace step.Trace
}

// Frame is the step a participant reached on one tick. Cursor is the number
// of steps consumed after the tick, so Step == Trace[Cursor-1].
type Frame struct {
	Name   string
	Cursor int
	Step   step.Step
}

// RunnerOption configures a Runner.
type RunnerOption func(*RunnerOptions)

// RunnerOptions holds Runner settings.
type RunnerOptions struct {
	// TickInterval is the minimum spacing between ticks. Zero disables pacing.
	TickInterval time.Duration

	// MaxTicks caps Run; zero means no ceiling.
	MaxTicks int

	// Delay, when set, adds a pause before tick n (0-based).
	Delay func(tick int) time.Duration
}

// DefaultRunnerOptions returns unpaced, uncapped options.
func DefaultRunnerOptions() RunnerOptions {
	return RunnerOptions{}
}

// WithTickInterval sets the minimum spacing between ticks. Negative values are ignored.
func WithTickInterval(d time.Duration) RunnerOption {
	return func(o *RunnerOptions) {
		if d >= 0 {
			o.TickInterval = d
		}
	}
}

// WithMaxTicks caps the number of ticks Run performs. Negative values are ignored.
func WithMaxTicks(n int) RunnerOption {
	return func(o *RunnerOptions) {
		if n >= 0 {
			o.MaxTicks = n
		}
	}
}

// WithDelay sets a per-tick delay function.
func WithDelay(fn func(tick int) time.Duration) RunnerOption {
	return func(o *RunnerOptions) {
		o.Delay = fn
	}
}

// Runner replays pre-generated traces into a Manager one step per
// participant per tick.
type Runner struct {
	m       *Manager
	entries []Entry
	cursors []int
	limiter *rate.Limiter
	opts    RunnerOptions

	mu      sync.Mutex
	ticks   int
	resumed  chan struct{} // non-nil while paused through the Runner
	pausedAt time.Time
}

// NewRunner binds entries, in registration order, to m.
func NewRunner(m *Manager, entries []Entry, opts ...RunnerOption) *Runner {
	o := DefaultRunnerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	limit := rate.Inf
	if o.TickInterval > 0 {
		limit = rate.Every(o.TickInterval)
	}
	return &Runner{
		m:       m,
		entries: entries,
		cursors: make([]int, len(entries)),
		limiter: rate.NewLimiter(limit, 1),
		opts:    o,
	}
}

// Start resets the cursors and starts the Manager with the entry names.
func (r *Runner) Start() error {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	if err := r.m.Start(names...); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.cursors {
		r.cursors[i] = 0
	}
	r.ticks = 0
	return nil
}

// Tick advances every unfinished participant by one step in registration
// order and returns the steps reached. It returns nil when the session is
// not Running.
func (r *Runner) Tick() []Frame {
	if r.m.State() != Running {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	frames := make([]Frame, 0, len(r.entries))
	for i, e := range r.entries {
		if r.m.IsCompleted(e.Name) {
			continue
		}
		n := len(e.Trace)
		if r.cursors[i] < n {
			frames = append(frames, Frame{Name: e.Name, Cursor: r.cursors[i] + 1, Step: e.Trace[r.cursors[i]]})
			r.cursors[i]++
		}
		r.m.Advance(e.Name, r.cursors[i], n)
	}
	r.ticks++
	return frames
}

// Ticks returns the number of ticks performed since Start.
func (r *Runner) Ticks() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ticks
}

// Pause pauses the Manager and holds Run until Resume.
func (r *Runner) Pause() error {
	if err := r.m.Pause(); err != nil {
		return err
	}
	r.mu.Lock()
	r.resumed = make(chan struct{})
	r.pausedAt = r.m.clock.Now()
	r.mu.Unlock()
	return nil
}

// Resume rebases the Manager by the time spent paused, resumes it and
// releases Run.
func (r *Runner) Resume() error {
	r.mu.Lock()
	pausedAt := r.pausedAt
	r.mu.Unlock()
	if r.m.State() == Paused && !pausedAt.IsZero() {
		r.m.Rebase(r.m.clock.Now().Sub(pausedAt))
	}
	if err := r.m.Resume(); err != nil {
		return err
	}
	r.mu.Lock()
	if r.resumed != nil {
		close(r.resumed)
		r.resumed = nil
	}
	r.pausedAt = time.Time{}
	r.mu.Unlock()
	return nil
}

// Run ticks until the session completes. It returns ctx.Err() on
// cancellation, ErrTickLimit after MaxTicks ticks and ErrNotRunning when the
// session leaves Running or Paused, e.g. after Reset.
func (r *Runner) Run(ctx context.Context) error {
	for {
		switch r.m.State() {
		case Completed:
			return nil
		case Paused:
			if err := r.waitResume(ctx); err != nil {
				return err
			}
			continue
		case Idle:
			return ErrNotRunning
		}

		ticks := r.Ticks()
		if r.opts.MaxTicks > 0 && ticks >= r.opts.MaxTicks {
			return fmt.Errorf("%w: %d ticks", ErrTickLimit, ticks)
		}
		if r.opts.Delay != nil {
			if err := sleep(ctx, r.opts.Delay(ticks)); err != nil {
				return err
			}
		}
		if err := r.limiter.Wait(ctx); err != nil {
			return err
		}
		r.Tick()
	}
}

func (r *Runner) waitResume(ctx context.Context) error {
	r.mu.Lock()
	ch := r.resumed
	r.mu.Unlock()
	if ch == nil {
		// Paused directly on the Manager; poll at a coarse interval.
		return sleep(ctx, 10*time.Millisecond)
	}
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
