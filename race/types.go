package race

import (
	"errors"
	"log/slog"
	"time"
)

// Sentinel errors for race sessions.
var (
	// ErrInvalidConfiguration indicates fewer than two participants, an empty
	// participant name or a duplicate name.
	ErrInvalidConfiguration = errors.New("race: invalid configuration")

	// ErrSessionActive indicates Start on a session that is not Idle.
	ErrSessionActive = errors.New("race: session already active, reset first")

	// ErrInvalidTransition indicates Pause or Resume from the wrong state.
	ErrInvalidTransition = errors.New("race: invalid state transition")

	// ErrNotRunning indicates a Runner driving a session that is not running.
	ErrNotRunning = errors.New("race: session is not running")

	// ErrTickLimit indicates Run stopped after MaxTicks without completing.
	ErrTickLimit = errors.New("race: tick limit reached")
)

// State is the lifecycle state of a race session.
type State int

const (
	Idle State = iota
	Running
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Clock abstracts time.Now() for deterministic testing.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the real system clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Option configures a Manager.
type Option func(*Options)

// Options holds Manager settings.
type Options struct {
	Clock  Clock
	Logger *slog.Logger
}

// DefaultOptions returns the system clock and the default slog logger.
func DefaultOptions() Options {
	return Options{Clock: RealClock{}, Logger: slog.Default()}
}

// WithClock sets the clock used for origin and completion instants.
// A nil clock is ignored.
func WithClock(c Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithLogger sets the session logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Standing is one participant's view inside a Snapshot.
type Standing struct {
	Name      string        `json:"name"`
	Cursor    int           `json:"cursor"`
	Steps     int           `json:"steps"`
	Progress  float64       `json:"progress"`
	Completed bool          `json:"completed"`
	Elapsed   time.Duration `json:"elapsed"`
	Rank      int           `json:"rank"`
}

// Snapshot is an immutable copy of a session for presentation.
type Snapshot struct {
	SessionID    string     `json:"session_id"`
	State        State      `json:"state"`
	Winner       string     `json:"winner,omitempty"`
	Ranking      []string   `json:"ranking"`
	Participants []Standing `json:"participants"`
}

// Margin compares the winner with the runner-up. pct is how much longer the
// runner-up took, relative to the winner's time, in percent; it is 0 when
// either time is zero. ok is false until two participants have finished.
func (s Snapshot) Margin() (runnerUp string, pct float64, ok bool) {
	if len(s.Ranking) < 2 {
		return "", 0, false
	}
	var first, second time.Duration
	for _, p := range s.Participants {
		switch p.Name {
		case s.Ranking[0]:
			first = p.Elapsed
		case s.Ranking[1]:
			second = p.Elapsed
		}
	}
	if first > 0 && second > 0 {
		pct = float64(second-first) / float64(first) * 100
	}
	return s.Ranking[1], pct, true
}
