package race

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/algotrace/internal/metrics"
)

type participant struct {
	cursor    int
	steps     int
	progress  float64
	completed bool
	elapsed   time.Duration
}

// Manager is one race session. All methods are safe for concurrent use.
type Manager struct {
	mu    sync.Mutex
	clock Clock
	log   *slog.Logger

	state   State
	id      string
	origin  time.Time
	order   []string // registration order
	parts   map[string]*participant
	ranking []string
	winner  string
}

// NewManager returns an Idle session.
func NewManager(opts ...Option) *Manager {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager{clock: o.Clock, log: o.Logger, parts: map[string]*participant{}}
}

// Start registers participants in the given order, records the clock origin
// and moves the session to Running.
func (m *Manager) Start(names ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Idle {
		return fmt.Errorf("%w: state %s", ErrSessionActive, m.state)
	}
	if len(names) < 2 {
		return fmt.Errorf("%w: need at least 2 participants, got %d", ErrInvalidConfiguration, len(names))
	}
	parts := make(map[string]*participant, len(names))
	for _, n := range names {
		if n == "" {
			return fmt.Errorf("%w: empty participant name", ErrInvalidConfiguration)
		}
		if _, dup := parts[n]; dup {
			return fmt.Errorf("%w: duplicate participant %q", ErrInvalidConfiguration, n)
		}
		parts[n] = &participant{}
	}

	m.id = uuid.NewString()
	m.origin = m.clock.Now()
	m.order = slices.Clone(names)
	m.parts = parts
	m.ranking = nil
	m.winner = ""
	m.state = Running

	metrics.RacesStarted.Inc()
	m.log.Info("race started", "session", m.id, "participants", m.order)
	return nil
}

// Advance reports that name has consumed cursor of length steps. It is a
// no-op unless the session is Running or when name is not a participant.
func (m *Manager) Advance(name string, cursor, length int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Running {
		return
	}
	p, ok := m.parts[name]
	if !ok || p.completed {
		return
	}

	p.cursor, p.steps = cursor, length
	if length <= 0 {
		p.progress = 100
	} else {
		p.progress = min(100, max(0, float64(cursor)/float64(length)*100))
	}
	if cursor >= length {
		m.complete(name, p)
	}
}

// complete records the completion instant of name and re-ranks. The caller
// holds m.mu.
func (m *Manager) complete(name string, p *participant) {
	p.completed = true
	p.elapsed = m.clock.Now().Sub(m.origin)

	m.ranking = append(m.ranking, name)
	sort.SliceStable(m.ranking, func(i, j int) bool {
		return m.parts[m.ranking[i]].elapsed < m.parts[m.ranking[j]].elapsed
	})
	if m.winner == "" {
		m.winner = m.ranking[0]
		m.log.Info("race winner", "session", m.id, "winner", m.winner, "elapsed", p.elapsed)
	}

	rank := slices.Index(m.ranking, name) + 1
	metrics.ObserveCompletion(rank, p.elapsed)
	m.log.Debug("participant completed", "session", m.id, "participant", name, "rank", rank, "elapsed", p.elapsed)

	if len(m.ranking) == len(m.order) {
		m.state = Completed
		m.log.Info("race completed", "session", m.id, "ranking", m.ranking)
	}
}

// Pause moves a Running session to Paused.
func (m *Manager) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Running {
		return fmt.Errorf("%w: pause from %s", ErrInvalidTransition, m.state)
	}
	m.state = Paused
	m.log.Debug("race paused", "session", m.id)
	return nil
}

// Resume moves a Paused session back to Running.
func (m *Manager) Resume() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Paused {
		return fmt.Errorf("%w: resume from %s", ErrInvalidTransition, m.state)
	}
	m.state = Running
	m.log.Debug("race resumed", "session", m.id)
	return nil
}

// Rebase moves the clock origin forward by d so that a span the caller
// spent paused is not counted in later completion times. Completion times
// already recorded are kept. Non-positive d and an Idle session are ignored.
func (m *Manager) Rebase(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d <= 0 || m.state == Idle {
		return
	}
	m.origin = m.origin.Add(d)
	m.log.Debug("race rebased", "session", m.id, "paused", d)
}

// Reset clears the session and returns it to Idle from any state.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Idle {
		m.log.Debug("race reset", "session", m.id, "from", m.state)
	}
	m.state = Idle
	m.id = ""
	m.origin = time.Time{}
	m.order = nil
	m.parts = map[string]*participant{}
	m.ranking = nil
	m.winner = ""
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SessionID returns the id assigned by the last Start, or "" when Idle.
func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id
}

// Participants returns the participant names in registration order.
func (m *Manager) Participants() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.order)
}

// Progress returns the completion percentage of name in [0, 100].
func (m *Manager) Progress(name string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.parts[name]; ok {
		return p.progress
	}
	return 0
}

// Ranking returns the completed participants by ascending completion instant.
func (m *Manager) Ranking() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.ranking)
}

// Winner returns the first participant to complete, or "" if none has.
func (m *Manager) Winner() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.winner
}

// Rank returns the 1-based position of name in the ranking, 0 if it has not
// completed.
func (m *Manager) Rank(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Index(m.ranking, name) + 1
}

// IsCompleted reports whether name has completed.
func (m *Manager) IsCompleted(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.parts[name]
	return ok && p.completed
}

// CompletionTime returns the elapsed time from Start to name's completion.
func (m *Manager) CompletionTime(name string) (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.parts[name]
	if !ok || !p.completed {
		return 0, false
	}
	return p.elapsed, true
}

// Steps returns the cursor and trace length last reported for name.
func (m *Manager) Steps(name string) (cursor, length int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.parts[name]; ok {
		return p.cursor, p.steps
	}
	return 0, 0
}

// Snapshot copies the whole session.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot{
		SessionID:    m.id,
		State:        m.state,
		Winner:       m.winner,
		Ranking:      slices.Clone(m.ranking),
		Participants: make([]Standing, 0, len(m.order)),
	}
	for _, n := range m.order {
		p := m.parts[n]
		s.Participants = append(s.Participants, Standing{
			Name:      n,
			Cursor:    p.cursor,
			Steps:     p.steps,
			Progress:  p.progress,
			Completed: p.completed,
			Elapsed:   p.elapsed,
			Rank:      slices.Index(m.ranking, n) + 1,
		})
	}
	return s
}
