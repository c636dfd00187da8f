package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
)

// Job is the work run when an entry fires
type Job func(ctx context.Context)

// State of a scheduled entry. Scheduled moves to exactly one of Fired or Cancelled.
type State int32

const (
	StateScheduled State = iota
	StateFired
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateScheduled:
		return "scheduled"
	case StateFired:
		return "fired"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Entry is the handle for one delayed callback
type Entry struct {
	Key   string
	DueAt time.Time

	state atomic.Int32
	timer *clock.Timer
}

// State returns the entry's current state
func (e *Entry) State() State {
	return State(e.state.Load())
}

func (e *Entry) transition(to State) bool {
	return e.state.CompareAndSwap(int32(StateScheduled), int32(to))
}

// EscalationScheduler runs delayed, cancellable callbacks grouped by key.
// Entries under different keys never interact. Timers are in-memory only, so
// callbacks must re-check persisted state before acting.
type EscalationScheduler struct {
	clock  clock.Clock
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	entries map[string]map[*Entry]struct{}
	stopped bool

	inflight  sync.WaitGroup
	completed atomic.Int64
}

// New creates a scheduler driven by clk. Pass clock.New() in production and a
// clock.Mock in tests.
func New(clk clock.Clock) *EscalationScheduler {
	if clk == nil {
		clk = clock.New()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &EscalationScheduler{
		clock:   clk,
		ctx:     ctx,
		cancel:  cancel,
		entries: make(map[string]map[*Entry]struct{}),
	}
}

// Schedule runs job after delay unless the entry is cancelled first.
// After Stop, entries are returned already cancelled.
func (s *EscalationScheduler) Schedule(key string, delay time.Duration, job Job) *Entry {
	entry := &Entry{Key: key, DueAt: s.clock.Now().Add(delay)}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		entry.transition(StateCancelled)
		return entry
	}

	if s.entries[key] == nil {
		s.entries[key] = make(map[*Entry]struct{})
	}
	s.entries[key][entry] = struct{}{}
	s.inflight.Add(1)

	entry.timer = s.clock.AfterFunc(delay, func() {
		s.fire(entry, job)
	})
	return entry
}

func (s *EscalationScheduler) fire(entry *Entry, job Job) {
	if !entry.transition(StateFired) {
		return
	}
	s.forget(entry)
	defer s.inflight.Done()
	defer s.completed.Add(1)

	job(s.ctx)
}

// Cancel stops an entry that has not fired yet and reports whether it did
func (s *EscalationScheduler) Cancel(entry *Entry) bool {
	if entry == nil || !entry.transition(StateCancelled) {
		return false
	}

	s.mu.Lock()
	timer := entry.timer
	s.mu.Unlock()
	if timer != nil {
		timer.Stop()
	}

	s.forget(entry)
	s.inflight.Done()
	return true
}

// CancelAll cancels every pending entry under key and returns how many it stopped
func (s *EscalationScheduler) CancelAll(key string) int {
	s.mu.Lock()
	pending := make([]*Entry, 0, len(s.entries[key]))
	for entry := range s.entries[key] {
		pending = append(pending, entry)
	}
	s.mu.Unlock()

	cancelled := 0
	for _, entry := range pending {
		if s.Cancel(entry) {
			cancelled++
		}
	}
	return cancelled
}

// Pending returns the number of entries under key that have not fired or been cancelled
func (s *EscalationScheduler) Pending(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries[key])
}

// Completed returns how many callbacks have run to completion
func (s *EscalationScheduler) Completed() int64 {
	return s.completed.Load()
}

// Stop cancels everything still pending and waits for running callbacks. A
// running callback keeps a live context until it returns.
func (s *EscalationScheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	s.mu.Unlock()

	for _, key := range keys {
		s.CancelAll(key)
	}
	s.inflight.Wait()
	s.cancel()
}

func (s *EscalationScheduler) forget(entry *Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.entries[entry.Key]; ok {
		delete(set, entry)
		if len(set) == 0 {
			delete(s.entries, entry.Key)
		}
	}
}
