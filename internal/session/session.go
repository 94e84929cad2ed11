// Package session implements the ephemeral tracking-session state machine
// that drives timer-mode entry. A session exists only while the entry surface
// is open; it is never persisted.
package session

import (
	"sync"
	"time"

	"time-tracker-client/internal/duration"
	"time-tracker-client/internal/errors"
	"time-tracker-client/internal/record"
)

// Mode selects between manual start/end entry and the running stopwatch.
type Mode string

const (
	ModeManual Mode = "manual"
	ModeTimer  Mode = "timer"
)

// State is the tracking-session state.
type State int

const (
	StateIdle State = iota
	StateRunning
)

// DefaultTickInterval is the display refresh resolution of the stopwatch.
const DefaultTickInterval = 10 * time.Millisecond

// Result carries the reconciled values committed by a stopped session. The
// end time is derived through the duration-driven reconciliation path, with
// the session's recorded start time held fixed.
type Result struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  duration.Duration
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithTickInterval overrides the display tick resolution.
func WithTickInterval(interval time.Duration) Option {
	return func(s *Session) { s.tickInterval = interval }
}

// WithOnTick registers a callback invoked with the display elapsed time on
// every tick. The displayed value is cosmetic; the committed duration is
// always computed from the clock.
func WithOnTick(onTick func(elapsed time.Duration)) Option {
	return func(s *Session) { s.onTick = onTick }
}

// Session is the tracking-session state machine. All methods are safe for
// use from the ticker goroutine and the caller.
type Session struct {
	mu           sync.Mutex
	mode         Mode
	state        State
	now          func() time.Time
	tickInterval time.Duration
	onTick       func(elapsed time.Duration)
	startTime    time.Time
	elapsed      time.Duration
	stopTick     chan struct{}
}

// New creates an idle session in manual mode.
func New(opts ...Option) *Session {
	s := &Session{
		mode:         ModeManual,
		state:        StateIdle,
		now:          time.Now,
		tickInterval: DefaultTickInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode returns the current entry mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Elapsed returns the display elapsed time accumulated by the ticker.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// StartTime returns the start time recorded by the last Start call.
func (s *Session) StartTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startTime
}

// SwitchMode changes between manual and timer entry. Switching is only
// permitted while idle and discards any uncommitted display state.
func (s *Session) SwitchMode(mode Mode) error {
	if mode != ModeManual && mode != ModeTimer {
		return errors.NewInvalidInputError("mode", string(mode), "must be manual or timer")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return errors.NewValidationError("cannot switch entry mode while the stopwatch is running", nil)
	}
	s.mode = mode
	s.elapsed = 0
	return nil
}

// Start begins a timed session: the start time is recorded, the display
// elapsed time resets, and the periodic display tick begins. Only valid from
// the idle state.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return errors.NewValidationError("tracking session is already running", nil)
	}

	s.startTime = s.now()
	s.elapsed = 0
	s.state = StateRunning
	s.stopTick = make(chan struct{})
	go s.runTicker(s.stopTick)
	return nil
}

// Stop ends a running session and returns the reconciled record values. The
// committed duration is computed from the session's clock, fed through the
// duration-driven reconciliation path with the recorded start time fixed.
// Only valid from the running state.
func (s *Session) Stop() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return Result{}, errors.NewValidationError("no tracking session is running", nil)
	}

	elapsed := s.now().Sub(s.startTime)
	s.haltLocked()

	triple := record.NewTriple(s.startTime, s.startTime)
	triple.EditDuration(duration.Format(duration.FromElapsed(elapsed)))

	return Result{
		StartTime: triple.StartTime(),
		EndTime:   triple.EndTime(),
		Duration:  triple.Duration(),
	}, nil
}

// Discard cancels a running session without committing a record. Only valid
// from the running state.
func (s *Session) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return errors.NewValidationError("no tracking session is running", nil)
	}
	s.haltLocked()
	return nil
}

// Close tears the session down, cancelling the ticker if one is running.
// Safe to call in any state.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRunning {
		s.haltLocked()
	}
}

// haltLocked cancels the ticker and returns to idle. Callers hold s.mu.
func (s *Session) haltLocked() {
	close(s.stopTick)
	s.stopTick = nil
	s.elapsed = 0
	s.state = StateIdle
}

// runTicker increments the display elapsed time at the tick resolution until
// the session stops. The accumulated value only feeds the display callback.
func (s *Session) runTicker(stop <-chan struct{}) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.state != StateRunning {
				s.mu.Unlock()
				return
			}
			s.elapsed += s.tickInterval
			elapsed := s.elapsed
			onTick := s.onTick
			s.mu.Unlock()

			if onTick != nil {
				onTick(elapsed)
			}
		}
	}
}

// DisplayClock renders a display elapsed time the way the stopwatch shows
// it, as "HH:MM:SS".
func DisplayClock(elapsed time.Duration) string {
	return duration.Format(duration.FromElapsed(elapsed))
}
