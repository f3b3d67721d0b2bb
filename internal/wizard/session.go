package wizard

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrSubmissionInFlight is returned while a submission is pending.
	ErrSubmissionInFlight = errors.New("wizard: submission already in flight")
	// ErrSessionClosed is returned after Close.
	ErrSessionClosed = errors.New("wizard: session closed")
)

// Session owns one visitor's State and serialises access to it. At most one
// submission is in flight; the network call runs outside the lock.
type Session struct {
	deps Deps

	mu     sync.Mutex
	state  State
	closed bool
}

func NewSession(deps Deps) *Session {
	return &Session{deps: deps, state: New()}
}

// State returns a snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func (s *Session) Advance() (State, error) {
	return s.apply(func(st State) (State, error) { return st.Advance(), nil })
}

func (s *Session) Retreat() (State, error) {
	return s.apply(func(st State) (State, error) { return st.Retreat(), nil })
}

func (s *Session) JumpToStep(n Step) (State, error) {
	return s.apply(func(st State) (State, error) { return st.JumpToStep(n), nil })
}

func (s *Session) UpdateField(field Field, value any) (State, error) {
	return s.apply(func(st State) (State, error) { return st.UpdateField(field, value) })
}

func (s *Session) ToggleScope(scope Scope) (State, error) {
	return s.apply(func(st State) (State, error) { return st.ToggleScope(scope), nil })
}

// Submit sends the draft. A second call while the first is pending gets
// ErrSubmissionInFlight. If the session is closed before the gateway
// answers, the answer is dropped and ErrSessionClosed is returned.
func (s *Session) Submit(ctx context.Context) (outcome Outcome, err error) {
	snapshot, err := s.acquire()
	if err != nil {
		return OutcomeIgnored, err
	}

	var next State
	completed := false
	defer func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.state.Submitting = false
		if s.closed {
			err = ErrSessionClosed
			return
		}
		if completed {
			s.state = next
		}
	}()

	next, outcome = Submit(ctx, snapshot, s.deps)
	completed = true
	return outcome, nil
}

// acquire marks the session as submitting and returns the state to send.
func (s *Session) acquire() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return State{}, ErrSessionClosed
	}
	if s.state.Submitting {
		return State{}, ErrSubmissionInFlight
	}
	snapshot := s.state.clone()
	s.state.Submitting = true
	return snapshot, nil
}

// Close abandons the session. Any pending submission result is discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *Session) apply(fn func(State) (State, error)) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.state.clone(), ErrSessionClosed
	}
	if s.state.Submitting {
		return s.state.clone(), ErrSubmissionInFlight
	}
	next, err := fn(s.state)
	if err != nil {
		return s.state.clone(), err
	}
	s.state = next
	return next.clone(), nil
}
