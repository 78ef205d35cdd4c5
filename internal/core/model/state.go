package model

import (
	"errors"
	"fmt"
)

// ErrInvalidState indicates a State that breaks a timer invariant.
var ErrInvalidState = errors.New("invalid timer state")

// Phase selects which fixed duration applies.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Phase durations in seconds.
const (
	WorkSeconds  = 25 * 60
	BreakSeconds = 5 * 60
)

// Duration returns the total length of the phase in seconds.
func (phase Phase) Duration() int {
	if phase == PhaseBreak {
		return BreakSeconds
	}
	return WorkSeconds
}

// Next returns the phase that follows an expiry.
func (phase Phase) Next() Phase {
	if phase == PhaseWork {
		return PhaseBreak
	}
	return PhaseWork
}

// State is one immutable snapshot of the timer.
// Every transition returns a new value and leaves the receiver untouched.
type State struct {
	Phase             Phase
	Remaining         int
	Running           bool
	CompletedSessions int
}

// Initial returns an idle work phase with the full duration left.
func Initial() State {
	return State{
		Phase:     PhaseWork,
		Remaining: PhaseWork.Duration(),
	}
}

// Start moves an idle state into running.
func (state State) Start() State {
	if state.Running || state.Remaining <= 0 {
		return state
	}
	state.Running = true
	return state
}

// Pause stops the countdown and keeps the remaining time.
func (state State) Pause() State {
	state.Running = false
	return state
}

// Toggle pauses a running state and starts an idle one.
func (state State) Toggle() State {
	if state.Running {
		return state.Pause()
	}
	return state.Start()
}

// Reset stops the countdown and refills the current phase.
func (state State) Reset() State {
	state.Running = false
	state.Remaining = state.Phase.Duration()
	return state
}

// Tick decrements a running state by one second. It reports true when
// the decrement expired the phase, in which case the returned state is
// already idle in the next phase.
func (state State) Tick() (State, bool) {
	if !state.Running || state.Remaining <= 0 {
		return state, false
	}
	state.Remaining--
	if state.Remaining > 0 {
		return state, false
	}
	return state.expire(), true
}

func (state State) expire() State {
	if state.Phase == PhaseWork {
		state.CompletedSessions++
	}
	state.Phase = state.Phase.Next()
	state.Remaining = state.Phase.Duration()
	state.Running = false
	return state
}

// Validate reports whether the state satisfies the timer invariants.
func (state State) Validate() error {
	if state.Phase != PhaseWork && state.Phase != PhaseBreak {
		return fmt.Errorf("%w: unknown phase %q", ErrInvalidState, state.Phase)
	}
	if state.Remaining < 0 || state.Remaining > state.Phase.Duration() {
		return fmt.Errorf("%w: remaining %ds outside [0, %d]", ErrInvalidState, state.Remaining, state.Phase.Duration())
	}
	if state.Running && state.Remaining == 0 {
		return fmt.Errorf("%w: running with no time left", ErrInvalidState)
	}
	if state.CompletedSessions < 0 {
		return fmt.Errorf("%w: negative session count", ErrInvalidState)
	}
	return nil
}
