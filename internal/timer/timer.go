// Package timer implements the single-session countdown state machine.
// The timer never touches the wall clock; the caller drives it with
// explicit one-second ticks, which keeps tests deterministic.
package timer

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("timer: invalid transition")

type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
	StateCancelled State = "cancelled"
)

// Timer counts a session down from a fixed number of seconds. There is no
// path out of Completed or Cancelled except Reset; a new session always
// starts fresh from Idle.
type Timer struct {
	state     State
	remaining int
	total     int
}

func New(totalSeconds int) *Timer {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return &Timer{state: StateIdle, remaining: totalSeconds, total: totalSeconds}
}

func (t *Timer) State() State   { return t.state }
func (t *Timer) Remaining() int { return t.remaining }
func (t *Timer) Total() int     { return t.total }

// Progress reports elapsed fraction in [0,1] for rendering.
func (t *Timer) Progress() float64 {
	if t.total <= 0 {
		return 0
	}
	p := float64(t.total-t.remaining) / float64(t.total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Start begins the countdown from Idle.
func (t *Timer) Start() error {
	if t.state != StateIdle {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, t.state)
	}
	t.state = StateRunning
	return nil
}

// Toggle flips Running and Paused; any other state is a no-op.
func (t *Timer) Toggle() {
	switch t.state {
	case StateRunning:
		t.state = StatePaused
	case StatePaused:
		t.state = StateRunning
	}
}

// Tick advances the countdown by one second. It only advances in Running
// and reports true exactly once, on the tick that reaches zero.
func (t *Timer) Tick() bool {
	if t.state != StateRunning {
		return false
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		t.state = StateCompleted
		return true
	}
	return false
}

// Cancel aborts a running or paused session.
func (t *Timer) Cancel() error {
	if t.state != StateRunning && t.state != StatePaused {
		return fmt.Errorf("%w: cancel from %s", ErrInvalidTransition, t.state)
	}
	t.state = StateCancelled
	return nil
}

// Reset returns the timer to Idle with a fresh duration.
func (t *Timer) Reset(totalSeconds int) {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	t.state = StateIdle
	t.remaining = totalSeconds
	t.total = totalSeconds
}
