// Package loop drives a frame function through a host provided frame pacer.
//
// The loop has no notion of wall-clock time: every iteration counts as exactly
// one simulation step, whatever the real interval between two refreshes was.
package loop

import "errors"

// ErrNoScheduler is returned when a loop is created without a scheduler or frame function.
var ErrNoScheduler = errors.New("loop: missing scheduler or frame function")

// Scheduler is the host frame-pacing primitive.
// Next arranges for fn to be called once, on the next display refresh.
type Scheduler interface {
	Next(fn func())
}

// State of the animation loop.
type State int

const (
	Stopped State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "unknown"
}

// Loop repeatedly runs a frame function, rescheduling itself after each iteration.
// It is not safe for concurrent use: all methods must be called from the
// goroutine the scheduler fires callbacks on.
type Loop struct {
	sched   Scheduler
	frame   func()
	state   State
	pending bool
	frames  uint64
}

// New creates a stopped loop.
func New(s Scheduler, frame func()) (*Loop, error) {
	if s == nil || frame == nil {
		return nil, ErrNoScheduler
	}
	return &Loop{sched: s, frame: frame}, nil
}

// Start begins the animation. Starting a running loop does nothing.
func (l *Loop) Start() {
	if l.state == Running {
		return
	}
	l.state = Running
	l.schedule()
}

// Stop halts the loop. A callback which is already scheduled becomes a no-op.
func (l *Loop) Stop() {
	l.state = Stopped
}

// Pause suspends a running loop, e.g. when the surface is hidden.
func (l *Loop) Pause() {
	if l.state == Running {
		l.state = Paused
	}
}

// Resume continues a paused loop.
func (l *Loop) Resume() {
	if l.state == Paused {
		l.state = Running
		l.schedule()
	}
}

// Step runs a single frame synchronously, whatever the loop state is.
func (l *Loop) Step() {
	l.frame()
	l.frames++
}

// State returns the current loop state.
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of frames executed so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}

func (l *Loop) schedule() {
	if l.pending {
		return
	}
	l.pending = true
	l.sched.Next(l.iterate)
}

func (l *Loop) iterate() {
	l.pending = false
	if l.state != Running {
		return
	}
	l.Step()
	l.schedule()
}
