// Package clock provides the simulation time sources.
//
// Simulation time is a time.Duration measured from the start of a run.
// Everything in the game core receives it explicitly, so tests can drive
// time by hand and replays stay deterministic.
package clock

import "time"

// TimeProvider reports elapsed simulation time.
type TimeProvider interface {
	Now() time.Duration
}

// Step is a fixed-timestep time source. It only moves when Tick is
// called, once per game loop update.
type Step struct {
	now time.Duration
	dt  time.Duration
}

// NewStep creates a step clock advancing by dt per tick.
func NewStep(dt time.Duration) *Step {
	return &Step{dt: dt}
}

// NewStepTPS creates a step clock for the given ticks per second.
func NewStepTPS(tps int) *Step {
	return NewStep(time.Second / time.Duration(tps))
}

// Tick advances the clock by one step and returns the new time.
func (s *Step) Tick() time.Duration {
	s.now += s.dt
	return s.now
}

// Now returns the current time.
func (s *Step) Now() time.Duration { return s.now }

// DT returns the step size.
func (s *Step) DT() time.Duration { return s.dt }

// Wall reports real elapsed time since it was created.
type Wall struct {
	start time.Time
}

// NewWall creates a wall clock starting now.
func NewWall() *Wall {
	return &Wall{start: time.Now()}
}

// Now returns the monotonic time elapsed since creation.
func (w *Wall) Now() time.Duration {
	return time.Since(w.start)
}
