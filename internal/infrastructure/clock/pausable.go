package clock

import "time"

// Pausable hides paused intervals of its source. While paused Now is
// frozen; after Resume it continues from the frozen value, so no time
// spent paused counts toward any timer based on it.
type Pausable struct {
	source      TimeProvider
	paused      bool
	pauseStart  time.Duration
	totalPaused time.Duration
}

// NewPausable wraps source.
func NewPausable(source TimeProvider) *Pausable {
	return &Pausable{source: source}
}

// Now returns source time minus every paused interval.
func (p *Pausable) Now() time.Duration {
	if p.paused {
		return p.pauseStart - p.totalPaused
	}
	return p.source.Now() - p.totalPaused
}

// Pause freezes Now. Pausing twice is a no-op.
func (p *Pausable) Pause() {
	if p.paused {
		return
	}
	p.paused = true
	p.pauseStart = p.source.Now()
}

// Resume unfreezes Now. Resuming a running clock is a no-op.
func (p *Pausable) Resume() {
	if !p.paused {
		return
	}
	p.totalPaused += p.source.Now() - p.pauseStart
	p.paused = false
}

// Toggle flips the pause state and reports whether the clock is now paused.
func (p *Pausable) Toggle() bool {
	if p.paused {
		p.Resume()
	} else {
		p.Pause()
	}
	return p.paused
}

// IsPaused returns the current pause state.
func (p *Pausable) IsPaused() bool { return p.paused }

// TotalPaused returns the cumulative paused time, the current pause included.
func (p *Pausable) TotalPaused() time.Duration {
	total := p.totalPaused
	if p.paused {
		total += p.source.Now() - p.pauseStart
	}
	return total
}
