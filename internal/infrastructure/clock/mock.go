package clock

import "time"

// Mock is a hand-driven time source for tests.
type Mock struct {
	now time.Duration
}

// NewMock creates a mock clock at start.
func NewMock(start time.Duration) *Mock {
	return &Mock{now: start}
}

// Now returns the mocked time.
func (m *Mock) Now() time.Duration { return m.now }

// Set moves the clock to t.
func (m *Mock) Set(t time.Duration) { m.now = t }

// Advance moves the clock forward by d.
func (m *Mock) Advance(d time.Duration) { m.now += d }
