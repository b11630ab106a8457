package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStep(t *testing.T) {
	s := NewStepTPS(60)

	assert.Equal(t, time.Second/60, s.DT())
	assert.Equal(t, time.Duration(0), s.Now())

	for i := 0; i < 60; i++ {
		s.Tick()
	}
	assert.InDelta(t, float64(time.Second), float64(s.Now()), float64(time.Microsecond))
}

func TestPausable_FreezesWhilePaused(t *testing.T) {
	src := NewMock(0)
	p := NewPausable(src)

	src.Advance(2 * time.Second)
	assert.Equal(t, 2*time.Second, p.Now())

	p.Pause()
	src.Advance(10 * time.Second)
	assert.Equal(t, 2*time.Second, p.Now(), "frozen during pause")
	assert.Equal(t, 10*time.Second, p.TotalPaused())

	p.Resume()
	src.Advance(time.Second)
	assert.Equal(t, 3*time.Second, p.Now(), "paused time never counts")
}

func TestPausable_IdempotentTransitions(t *testing.T) {
	src := NewMock(0)
	p := NewPausable(src)

	p.Resume()
	assert.False(t, p.IsPaused())

	p.Pause()
	src.Advance(time.Second)
	p.Pause()
	src.Advance(time.Second)
	p.Resume()
	p.Resume()

	assert.Equal(t, 2*time.Second, p.TotalPaused())
	assert.Equal(t, time.Duration(0), p.Now())
}

func TestPausable_Toggle(t *testing.T) {
	p := NewPausable(NewMock(0))

	assert.True(t, p.Toggle())
	assert.True(t, p.IsPaused())
	assert.False(t, p.Toggle())
}

func TestMock(t *testing.T) {
	m := NewMock(time.Second)
	m.Advance(500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, m.Now())

	m.Set(0)
	assert.Equal(t, time.Duration(0), m.Now())
}
