package anim

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClip(frames int, delay time.Duration) *Clip {
	return NewClipWithDelay(make([]*ebiten.Image, frames), Right, delay)
}

func TestNewClip_DefaultDelay(t *testing.T) {
	c := NewClip(make([]*ebiten.Image, 8), Up)

	assert.Equal(t, time.Second/8, c.Delay())
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Completed())
	assert.Equal(t, Up, c.Direction)
	assert.Nil(t, c.Image(), "blank frames are nil")
}

func TestClip_AdvanceOneFramePerDelay(t *testing.T) {
	c := newTestClip(4, 50*time.Millisecond)

	c.Advance(0)
	assert.Equal(t, 0, c.Index(), "first call starts the timer")

	c.Advance(49 * time.Millisecond)
	assert.Equal(t, 0, c.Index())

	c.Advance(50 * time.Millisecond)
	assert.Equal(t, 1, c.Index())

	// A large gap still moves a single frame.
	c.Advance(time.Second)
	assert.Equal(t, 2, c.Index())
}

func TestClip_WrapMarksCompleted(t *testing.T) {
	c := newTestClip(3, 10*time.Millisecond)

	now := time.Duration(0)
	c.Advance(now)
	for i := 0; i < 2; i++ {
		now += 10 * time.Millisecond
		c.Advance(now)
	}
	require.Equal(t, 2, c.Index())
	assert.False(t, c.Completed())

	now += 10 * time.Millisecond
	c.Advance(now)
	assert.Equal(t, 0, c.Index())
	assert.True(t, c.Completed())
}

func TestClip_DisabledClipsNeverAdvance(t *testing.T) {
	tests := []struct {
		name string
		clip *Clip
	}{
		{"single frame", newTestClip(1, 10*time.Millisecond)},
		{"zero delay", newTestClip(4, 0)},
		{"negative delay", newTestClip(4, -time.Millisecond)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 10; i++ {
				tt.clip.Advance(time.Duration(i) * time.Second)
			}
			assert.Equal(t, 0, tt.clip.Index())
			assert.False(t, tt.clip.Completed())
		})
	}
}

func TestClip_PlayOnceStopsAfterCycle(t *testing.T) {
	c := newTestClip(2, 10*time.Millisecond)
	c.SetPlayOnce(true)

	c.Advance(0)
	c.Advance(10 * time.Millisecond)
	c.Advance(20 * time.Millisecond)
	require.True(t, c.Completed())

	c.Advance(30 * time.Millisecond)
	c.Advance(40 * time.Millisecond)
	assert.Equal(t, 0, c.Index())
}

func TestClip_Reset(t *testing.T) {
	c := newTestClip(2, 10*time.Millisecond)
	c.NextFrame()
	c.NextFrame()
	require.True(t, c.Completed())

	c.Reset()
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Completed())
}

func TestClip_NextFrame(t *testing.T) {
	c := newTestClip(3, time.Hour)

	c.NextFrame()
	assert.Equal(t, 1, c.Index())
	c.NextFrame()
	c.NextFrame()
	assert.Equal(t, 0, c.Index())
	assert.True(t, c.Completed())
}

func TestClip_EventFiresOnlyAtItsFrame(t *testing.T) {
	c := newTestClip(5, 10*time.Millisecond)
	c.RegisterEvent(3, EventStrike)

	var fired []int
	now := time.Duration(0)
	for i := 0; i < 12; i++ {
		if ev := c.Advance(now); ev != EventNone {
			assert.Equal(t, EventStrike, ev)
			fired = append(fired, c.Index())
		}
		now += 10 * time.Millisecond
	}

	require.NotEmpty(t, fired)
	for _, idx := range fired {
		assert.Equal(t, 2, idx, "frame 3 is index 2")
	}
}

func TestClip_EventOnWrapFrame(t *testing.T) {
	c := newTestClip(2, 10*time.Millisecond)
	c.RegisterEvent(1, EventRelease)

	assert.Equal(t, EventRelease, c.Advance(0))
	assert.Equal(t, EventNone, c.Advance(10*time.Millisecond))

	ev := c.Advance(20 * time.Millisecond)
	assert.True(t, c.Completed())
	assert.Equal(t, EventRelease, ev, "event bound to index 0 fires after the wrap")
}

func TestClip_RegisterEventOutOfRange(t *testing.T) {
	c := newTestClip(4, 10*time.Millisecond)

	assert.NotPanics(t, func() {
		c.RegisterEvent(0, EventStrike)
		c.RegisterEvent(-3, EventStrike)
		c.RegisterEvent(5, EventStrike)
	})

	for i := 0; i < c.Len(); i++ {
		assert.Equal(t, EventNone, c.EventAt(i))
	}

	c.RegisterEvent(4, EventStrike)
	assert.Equal(t, EventStrike, c.EventAt(3))
}

func TestClip_NextFrameSkipsRepeatedEvent(t *testing.T) {
	c := newTestClip(12, 50*time.Millisecond)
	c.RegisterEvent(10, EventRelease)
	for i := 0; i < 9; i++ {
		c.NextFrame()
	}

	count := 0
	for i := 0; i < 3; i++ {
		if c.Advance(time.Duration(i)*time.Millisecond) == EventRelease {
			count++
			c.NextFrame()
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 10, c.Index())
}

func TestDirection(t *testing.T) {
	assert.Equal(t, 0, Up.Row())
	assert.Equal(t, 3, Right.Row())
	assert.True(t, Left.Horizontal())
	assert.False(t, Down.Horizontal())
	assert.Equal(t, "Down", Down.String())
	assert.Equal(t, "Unknown", Direction(9).String())
}
