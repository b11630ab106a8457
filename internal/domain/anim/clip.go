// Package anim provides sprite animation clips: a timed frame sequence
// with optional events bound to individual frames.
package anim

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Clip is one logical animation, e.g. "player walking up".
//
// The clip is driven by an explicit clock: Advance receives the current
// simulation time and moves at most one frame per call.
type Clip struct {
	frames    []*ebiten.Image
	events    []Event
	delay     time.Duration
	index     int
	last      time.Duration
	armed     bool
	completed bool
	playOnce  bool

	// Direction is informational; the clip never reads it.
	Direction Direction
}

// NewClip creates a clip whose delay defaults to one second spread over
// its frames.
func NewClip(frames []*ebiten.Image, dir Direction) *Clip {
	c := &Clip{
		frames:    frames,
		events:    make([]Event, len(frames)),
		Direction: dir,
	}
	if len(frames) > 0 {
		c.delay = time.Second / time.Duration(len(frames))
	}
	return c
}

// NewClipWithDelay creates a clip with an explicit per-frame delay.
func NewClipWithDelay(frames []*ebiten.Image, dir Direction, delay time.Duration) *Clip {
	c := NewClip(frames, dir)
	c.delay = delay
	return c
}

// disabled reports whether Advance is a no-op for this clip.
func (c *Clip) disabled() bool {
	return len(c.frames) <= 1 || c.delay <= 0 || (c.playOnce && c.completed)
}

// Advance moves the clip forward when a full delay has elapsed since the
// last frame change and returns the event bound to the current frame.
// The event is reported on every enabled call, not only on frame changes.
func (c *Clip) Advance(now time.Duration) Event {
	if c.disabled() {
		return EventNone
	}

	if !c.armed {
		c.armed = true
		c.last = now
	} else if now-c.last >= c.delay {
		c.step()
		c.last = now
	}

	return c.events[c.index]
}

// NextFrame immediately moves to the next frame, wrapping and marking the
// cycle complete past the last one. Event handlers call it so the same
// event cannot fire twice for one logical frame.
func (c *Clip) NextFrame() {
	if len(c.frames) == 0 {
		return
	}
	c.step()
}

func (c *Clip) step() {
	c.index++
	if c.index >= len(c.frames) {
		c.index = 0
		c.completed = true
	}
}

// Reset rewinds to the first frame and clears the completed flag.
// The frame timer restarts on the next Advance.
func (c *Clip) Reset() {
	c.index = 0
	c.completed = false
	c.armed = false
}

// RegisterEvent binds ev to the 1-based frame number. Frames outside
// [1, Len()] are ignored.
func (c *Clip) RegisterEvent(frame int, ev Event) {
	if frame <= 0 || frame > len(c.frames) {
		return
	}
	c.events[frame-1] = ev
}

// EventAt returns the event stored at the 0-based index.
func (c *Clip) EventAt(index int) Event {
	if index < 0 || index >= len(c.events) {
		return EventNone
	}
	return c.events[index]
}

// Image returns the current frame, which may be nil.
func (c *Clip) Image() *ebiten.Image {
	if len(c.frames) == 0 {
		return nil
	}
	return c.frames[c.index]
}

// Index returns the current 0-based frame index.
func (c *Clip) Index() int { return c.index }

// Len returns the number of frames.
func (c *Clip) Len() int { return len(c.frames) }

// Completed reports whether the clip has wrapped at least once since the
// last Reset.
func (c *Clip) Completed() bool { return c.completed }

// Delay returns the per-frame delay.
func (c *Clip) Delay() time.Duration { return c.delay }

// SetDelay overrides the per-frame delay.
func (c *Clip) SetDelay(d time.Duration) { c.delay = d }

// SetPlayOnce stops the clip after its first full cycle.
func (c *Clip) SetPlayOnce(once bool) { c.playOnce = once }
