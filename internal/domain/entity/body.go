package entity

import (
	"time"

	"github.com/evince05/EternalCombat/internal/domain/anim"
	"github.com/evince05/EternalCombat/internal/ecs"
)

// Actor is a live object updated once per tick.
type Actor interface {
	Body() *Body
	Kind() Kind
	Update(env Env, now time.Duration)
}

// Body is the positioned, animated part shared by every actor.
type Body struct {
	X, Y   int
	W, H   int
	Clip   *anim.Clip
	Handle ecs.Handle
}

// Bounds returns the body's rectangle.
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Center returns the centre point.
func (b *Body) Center() (int, int) {
	return b.X + b.W/2, b.Y + b.H/2
}

// SetClip switches to c without resetting either clip.
func (b *Body) SetClip(c *anim.Clip) {
	b.Clip = c
}

// SwitchClip resets c when it differs from the current clip, then
// switches to it.
func (b *Body) SwitchClip(c *anim.Clip) {
	if b.Clip != c {
		c.Reset()
	}
	b.Clip = c
}

// OutsideOf reports whether the body has left r expanded by its own size.
func (b *Body) OutsideOf(r Rect) bool {
	return b.X < r.X-b.W || b.X > r.MaxX()+b.W ||
		b.Y < r.Y-b.H || b.Y > r.MaxY()+b.H
}

// MoveUp moves up by speed if the result stays within bounds.
func (b *Body) MoveUp(bounds Rect, speed int) bool {
	if b.Y-speed < bounds.Y {
		return false
	}
	b.Y -= speed
	return true
}

// MoveDown moves down by speed if the result stays within bounds.
func (b *Body) MoveDown(bounds Rect, speed int) bool {
	if b.Y+speed > bounds.MaxY() {
		return false
	}
	b.Y += speed
	return true
}

// MoveLeft moves left by speed if the result stays within bounds.
func (b *Body) MoveLeft(bounds Rect, speed int) bool {
	if b.X-speed < bounds.X {
		return false
	}
	b.X -= speed
	return true
}

// MoveRight moves right by speed if the result stays within bounds.
func (b *Body) MoveRight(bounds Rect, speed int) bool {
	if b.X+speed > bounds.MaxX() {
		return false
	}
	b.X += speed
	return true
}

// Move moves one step in dir within bounds.
func (b *Body) Move(bounds Rect, dir anim.Direction, speed int) bool {
	switch dir {
	case anim.Up:
		return b.MoveUp(bounds, speed)
	case anim.Left:
		return b.MoveLeft(bounds, speed)
	case anim.Down:
		return b.MoveDown(bounds, speed)
	case anim.Right:
		return b.MoveRight(bounds, speed)
	}
	return false
}

// updateBody advances the actor's clip and culls it once it has left the
// camera bounds. It returns the frame event to dispatch and whether the
// actor is still in play.
func updateBody(env Env, a Actor, now time.Duration) (anim.Event, bool) {
	b := a.Body()
	ev := anim.EventNone
	if b.Clip != nil {
		ev = b.Clip.Advance(now)
	}

	if b.OutsideOf(env.CameraBounds()) {
		env.Destroy(a)
		return ev, false
	}
	return ev, true
}

// directionalClips builds one clip per direction from consecutive sheet
// rows, with frames [0, frames) of each row.
func directionalClips(sheet anim.Sheet, frames int) [4]*anim.Clip {
	var clips [4]*anim.Clip
	for _, d := range anim.Directions {
		clips[d] = anim.NewClip(sheet.FrameRange(d.Row(), 0, frames-1), d)
	}
	return clips
}

// idleClips builds single-frame clips from row 0 of a walking sheet,
// one column per direction.
func idleClips(sheet anim.Sheet) [4]*anim.Clip {
	var clips [4]*anim.Clip
	for _, d := range anim.Directions {
		clips[d] = anim.NewClip(sheet.FrameRange(0, d.Row(), d.Row()), d)
	}
	return clips
}

// arrowOffset is where an arrow leaves a 64x64 shooter, per direction.
func arrowOffset(dir anim.Direction) (dx, dy int) {
	switch dir {
	case anim.Up:
		return 28, -10
	case anim.Left:
		return -32, 29
	case anim.Down:
		return 28, 10
	default:
		return 32, 29
	}
}
