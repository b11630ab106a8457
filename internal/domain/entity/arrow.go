package entity

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/evince05/EternalCombat/internal/domain/anim"
)

// Arrow flies in a straight line until it hits a combatant or leaves
// the camera bounds.
type Arrow struct {
	body     Body
	source   Actor
	dir      anim.Direction
	velocity int
	Damage   int
}

// NewArrow creates an arrow at (x, y). The source is never hit by its
// own arrow.
func NewArrow(source Actor, x, y int, dir anim.Direction, damage, velocity int, sheets anim.Sheets) *Arrow {
	var sheet anim.Sheet
	var frame *ebiten.Image
	if dir.Horizontal() {
		sheet = sheets.Sheet(SheetArrowHorizontal)
		if dir == anim.Left {
			frame = sheet.Frame(0, 0)
		} else {
			frame = sheet.Frame(1, 0)
		}
	} else {
		sheet = sheets.Sheet(SheetArrowVertical)
		if dir == anim.Up {
			frame = sheet.Frame(0, 1)
		} else {
			frame = sheet.Frame(0, 0)
		}
	}
	w, h := sheet.CellSize()

	return &Arrow{
		body: Body{
			X: x, Y: y, W: w, H: h,
			Clip: anim.NewClip([]*ebiten.Image{frame}, dir),
		},
		source:   source,
		dir:      dir,
		velocity: velocity,
		Damage:   damage,
	}
}

// Body implements Actor.
func (a *Arrow) Body() *Body { return &a.body }

// Kind implements Actor.
func (a *Arrow) Kind() Kind { return KindArrow }

// Source returns the actor that fired the arrow.
func (a *Arrow) Source() Actor { return a.source }

// Direction returns the flight direction.
func (a *Arrow) Direction() anim.Direction { return a.dir }

// Update implements Actor.
func (a *Arrow) Update(env Env, now time.Duration) {
	if _, inPlay := updateBody(env, a, now); !inPlay {
		return
	}

	switch a.dir {
	case anim.Up:
		a.body.Y -= a.velocity
	case anim.Left:
		a.body.X -= a.velocity
	case anim.Down:
		a.body.Y += a.velocity
	case anim.Right:
		a.body.X += a.velocity
	}

	bounds := a.body.Bounds()
	env.EachActor(func(other Actor) bool {
		if other == a || other == a.source {
			return true
		}
		target, ok := other.(Damageable)
		if !ok || !target.Vitals().IsAlive() {
			return true
		}
		if !bounds.Intersects(other.Body().Bounds()) {
			return true
		}
		env.PlayCue(CueArrowHit)
		target.TakeHit(a.Damage, now)
		env.Destroy(a)
		return false
	})
}
