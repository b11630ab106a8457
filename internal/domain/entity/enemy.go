package entity

import (
	"time"

	"github.com/evince05/EternalCombat/internal/domain/anim"
)

// Frames of the skeleton sprite sheets.
const (
	walkFrames   = 8
	attackFrames = 7
	// strikeFrame is the 1-based frame of a melee clip that lands the blow.
	strikeFrame = 7
	// releaseFrame is the 1-based frame of the archer's clip that looses the arrow.
	releaseFrame = 9
)

// Enemy is a skeleton. The three variants share movement, scoring and
// drops; Kind selects the melee or ranged attack.
type Enemy struct {
	body   Body
	vitals Vitals
	kind   Kind
	stats  EnemyStats

	target    *Player
	facing    anim.Direction
	attacking bool
	spawnedAt time.Duration

	idle   [4]*anim.Clip
	walk   [4]*anim.Clip
	action [4]*anim.Clip

	sheets     anim.Sheets
	arrowStats ArrowStats
}

// NewSkeleton creates a melee skeleton.
func NewSkeleton(x, y int, target *Player, now time.Duration, sheets anim.Sheets, stats EnemyStats) *Enemy {
	return newMelee(KindSkeleton, SheetSkeletonWalk, SheetSkeletonAttack, x, y, target, now, sheets, stats)
}

// NewKnight creates a skeleton knight.
func NewKnight(x, y int, target *Player, now time.Duration, sheets anim.Sheets, stats EnemyStats) *Enemy {
	return newMelee(KindKnight, SheetKnightWalk, SheetKnightAttack, x, y, target, now, sheets, stats)
}

// NewArcher creates an archer skeleton. Its arrows carry arrows.Damage,
// not the archer's own damage stat.
func NewArcher(x, y int, target *Player, now time.Duration, sheets anim.Sheets, stats EnemyStats, arrows ArrowStats) *Enemy {
	e := newEnemy(KindArcher, sheets.Sheet(SheetArcherWalk), x, y, target, now, sheets, stats)
	e.arrowStats = arrows
	e.action = directionalClips(sheets.Sheet(SheetArcherShoot), 12)
	for _, c := range e.action {
		c.RegisterEvent(releaseFrame, anim.EventRelease)
	}
	return e
}

func newMelee(kind Kind, walkSheet, attackSheet string, x, y int, target *Player, now time.Duration, sheets anim.Sheets, stats EnemyStats) *Enemy {
	e := newEnemy(kind, sheets.Sheet(walkSheet), x, y, target, now, sheets, stats)
	e.action = directionalClips(sheets.Sheet(attackSheet), attackFrames)
	for _, c := range e.action {
		c.SetDelay(c.Delay() / 2)
		c.RegisterEvent(strikeFrame, anim.EventStrike)
	}
	return e
}

func newEnemy(kind Kind, walkSheet anim.Sheet, x, y int, target *Player, now time.Duration, sheets anim.Sheets, stats EnemyStats) *Enemy {
	w, h := walkSheet.CellSize()
	e := &Enemy{
		body:      Body{X: x, Y: y, W: w, H: h},
		vitals:    NewVitals(stats.MaxHealth, stats.Speed),
		kind:      kind,
		stats:     stats,
		target:    target,
		facing:    anim.Right,
		spawnedAt: now,
		idle:      idleClips(walkSheet),
		walk:      directionalClips(walkSheet, walkFrames),
		sheets:    sheets,
	}
	e.body.Clip = e.walk[anim.Right]
	return e
}

// Body implements Actor.
func (e *Enemy) Body() *Body { return &e.body }

// Kind implements Actor.
func (e *Enemy) Kind() Kind { return e.kind }

// Vitals implements Damageable.
func (e *Enemy) Vitals() *Vitals { return &e.vitals }

// TakeHit implements Damageable.
func (e *Enemy) TakeHit(amount int, _ time.Duration) {
	e.vitals.Damage(amount)
}

// Facing returns the current direction.
func (e *Enemy) Facing() anim.Direction { return e.facing }

// Attacking reports whether an attack or shot is in progress.
func (e *Enemy) Attacking() bool { return e.attacking }

// Stats returns the variant's stats.
func (e *Enemy) Stats() EnemyStats { return e.stats }

// Update implements Actor.
func (e *Enemy) Update(env Env, now time.Duration) {
	ev, inPlay := updateBody(env, e, now)
	switch ev {
	case anim.EventStrike:
		e.strike(now)
	case anim.EventRelease:
		e.release(env)
	}
	if !inPlay || checkDeath(env, e, now, e.onDeath) {
		return
	}

	if e.kind == KindArcher {
		e.updateRanged(now)
	} else {
		e.updateMelee(env, now)
	}
}

func (e *Enemy) updateMelee(env Env, now time.Duration) {
	if e.target == nil {
		return
	}
	dx := e.target.body.X - e.body.X
	dy := e.target.body.Y - e.body.Y
	reach := e.stats.Reach

	if dx >= -reach && dx <= reach && dy >= -reach && dy <= reach {
		if !e.attacking && e.target.CanBeHit(now) {
			e.attacking = true
			env.PlayCue(CueSword)
			e.body.SwitchClip(e.action[e.facing])
		}
		return
	}

	e.attacking = false
	e.chase()
}

// strike lands a melee blow. NextFrame keeps the same frame from
// striking twice.
func (e *Enemy) strike(now time.Duration) {
	if !e.attacking || e.target == nil {
		return
	}
	e.target.TakeHit(e.stats.Damage, now)
	e.body.Clip.NextFrame()
	if e.body.Clip.Completed() {
		e.setIdle()
		e.attacking = false
	}
}

func (e *Enemy) updateRanged(now time.Duration) {
	if e.attacking {
		if e.body.Clip.Completed() {
			e.body.Clip.Reset()
			e.setIdle()
			e.attacking = false
		}
		return
	}
	if e.target == nil {
		return
	}

	dx := e.target.body.X - e.body.X
	dy := e.target.body.Y - e.body.Y
	reach := e.stats.Reach
	if (dx == 0 && dy >= -reach && dy <= reach) || (dy == 0 && dx >= -reach && dx <= reach) {
		e.shoot(now)
	}

	if !e.attacking {
		e.chase()
	}
}

// shoot turns toward the target, horizontal first, and starts the
// shooting clip when the target can be hit.
func (e *Enemy) shoot(now time.Duration) {
	if !e.target.CanBeHit(now) {
		return
	}
	tx, ty := e.target.body.X, e.target.body.Y
	switch {
	case tx > e.body.X:
		e.facing = anim.Right
	case tx < e.body.X:
		e.facing = anim.Left
	case ty > e.body.Y:
		e.facing = anim.Down
	case ty < e.body.Y:
		e.facing = anim.Up
	}
	e.attacking = true
	e.body.SetClip(e.action[e.facing])
}

func (e *Enemy) release(env Env) {
	if !e.attacking || e.kind != KindArcher {
		return
	}
	dx, dy := arrowOffset(e.facing)
	env.Spawn(NewArrow(e, e.body.X+dx, e.body.Y+dy, e.facing, e.arrowStats.Damage, e.arrowStats.Velocity, e.sheets))
	env.PlayCue(CueShoot)
	e.body.Clip.NextFrame()
}

// chase takes one step toward the target. Aligned targets are approached
// along the shared line; otherwise the axis with the smaller gap is
// closed first, and a tie moves horizontally.
func (e *Enemy) chase() {
	if e.target == nil {
		return
	}
	tx, ty := e.target.body.X, e.target.body.Y
	switch {
	case ty == e.body.Y:
		e.stepX(tx)
	case tx == e.body.X:
		e.stepY(ty)
	case abs(e.body.X-tx) > abs(e.body.Y-ty):
		e.stepY(ty)
	default:
		e.stepX(tx)
	}
}

func (e *Enemy) stepX(tx int) {
	switch {
	case tx > e.body.X:
		e.walkTo(anim.Right)
		e.body.X += e.vitals.Speed
	case tx < e.body.X:
		e.walkTo(anim.Left)
		e.body.X -= e.vitals.Speed
	}
}

func (e *Enemy) stepY(ty int) {
	switch {
	case ty > e.body.Y:
		e.walkTo(anim.Down)
		e.body.Y += e.vitals.Speed
	case ty < e.body.Y:
		e.walkTo(anim.Up)
		e.body.Y -= e.vitals.Speed
	}
}

func (e *Enemy) walkTo(dir anim.Direction) {
	e.facing = dir
	e.body.SetClip(e.walk[dir])
}

func (e *Enemy) setIdle() {
	e.body.SetClip(e.idle[e.facing])
}

// KillScore is the score for a kill at now: the base score minus one
// point per full 30 seconds alive, never below zero.
func (e *Enemy) KillScore(now time.Duration) int {
	alive := now - e.spawnedAt
	if alive < 0 {
		alive = 0
	}
	score := e.stats.BaseScore - int(alive/(30*time.Second))
	if score < 0 {
		return 0
	}
	return score
}

func (e *Enemy) onDeath(env Env, now time.Duration) {
	score := e.KillScore(now)
	if e.target != nil {
		e.target.Score += score
	}
	env.EnemyKilled(e, score, now)
	e.dropPowerup(env, now)
}

// dropPowerup rolls the drop table once and spawns at most one powerup
// at the skeleton's feet.
func (e *Enemy) dropPowerup(env Env, now time.Duration) {
	roll := env.Roll()
	for _, d := range e.stats.Drops {
		if roll <= d.UpTo {
			env.SpawnPowerup(NewPowerup(d.Type, e.body.X+e.body.W/2, e.body.Y+e.body.H-16, now, e.sheets))
			return
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
