package entity

import (
	"time"

	"github.com/evince05/EternalCombat/internal/domain/anim"
)

// PlayerState is the player's control state.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerWalking
	PlayerShooting
)

// String returns the string representation of the player state
func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "Idle"
	case PlayerWalking:
		return "Walking"
	case PlayerShooting:
		return "Shooting"
	default:
		return "Unknown"
	}
}

// Controls is the player's input for one tick. Movement is read in the
// order Up, Left, Down, Right and the first held direction wins.
type Controls struct {
	Up, Left, Down, Right bool
	Shoot                 bool
}

// Direction returns the highest-priority held direction.
func (c Controls) Direction() (anim.Direction, bool) {
	switch {
	case c.Up:
		return anim.Up, true
	case c.Left:
		return anim.Left, true
	case c.Down:
		return anim.Down, true
	case c.Right:
		return anim.Right, true
	}
	return anim.Right, false
}

// shootFrame is the 1-based frame of the shooting clip that looses the arrow.
const shootFrame = 10

// Player is the archer controlled by the user.
type Player struct {
	body   Body
	vitals Vitals
	stats  PlayerStats

	Ammo    int
	MaxAmmo int
	Score   int
	Damage  int
	Facing  anim.Direction

	state    PlayerState
	controls Controls

	hitCooldown time.Duration
	lastHit     time.Duration
	wasHit      bool

	idle  [4]*anim.Clip
	walk  [4]*anim.Clip
	shoot [4]*anim.Clip

	sheets     anim.Sheets
	arrowStats ArrowStats
}

// NewPlayer creates a player at (x, y) facing right.
func NewPlayer(x, y int, sheets anim.Sheets, stats PlayerStats, arrows ArrowStats) *Player {
	walkSheet := sheets.Sheet(SheetPlayerWalk)
	shootSheet := sheets.Sheet(SheetPlayerShoot)
	w, h := walkSheet.CellSize()

	p := &Player{
		body:        Body{X: x, Y: y, W: w, H: h},
		vitals:      NewVitals(stats.MaxHealth, stats.Speed),
		stats:       stats,
		Ammo:        stats.MaxAmmo,
		MaxAmmo:     stats.MaxAmmo,
		Damage:      stats.Damage,
		Facing:      anim.Right,
		hitCooldown: stats.HitCooldown,
		idle:        idleClips(walkSheet),
		walk:        directionalClips(walkSheet, 8),
		shoot:       directionalClips(shootSheet, 12),
		sheets:      sheets,
		arrowStats:  arrows,
	}
	for _, c := range p.shoot {
		c.SetDelay(stats.ShootDelay)
		c.RegisterEvent(shootFrame, anim.EventRelease)
	}
	p.body.Clip = p.idle[anim.Right]
	return p
}

// Body implements Actor.
func (p *Player) Body() *Body { return &p.body }

// Kind implements Actor.
func (p *Player) Kind() Kind { return KindPlayer }

// Vitals implements Damageable.
func (p *Player) Vitals() *Vitals { return &p.vitals }

// State returns the control state.
func (p *Player) State() PlayerState { return p.state }

// SetControls stores the input the next Update will act on.
func (p *Player) SetControls(c Controls) { p.controls = c }

// Stats returns the starting stats.
func (p *Player) Stats() PlayerStats { return p.stats }

// TakeHit applies damage and restarts the hit cooldown.
func (p *Player) TakeHit(amount int, now time.Duration) {
	p.vitals.Damage(amount)
	p.lastHit = now
	p.wasHit = true
}

// CanBeHit reports whether the hit cooldown has elapsed. Contact
// attackers check it before swinging; arrows ignore it.
func (p *Player) CanBeHit(now time.Duration) bool {
	return !p.wasHit || now-p.lastHit >= p.hitCooldown
}

// Update implements Actor.
func (p *Player) Update(env Env, now time.Duration) {
	ev, inPlay := updateBody(env, p, now)
	if ev == anim.EventRelease && p.state == PlayerShooting {
		p.release(env)
	}
	if !inPlay || checkDeath(env, p, now, p.onDeath) {
		return
	}

	if p.state == PlayerShooting {
		if p.body.Clip.Completed() {
			p.body.Clip.Reset()
			p.setIdle()
		}
		return
	}

	moved := false
	if dir, ok := p.controls.Direction(); ok {
		p.Facing = dir
		if p.body.Move(env.MapBounds(), dir, p.vitals.Speed) {
			p.body.SwitchClip(p.walk[dir])
			p.state = PlayerWalking
			moved = true
		}
	}
	if !moved {
		if p.state != PlayerIdle || p.body.Clip != p.idle[p.Facing] {
			p.body.Clip.Reset()
		}
		p.setIdle()
	}

	if p.controls.Shoot && !moved && p.Ammo > 0 {
		p.state = PlayerShooting
		p.body.SetClip(p.shoot[p.Facing])
	}
}

func (p *Player) setIdle() {
	p.state = PlayerIdle
	p.body.SetClip(p.idle[p.Facing])
}

// release looses an arrow from the current shooting frame.
func (p *Player) release(env Env) {
	if p.Ammo <= 0 {
		return
	}
	dx, dy := arrowOffset(p.Facing)
	env.Spawn(NewArrow(p, p.body.X+dx, p.body.Y+dy, p.Facing, p.Damage, p.arrowStats.Velocity, p.sheets))
	env.PlayCue(CueShoot)
	p.body.Clip.NextFrame()
	p.Ammo--
}

func (p *Player) onDeath(env Env, now time.Duration) {
	env.PlayCue(CueGameOver)
	env.PlayerKilled(now)
}

// SetShootDelay changes the frame delay of every shooting clip.
func (p *Player) SetShootDelay(d time.Duration) {
	for _, c := range p.shoot {
		c.SetDelay(d)
	}
}

// ShootDelay returns the current shooting frame delay.
func (p *Player) ShootDelay() time.Duration {
	return p.shoot[anim.Right].Delay()
}

// RefillAmmo fills ammo to the cap.
func (p *Player) RefillAmmo() { p.Ammo = p.MaxAmmo }

// RaiseMaxAmmo grows the ammo cap by n and refills.
func (p *Player) RaiseMaxAmmo(n int) {
	p.MaxAmmo += n
	p.RefillAmmo()
}
