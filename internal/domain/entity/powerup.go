package entity

import (
	"time"

	"github.com/evince05/EternalCombat/internal/domain/anim"
	"github.com/evince05/EternalCombat/internal/ecs"
)

// PowerupType enumerates the powerups skeletons can drop.
type PowerupType int

const (
	PowerupHaste PowerupType = iota
	PowerupMaxHealth
	PowerupMaxAmmo
	PowerupStrength
)

// PowerupTypes lists every type.
var PowerupTypes = []PowerupType{PowerupHaste, PowerupMaxHealth, PowerupMaxAmmo, PowerupStrength}

// String returns the string representation of the powerup type
func (t PowerupType) String() string {
	switch t {
	case PowerupHaste:
		return "haste"
	case PowerupMaxHealth:
		return "maxhealth"
	case PowerupMaxAmmo:
		return "maxammo"
	case PowerupStrength:
		return "strength"
	default:
		return "unknown"
	}
}

// ParsePowerupType is the inverse of String.
func ParsePowerupType(s string) (PowerupType, bool) {
	for _, t := range PowerupTypes {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

// Powerup is a pickup lying on the map. Overlapping the player applies
// its effect. Timed effects are reverted when they run out.
type Powerup struct {
	body Body
	Type PowerupType

	spawnedAt   time.Duration
	activatedAt time.Duration
	active      bool
	gone        bool

	// duration and maxIdle are set by the world from PowerupStats.
	duration time.Duration
	maxIdle  time.Duration
}

// NewPowerup creates a dormant powerup at (x, y) using the stock
// durations. The world applies configured ones with Configure.
func NewPowerup(t PowerupType, x, y int, now time.Duration, sheets anim.Sheets) *Powerup {
	sheet := sheets.Sheet(SheetPowerupPrefix + t.String())
	w, h := sheet.CellSize()
	p := &Powerup{
		body: Body{
			X: x, Y: y, W: w, H: h,
			Clip: anim.NewClip(sheet.FrameRange(0, 0, 0), anim.Right),
		},
		Type:      t,
		spawnedAt: now,
	}
	p.Configure(DefaultPowerupStats())
	return p
}

// Configure sets the effect duration and idle lifetime.
func (p *Powerup) Configure(stats PowerupStats) {
	p.duration = stats.Durations[p.Type]
	p.maxIdle = stats.MaxIdle
}

// Body returns the powerup's body.
func (p *Powerup) Body() *Body { return &p.body }

// Handle returns the world slot of the powerup.
func (p *Powerup) Handle() ecs.Handle { return p.body.Handle }

// Active reports whether the effect is applied.
func (p *Powerup) Active() bool { return p.active }

// Duration returns how long the effect lasts; zero means instant.
func (p *Powerup) Duration() time.Duration { return p.duration }

// Update runs the dormant/active/expired cycle.
func (p *Powerup) Update(env Env, now time.Duration) {
	if p.gone {
		return
	}
	player := env.Player()

	switch {
	case !p.active:
		if player != nil && p.body.Bounds().Intersects(player.body.Bounds()) {
			p.active = true
			p.activatedAt = now
			p.apply(player)
			env.PlayCue(CuePowerup)
			env.PowerupClaimed(p, now)
			if p.duration <= 0 {
				p.remove(env)
				return
			}
		}
	case p.duration > 0 && now-p.activatedAt >= p.duration:
		p.revert(player)
		p.remove(env)
		return
	}

	if now-p.spawnedAt >= p.maxIdle {
		if p.active {
			p.revert(player)
		}
		p.remove(env)
	}
}

func (p *Powerup) remove(env Env) {
	p.gone = true
	env.DestroyPowerup(p)
}

func (p *Powerup) apply(player *Player) {
	switch p.Type {
	case PowerupHaste:
		player.SetShootDelay(player.stats.ShootDelay / 2)
	case PowerupMaxHealth:
		player.vitals.Fill()
	case PowerupMaxAmmo:
		player.RefillAmmo()
	case PowerupStrength:
		player.Damage = player.stats.Damage * 2
	}
}

func (p *Powerup) revert(player *Player) {
	if player == nil {
		return
	}
	switch p.Type {
	case PowerupHaste:
		player.SetShootDelay(player.stats.ShootDelay)
	case PowerupStrength:
		player.Damage = player.stats.Damage
	}
}
