package entity

import (
	"time"
)

// Env is everything an entity may ask of the world it lives in.
// Requests made during an update pass take effect at the end of the tick.
type Env interface {
	// Spawn adds an actor to the live set.
	Spawn(a Actor)
	// Destroy marks an actor for removal. Repeated calls are harmless.
	Destroy(a Actor)
	// SpawnPowerup adds a powerup.
	SpawnPowerup(p *Powerup)
	// DestroyPowerup marks a powerup for removal.
	DestroyPowerup(p *Powerup)
	// EachActor visits the live actors in update order until fn returns false.
	EachActor(fn func(a Actor) bool)

	// Player returns the player, or nil once it is gone.
	Player() *Player
	// CameraBounds is the visible world; leaving it (plus own size) culls.
	CameraBounds() Rect
	// MapBounds is the walkable area.
	MapBounds() Rect

	// Roll returns a uniform integer in [1, 100].
	Roll() int
	// PlayCue fires a sound effect without waiting for it.
	PlayCue(c Cue)

	// EnemyKilled reports an enemy death and the score it awarded.
	EnemyKilled(e *Enemy, score int, now time.Duration)
	// PlayerKilled reports the player's death.
	PlayerKilled(now time.Duration)
	// PowerupClaimed reports that the player picked up a powerup.
	PowerupClaimed(p *Powerup, now time.Duration)
}
