package entity

import (
	"time"

	"github.com/evince05/EternalCombat/internal/domain/anim"
)

// fakeEnv is a minimal world for entity tests. Spawned actors join the
// live list immediately; destroyed ones are only recorded.
type fakeEnv struct {
	actors     []Actor
	destroyed  map[Actor]int
	powerups   []*Powerup
	removedPU  map[*Powerup]int
	player     *Player
	camera     Rect
	bounds     Rect
	rolls      []int
	cues       []Cue
	kills      []int
	playerDied bool
	claimed    []PowerupType
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{
		destroyed: map[Actor]int{},
		removedPU: map[*Powerup]int{},
		camera:    Rect{X: 0, Y: 0, W: 2336, H: 1536},
		bounds:    Rect{X: 191, Y: 191, W: 1953, H: 1152},
	}
}

func (f *fakeEnv) Spawn(a Actor)                { f.actors = append(f.actors, a) }
func (f *fakeEnv) Destroy(a Actor)              { f.destroyed[a]++ }
func (f *fakeEnv) SpawnPowerup(p *Powerup)      { f.powerups = append(f.powerups, p) }
func (f *fakeEnv) DestroyPowerup(p *Powerup)    { f.removedPU[p]++ }
func (f *fakeEnv) Player() *Player              { return f.player }
func (f *fakeEnv) CameraBounds() Rect           { return f.camera }
func (f *fakeEnv) MapBounds() Rect              { return f.bounds }
func (f *fakeEnv) PlayCue(c Cue)                { f.cues = append(f.cues, c) }
func (f *fakeEnv) PlayerKilled(_ time.Duration) { f.playerDied = true }

func (f *fakeEnv) PowerupClaimed(p *Powerup, _ time.Duration) {
	f.claimed = append(f.claimed, p.Type)
}

func (f *fakeEnv) EnemyKilled(_ *Enemy, score int, _ time.Duration) {
	f.kills = append(f.kills, score)
}

func (f *fakeEnv) EachActor(fn func(a Actor) bool) {
	for _, a := range f.actors {
		if !fn(a) {
			return
		}
	}
}

func (f *fakeEnv) Roll() int {
	if len(f.rolls) == 0 {
		return 100
	}
	r := f.rolls[0]
	f.rolls = f.rolls[1:]
	return r
}

func (f *fakeEnv) arrows() []*Arrow {
	var out []*Arrow
	for _, a := range f.actors {
		if arrow, ok := a.(*Arrow); ok {
			out = append(out, arrow)
		}
	}
	return out
}

// testSheets gives every sheet its real cell size with nil frames.
func testSheets() anim.Sheets {
	return anim.BlankSheets{
		Sizes: map[string]anim.BlankSheet{
			SheetArrowVertical:   {W: 6, H: 30},
			SheetArrowHorizontal: {W: 30, H: 6},
		},
		Default: anim.BlankSheet{W: 64, H: 64},
	}
}

func newTestPlayer(f *fakeEnv) *Player {
	p := NewPlayer(600, 600, testSheets(), DefaultPlayerStats(), DefaultArrowStats())
	f.player = p
	f.actors = append(f.actors, p)
	return p
}

// tick is one frame at 60 ticks per second.
const tick = time.Second / 60

// runUntil updates a until cond holds or limit ticks pass and returns
// the final time.
func runUntil(f *fakeEnv, a Actor, now time.Duration, limit int, cond func() bool) time.Duration {
	for i := 0; i < limit && !cond(); i++ {
		now += tick
		a.Update(f, now)
	}
	return now
}
