// Package world owns the live entities of a round and runs one tick of
// the simulation at a time.
package world

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/evince05/EternalCombat/internal/application/event"
	"github.com/evince05/EternalCombat/internal/application/system"
	"github.com/evince05/EternalCombat/internal/domain/anim"
	"github.com/evince05/EternalCombat/internal/domain/entity"
	"github.com/evince05/EternalCombat/internal/ecs"
	"github.com/evince05/EternalCombat/internal/infrastructure/config"
)

// CuePlayer plays sound effects without blocking.
type CuePlayer interface {
	Play(c entity.Cue)
}

type nopCues struct{}

func (nopCues) Play(entity.Cue) {}

// Config holds everything needed to start a round.
type Config struct {
	Stats        entity.Stats
	Levels       system.LevelConfig
	MapBounds    entity.Rect
	CameraBounds entity.Rect
	SpawnX       int
	SpawnY       int
	ScreenW      int
	ScreenH      int
	Seed         int64
}

// DefaultConfig returns the stock arena with the given seed.
func DefaultConfig(seed int64) Config {
	cfg, err := ConfigFromTuning(config.DefaultTuning(), seed)
	if err != nil {
		panic(fmt.Sprintf("default tuning: %v", err))
	}
	return cfg
}

// ConfigFromTuning builds a round config from loaded tuning.
func ConfigFromTuning(t *config.Tuning, seed int64) (Config, error) {
	stats, err := system.LoadStats(t)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Stats:        stats,
		Levels:       system.LoadLevelConfig(t),
		MapBounds:    system.RectFromConfig(t.Arena.MapBounds),
		CameraBounds: system.RectFromConfig(t.Arena.CameraBounds),
		SpawnX:       t.Arena.PlayerSpawn.X,
		SpawnY:       t.Arena.PlayerSpawn.Y,
		ScreenW:      t.Display.ScreenWidth,
		ScreenH:      t.Display.ScreenHeight,
		Seed:         seed,
	}, nil
}

// World is the arena of one round. It implements entity.Env for the
// entities it updates and system.Spawner for the level system.
type World struct {
	cfg        Config
	sheets     anim.Sheets
	cues       CuePlayer
	rng        *rand.Rand
	dispatcher *event.Dispatcher

	actors   *ecs.Arena[entity.Actor]
	powerups *ecs.Arena[*entity.Powerup]
	levels   *system.LevelSystem
	camera   *Camera

	player *entity.Player
	final  int
	over   bool
	diedAt time.Duration
	ticks  int
}

// New creates a world with the player at the spawn point. cues may be nil.
func New(cfg Config, sheets anim.Sheets, cues CuePlayer, dispatcher *event.Dispatcher, now time.Duration) *World {
	if cues == nil {
		cues = nopCues{}
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}

	w := &World{
		cfg:        cfg,
		sheets:     sheets,
		cues:       cues,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		dispatcher: dispatcher,
		actors:     ecs.NewArena[entity.Actor](),
		powerups:   ecs.NewArena[*entity.Powerup](),
		camera:     NewCamera(cfg.ScreenW, cfg.ScreenH, cfg.CameraBounds),
	}
	w.levels = system.NewLevelSystem(cfg.Levels, w.rng, dispatcher, now)

	w.player = entity.NewPlayer(cfg.SpawnX, cfg.SpawnY, sheets, cfg.Stats.Player, cfg.Stats.Arrow)
	w.Spawn(w.player)
	w.camera.Follow(w.player.Body().Bounds())

	return w
}

// Tick runs one simulation step: controls, level spawns, the actor pass,
// the powerup pass and finally the removal sweep.
func (w *World) Tick(controls entity.Controls, now time.Duration) {
	w.ticks++
	if w.player != nil {
		w.player.SetControls(controls)
	}

	w.levels.Update(w, now)

	w.actors.Each(func(h ecs.Handle, a entity.Actor) bool {
		if w.actors.Alive(h) {
			a.Update(w, now)
		}
		return true
	})

	w.powerups.Each(func(h ecs.Handle, p *entity.Powerup) bool {
		if w.powerups.Alive(h) {
			p.Update(w, now)
		}
		return true
	})

	w.actors.Sweep(w.onActorRemoved)
	w.powerups.Sweep(nil)

	if w.player != nil {
		w.camera.Follow(w.player.Body().Bounds())
	}
}

func (w *World) onActorRemoved(a entity.Actor) {
	switch v := a.(type) {
	case *entity.Player:
		if v == w.player {
			w.final = v.Score
			w.player = nil
		}
	case *entity.Enemy:
		// Culled before dying: the level still has to account for it.
		if !v.Vitals().Dead() {
			w.dispatcher.Dispatch(event.Event{
				Type: event.EnemyLost,
				Data: event.EnemyData{Kind: v.Kind().String()},
			})
		}
	}
}

// Spawn implements entity.Env.
func (w *World) Spawn(a entity.Actor) {
	a.Body().Handle = w.actors.Insert(a)
}

// Destroy implements entity.Env.
func (w *World) Destroy(a entity.Actor) {
	w.actors.Kill(a.Body().Handle)
}

// SpawnPowerup implements entity.Env.
func (w *World) SpawnPowerup(p *entity.Powerup) {
	p.Configure(w.cfg.Stats.Powerup)
	p.Body().Handle = w.powerups.Insert(p)
}

// DestroyPowerup implements entity.Env.
func (w *World) DestroyPowerup(p *entity.Powerup) {
	w.powerups.Kill(p.Handle())
}

// EachActor implements entity.Env. Actors destroyed earlier in the tick
// are skipped.
func (w *World) EachActor(fn func(a entity.Actor) bool) {
	w.actors.Each(func(h ecs.Handle, a entity.Actor) bool {
		if !w.actors.Alive(h) {
			return true
		}
		return fn(a)
	})
}

// EachPowerup visits the powerups still on the map.
func (w *World) EachPowerup(fn func(p *entity.Powerup) bool) {
	w.powerups.Each(func(h ecs.Handle, p *entity.Powerup) bool {
		if !w.powerups.Alive(h) {
			return true
		}
		return fn(p)
	})
}

// Player implements entity.Env.
func (w *World) Player() *entity.Player { return w.player }

// CameraBounds implements entity.Env.
func (w *World) CameraBounds() entity.Rect { return w.cfg.CameraBounds }

// MapBounds implements entity.Env.
func (w *World) MapBounds() entity.Rect { return w.cfg.MapBounds }

// Roll implements entity.Env.
func (w *World) Roll() int { return w.rng.Intn(100) + 1 }

// PlayCue implements entity.Env.
func (w *World) PlayCue(c entity.Cue) { w.cues.Play(c) }

// EnemyKilled implements entity.Env.
func (w *World) EnemyKilled(e *entity.Enemy, score int, _ time.Duration) {
	w.dispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyData{Kind: e.Kind().String(), Score: score},
	})
}

// PlayerKilled implements entity.Env.
func (w *World) PlayerKilled(now time.Duration) {
	if w.over {
		return
	}
	w.over = true
	w.diedAt = now
	log.Printf("Player died at level %d with score %d", w.levels.Level(), w.Score())
	w.dispatcher.Dispatch(event.Event{Type: event.PlayerKilled})
}

// PowerupClaimed implements entity.Env.
func (w *World) PowerupClaimed(p *entity.Powerup, _ time.Duration) {
	w.dispatcher.Dispatch(event.Event{Type: event.PowerupClaimed, Data: p.Type.String()})
}

// SpawnEnemy implements system.Spawner.
func (w *World) SpawnEnemy(kind entity.Kind, x, y int, now time.Duration) {
	var e *entity.Enemy
	stats := w.cfg.Stats.Enemy(kind)
	switch kind {
	case entity.KindArcher:
		e = entity.NewArcher(x, y, w.player, now, w.sheets, stats, w.cfg.Stats.Arrow)
	case entity.KindKnight:
		e = entity.NewKnight(x, y, w.player, now, w.sheets, stats)
	default:
		e = entity.NewSkeleton(x, y, w.player, now, w.sheets, stats)
	}
	w.Spawn(e)
}

// Over reports whether the player has died.
func (w *World) Over() bool { return w.over }

// DiedAt returns the simulation time of the player's death.
func (w *World) DiedAt() time.Duration { return w.diedAt }

// Score returns the player's score, kept after the player is removed.
func (w *World) Score() int {
	if w.player != nil {
		return w.player.Score
	}
	return w.final
}

// Levels returns the level system.
func (w *World) Levels() *system.LevelSystem { return w.levels }

// Camera returns the view.
func (w *World) Camera() *Camera { return w.camera }

// Dispatcher returns the event hub of this round.
func (w *World) Dispatcher() *event.Dispatcher { return w.dispatcher }

// ActorCount returns the number of live actors, the player included.
func (w *World) ActorCount() int { return w.actors.Len() }

// Ticks returns how many ticks have run.
func (w *World) Ticks() int { return w.ticks }
