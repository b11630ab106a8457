package system

import (
	"math/rand"
	"time"

	"github.com/evince05/EternalCombat/internal/application/event"
	"github.com/evince05/EternalCombat/internal/domain/entity"
)

// LevelConfig holds the progression constants.
type LevelConfig struct {
	StartEnemies    int
	EnemiesPerLevel int
	StartInterval   time.Duration
	IntervalStep    time.Duration
	// MaxLevel is the last level that still escalates.
	MaxLevel int
	// BatchLevels are the level thresholds for batches of 2 and 3.
	DoubleBatchLevel int
	TripleBatchLevel int
	// SpawnInset shifts spawn positions up and left by one cell.
	SpawnInset int

	KnightLevel      int
	KnightChance     int
	ArcherLevel      int
	ArcherChance     int
	ArcherLateChance int
}

// DefaultLevelConfig returns the stock progression.
func DefaultLevelConfig() LevelConfig {
	return LevelConfig{
		StartEnemies:     5,
		EnemiesPerLevel:  2,
		StartInterval:    7 * time.Second,
		IntervalStep:     375 * time.Millisecond,
		MaxLevel:         20,
		DoubleBatchLevel: 10,
		TripleBatchLevel: 20,
		SpawnInset:       64,
		KnightLevel:      5,
		KnightChance:     15,
		ArcherLevel:      3,
		ArcherChance:     30,
		ArcherLateChance: 45,
	}
}

// Spawner is what the level system needs from the world.
type Spawner interface {
	SpawnEnemy(kind entity.Kind, x, y int, now time.Duration)
	MapBounds() entity.Rect
	Player() *entity.Player
}

// LevelSystem schedules enemy spawns and escalates difficulty.
//
// The alive counter is only lowered by EnemyKilled and EnemyLost events;
// it is never recomputed from the live set.
type LevelSystem struct {
	cfg        LevelConfig
	rng        *rand.Rand
	dispatcher *event.Dispatcher

	level     int
	total     int
	remaining int
	alive     int
	interval  time.Duration
	lastSpawn time.Duration
}

// NewLevelSystem creates the level 1 state and subscribes to enemy events.
func NewLevelSystem(cfg LevelConfig, rng *rand.Rand, dispatcher *event.Dispatcher, now time.Duration) *LevelSystem {
	s := &LevelSystem{
		cfg:        cfg,
		rng:        rng,
		dispatcher: dispatcher,
		level:      1,
		total:      cfg.StartEnemies,
		remaining:  cfg.StartEnemies,
		alive:      cfg.StartEnemies,
		interval:   cfg.StartInterval,
		lastSpawn:  now,
	}
	if dispatcher != nil {
		dispatcher.Subscribe(event.EnemyKilled, s)
		dispatcher.Subscribe(event.EnemyLost, s)
	}
	return s
}

// OnEvent implements event.Listener.
func (s *LevelSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled, event.EnemyLost:
		s.OnEnemyDeath()
	}
}

// OnEnemyDeath lowers the alive counter.
func (s *LevelSystem) OnEnemyDeath() {
	if s.alive > 0 {
		s.alive--
	}
}

// Update advances the level once every enemy is gone, otherwise spawns
// a batch whenever the spawn interval has elapsed.
func (s *LevelSystem) Update(w Spawner, now time.Duration) {
	if s.alive == 0 {
		s.advance(w, now)
		return
	}

	if now-s.lastSpawn >= s.interval {
		if s.remaining > 0 {
			s.spawnBatch(w, now)
		}
		s.lastSpawn = now
	}
}

func (s *LevelSystem) advance(w Spawner, now time.Duration) {
	s.level++
	if s.level <= s.cfg.MaxLevel {
		s.total += s.cfg.EnemiesPerLevel
		s.interval -= s.cfg.IntervalStep
		if s.interval < 0 {
			s.interval = 0
		}
	}
	s.remaining = s.total
	s.alive = s.total
	s.lastSpawn = now

	if p := w.Player(); p != nil {
		p.RaiseMaxAmmo(p.Stats().AmmoPerLevel)
	}

	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{
			Type: event.LevelAdvanced,
			Data: event.LevelData{Level: s.level, Total: s.total},
		})
	}
}

// BatchSize returns how many enemies spawn at once on a level.
func (s *LevelSystem) BatchSize(level int) int {
	switch {
	case level >= s.cfg.TripleBatchLevel:
		return 3
	case level >= s.cfg.DoubleBatchLevel:
		return 2
	default:
		return 1
	}
}

// PickKind chooses the enemy type for a roll in [1, 100].
func (s *LevelSystem) PickKind(level, roll int) entity.Kind {
	c := s.cfg
	switch {
	case level >= c.KnightLevel && roll <= c.KnightChance:
		return entity.KindKnight
	case (level >= c.KnightLevel && roll <= c.ArcherLateChance) ||
		(level >= c.ArcherLevel && roll <= c.ArcherChance):
		return entity.KindArcher
	default:
		return entity.KindSkeleton
	}
}

func (s *LevelSystem) spawnBatch(w Spawner, now time.Duration) {
	n := s.BatchSize(s.level)
	if n > s.remaining {
		n = s.remaining
	}

	b := w.MapBounds()
	for i := 0; i < n; i++ {
		x := s.rng.Intn(b.W+1) + b.X - s.cfg.SpawnInset
		y := s.rng.Intn(b.H+1) + b.Y - s.cfg.SpawnInset
		kind := s.PickKind(s.level, s.rng.Intn(100)+1)
		w.SpawnEnemy(kind, x, y, now)
		s.remaining--
	}
}

// Level returns the current level.
func (s *LevelSystem) Level() int { return s.level }

// Total returns the enemy count of the current level.
func (s *LevelSystem) Total() int { return s.total }

// Remaining returns how many enemies are still to spawn.
func (s *LevelSystem) Remaining() int { return s.remaining }

// Alive returns how many enemies of the level have not died yet.
func (s *LevelSystem) Alive() int { return s.alive }

// Interval returns the current spawn interval.
func (s *LevelSystem) Interval() time.Duration { return s.interval }
