package system

import (
	"fmt"
	"math"
	"time"

	"github.com/evince05/EternalCombat/internal/domain/entity"
	"github.com/evince05/EternalCombat/internal/infrastructure/config"
)

// seconds converts a config value in seconds to a duration.
func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// RectFromConfig converts a config rectangle.
func RectFromConfig(r config.Rect) entity.Rect {
	return entity.Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
}

// LoadStats converts the tuning into entity stats. Enemies missing from
// the tuning keep their stock values.
func LoadStats(cfg *config.Tuning) (entity.Stats, error) {
	stats := entity.DefaultStats()

	p := cfg.Player
	stats.Player = entity.PlayerStats{
		MaxHealth:    p.MaxHealth,
		Speed:        p.Speed,
		Damage:       p.Damage,
		MaxAmmo:      p.MaxAmmo,
		HitCooldown:  seconds(p.HitCooldown),
		ShootDelay:   seconds(p.ShootDelay),
		AmmoPerLevel: p.AmmoPerLevel,
	}
	stats.Arrow = entity.ArrowStats{Velocity: cfg.Arrow.Velocity, Damage: cfg.Arrow.Damage}

	for name, e := range cfg.Enemies {
		es, err := enemyStats(name, e)
		if err != nil {
			return stats, err
		}
		switch name {
		case "skeleton":
			stats.Skeleton = es
		case "archer":
			stats.Archer = es
		case "knight":
			stats.Knight = es
		default:
			return stats, fmt.Errorf("%w: %q", config.ErrUnknownEnemy, name)
		}
	}

	for name, pc := range cfg.Powerups {
		t, ok := entity.ParsePowerupType(name)
		if !ok {
			return stats, fmt.Errorf("%w: %q", config.ErrUnknownPowerup, name)
		}
		stats.Powerup.Durations[t] = seconds(pc.Duration)
	}
	if cfg.PowerupMaxIdle > 0 {
		stats.Powerup.MaxIdle = seconds(cfg.PowerupMaxIdle)
	}

	return stats, nil
}

func enemyStats(name string, e config.EnemyConfig) (entity.EnemyStats, error) {
	drops := make([]entity.Drop, 0, len(e.Drops))
	for _, d := range e.Drops {
		t, ok := entity.ParsePowerupType(d.Powerup)
		if !ok {
			return entity.EnemyStats{}, fmt.Errorf("%w: %q dropped by %s", config.ErrUnknownPowerup, d.Powerup, name)
		}
		drops = append(drops, entity.Drop{UpTo: d.UpTo, Type: t})
	}
	return entity.EnemyStats{
		MaxHealth: e.MaxHealth,
		Damage:    e.Damage,
		Speed:     e.Speed,
		BaseScore: e.BaseScore,
		Reach:     e.Reach,
		Drops:     drops,
	}, nil
}

// LoadLevelConfig converts the level section of the tuning.
func LoadLevelConfig(cfg *config.Tuning) LevelConfig {
	l := cfg.Levels
	return LevelConfig{
		StartEnemies:     l.StartEnemies,
		EnemiesPerLevel:  l.EnemiesPerLevel,
		StartInterval:    seconds(l.StartInterval),
		IntervalStep:     seconds(l.IntervalStep),
		MaxLevel:         l.MaxLevel,
		DoubleBatchLevel: l.DoubleBatchLevel,
		TripleBatchLevel: l.TripleBatchLevel,
		SpawnInset:       l.SpawnInset,
		KnightLevel:      l.KnightLevel,
		KnightChance:     l.KnightChance,
		ArcherLevel:      l.ArcherLevel,
		ArcherChance:     l.ArcherChance,
		ArcherLateChance: l.ArcherLateChance,
	}
}
