package entity

import "time"

// PlayerStats are the player's starting values.
type PlayerStats struct {
	MaxHealth   int
	Speed       int
	Damage      int
	MaxAmmo     int
	HitCooldown time.Duration
	ShootDelay  time.Duration
	// AmmoPerLevel is added to the ammo cap at each level up.
	AmmoPerLevel int
}

// DefaultPlayerStats returns the stock player.
func DefaultPlayerStats() PlayerStats {
	return PlayerStats{
		MaxHealth:    100,
		Speed:        2,
		Damage:       20,
		MaxAmmo:      200,
		HitCooldown:  500 * time.Millisecond,
		ShootDelay:   50 * time.Millisecond,
		AmmoPerLevel: 20,
	}
}

// Drop is one row of a drop table: a roll <= UpTo yields Type.
// Rows are checked in order.
type Drop struct {
	UpTo int
	Type PowerupType
}

// EnemyStats configure a skeleton variant.
type EnemyStats struct {
	MaxHealth int
	Damage    int
	Speed     int
	BaseScore int
	// Reach is the half-width of the melee square, or the firing window
	// along an aligned axis for archers.
	Reach int
	Drops []Drop
}

// DefaultSkeletonStats returns the stock skeleton.
func DefaultSkeletonStats() EnemyStats {
	return EnemyStats{
		MaxHealth: 100,
		Damage:    10,
		Speed:     1,
		BaseScore: 10,
		Reach:     32,
		Drops:     []Drop{{UpTo: 10, Type: PowerupHaste}, {UpTo: 20, Type: PowerupMaxHealth}},
	}
}

// DefaultArcherStats returns the stock archer skeleton.
func DefaultArcherStats() EnemyStats {
	return EnemyStats{
		MaxHealth: 150,
		Damage:    10,
		Speed:     1,
		BaseScore: 25,
		Reach:     5 * 64,
		Drops:     []Drop{{UpTo: 50, Type: PowerupMaxAmmo}},
	}
}

// DefaultKnightStats returns the stock skeleton knight.
func DefaultKnightStats() EnemyStats {
	return EnemyStats{
		MaxHealth: 250,
		Damage:    32,
		Speed:     1,
		BaseScore: 50,
		Reach:     32,
		Drops:     []Drop{{UpTo: 50, Type: PowerupStrength}},
	}
}

// ArrowStats configure arrows.
type ArrowStats struct {
	Velocity int
	Damage   int
}

// DefaultArrowStats returns the stock arrow.
func DefaultArrowStats() ArrowStats {
	return ArrowStats{Velocity: 6, Damage: 20}
}

// PowerupStats configure powerups.
type PowerupStats struct {
	Durations map[PowerupType]time.Duration
	// MaxIdle removes a powerup this long after it spawned.
	MaxIdle time.Duration
}

// DefaultPowerupStats returns the stock powerups.
func DefaultPowerupStats() PowerupStats {
	return PowerupStats{
		Durations: map[PowerupType]time.Duration{
			PowerupHaste:     10 * time.Second,
			PowerupMaxHealth: 0,
			PowerupMaxAmmo:   0,
			PowerupStrength:  10 * time.Second,
		},
		MaxIdle: 40 * time.Second,
	}
}

// Stats bundles every tunable an entity constructor needs.
type Stats struct {
	Player   PlayerStats
	Skeleton EnemyStats
	Archer   EnemyStats
	Knight   EnemyStats
	Arrow    ArrowStats
	Powerup  PowerupStats
}

// DefaultStats returns the stock tuning.
func DefaultStats() Stats {
	return Stats{
		Player:   DefaultPlayerStats(),
		Skeleton: DefaultSkeletonStats(),
		Archer:   DefaultArcherStats(),
		Knight:   DefaultKnightStats(),
		Arrow:    DefaultArrowStats(),
		Powerup:  DefaultPowerupStats(),
	}
}

// Enemy returns the stats for an enemy kind.
func (s Stats) Enemy(k Kind) EnemyStats {
	switch k {
	case KindArcher:
		return s.Archer
	case KindKnight:
		return s.Knight
	default:
		return s.Skeleton
	}
}
