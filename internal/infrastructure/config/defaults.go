package config

// Enemy and powerup names accepted in game.json.
var (
	EnemyNames   = []string{"skeleton", "archer", "knight"}
	PowerupNames = []string{"haste", "maxhealth", "maxammo", "strength"}
)

// DefaultTuning returns the stock game tuning. LoadTuning decodes
// game.json on top of it, so a file only needs the values it changes.
func DefaultTuning() *Tuning {
	return &Tuning{
		Display: DisplayConfig{
			Title:        "Eternal Combat",
			ScreenWidth:  800,
			ScreenHeight: 600,
			Framerate:    60,
		},
		Arena: ArenaConfig{
			Background:   "backgrounds/gamebg.png",
			MapBounds:    Rect{X: 191, Y: 191, Width: 1953, Height: 1152},
			CameraBounds: Rect{X: 0, Y: 0, Width: 2336, Height: 1536},
			PlayerSpawn:  PositionConfig{X: 600, Y: 600},
		},
		Player: PlayerConfig{
			MaxHealth:    100,
			Speed:        2,
			Damage:       20,
			MaxAmmo:      200,
			HitCooldown:  0.5,
			ShootDelay:   0.05,
			AmmoPerLevel: 20,
		},
		Arrow: ArrowConfig{Velocity: 6, Damage: 20},
		Enemies: map[string]EnemyConfig{
			"skeleton": {
				MaxHealth: 100, Damage: 10, Speed: 1, BaseScore: 10, Reach: 32,
				Drops: []DropConfig{{UpTo: 10, Powerup: "haste"}, {UpTo: 20, Powerup: "maxhealth"}},
			},
			"archer": {
				MaxHealth: 150, Damage: 10, Speed: 1, BaseScore: 25, Reach: 320,
				Drops: []DropConfig{{UpTo: 50, Powerup: "maxammo"}},
			},
			"knight": {
				MaxHealth: 250, Damage: 32, Speed: 1, BaseScore: 50, Reach: 32,
				Drops: []DropConfig{{UpTo: 50, Powerup: "strength"}},
			},
		},
		Powerups: map[string]PowerupConfig{
			"haste":     {Duration: 10},
			"maxhealth": {Duration: 0},
			"maxammo":   {Duration: 0},
			"strength":  {Duration: 10},
		},
		PowerupMaxIdle: 40,
		Levels: LevelsConfig{
			StartEnemies:     5,
			EnemiesPerLevel:  2,
			StartInterval:    7,
			IntervalStep:     0.375,
			MaxLevel:         20,
			DoubleBatchLevel: 10,
			TripleBatchLevel: 20,
			SpawnInset:       64,
			KnightLevel:      5,
			KnightChance:     15,
			ArcherLevel:      3,
			ArcherChance:     30,
			ArcherLateChance: 45,
		},
	}
}
