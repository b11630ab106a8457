package config

// Tuning is the root config for game.json.
type Tuning struct {
	Display  DisplayConfig            `json:"display"`
	Arena    ArenaConfig              `json:"arena"`
	Player   PlayerConfig             `json:"player"`
	Arrow    ArrowConfig              `json:"arrow"`
	Enemies  map[string]EnemyConfig   `json:"enemies"`
	Powerups map[string]PowerupConfig `json:"powerups"`
	// PowerupMaxIdle is how long an unclaimed powerup lies on the map (seconds).
	PowerupMaxIdle float64      `json:"powerupMaxIdle"`
	Levels         LevelsConfig `json:"levels"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Framerate    int    `json:"framerate"`
}

// ArenaConfig places the walkable area inside the background image.
type ArenaConfig struct {
	Background   string         `json:"background"`
	MapBounds    Rect           `json:"mapBounds"`
	CameraBounds Rect           `json:"cameraBounds"`
	PlayerSpawn  PositionConfig `json:"playerSpawn"`
}

type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type PlayerConfig struct {
	MaxHealth    int     `json:"maxHealth"`
	Speed        int     `json:"speed"`
	Damage       int     `json:"damage"`
	MaxAmmo      int     `json:"maxAmmo"`
	HitCooldown  float64 `json:"hitCooldown"`
	ShootDelay   float64 `json:"shootDelay"`
	AmmoPerLevel int     `json:"ammoPerLevel"`
}

type ArrowConfig struct {
	Velocity int `json:"velocity"`
	Damage   int `json:"damage"`
}

type EnemyConfig struct {
	MaxHealth int          `json:"maxHealth"`
	Damage    int          `json:"damage"`
	Speed     int          `json:"speed"`
	BaseScore int          `json:"baseScore"`
	Reach     int          `json:"reach"`
	Drops     []DropConfig `json:"drops"`
}

// DropConfig is one row of a drop table, matched when roll <= upTo.
type DropConfig struct {
	UpTo    int    `json:"upTo"`
	Powerup string `json:"powerup"`
}

type PowerupConfig struct {
	// Duration of the effect in seconds; 0 means instant.
	Duration float64 `json:"duration"`
}

type LevelsConfig struct {
	StartEnemies     int     `json:"startEnemies"`
	EnemiesPerLevel  int     `json:"enemiesPerLevel"`
	StartInterval    float64 `json:"startInterval"`
	IntervalStep     float64 `json:"intervalStep"`
	MaxLevel         int     `json:"maxLevel"`
	DoubleBatchLevel int     `json:"doubleBatchLevel"`
	TripleBatchLevel int     `json:"tripleBatchLevel"`
	SpawnInset       int     `json:"spawnInset"`
	KnightLevel      int     `json:"knightLevel"`
	KnightChance     int     `json:"knightChance"`
	ArcherLevel      int     `json:"archerLevel"`
	ArcherChance     int     `json:"archerChance"`
	ArcherLateChance int     `json:"archerLateChance"`
}
