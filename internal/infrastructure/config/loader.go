package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
)

var (
	// ErrUnknownEnemy is returned for an enemy table entry with an unknown name.
	ErrUnknownEnemy = errors.New("unknown enemy")
	// ErrUnknownPowerup is returned for a drop or duration naming an unknown powerup.
	ErrUnknownPowerup = errors.New("unknown powerup")
	// ErrInvalid is wrapped by every other validation failure.
	ErrInvalid = errors.New("invalid tuning")
)

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadTuning loads game.json over DefaultTuning and validates the result.
func (l *Loader) LoadTuning() (*Tuning, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	cfg := DefaultTuning()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game.json: %w", err)
	}

	return cfg, nil
}

// Validate checks the values the game cannot run without.
func (t *Tuning) Validate() error {
	if t.Display.ScreenWidth <= 0 || t.Display.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, t.Display.ScreenWidth, t.Display.ScreenHeight)
	}
	if t.Display.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalid, t.Display.Framerate)
	}
	if t.Arena.MapBounds.Width <= 0 || t.Arena.MapBounds.Height <= 0 {
		return fmt.Errorf("%w: empty map bounds", ErrInvalid)
	}
	if t.Player.MaxHealth <= 0 {
		return fmt.Errorf("%w: player maxHealth %d", ErrInvalid, t.Player.MaxHealth)
	}
	if t.Levels.StartEnemies <= 0 {
		return fmt.Errorf("%w: levels startEnemies %d", ErrInvalid, t.Levels.StartEnemies)
	}

	for name, e := range t.Enemies {
		if !slices.Contains(EnemyNames, name) {
			return fmt.Errorf("%w: %q", ErrUnknownEnemy, name)
		}
		if e.MaxHealth <= 0 {
			return fmt.Errorf("%w: %s maxHealth %d", ErrInvalid, name, e.MaxHealth)
		}
		for _, d := range e.Drops {
			if !slices.Contains(PowerupNames, d.Powerup) {
				return fmt.Errorf("%w: %q dropped by %s", ErrUnknownPowerup, d.Powerup, name)
			}
		}
	}

	for name := range t.Powerups {
		if !slices.Contains(PowerupNames, name) {
			return fmt.Errorf("%w: %q", ErrUnknownPowerup, name)
		}
	}

	return nil
}
