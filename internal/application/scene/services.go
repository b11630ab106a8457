package scene

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/evince05/EternalCombat/internal/application/scene/ui"
	"github.com/evince05/EternalCombat/internal/application/system"
	"github.com/evince05/EternalCombat/internal/application/world"
	"github.com/evince05/EternalCombat/internal/domain/anim"
	"github.com/evince05/EternalCombat/internal/infrastructure/audio"
	"github.com/evince05/EternalCombat/internal/infrastructure/clock"
	"github.com/evince05/EternalCombat/internal/infrastructure/config"
	"github.com/evince05/EternalCombat/internal/infrastructure/leaderboard"
)

// Services are the long-lived collaborators shared by every scene.
type Services struct {
	World       world.Config
	Clock       clock.TimeProvider
	Input       *system.InputSystem
	Sheets      anim.Sheets
	Background  *ebiten.Image
	Fonts       *ui.Fonts
	Mixer       *audio.Mixer
	Settings    *config.SettingsStore
	Prefs       config.Settings
	Leaderboard *leaderboard.Leaderboard

	// NextSeed supplies the seed of each new round.
	NextSeed func() int64
	// RecordPath enables input recording when non-empty.
	RecordPath string

	ScreenW, ScreenH int
}

// Tick samples input and keeps the soundtrack going. The game driver
// calls it once before each scene update.
func (s *Services) Tick() {
	if s.Input != nil {
		s.Input.Poll()
	}
	if s.Mixer != nil {
		s.Mixer.Update()
	}
}

// ApplyPrefs pushes the current preferences to the mixer.
func (s *Services) ApplyPrefs() {
	if s.Mixer == nil {
		return
	}
	s.Mixer.SetMusic(s.Prefs.Music)
	s.Mixer.SetSounds(s.Prefs.Sounds)
}

// ToggleMusic flips the music preference and persists it.
func (s *Services) ToggleMusic() {
	s.Prefs.Music = !s.Prefs.Music
	s.ApplyPrefs()
	s.savePrefs()
}

// ToggleSounds flips the sound effect preference and persists it.
func (s *Services) ToggleSounds() {
	s.Prefs.Sounds = !s.Prefs.Sounds
	s.ApplyPrefs()
	s.savePrefs()
}

// ReloadPrefs re-reads the settings file after an outside edit.
func (s *Services) ReloadPrefs() {
	if s.Settings == nil {
		return
	}
	set, err := s.Settings.Load()
	if err != nil {
		log.Printf("Failed to reload settings: %v", err)
		return
	}
	s.Prefs = set
	s.ApplyPrefs()
	log.Printf("Settings reloaded: music=%t sounds=%t", set.Music, set.Sounds)
}

func (s *Services) savePrefs() {
	if s.Settings == nil {
		return
	}
	if err := s.Settings.Save(s.Prefs); err != nil {
		log.Printf("Failed to save settings: %v", err)
	}
}

// Seed returns the seed for a new round.
func (s *Services) Seed() int64 {
	if s.NextSeed == nil {
		return 1
	}
	return s.NextSeed()
}

// Cues returns the cue player handed to the world.
func (s *Services) Cues() world.CuePlayer {
	if s.Mixer == nil {
		return nil
	}
	return s.Mixer
}
