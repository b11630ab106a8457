// Package scenetest provides services and a router for scene tests.
package scenetest

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/evince05/EternalCombat/internal/application/scene"
	"github.com/evince05/EternalCombat/internal/application/scene/ui"
	"github.com/evince05/EternalCombat/internal/application/system"
	"github.com/evince05/EternalCombat/internal/application/world"
	"github.com/evince05/EternalCombat/internal/domain/anim"
	"github.com/evince05/EternalCombat/internal/infrastructure/audio"
	"github.com/evince05/EternalCombat/internal/infrastructure/clock"
	"github.com/evince05/EternalCombat/internal/infrastructure/config"
	"github.com/evince05/EternalCombat/internal/infrastructure/leaderboard"
)

// Step is the tick length used by Harness.
const Step = time.Second / 60

// Harness drives a scene tick by tick with scripted input.
type Harness struct {
	Services *scene.Services
	Clock    *clock.Step
}

// New builds silent services backed by files in a temp dir. The arena
// spawns no enemies for an hour unless the caller changes Levels.
func New(t testing.TB) *Harness {
	t.Helper()

	fonts, err := ui.NewFonts()
	if err != nil {
		t.Fatalf("fonts: %v", err)
	}

	dir := t.TempDir()
	clk := clock.NewStep(Step)
	cfg := world.DefaultConfig(1)
	cfg.Levels.StartInterval = time.Hour

	svc := &scene.Services{
		World:       cfg,
		Clock:       clk,
		Input:       system.NewInputSystemFrom(func() system.InputState { return system.InputState{} }),
		Sheets:      anim.BlankSheets{Default: anim.BlankSheet{W: 64, H: 64}},
		Fonts:       fonts,
		Mixer:       audio.NewMixer(nil, nil, rand.New(rand.NewSource(1))),
		Settings:    config.NewSettingsStore(filepath.Join(dir, "settings.yaml")),
		Prefs:       config.DefaultSettings(),
		Leaderboard: leaderboard.New(filepath.Join(dir, "leaderboard.txt")),
		NextSeed:    func() int64 { return 42 },
		ScreenW:     800,
		ScreenH:     600,
	}
	return &Harness{Services: svc, Clock: clk}
}

// Step advances the clock, feeds in as this frame's input and updates s.
func (h *Harness) Step(s scene.Scene, in system.InputState) (scene.Scene, error) {
	h.Clock.Tick()
	h.Services.Input.Feed(in)
	return s.Update(h.Clock.Now())
}

// Press feeds in for one frame and a released frame after it, returning
// the first transition or error seen.
func (h *Harness) Press(s scene.Scene, in system.InputState) (scene.Scene, error) {
	next, err := h.Step(s, in)
	if next != nil || err != nil {
		return next, err
	}
	return h.Step(s, system.InputState{})
}

// Screen returns an image the size of the window.
func (h *Harness) Screen() *ebiten.Image {
	return ebiten.NewImage(h.Services.ScreenW, h.Services.ScreenH)
}

// Router records which scene was requested and hands back markers.
type Router struct {
	MenuCalls   []bool
	PlayCalls   int
	DeathScores []int
}

// Marker is the scene returned by Router.
type Marker struct {
	Name string
}

func (m *Marker) Update(time.Duration) (scene.Scene, error) { return nil, nil }
func (m *Marker) Draw(*ebiten.Image)                        {}
func (m *Marker) OnEnter()                                  {}
func (m *Marker) OnExit()                                   {}

// Menu implements scene.Router.
func (r *Router) Menu(showLeaderboard bool) scene.Scene {
	r.MenuCalls = append(r.MenuCalls, showLeaderboard)
	return &Marker{Name: "menu"}
}

// Playing implements scene.Router.
func (r *Router) Playing() scene.Scene {
	r.PlayCalls++
	return &Marker{Name: "playing"}
}

// Death implements scene.Router.
func (r *Router) Death(score int) scene.Scene {
	r.DeathScores = append(r.DeathScores, score)
	return &Marker{Name: "death"}
}
