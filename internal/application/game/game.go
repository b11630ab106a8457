// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/evince05/EternalCombat/internal/application/scene"
	"github.com/evince05/EternalCombat/internal/infrastructure/clock"
)

// DefaultTPS is the fixed simulation rate.
const DefaultTPS = 60

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	clock   *clock.Step

	beforeUpdate func()
	reloads      <-chan string
	onReload     func(path string)
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		clock:   clock.NewStepTPS(DefaultTPS),
	}
	g.current.OnEnter()
	return g
}

// Update advances the clock one step, updates the current scene and
// handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.drainReloads()
	now := g.clock.Tick()
	if g.beforeUpdate != nil {
		g.beforeUpdate()
	}

	next, err := g.current.Update(now)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

func (g *Game) drainReloads() {
	if g.reloads == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				return
			}
			g.onReload(path)
		default:
			return
		}
	}
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Clock returns the fixed-step clock scenes are driven by.
func (g *Game) Clock() *clock.Step {
	return g.clock
}

// SetClock replaces the step clock, e.g. for a custom tick rate.
func (g *Game) SetClock(c *clock.Step) {
	g.clock = c
}

// SetBeforeUpdate installs a hook run each tick before the scene update.
func (g *Game) SetBeforeUpdate(fn func()) {
	g.beforeUpdate = fn
}

// OnReload calls fn on the update goroutine for every path received on
// events. Reload notifications arrive from a watcher goroutine and are
// never handled concurrently with a scene update.
func (g *Game) OnReload(events <-chan string, fn func(path string)) {
	g.reloads = events
	g.onReload = fn
}

// Now returns the simulation time of the last update.
func (g *Game) Now() time.Duration {
	return g.clock.Now()
}
