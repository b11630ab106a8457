// Package scene defines the Scene interface for game screens.
//
// Each game screen (main menu, playing, death) implements the Scene
// interface to handle its own update logic and rendering.
package scene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game screen (menu, playing, death).
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// now is the fixed-step simulation time of this tick.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(now time.Duration) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}

// Router builds the scenes a scene may hand over to. Scenes never
// import each other; they ask the router instead.
type Router interface {
	Menu(leaderboard bool) Scene
	Playing() Scene
	Death(score int) Scene
}
