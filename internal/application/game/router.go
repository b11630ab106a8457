package game

import (
	"github.com/evince05/EternalCombat/internal/application/scene"
	"github.com/evince05/EternalCombat/internal/application/scene/death"
	"github.com/evince05/EternalCombat/internal/application/scene/menu"
	"github.com/evince05/EternalCombat/internal/application/scene/playing"
)

// Scenes builds every scene over one set of services. It is the
// scene.Router handed to each of them.
type Scenes struct {
	svc   *scene.Services
	title string
}

// NewScenes creates the router; title is shown on the main menu.
func NewScenes(svc *scene.Services, title string) *Scenes {
	return &Scenes{svc: svc, title: title}
}

// Menu implements scene.Router.
func (s *Scenes) Menu(showLeaderboard bool) scene.Scene {
	return menu.New(s.svc, s, s.title, showLeaderboard)
}

// Playing implements scene.Router.
func (s *Scenes) Playing() scene.Scene {
	return playing.New(s.svc, s)
}

// Death implements scene.Router.
func (s *Scenes) Death(score int) scene.Scene {
	return death.New(s.svc, s, score)
}
