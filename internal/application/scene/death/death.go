// Package death provides the game over screen and the leaderboard name
// entry that follows a qualifying score.
package death

import (
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/evince05/EternalCombat/internal/application/scene"
	"github.com/evince05/EternalCombat/internal/application/scene/ui"
	"github.com/evince05/EternalCombat/internal/application/state"
	"github.com/evince05/EternalCombat/internal/application/system"
)

const (
	// ShowFor is how long "Game Over" stays up before moving on.
	ShowFor = 5 * time.Second
	// MaxNameLen caps leaderboard names.
	MaxNameLen = 16
)

// Death shows the final score, then asks for a name when the score
// makes the leaderboard.
type Death struct {
	svc    *scene.Services
	router scene.Router
	state  state.GameState

	score     int
	qualifies bool
	started   bool
	enteredAt time.Duration
	name      []rune
}

// New creates the death screen for a finished round.
func New(svc *scene.Services, router scene.Router, score int) *Death {
	return &Death{
		svc:       svc,
		router:    router,
		state:     state.StateGameOver,
		score:     score,
		qualifies: svc.Leaderboard != nil && svc.Leaderboard.Qualifies(score),
	}
}

// State returns GameOver or NameEntry.
func (d *Death) State() state.GameState { return d.state }

// Name returns the name typed so far.
func (d *Death) Name() string { return string(d.name) }

// Update counts down the game over screen and then runs name entry.
func (d *Death) Update(now time.Duration) (scene.Scene, error) {
	if !d.started {
		d.started = true
		d.enteredAt = now
	}

	switch d.state {
	case state.StateGameOver:
		if now-d.enteredAt < ShowFor {
			return nil, nil
		}
		if d.qualifies {
			d.state = state.StateNameEntry
			return nil, nil
		}
		return d.router.Menu(false), nil
	case state.StateNameEntry:
		return d.updateNameEntry()
	}
	return nil, nil
}

func (d *Death) updateNameEntry() (scene.Scene, error) {
	in := d.svc.Input

	for _, r := range in.Typed() {
		if len(d.name) >= MaxNameLen || r == ':' || !unicode.IsPrint(r) {
			continue
		}
		d.name = append(d.name, r)
	}
	if in.Down(system.ActionErase) && len(d.name) > 0 {
		d.name = d.name[:len(d.name)-1]
	}
	if !in.Down(system.ActionConfirm) {
		return nil, nil
	}

	name := strings.TrimSpace(string(d.name))
	if name == "" {
		return nil, nil
	}

	lb := d.svc.Leaderboard
	lb.SortNewEntry(name, d.score)
	if err := lb.Save(); err != nil {
		log.Printf("Failed to save leaderboard: %v", err)
	} else {
		log.Printf("Leaderboard entry saved: %s %d", name, d.score)
	}
	return d.router.Menu(true), nil
}

// OnEnter implements scene.Scene.
func (d *Death) OnEnter() {}

// OnExit implements scene.Scene.
func (d *Death) OnExit() {}

// Draw renders the game over text or the name prompt.
func (d *Death) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	f := d.svc.Fonts
	if f == nil {
		return
	}
	cx := float64(d.svc.ScreenW) / 2
	cy := float64(d.svc.ScreenH) / 2

	f.DrawCentered(screen, "Game Over", ui.SizeTitle, cx, cy-140, ui.ColorEnemyBar)
	f.DrawCentered(screen, fmt.Sprintf("Score: %d", d.score), ui.SizeLarge, cx, cy-60, ui.ColorText)

	if d.state != state.StateNameEntry {
		return
	}
	f.DrawCentered(screen, "New high score! Enter your name:", ui.SizeNormal, cx, cy+10, ui.ColorTitle)
	f.DrawCentered(screen, string(d.name)+"_", ui.SizeLarge, cx, cy+50, ui.ColorText)
	f.DrawCentered(screen, "Press Enter to save", ui.SizeSmall, cx, cy+110, ui.ColorDim)
}
