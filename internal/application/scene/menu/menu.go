// Package menu provides the main menu and the leaderboard view.
package menu

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/evince05/EternalCombat/internal/application/scene"
	"github.com/evince05/EternalCombat/internal/application/scene/ui"
	"github.com/evince05/EternalCombat/internal/application/state"
	"github.com/evince05/EternalCombat/internal/application/system"
	"github.com/evince05/EternalCombat/internal/infrastructure/leaderboard"
)

// Menu is the title screen. It switches between the main buttons and
// the leaderboard table.
type Menu struct {
	svc    *scene.Services
	router scene.Router
	state  state.GameState
	title  string

	main  *system.Menu
	board *system.Menu
}

// New creates the main menu, opened on the leaderboard when
// showLeaderboard is set.
func New(svc *scene.Services, router scene.Router, title string, showLeaderboard bool) *Menu {
	cx := svc.ScreenW / 2
	m := &Menu{
		svc:    svc,
		router: router,
		state:  state.StateMenu,
		title:  title,
		main: system.NewMenu(cx, svc.ScreenH/2-40, 260, 50, 16,
			system.Button{Label: "Play", Intent: system.IntentPlay},
			system.Button{Label: "Leaderboard", Intent: system.IntentLeaderboard},
			system.Button{Label: "Exit", Intent: system.IntentExit},
		),
		board: system.NewMenu(cx, svc.ScreenH-90, 200, 44, 0,
			system.Button{Label: "Back", Intent: system.IntentBack},
		),
	}
	if showLeaderboard {
		m.state = state.StateLeaderboard
	}
	return m
}

// State returns Menu or Leaderboard.
func (m *Menu) State() state.GameState { return m.state }

// Update runs whichever button set is showing.
func (m *Menu) Update(now time.Duration) (scene.Scene, error) {
	in := m.svc.Input

	if m.state == state.StateLeaderboard {
		if m.board.Update(in) == system.IntentBack || in.Down(system.ActionPause) {
			m.state = state.StateMenu
		}
		return nil, nil
	}

	switch m.main.Update(in) {
	case system.IntentPlay:
		return m.router.Playing(), nil
	case system.IntentLeaderboard:
		m.state = state.StateLeaderboard
	case system.IntentExit:
		return nil, ebiten.Termination
	}
	return nil, nil
}

// OnEnter applies the audio preferences so the soundtrack follows them.
func (m *Menu) OnEnter() {
	m.svc.ApplyPrefs()
}

// OnExit implements scene.Scene.
func (m *Menu) OnExit() {}

// Draw renders the title and buttons, or the leaderboard table.
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	f := m.svc.Fonts
	if f == nil {
		return
	}
	cx := float64(m.svc.ScreenW) / 2

	if m.state == state.StateLeaderboard {
		m.drawBoard(screen, f, cx)
		f.DrawMenu(screen, m.board)
		return
	}

	f.DrawCentered(screen, m.title, ui.SizeTitle, cx, float64(m.svc.ScreenH)/4-30, ui.ColorTitle)
	f.DrawMenu(screen, m.main)
}

func (m *Menu) drawBoard(screen *ebiten.Image, f *ui.Fonts, cx float64) {
	f.DrawCentered(screen, "Leaderboard", ui.SizeLarge, cx, 40, ui.ColorTitle)

	lb := m.svc.Leaderboard
	if lb == nil {
		return
	}
	for i := 0; i < leaderboard.Size; i++ {
		y := 110 + float64(i)*36
		name := lb.Name(i)
		score := fmt.Sprint(lb.Score(i))
		if name == "" {
			name, score = "---", "-"
		}
		f.Draw(screen, fmt.Sprintf("%2d.", i+1), ui.SizeNormal, cx-200, y, ui.ColorDim)
		f.Draw(screen, name, ui.SizeNormal, cx-150, y, ui.ColorText)
		w, _ := f.Measure(score, ui.SizeNormal)
		f.Draw(screen, score, ui.SizeNormal, cx+200-w, y, ui.ColorText)
	}
}
