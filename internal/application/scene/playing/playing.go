// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/evince05/EternalCombat/internal/application/replay"
	"github.com/evince05/EternalCombat/internal/application/scene"
	"github.com/evince05/EternalCombat/internal/application/scene/ui"
	"github.com/evince05/EternalCombat/internal/application/state"
	"github.com/evince05/EternalCombat/internal/application/system"
	"github.com/evince05/EternalCombat/internal/application/world"
	"github.com/evince05/EternalCombat/internal/domain/entity"
	"github.com/evince05/EternalCombat/internal/infrastructure/clock"
)

// Placeholder colors for actors whose sheet has no pixels.
var (
	colorPlayer  = color.RGBA{100, 200, 100, 255}
	colorEnemy   = color.RGBA{200, 100, 100, 255}
	colorKnight  = color.RGBA{150, 150, 200, 255}
	colorArrow   = color.RGBA{255, 200, 100, 255}
	colorPowerup = color.RGBA{255, 215, 0, 255}
)

const (
	healthbarW      = 64
	healthbarH      = 5
	healthbarOffset = 10
)

// Playing is the main gameplay scene
type Playing struct {
	svc    *scene.Services
	router scene.Router
	state  state.GameState

	// clock hides paused time; start is the clock value the round began at.
	clock *clock.Pausable
	start time.Duration
	world *world.World
	pause *system.Menu

	seed     int64
	recorder *replay.Recorder
}

// New creates a new Playing scene with a fresh round.
// If svc.RecordPath is not empty, the round's input is recorded.
func New(svc *scene.Services, router scene.Router) *Playing {
	seed := svc.Seed()
	cfg := svc.World
	cfg.Seed = seed

	p := &Playing{
		svc:    svc,
		router: router,
		state:  state.StatePlaying,
		clock:  clock.NewPausable(svc.Clock),
		seed:   seed,
	}
	p.start = p.clock.Now()
	p.world = world.New(cfg, svc.Sheets, svc.Cues(), nil, 0)

	p.pause = system.NewMenu(svc.ScreenW/2, svc.ScreenH/2-130, 240, 44, 12,
		system.Button{Label: "Resume", Intent: system.IntentResume},
		system.Button{Label: ui.OnOff("Music", svc.Prefs.Music), Intent: system.IntentToggleMusic},
		system.Button{Label: ui.OnOff("Sounds", svc.Prefs.Sounds), Intent: system.IntentToggleSounds},
		system.Button{Label: "Main Menu", Intent: system.IntentMainMenu},
		system.Button{Label: "Exit Game", Intent: system.IntentExit},
	)

	if svc.RecordPath != "" {
		p.recorder = replay.NewRecorder(seed)
		log.Printf("Recording enabled: %s (seed: %d, run: %s)", svc.RecordPath, seed, p.recorder.RunID())
	}

	return p
}

// World returns the running round.
func (p *Playing) World() *world.World { return p.world }

// State returns whether the round is running or paused.
func (p *Playing) State() state.GameState { return p.state }

// RoundTime returns the unpaused time since the round started.
func (p *Playing) RoundTime() time.Duration {
	return p.clock.Now() - p.start
}

// Update advances the round by one tick, or runs the pause menu.
func (p *Playing) Update(now time.Duration) (scene.Scene, error) {
	in := p.svc.Input

	if in.Down(system.ActionSave) {
		p.saveRecording()
	}

	if p.state == state.StatePaused {
		return p.updatePaused()
	}

	if in.Down(system.ActionPause) {
		p.setPaused(true)
		return nil, nil
	}

	controls := in.Controls()
	t := p.RoundTime()
	if p.recorder != nil {
		p.recorder.RecordFrame(t, controls)
	}
	p.world.Tick(controls, t)

	if p.world.Over() {
		score := p.world.Score()
		log.Printf("Round over: score %d, level %d", score, p.world.Levels().Level())
		p.finishRecording()
		return p.router.Death(score), nil
	}

	return nil, nil
}

func (p *Playing) updatePaused() (scene.Scene, error) {
	in := p.svc.Input
	if in.Down(system.ActionPause) {
		p.setPaused(false)
		return nil, nil
	}

	switch p.pause.Update(in) {
	case system.IntentResume:
		p.setPaused(false)
	case system.IntentToggleMusic:
		p.svc.ToggleMusic()
		p.pause.SetLabel(system.IntentToggleMusic, ui.OnOff("Music", p.svc.Prefs.Music))
	case system.IntentToggleSounds:
		p.svc.ToggleSounds()
		p.pause.SetLabel(system.IntentToggleSounds, ui.OnOff("Sounds", p.svc.Prefs.Sounds))
	case system.IntentMainMenu:
		p.finishRecording()
		return p.router.Menu(false), nil
	case system.IntentExit:
		p.finishRecording()
		return nil, ebiten.Termination
	}
	return nil, nil
}

func (p *Playing) setPaused(paused bool) {
	if paused {
		p.clock.Pause()
		p.pause.Selected = 0
		p.state = state.StatePaused
		return
	}
	p.clock.Resume()
	p.state = state.StatePlaying
}

// saveRecording writes what has been recorded so far.
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.svc.RecordPath
	if filename == "" {
		filename = replay.GenerateFilename(p.recorder.RunID())
	}

	p.recorder.Finish(p.world.Score(), p.world.Levels().Level())
	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// finishRecording saves and stops the recorder once.
func (p *Playing) finishRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.saveRecording()
	p.recorder.Stop()
}

// OnEnter applies the audio preferences for the round.
func (p *Playing) OnEnter() {
	p.svc.ApplyPrefs()
	log.Printf("Round started (seed: %d)", p.seed)
}

// OnExit makes sure the recording is on disk.
func (p *Playing) OnExit() {
	p.finishRecording()
}

// Draw renders the arena, the HUD and the pause menu.
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	cam := p.world.Camera()

	if bg := p.svc.Background; bg != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(-cam.X), float64(-cam.Y))
		screen.DrawImage(bg, op)
	}

	p.world.EachPowerup(func(pu *entity.Powerup) bool {
		if !pu.Active() {
			drawBody(screen, cam, pu.Body(), colorPowerup)
		}
		return true
	})

	p.world.EachActor(func(a entity.Actor) bool {
		drawBody(screen, cam, a.Body(), placeholderColor(a.Kind()))
		return true
	})

	// Bars go on top of every sprite.
	p.world.EachActor(func(a entity.Actor) bool {
		c, ok := a.(interface{ Vitals() *entity.Vitals })
		if !ok {
			return true
		}
		fg := ui.ColorEnemyBar
		if a.Kind() == entity.KindPlayer {
			fg = ui.ColorPlayerBar
		}
		b := a.Body()
		x, y := cam.ToScreen(b.X+b.W/2-healthbarW/2, b.Y-healthbarOffset)
		ui.DrawBar(screen, float64(x), float64(y), healthbarW, healthbarH, c.Vitals().Ratio(), fg)
		return true
	})

	p.drawHUD(screen)

	if p.state == state.StatePaused {
		p.drawPause(screen)
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	f := p.svc.Fonts
	if f == nil {
		return
	}

	levels := p.world.Levels()
	if pl := p.world.Player(); pl != nil {
		v := pl.Vitals()
		f.Draw(screen, fmt.Sprintf("%d / %d", pl.Ammo, pl.MaxAmmo), ui.SizeNormal, 12, 10, ui.ColorText)
		f.Draw(screen, fmt.Sprintf("%d / %d HP", v.Health, v.MaxHealth), ui.SizeNormal, 12, 36, ui.ColorText)
	}

	right := float64(p.svc.ScreenW - 12)
	lvl := fmt.Sprintf("Level %d", levels.Level())
	w, _ := f.Measure(lvl, ui.SizeNormal)
	f.Draw(screen, lvl, ui.SizeNormal, right-w, 10, ui.ColorTitle)
	alive := fmt.Sprintf("%d / %d", levels.Alive(), levels.Total())
	w, _ = f.Measure(alive, ui.SizeNormal)
	f.Draw(screen, alive, ui.SizeNormal, right-w, 36, ui.ColorText)

	f.DrawCentered(screen, fmt.Sprintf("Score: %d", p.world.Score()), ui.SizeNormal, float64(p.svc.ScreenW)/2, 10, ui.ColorText)
}

func (p *Playing) drawPause(screen *ebiten.Image) {
	ui.DrawOverlay(screen)
	if f := p.svc.Fonts; f != nil {
		f.DrawCentered(screen, "Paused", ui.SizeLarge, float64(p.svc.ScreenW)/2, float64(p.pause.Buttons[0].Bounds.Y-60), ui.ColorTitle)
		f.DrawMenu(screen, p.pause)
	}
}

func drawBody(screen *ebiten.Image, cam *world.Camera, b *entity.Body, fallback color.Color) {
	x, y := cam.ToScreen(b.X, b.Y)
	var img *ebiten.Image
	if b.Clip != nil {
		img = b.Clip.Image()
	}
	if img == nil {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(b.W), float32(b.H), fallback, false)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

func placeholderColor(k entity.Kind) color.Color {
	switch k {
	case entity.KindPlayer:
		return colorPlayer
	case entity.KindKnight:
		return colorKnight
	case entity.KindArrow:
		return colorArrow
	default:
		return colorEnemy
	}
}
