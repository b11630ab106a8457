package main

import (
	"flag"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/evince05/EternalCombat/internal/application/game"
	"github.com/evince05/EternalCombat/internal/application/scene"
	"github.com/evince05/EternalCombat/internal/application/scene/ui"
	"github.com/evince05/EternalCombat/internal/application/system"
	"github.com/evince05/EternalCombat/internal/application/world"
	"github.com/evince05/EternalCombat/internal/domain/entity"
	"github.com/evince05/EternalCombat/internal/infrastructure/audio"
	"github.com/evince05/EternalCombat/internal/infrastructure/clock"
	"github.com/evince05/EternalCombat/internal/infrastructure/config"
	"github.com/evince05/EternalCombat/internal/infrastructure/leaderboard"
	"github.com/evince05/EternalCombat/internal/infrastructure/sprite"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Directory holding game.json (default: embedded config)")
	assetsDir := flag.String("assets", "assets", "Directory holding sprites, backgrounds and audio")
	settingsPath := flag.String("settings", "settings.yaml", "Settings file")
	leaderboardPath := flag.String("leaderboard", "leaderboard.txt", "Leaderboard file")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headlessly and check its outcome")
	seedFlag := flag.Int64("seed", 0, "Seed for the session (0 picks one from the clock)")
	watchFlag := flag.Bool("watch", false, "Re-apply settings when the settings file changes")
	flag.Parse()

	tuning, err := loadTuning(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	assets := os.DirFS(*assetsDir)

	if *replayFlag != "" {
		os.Exit(runReplay(*replayFlag, tuning, assets))
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seeds := rand.New(rand.NewSource(seed))
	log.Printf("Session seed: %d", seed)

	cfg, err := arenaConfig(tuning, assets)
	if err != nil {
		log.Fatalf("Failed to build arena: %v", err)
	}

	atlas := sprite.Load(assets, sprite.DefaultSpecs())
	log.Printf("Loaded %d sprite sheets", atlas.Loaded())

	fonts, err := ui.NewFonts()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	store := config.NewSettingsStore(*settingsPath)
	prefs, err := store.Load()
	if err != nil {
		log.Printf("Using default settings: %v", err)
	}

	board, err := leaderboard.Load(*leaderboardPath)
	if err != nil {
		log.Printf("Starting with an empty leaderboard: %v", err)
		board = leaderboard.New(*leaderboardPath)
	}

	mixer := audio.NewMixer(audio.NewContext(), assets, rand.New(rand.NewSource(seeds.Int63())))
	defer mixer.Close()

	clk := clock.NewStepTPS(tuning.Display.Framerate)
	svc := &scene.Services{
		World:       cfg,
		Clock:       clk,
		Input:       system.NewInputSystem(),
		Sheets:      atlas,
		Background:  sprite.LoadImage(assets, tuning.Arena.Background),
		Fonts:       fonts,
		Mixer:       mixer,
		Settings:    store,
		Prefs:       prefs,
		Leaderboard: board,
		NextSeed:    seeds.Int63,
		RecordPath:  *recordFlag,
		ScreenW:     tuning.Display.ScreenWidth,
		ScreenH:     tuning.Display.ScreenHeight,
	}
	svc.ApplyPrefs()

	scenes := game.NewScenes(svc, tuning.Display.Title)
	g := game.New(scenes.Menu(false), svc.ScreenW, svc.ScreenH)
	g.SetClock(clk)
	g.SetBeforeUpdate(svc.Tick)

	if *watchFlag {
		w, err := config.NewWatcher(*settingsPath)
		if err != nil {
			log.Printf("Settings watcher disabled: %v", err)
		} else {
			defer func() { _ = w.Close() }()
			go func() {
				for err := range w.Errors {
					log.Printf("Settings watcher: %v", err)
				}
			}()
			g.OnReload(w.Events, func(string) { svc.ReloadPrefs() })
			log.Printf("Watching %s", *settingsPath)
		}
	}

	// Set up ebiten
	ebiten.SetWindowSize(svc.ScreenW, svc.ScreenH)
	ebiten.SetWindowTitle(tuning.Display.Title)
	ebiten.SetTPS(tuning.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// loadTuning reads game.json from dir, or from the embedded configs
// when dir is empty.
func loadTuning(dir string) (*config.Tuning, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadTuning()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").LoadTuning()
}

// arenaConfig builds the round config. When the background image is
// present, its size replaces the configured camera bounds.
func arenaConfig(t *config.Tuning, assets fs.FS) (world.Config, error) {
	cfg, err := world.ConfigFromTuning(t, 0)
	if err != nil {
		return world.Config{}, err
	}
	if w, h, ok := imageSize(assets, t.Arena.Background); ok {
		cfg.CameraBounds = entity.Rect{X: 0, Y: 0, W: w, H: h}
	}
	return cfg, nil
}

// imageSize reads only the header of an image file.
func imageSize(fsys fs.FS, path string) (int, int, bool) {
	if fsys == nil || path == "" {
		return 0, 0, false
	}
	f, err := fsys.Open(path)
	if err != nil {
		return 0, 0, false
	}
	defer func() { _ = f.Close() }()

	c, _, err := image.DecodeConfig(f)
	if err != nil {
		log.Printf("Ignoring background %s: %v", path, err)
		return 0, 0, false
	}
	return c.Width, c.Height, true
}
