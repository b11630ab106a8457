package main

import (
	"io/fs"
	"log"

	"github.com/evince05/EternalCombat/internal/application/replay"
	"github.com/evince05/EternalCombat/internal/infrastructure/config"
	"github.com/evince05/EternalCombat/internal/infrastructure/sprite"
)

// runReplay plays a recording without a window and reports whether it
// reproduced the recorded outcome. It returns the process exit code.
func runReplay(path string, tuning *config.Tuning, assets fs.FS) int {
	data, err := replay.LoadReplay(path)
	if err != nil {
		log.Printf("Failed to load replay: %v", err)
		return 2
	}

	res, err := verifyReplay(*data, tuning, assets)
	if err != nil {
		log.Printf("Failed to build arena: %v", err)
		return 2
	}

	log.Printf("Replay %s: %d/%d frames, score %d (recorded %d), level %d (recorded %d)",
		data.RunID, res.Frames, len(data.Frames), res.Score, data.Score, res.Level, data.Level)
	if !res.Matches(*data) {
		log.Printf("Replay diverged from the recording")
		return 1
	}
	log.Printf("Replay matches the recording")
	return 0
}

// verifyReplay runs data through a headless world set up like the
// windowed game.
func verifyReplay(data replay.ReplayData, tuning *config.Tuning, assets fs.FS) (replay.Result, error) {
	cfg, err := arenaConfig(tuning, assets)
	if err != nil {
		return replay.Result{}, err
	}
	return replay.Run(cfg, sprite.Blank(sprite.DefaultSpecs()), data), nil
}
