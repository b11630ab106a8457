package replay

import (
	"github.com/evince05/EternalCombat/internal/application/world"
	"github.com/evince05/EternalCombat/internal/domain/anim"
)

// Result is the outcome of a headless playback.
type Result struct {
	Frames int
	Score  int
	Level  int
	Over   bool
}

// Matches reports whether the playback reproduced the recorded outcome.
func (r Result) Matches(data ReplayData) bool {
	return r.Score == data.Score && r.Level == data.Level
}

// Run replays data through a fresh world without a window. The world is
// seeded from the recording; everything else comes from cfg.
func Run(cfg world.Config, sheets anim.Sheets, data ReplayData) Result {
	cfg.Seed = data.Seed
	w := world.New(cfg, sheets, nil, nil, 0)
	r := NewReplayer(data)

	var res Result
	for !w.Over() {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		w.Tick(in.Controls, in.Now)
		res.Frames++
	}
	res.Score = w.Score()
	res.Level = w.Levels().Level()
	res.Over = w.Over()
	return res
}
