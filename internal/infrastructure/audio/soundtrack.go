package audio

import "math/rand"

// DefaultSongs are the music tracks, relative to the music directory.
var DefaultSongs = []string{
	"Conquerors.wav",
	"EpicOrchestralFantasy.wav",
	"ForTheKing.wav",
	"LandOfFearless.wav",
	"NewSunrise.wav",
	"NoMoreMagic.wav",
	"oga_blaze.wav",
	"RegularBattle.wav",
	"SpiritOfValley.wav",
	"BossBattleMetal.wav",
}

// Soundtrack is a shuffled play queue. Every song plays once before the
// queue is refilled and reshuffled.
type Soundtrack struct {
	songs []string
	queue []string
	rng   *rand.Rand
}

// NewSoundtrack creates a shuffled queue of songs.
func NewSoundtrack(songs []string, rng *rand.Rand) *Soundtrack {
	s := &Soundtrack{songs: songs, rng: rng}
	s.Reset()
	return s
}

// Reset refills the queue with every song and shuffles it.
func (s *Soundtrack) Reset() {
	s.queue = append(s.queue[:0], s.songs...)
	s.rng.Shuffle(len(s.queue), func(i, j int) {
		s.queue[i], s.queue[j] = s.queue[j], s.queue[i]
	})
}

// Current returns the song at the head of the queue, or "" if there are no songs.
func (s *Soundtrack) Current() string {
	if len(s.queue) == 0 {
		return ""
	}
	return s.queue[0]
}

// HasNext reports whether another song is left before a reset.
func (s *Soundtrack) HasNext() bool {
	return len(s.queue) > 1
}

// Next drops the current song and returns the following one, starting a
// new shuffled round when the queue runs out.
func (s *Soundtrack) Next() string {
	if s.HasNext() {
		s.queue = s.queue[1:]
	} else {
		s.Reset()
	}
	return s.Current()
}

// Remaining returns how many songs are left in this round, the current one included.
func (s *Soundtrack) Remaining() int { return len(s.queue) }
