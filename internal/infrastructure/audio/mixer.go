// Package audio plays sound cues and the background soundtrack through
// ebiten's audio context.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math/rand"
	"path"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/evince05/EternalCombat/internal/domain/entity"
)

// SampleRate is the rate every clip is resampled to.
const SampleRate = 44100

// Mixer implements the world's cue player and drives the soundtrack.
// A Mixer without a context stays silent, which is what headless runs use.
type Mixer struct {
	ctx    *audio.Context
	assets fs.FS

	cues    map[entity.Cue][]byte
	missing map[string]bool

	sounds bool
	music  bool

	soundtrack *Soundtrack
	song       *audio.Player
	failed     int
}

// NewMixer creates a mixer reading clips from assets. ctx may be nil.
func NewMixer(ctx *audio.Context, assets fs.FS, rng *rand.Rand) *Mixer {
	return &Mixer{
		ctx:        ctx,
		assets:     assets,
		cues:       make(map[entity.Cue][]byte),
		missing:    make(map[string]bool),
		sounds:     true,
		music:      true,
		soundtrack: NewSoundtrack(DefaultSongs, rng),
	}
}

// NewContext creates the process-wide audio context. It must only be
// called once.
func NewContext() *audio.Context {
	return audio.NewContext(SampleRate)
}

// CuePath returns the asset path of a cue.
func CuePath(c entity.Cue) string {
	if c == entity.CueGameOver {
		return path.Join("audio", "music", string(c)+".wav")
	}
	return path.Join("audio", "sfx", string(c)+".wav")
}

// SetSounds enables or disables sound cues.
func (m *Mixer) SetSounds(on bool) { m.sounds = on }

// Sounds reports whether cues play.
func (m *Mixer) Sounds() bool { return m.sounds }

// SetMusic enables or disables the soundtrack. Disabling stops the
// current song; enabling starts the next one on the following Update.
func (m *Mixer) SetMusic(on bool) {
	m.music = on
	if !on {
		m.stopSong()
	}
}

// Music reports whether the soundtrack plays.
func (m *Mixer) Music() bool { return m.music }

// Soundtrack returns the play queue.
func (m *Mixer) Soundtrack() *Soundtrack { return m.soundtrack }

// Play starts a cue without waiting for it to finish.
func (m *Mixer) Play(c entity.Cue) {
	if !m.sounds || m.ctx == nil {
		return
	}
	pcm, ok := m.clip(c)
	if !ok {
		return
	}
	m.ctx.NewPlayerFromBytes(pcm).Play()
}

func (m *Mixer) clip(c entity.Cue) ([]byte, bool) {
	if pcm, ok := m.cues[c]; ok {
		return pcm, true
	}
	p := CuePath(c)
	if m.missing[p] {
		return nil, false
	}
	pcm, err := m.loadPCM(p)
	if err != nil {
		log.Printf("audio: cue %s unavailable: %v", c, err)
		m.missing[p] = true
		return nil, false
	}
	m.cues[c] = pcm
	return pcm, true
}

func (m *Mixer) loadPCM(p string) ([]byte, error) {
	if m.assets == nil {
		return nil, fs.ErrNotExist
	}
	b, err := fs.ReadFile(m.assets, p)
	if err != nil {
		return nil, err
	}
	return DecodeWAV(b)
}

// DecodeWAV decodes a WAV file into 16-bit stereo PCM at SampleRate.
func DecodeWAV(b []byte) ([]byte, error) {
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}
	return pcm, nil
}

// Update advances the soundtrack when the current song has ended. Call
// it once per frame.
func (m *Mixer) Update() {
	if !m.music || m.ctx == nil || m.failed >= len(DefaultSongs) {
		return
	}
	if m.song != nil && m.song.IsPlaying() {
		return
	}
	if m.song != nil {
		m.stopSong()
		m.soundtrack.Next()
	}
	m.startSong()
}

func (m *Mixer) startSong() {
	name := m.soundtrack.Current()
	if name == "" {
		return
	}
	pcm, err := m.loadPCM(path.Join("audio", "music", name))
	if err != nil {
		m.failed++
		if m.failed == len(DefaultSongs) {
			log.Printf("audio: no playable songs, music disabled: %v", err)
		}
		m.soundtrack.Next()
		return
	}
	m.failed = 0
	m.song = m.ctx.NewPlayerFromBytes(pcm)
	m.song.Play()
}

func (m *Mixer) stopSong() {
	if m.song == nil {
		return
	}
	if err := m.song.Close(); err != nil {
		log.Printf("audio: closing song: %v", err)
	}
	m.song = nil
}

// Close stops the soundtrack.
func (m *Mixer) Close() {
	m.stopSong()
}
