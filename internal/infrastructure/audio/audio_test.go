package audio

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evince05/EternalCombat/internal/domain/entity"
)

func TestSoundtrack_PlaysEverySongOncePerRound(t *testing.T) {
	s := NewSoundtrack(DefaultSongs, rand.New(rand.NewSource(1)))

	var played []string
	played = append(played, s.Current())
	for s.HasNext() {
		played = append(played, s.Next())
	}

	sort.Strings(played)
	want := append([]string(nil), DefaultSongs...)
	sort.Strings(want)
	assert.Equal(t, want, played)
}

func TestSoundtrack_ResetsWhenExhausted(t *testing.T) {
	s := NewSoundtrack([]string{"a", "b"}, rand.New(rand.NewSource(2)))

	s.Next()
	require.False(t, s.HasNext())
	assert.Equal(t, 1, s.Remaining())

	next := s.Next()
	assert.Contains(t, []string{"a", "b"}, next)
	assert.Equal(t, 2, s.Remaining(), "queue refilled, not grown")
}

func TestSoundtrack_Empty(t *testing.T) {
	s := NewSoundtrack(nil, rand.New(rand.NewSource(3)))

	assert.Equal(t, "", s.Current())
	assert.Equal(t, "", s.Next())
}

func TestCuePath(t *testing.T) {
	assert.Equal(t, "audio/sfx/shoot-arrow.wav", CuePath(entity.CueShoot))
	assert.Equal(t, "audio/music/gameover.wav", CuePath(entity.CueGameOver))
}

// monoWAV builds an 8-bit mono WAV file.
func monoWAV(samples []byte) []byte {
	var b bytes.Buffer
	b.WriteString("RIFF")
	_ = binary.Write(&b, binary.LittleEndian, uint32(36+len(samples)))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	_ = binary.Write(&b, binary.LittleEndian, uint32(16))
	_ = binary.Write(&b, binary.LittleEndian, uint16(1))
	_ = binary.Write(&b, binary.LittleEndian, uint16(1))
	_ = binary.Write(&b, binary.LittleEndian, uint32(SampleRate))
	_ = binary.Write(&b, binary.LittleEndian, uint32(SampleRate))
	_ = binary.Write(&b, binary.LittleEndian, uint16(1))
	_ = binary.Write(&b, binary.LittleEndian, uint16(8))
	b.WriteString("data")
	_ = binary.Write(&b, binary.LittleEndian, uint32(len(samples)))
	b.Write(samples)
	return b.Bytes()
}

func TestDecodeWAV(t *testing.T) {
	pcm, err := DecodeWAV(monoWAV([]byte{128, 128, 128, 128}))
	require.NoError(t, err)
	assert.Len(t, pcm, 4*4, "converted to 16-bit stereo")

	_, err = DecodeWAV([]byte("nope"))
	assert.Error(t, err)
}

func TestMixer_SilentWithoutContext(t *testing.T) {
	m := NewMixer(nil, nil, rand.New(rand.NewSource(1)))

	assert.True(t, m.Sounds())
	assert.True(t, m.Music())

	m.Play(entity.CueShoot)
	m.Update()
	assert.Empty(t, m.cues)

	m.SetSounds(false)
	m.SetMusic(false)
	assert.False(t, m.Sounds())
	assert.False(t, m.Music())
	m.Close()
}
