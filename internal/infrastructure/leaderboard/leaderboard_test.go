package leaderboard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(t *testing.T, scores ...int) *Leaderboard {
	t.Helper()
	lb := New(filepath.Join(t.TempDir(), "leaderboard.txt"))
	for i, s := range scores {
		lb.entries[i] = Entry{Name: string(rune('a' + i)), Score: s}
	}
	return lb
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line    string
		want    Entry
		wantErr bool
	}{
		{"alice: 120", Entry{Name: "alice", Score: 120}, false},
		{"bob smith: 7", Entry{Name: "bob smith", Score: 7}, false},
		{"null: 0", Entry{}, false},
		{"no separator", Entry{}, true},
		{"carl: lots", Entry{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedLine)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortNewEntry(t *testing.T) {
	t.Run("empty board takes any positive score", func(t *testing.T) {
		lb := filled(t)

		assert.True(t, lb.SortNewEntry("zed", 5))
		assert.Equal(t, "zed", lb.Name(0))
		assert.Equal(t, 5, lb.Score(0))
	})

	t.Run("zero never qualifies", func(t *testing.T) {
		lb := filled(t)

		assert.False(t, lb.SortNewEntry("zed", 0))
		assert.Equal(t, "", lb.Name(0))
	})

	t.Run("replaces the bottom row and sorts", func(t *testing.T) {
		lb := filled(t, 100, 90, 80, 70, 60, 50, 40, 30, 20, 10)

		require.True(t, lb.SortNewEntry("new", 75))
		assert.Equal(t, []int{100, 90, 80, 75, 70, 60, 50, 40, 30, 20}, scores(lb))
		assert.Equal(t, "new", lb.Name(3))
	})

	t.Run("too low", func(t *testing.T) {
		lb := filled(t, 100, 90, 80, 70, 60, 50, 40, 30, 20, 10)

		assert.False(t, lb.SortNewEntry("low", 10))
		assert.Equal(t, 10, lb.Score(9))
	})

	t.Run("ties keep older entry first", func(t *testing.T) {
		lb := filled(t, 100, 50)

		require.True(t, lb.SortNewEntry("late", 50))
		assert.Equal(t, "b", lb.Name(1))
		assert.Equal(t, "late", lb.Name(2))
	})
}

func scores(lb *Leaderboard) []int {
	out := make([]int, Size)
	for i := range out {
		out[i] = lb.Score(i)
	}
	return out
}

func TestQualifies(t *testing.T) {
	lb := filled(t, 100, 90, 80, 70, 60, 50, 40, 30, 20, 10)

	assert.True(t, lb.Qualifies(11))
	assert.False(t, lb.Qualifies(10))
}

func TestOutOfRange(t *testing.T) {
	lb := filled(t, 5)

	assert.Equal(t, "", lb.Name(-1))
	assert.Equal(t, 0, lb.Score(Size))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	lb := filled(t, 300, 200, 100)
	lb.SortNewEntry("mid", 150)
	require.NoError(t, lb.Save())

	loaded, err := Load(lb.Path())
	require.NoError(t, err)

	assert.Equal(t, lb.Entries(), loaded.Entries())
}

func TestLoad(t *testing.T) {
	t.Run("missing file is empty", func(t *testing.T) {
		lb, err := Load(filepath.Join(t.TempDir(), "none.txt"))
		require.NoError(t, err)
		assert.Equal(t, make([]Entry, Size), lb.Entries())
	})

	t.Run("skips malformed and blank lines and sorts", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "leaderboard.txt")
		data := "low: 5\n\ngarbage\nhigh: 50\nbad: x\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		lb, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "high", lb.Name(0))
		assert.Equal(t, "low", lb.Name(1))
		assert.Equal(t, 0, lb.Score(2))
	})
}

func TestReset(t *testing.T) {
	lb := filled(t, 10, 9)
	require.NoError(t, lb.Save())

	require.NoError(t, lb.Reset())
	assert.Equal(t, make([]Entry, Size), lb.Entries())

	data, err := os.ReadFile(lb.Path())
	require.NoError(t, err)
	assert.Empty(t, data)
}
