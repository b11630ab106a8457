package ui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evince05/EternalCombat/internal/application/system"
)

func TestFonts_FaceCached(t *testing.T) {
	f, err := NewFonts()
	require.NoError(t, err)

	a := f.Face(SizeNormal)
	b := f.Face(SizeNormal)
	c := f.Face(SizeLarge)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, float64(SizeLarge), c.Size)
}

func TestFonts_Measure(t *testing.T) {
	f, err := NewFonts()
	require.NoError(t, err)

	short, _ := f.Measure("Hi", SizeNormal)
	long, _ := f.Measure("Hello there", SizeNormal)
	bigger, _ := f.Measure("Hi", SizeLarge)

	assert.Greater(t, long, short)
	assert.Greater(t, bigger, short)
}

func TestDraw_DoesNotPanic(t *testing.T) {
	f, err := NewFonts()
	require.NoError(t, err)
	screen := ebiten.NewImage(320, 240)
	m := system.NewMenu(160, 20, 100, 40, 10,
		system.Button{Label: "Play", Intent: system.IntentPlay},
		system.Button{Label: "Exit", Intent: system.IntentExit},
	)

	assert.NotPanics(t, func() {
		f.Draw(screen, "Score: 10", SizeSmall, 4, 4, ColorText)
		f.DrawCentered(screen, "Game Over", SizeTitle, 160, 100, ColorTitle)
		DrawBar(screen, 10, 10, 64, 5, 0.5, ColorPlayerBar)
		DrawBar(screen, 10, 20, 64, 5, -1, ColorEnemyBar)
		DrawOverlay(screen)
		f.DrawMenu(screen, m)
	})
}

func TestOnOff(t *testing.T) {
	assert.Equal(t, "Music: On", OnOff("Music", true))
	assert.Equal(t, "Sounds: Off", OnOff("Sounds", false))
}
