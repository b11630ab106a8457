// Package ui draws the text, bars and buttons shared by every scene.
package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/evince05/EternalCombat/internal/application/system"
)

// Text sizes.
const (
	SizeSmall  = 14
	SizeNormal = 20
	SizeLarge  = 32
	SizeTitle  = 56
)

// Colors for rendering
var (
	ColorText        = colornames.White
	ColorDim         = colornames.Lightgray
	ColorTitle       = colornames.Gold
	ColorPlayerBar   = colornames.Limegreen
	ColorEnemyBar    = colornames.Red
	ColorBarBG       = color.RGBA{40, 40, 40, 220}
	ColorButton      = color.RGBA{0x33, 0x33, 0x33, 0xff}
	ColorButtonHover = color.RGBA{0x55, 0x55, 0x77, 0xff}
	ColorOverlay     = color.RGBA{0, 0, 0, 160}
	ColorBackground  = color.RGBA{26, 26, 46, 255}
)

// Fonts caches Go Regular faces by size.
type Fonts struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewFonts parses the embedded Go Regular font.
func NewFonts() (*Fonts, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Fonts{source: s, faces: make(map[float64]*text.GoTextFace)}, nil
}

// Face returns the face of the given size.
func (f *Fonts) Face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// Measure returns the rendered size of s.
func (f *Fonts) Measure(s string, size float64) (w, h float64) {
	return text.Measure(s, f.Face(size), 0)
}

// Draw renders s with its top-left corner at (x, y).
func (f *Fonts) Draw(dst *ebiten.Image, s string, size, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, f.Face(size), op)
}

// DrawCentered renders s horizontally centred on cx.
func (f *Fonts) DrawCentered(dst *ebiten.Image, s string, size, cx, y float64, clr color.Color) {
	w, _ := f.Measure(s, size)
	f.Draw(dst, s, size, cx-w/2, y, clr)
}

// DrawBar fills a w*h bar at (x, y) up to ratio of its width.
func DrawBar(dst *ebiten.Image, x, y, w, h float64, ratio float64, fg color.Color) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), ColorBarBG, false)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w*ratio), float32(h), fg, false)
}

// DrawOverlay darkens the whole screen.
func DrawOverlay(dst *ebiten.Image) {
	b := dst.Bounds()
	vector.DrawFilledRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), ColorOverlay, false)
}

// DrawMenu renders every button of m, highlighting the selected one.
func (f *Fonts) DrawMenu(dst *ebiten.Image, m *system.Menu) {
	for i, b := range m.Buttons {
		bg := ColorButton
		if i == m.Selected {
			bg = ColorButtonHover
		}
		r := b.Bounds
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, ColorDim, false)
		_, th := f.Measure(b.Label, SizeNormal)
		f.DrawCentered(dst, b.Label, SizeNormal, float64(r.X)+float64(r.W)/2, float64(r.Y)+(float64(r.H)-th)/2, ColorText)
	}
}

// OnOff formats a toggle label such as "Music: On".
func OnOff(label string, on bool) string {
	if on {
		return label + ": On"
	}
	return label + ": Off"
}
