package anim

import "github.com/hajimehoshi/ebiten/v2"

// Sheet hands out the cells of a sprite sheet grid.
// A nil image is a valid frame; drawing code skips it.
type Sheet interface {
	Frame(row, col int) *ebiten.Image
	FrameRange(row, colStart, colEnd int) []*ebiten.Image
	CellSize() (w, h int)
}

// Sheets resolves sheets by name.
type Sheets interface {
	Sheet(name string) Sheet
}

// BlankSheet is a sheet without pixels. Every frame is nil but the
// cell size is kept so entities still get their real dimensions.
type BlankSheet struct {
	W, H int
}

// Frame returns nil.
func (s BlankSheet) Frame(row, col int) *ebiten.Image { return nil }

// FrameRange returns colEnd-colStart+1 nil frames.
func (s BlankSheet) FrameRange(row, colStart, colEnd int) []*ebiten.Image {
	if colEnd < colStart {
		return nil
	}
	return make([]*ebiten.Image, colEnd-colStart+1)
}

// CellSize returns the configured cell dimensions.
func (s BlankSheet) CellSize() (int, int) { return s.W, s.H }

// BlankSheets serves a BlankSheet for every name, using Sizes when the
// name is known and Default otherwise.
type BlankSheets struct {
	Sizes   map[string]BlankSheet
	Default BlankSheet
}

// Sheet implements Sheets.
func (b BlankSheets) Sheet(name string) Sheet {
	if s, ok := b.Sizes[name]; ok {
		return s
	}
	return b.Default
}
