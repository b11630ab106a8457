// Package sprite loads sprite sheets from a file system and slices them
// into animation frames.
package sprite

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/evince05/EternalCombat/internal/domain/anim"
	"github.com/evince05/EternalCombat/internal/domain/entity"
)

// Spec names a sheet, its file and its cell size.
type Spec struct {
	Name string
	Path string
	W, H int
}

// DefaultSpecs lists every sheet the game draws.
func DefaultSpecs() []Spec {
	specs := []Spec{
		{entity.SheetPlayerWalk, "sprites/player/walking.png", 64, 64},
		{entity.SheetPlayerShoot, "sprites/player/bow.png", 64, 64},
		{entity.SheetSkeletonWalk, "sprites/skeleton/walking.png", 64, 64},
		{entity.SheetSkeletonAttack, "sprites/skeleton/attacking.png", 64, 64},
		{entity.SheetArcherWalk, "sprites/archer/walking.png", 64, 64},
		{entity.SheetArcherShoot, "sprites/archer/shooting.png", 64, 64},
		{entity.SheetKnightWalk, "sprites/knight/walking.png", 64, 64},
		{entity.SheetKnightAttack, "sprites/knight/attacking.png", 64, 64},
		{entity.SheetArrowVertical, "sprites/arrow/arrow_ud.png", 6, 30},
		{entity.SheetArrowHorizontal, "sprites/arrow/arrow_lr.png", 30, 6},
	}
	files := map[entity.PowerupType]string{
		entity.PowerupHaste:     "hastepotion.png",
		entity.PowerupMaxHealth: "maxhealth.png",
		entity.PowerupMaxAmmo:   "maxammo.png",
		entity.PowerupStrength:  "strengthpotion.png",
	}
	for _, t := range entity.PowerupTypes {
		specs = append(specs, Spec{
			Name: entity.SheetPowerupPrefix + t.String(),
			Path: "sprites/powerups/" + files[t],
			W:    32,
			H:    32,
		})
	}
	return specs
}

// Grid is a sheet image cut into equal cells.
type Grid struct {
	img  *ebiten.Image
	w, h int
}

// NewGrid wraps img with cells of w x h.
func NewGrid(img *ebiten.Image, w, h int) *Grid {
	return &Grid{img: img, w: w, h: h}
}

// Frame implements anim.Sheet. Cells outside the image are nil.
func (g *Grid) Frame(row, col int) *ebiten.Image {
	if g.img == nil || row < 0 || col < 0 {
		return nil
	}
	r := image.Rect(col*g.w, row*g.h, (col+1)*g.w, (row+1)*g.h)
	if !r.In(g.img.Bounds()) {
		return nil
	}
	return g.img.SubImage(r).(*ebiten.Image)
}

// FrameRange implements anim.Sheet.
func (g *Grid) FrameRange(row, colStart, colEnd int) []*ebiten.Image {
	if colEnd < colStart {
		return nil
	}
	frames := make([]*ebiten.Image, 0, colEnd-colStart+1)
	for c := colStart; c <= colEnd; c++ {
		frames = append(frames, g.Frame(row, c))
	}
	return frames
}

// CellSize implements anim.Sheet.
func (g *Grid) CellSize() (int, int) { return g.w, g.h }

// Atlas resolves sheets by name. Unknown names get a blank 64x64 sheet.
type Atlas struct {
	sheets map[string]anim.Sheet
}

// Sheet implements anim.Sheets.
func (a *Atlas) Sheet(name string) anim.Sheet {
	if s, ok := a.sheets[name]; ok {
		return s
	}
	return anim.BlankSheet{W: 64, H: 64}
}

// Loaded reports how many sheets have real pixels.
func (a *Atlas) Loaded() int {
	n := 0
	for _, s := range a.sheets {
		if _, ok := s.(*Grid); ok {
			n++
		}
	}
	return n
}

// Decode reads and decodes one image file.
func Decode(fsys fs.FS, path string) (image.Image, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Load builds an atlas from specs. A sheet that cannot be read is logged
// and replaced by a blank sheet of the same cell size, so the game still
// runs with its real hitboxes.
func Load(fsys fs.FS, specs []Spec) *Atlas {
	a := &Atlas{sheets: make(map[string]anim.Sheet, len(specs))}
	for _, s := range specs {
		var img image.Image
		var err error
		if fsys != nil {
			img, err = Decode(fsys, s.Path)
		} else {
			err = fs.ErrNotExist
		}
		if err != nil {
			log.Printf("sprite: %s unavailable (%v), drawing placeholders", s.Name, err)
			a.sheets[s.Name] = anim.BlankSheet{W: s.W, H: s.H}
			continue
		}
		a.sheets[s.Name] = NewGrid(ebiten.NewImageFromImage(img), s.W, s.H)
	}
	return a
}

// LoadImage loads a single image such as a background. It returns nil
// when the file is missing or unreadable.
func LoadImage(fsys fs.FS, path string) *ebiten.Image {
	if fsys == nil {
		return nil
	}
	img, err := Decode(fsys, path)
	if err != nil {
		log.Printf("sprite: %s unavailable: %v", path, err)
		return nil
	}
	return ebiten.NewImageFromImage(img)
}

// Blank returns pixel-free sheets with the cell sizes of specs. Headless
// runs use it to get the same hitboxes as the windowed game.
func Blank(specs []Spec) anim.BlankSheets {
	b := anim.BlankSheets{
		Sizes:   make(map[string]anim.BlankSheet, len(specs)),
		Default: anim.BlankSheet{W: 64, H: 64},
	}
	for _, s := range specs {
		b.Sizes[s.Name] = anim.BlankSheet{W: s.W, H: s.H}
	}
	return b
}
