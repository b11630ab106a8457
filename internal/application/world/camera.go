package world

import "github.com/evince05/EternalCombat/internal/domain/entity"

// Camera is the top-left corner of the view in world coordinates.
type Camera struct {
	X, Y   int
	W, H   int
	bounds entity.Rect
}

// NewCamera creates a view of w x h that never shows anything outside bounds.
func NewCamera(w, h int, bounds entity.Rect) *Camera {
	return &Camera{W: w, H: h, X: bounds.X, Y: bounds.Y, bounds: bounds}
}

// Follow centres the view on r. Each axis only moves when the centred
// view still fits in the bounds; otherwise it keeps its last position.
func (c *Camera) Follow(r entity.Rect) {
	x := r.X + r.W/2 - c.W/2
	y := r.Y + r.H/2 - c.H/2

	if x >= c.bounds.X && x <= c.bounds.MaxX()-c.W {
		c.X = x
	}
	if y >= c.bounds.Y && y <= c.bounds.MaxY()-c.H {
		c.Y = y
	}
}

// ToScreen converts world coordinates to screen coordinates.
func (c *Camera) ToScreen(x, y int) (int, int) {
	return x - c.X, y - c.Y
}

// View returns the visible world rectangle.
func (c *Camera) View() entity.Rect {
	return entity.Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
}
