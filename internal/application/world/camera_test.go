package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evince05/EternalCombat/internal/domain/entity"
)

func TestCamera_Follow(t *testing.T) {
	bounds := entity.Rect{W: 2336, H: 1536}

	tests := []struct {
		name   string
		target entity.Rect
		wantX  int
		wantY  int
	}{
		{"centred", entity.Rect{X: 600, Y: 600, W: 64, H: 64}, 232, 332},
		{"too far left keeps x", entity.Rect{X: 100, Y: 600, W: 64, H: 64}, 0, 332},
		{"too far right keeps x", entity.Rect{X: 2200, Y: 600, W: 64, H: 64}, 0, 332},
		{"bottom edge exactly", entity.Rect{X: 600, Y: 1204, W: 64, H: 64}, 232, 936},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(800, 600, bounds)
			c.Follow(tt.target)
			assert.Equal(t, tt.wantX, c.X)
			assert.Equal(t, tt.wantY, c.Y)
		})
	}
}

func TestCamera_HoldsPositionAtEdge(t *testing.T) {
	c := NewCamera(800, 600, entity.Rect{W: 2336, H: 1536})

	c.Follow(entity.Rect{X: 1500, Y: 600, W: 64, H: 64})
	assert.Equal(t, 1132, c.X)

	c.Follow(entity.Rect{X: 2000, Y: 600, W: 64, H: 64})
	assert.Equal(t, 1132, c.X, "view would leave the bounds")
}

func TestCamera_ToScreen(t *testing.T) {
	c := NewCamera(800, 600, entity.Rect{W: 2336, H: 1536})
	c.X, c.Y = 100, 50

	x, y := c.ToScreen(300, 300)
	assert.Equal(t, 200, x)
	assert.Equal(t, 250, y)
	assert.Equal(t, entity.Rect{X: 100, Y: 50, W: 800, H: 600}, c.View())
}
