// Package entity holds the game's simulated objects: the player, the
// skeleton variants, arrows and powerups.
//
// Entities never own the collections they live in. They reach their
// world through Env and only ask it to add or remove things.
package entity

// Kind tags the concrete type of an actor.
type Kind int

const (
	KindPlayer Kind = iota
	KindSkeleton
	KindArcher
	KindKnight
	KindArrow
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindSkeleton:
		return "Skeleton"
	case KindArcher:
		return "ArcherSkeleton"
	case KindKnight:
		return "SkeletonKnight"
	case KindArrow:
		return "Arrow"
	default:
		return "Unknown"
	}
}

// IsEnemy reports whether the kind is one of the skeleton variants.
func (k Kind) IsEnemy() bool {
	return k == KindSkeleton || k == KindArcher || k == KindKnight
}

// Cue names a one-shot sound effect.
type Cue string

const (
	CueShoot    Cue = "shoot-arrow"
	CueArrowHit Cue = "arrow-hit"
	CueSword    Cue = "sword-attack"
	CueGameOver Cue = "gameover"
	CuePowerup  Cue = "powerup"
)

// Sprite sheet names resolved through anim.Sheets.
const (
	SheetPlayerWalk      = "player/walk"
	SheetPlayerShoot     = "player/shoot"
	SheetSkeletonWalk    = "skeleton/walk"
	SheetSkeletonAttack  = "skeleton/attack"
	SheetArcherWalk      = "archer/walk"
	SheetArcherShoot     = "archer/shoot"
	SheetKnightWalk      = "knight/walk"
	SheetKnightAttack    = "knight/attack"
	SheetArrowVertical   = "arrow/vertical"
	SheetArrowHorizontal = "arrow/horizontal"
	SheetPowerupPrefix   = "powerup/"
)

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H int
}

// MaxX returns the right edge.
func (r Rect) MaxX() int { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() int { return r.Y + r.H }

// Intersects reports whether the two rectangles share any area.
// Empty rectangles intersect nothing.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.MaxX() && y >= r.Y && y < r.MaxY()
}
