package anim

// Direction is the facing tag carried by a clip. Values match the row
// order of the character sprite sheets.
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

// Directions lists every direction in sheet row order.
var Directions = [4]Direction{Up, Left, Down, Right}

// Row returns the sprite sheet row holding this direction's frames.
func (d Direction) Row() int { return int(d) }

// Horizontal reports whether the direction is Left or Right.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}
