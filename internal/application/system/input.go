package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/evince05/EternalCombat/internal/domain/entity"
)

// Action is a logical input bound to keys or mouse buttons.
type Action int

const (
	ActionUp Action = iota
	ActionLeft
	ActionDown
	ActionRight
	ActionShoot
	ActionPause
	ActionConfirm
	ActionErase
	ActionSave
	actionCount
)

// InputState holds the raw input of one frame.
type InputState struct {
	Up      bool
	Left    bool
	Down    bool
	Right   bool
	Shoot   bool
	Pause   bool
	Confirm bool
	Erase   bool
	Save    bool
	MouseX  int
	MouseY  int
	// Typed holds the characters entered this frame.
	Typed []rune
}

// Held reports whether the action's key is pressed in this state.
func (s InputState) Held(a Action) bool {
	switch a {
	case ActionUp:
		return s.Up
	case ActionLeft:
		return s.Left
	case ActionDown:
		return s.Down
	case ActionRight:
		return s.Right
	case ActionShoot:
		return s.Shoot
	case ActionPause:
		return s.Pause
	case ActionConfirm:
		return s.Confirm
	case ActionErase:
		return s.Erase
	case ActionSave:
		return s.Save
	default:
		return false
	}
}

// ReadDevices samples the keyboard and mouse through ebiten.
func ReadDevices() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Up:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Shoot:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pause:   ebiten.IsKeyPressed(ebiten.KeyEscape),
		Confirm: ebiten.IsKeyPressed(ebiten.KeyEnter) || ebiten.IsKeyPressed(ebiten.KeyNumpadEnter),
		Erase:   ebiten.IsKeyPressed(ebiten.KeyBackspace),
		Save:    ebiten.IsKeyPressed(ebiten.KeyF5),
		MouseX:  mx,
		MouseY:  my,
		Typed:   ebiten.AppendInputChars(nil),
	}
}

// InputSystem keeps this frame's and last frame's input so that
// presses and releases can be told apart from held keys.
type InputSystem struct {
	read func() InputState
	prev InputState
	cur  InputState
}

// NewInputSystem creates an input system reading from the real devices.
func NewInputSystem() *InputSystem {
	return NewInputSystemFrom(ReadDevices)
}

// NewInputSystemFrom creates an input system over a custom source.
func NewInputSystemFrom(read func() InputState) *InputSystem {
	return &InputSystem{read: read}
}

// Poll samples the source and makes the result the current frame.
func (s *InputSystem) Poll() InputState {
	s.Feed(s.read())
	return s.cur
}

// Feed installs an externally produced state as the current frame.
func (s *InputSystem) Feed(in InputState) {
	s.prev = s.cur
	s.cur = in
}

// Current returns the state of the current frame.
func (s *InputSystem) Current() InputState { return s.cur }

// Held reports whether the action is pressed this frame.
func (s *InputSystem) Held(a Action) bool { return s.cur.Held(a) }

// Down reports whether the action was pressed this frame but not the last.
func (s *InputSystem) Down(a Action) bool { return s.cur.Held(a) && !s.prev.Held(a) }

// Up reports whether the action was released this frame.
func (s *InputSystem) Up(a Action) bool { return !s.cur.Held(a) && s.prev.Held(a) }

// Mouse returns the cursor position of the current frame.
func (s *InputSystem) Mouse() (int, int) { return s.cur.MouseX, s.cur.MouseY }

// Typed returns the characters entered this frame.
func (s *InputSystem) Typed() []rune { return s.cur.Typed }

// Controls maps the current frame onto player controls. Shooting counts
// on the press frame and while the button stays held.
func (s *InputSystem) Controls() entity.Controls {
	return entity.Controls{
		Up:    s.Held(ActionUp),
		Left:  s.Held(ActionLeft),
		Down:  s.Held(ActionDown),
		Right: s.Held(ActionRight),
		Shoot: s.Down(ActionShoot) || s.Held(ActionShoot),
	}
}
