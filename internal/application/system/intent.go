package system

import "github.com/evince05/EternalCombat/internal/domain/entity"

// Intent is what a menu selection asks the scene to do.
type Intent int

const (
	IntentNone Intent = iota
	IntentPlay
	IntentLeaderboard
	IntentBack
	IntentResume
	IntentToggleMusic
	IntentToggleSounds
	IntentMainMenu
	IntentExit
)

func (i Intent) String() string {
	switch i {
	case IntentPlay:
		return "Play"
	case IntentLeaderboard:
		return "Leaderboard"
	case IntentBack:
		return "Back"
	case IntentResume:
		return "Resume"
	case IntentToggleMusic:
		return "ToggleMusic"
	case IntentToggleSounds:
		return "ToggleSounds"
	case IntentMainMenu:
		return "MainMenu"
	case IntentExit:
		return "Exit"
	default:
		return "None"
	}
}

// Button is one clickable menu entry.
type Button struct {
	Label  string
	Intent Intent
	Bounds entity.Rect
}

// Menu is a vertical column of buttons driven by the mouse or keyboard.
type Menu struct {
	Buttons  []Button
	Selected int
}

// NewMenu lays out buttons of size w x h centered on centerX, starting at
// top and separated by gap pixels.
func NewMenu(centerX, top, w, h, gap int, buttons ...Button) *Menu {
	for i := range buttons {
		buttons[i].Bounds = entity.Rect{
			X: centerX - w/2,
			Y: top + i*(h+gap),
			W: w,
			H: h,
		}
	}
	return &Menu{Buttons: buttons}
}

// SetLabel replaces the label of the first button carrying the intent.
func (m *Menu) SetLabel(intent Intent, label string) {
	for i := range m.Buttons {
		if m.Buttons[i].Intent == intent {
			m.Buttons[i].Label = label
			return
		}
	}
}

// Update moves the selection and returns the intent that was triggered
// this frame, if any. A click fires the button under the cursor; Enter
// fires the selected one.
func (m *Menu) Update(in *InputSystem) Intent {
	if len(m.Buttons) == 0 {
		return IntentNone
	}

	mx, my := in.Mouse()
	for i, b := range m.Buttons {
		if b.Bounds.Contains(mx, my) {
			m.Selected = i
			if in.Down(ActionShoot) {
				return b.Intent
			}
		}
	}

	switch {
	case in.Down(ActionUp):
		m.Selected = (m.Selected + len(m.Buttons) - 1) % len(m.Buttons)
	case in.Down(ActionDown):
		m.Selected = (m.Selected + 1) % len(m.Buttons)
	case in.Down(ActionConfirm):
		return m.Buttons[m.Selected].Intent
	}
	return IntentNone
}
