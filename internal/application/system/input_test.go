package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evince05/EternalCombat/internal/domain/entity"
)

func scripted(states ...InputState) func() InputState {
	i := 0
	return func() InputState {
		if i >= len(states) {
			return InputState{}
		}
		s := states[i]
		i++
		return s
	}
}

func TestNewInputSystem(t *testing.T) {
	sys := NewInputSystem()

	require.NotNil(t, sys)
	assert.False(t, sys.Held(ActionShoot))
}

func TestInputSystem_Edges(t *testing.T) {
	sys := NewInputSystemFrom(scripted(
		InputState{},
		InputState{Pause: true},
		InputState{Pause: true},
		InputState{},
	))

	sys.Poll()
	assert.False(t, sys.Down(ActionPause))

	sys.Poll()
	assert.True(t, sys.Down(ActionPause), "press frame")
	assert.True(t, sys.Held(ActionPause))
	assert.False(t, sys.Up(ActionPause))

	sys.Poll()
	assert.False(t, sys.Down(ActionPause), "held, not pressed again")
	assert.True(t, sys.Held(ActionPause))

	sys.Poll()
	assert.True(t, sys.Up(ActionPause), "release frame")
	assert.False(t, sys.Held(ActionPause))
}

func TestInputSystem_Controls(t *testing.T) {
	tests := []struct {
		name string
		in   InputState
		want entity.Controls
	}{
		{"idle", InputState{}, entity.Controls{}},
		{"walk up", InputState{Up: true}, entity.Controls{Up: true}},
		{"diagonal", InputState{Down: true, Right: true}, entity.Controls{Down: true, Right: true}},
		{"shoot", InputState{Shoot: true}, entity.Controls{Shoot: true}},
		{"pause does not leak", InputState{Pause: true, Confirm: true}, entity.Controls{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewInputSystemFrom(scripted())
			sys.Feed(tt.in)
			assert.Equal(t, tt.want, sys.Controls())
		})
	}
}

func TestInputSystem_ShootStaysOnWhileHeld(t *testing.T) {
	sys := NewInputSystemFrom(scripted())

	sys.Feed(InputState{Shoot: true})
	assert.True(t, sys.Controls().Shoot)
	sys.Feed(InputState{Shoot: true})
	assert.True(t, sys.Controls().Shoot)
	sys.Feed(InputState{})
	assert.False(t, sys.Controls().Shoot)
}

func TestInputSystem_MouseAndTyped(t *testing.T) {
	sys := NewInputSystemFrom(scripted(InputState{MouseX: 40, MouseY: 70, Typed: []rune("ab")}))

	sys.Poll()
	x, y := sys.Mouse()
	assert.Equal(t, 40, x)
	assert.Equal(t, 70, y)
	assert.Equal(t, []rune("ab"), sys.Typed())
}

func TestInputState_HeldUnknownAction(t *testing.T) {
	assert.False(t, InputState{Up: true}.Held(actionCount))
}
