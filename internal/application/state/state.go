// Package state names the sub-states a scene can be in.
package state

// GameState represents the current state of a scene
type GameState int

const (
	StateMenu GameState = iota
	StateLeaderboard
	StatePlaying
	StatePaused
	StateGameOver
	StateNameEntry
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateLeaderboard:
		return "Leaderboard"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateNameEntry:
		return "NameEntry"
	default:
		return "Unknown"
	}
}
