package anim

// Event is a frame event tag. Clips only store and report tags; the
// owning entity decides what a tag means when its update loop sees it.
type Event int

const (
	EventNone Event = iota
	// EventRelease fires the projectile of a shooting clip.
	EventRelease
	// EventStrike lands the blow of a melee clip.
	EventStrike
)

// String returns the string representation of the event
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventRelease:
		return "Release"
	case EventStrike:
		return "Strike"
	default:
		return "Unknown"
	}
}
