// Package event is a small synchronous publish/subscribe hub used to
// decouple game rules (scoring, level progression) from the entities
// that trigger them.
package event

// Type identifies an event.
type Type string

const (
	// EnemyKilled is sent when an enemy dies. Data is EnemyData.
	EnemyKilled Type = "EnemyKilled"
	// EnemyLost is sent when an enemy leaves play without dying. Data is EnemyData.
	EnemyLost Type = "EnemyLost"
	// PlayerKilled is sent once when the player dies.
	PlayerKilled Type = "PlayerKilled"
	// LevelAdvanced is sent on every level up. Data is LevelData.
	LevelAdvanced Type = "LevelAdvanced"
	// PowerupClaimed is sent when the player picks up a powerup. Data is the powerup type name.
	PowerupClaimed Type = "PowerupClaimed"
)

// Event is a dispatched message.
type Event struct {
	Type Type
	Data any
}

// EnemyData describes an enemy that left play.
type EnemyData struct {
	Kind  string
	Score int
}

// LevelData describes a level transition.
type LevelData struct {
	Level int
	Total int
}

// Listener receives events it subscribed to.
type Listener interface {
	OnEvent(e Event)
}

// Dispatcher delivers events synchronously, in subscription order.
type Dispatcher struct {
	listeners map[Type][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Type][]Listener),
	}
}

// Subscribe registers l for events of type t.
func (d *Dispatcher) Subscribe(t Type, l Listener) {
	d.listeners[t] = append(d.listeners[t], l)
}

// Unsubscribe removes the first registration of l for t.
func (d *Dispatcher) Unsubscribe(t Type, l Listener) {
	ls := d.listeners[t]
	for i, x := range ls {
		if x == l {
			d.listeners[t] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Dispatch delivers e to every listener of its type.
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}
