package core

// EventKind identifies a game lifecycle or gameplay event.
type EventKind int

const (
	// EventMatchStarted is emitted when a match enters the running state.
	// Frontends clear any previous results view.
	EventMatchStarted EventKind = iota + 1
	// EventMatchEnded carries the final score and level.
	EventMatchEnded
	// EventShotFired is emitted when the player's weapon actually fires.
	EventShotFired
	// EventHostileDestroyed is emitted once per scoring hit.
	EventHostileDestroyed
)

func (k EventKind) String() string {
	switch k {
	case EventMatchStarted:
		return "match_started"
	case EventMatchEnded:
		return "match_ended"
	case EventShotFired:
		return "shot_fired"
	case EventHostileDestroyed:
		return "hostile_destroyed"
	default:
		return "unknown"
	}
}

// Event is a notification from a game to its presentation layer.
type Event struct {
	Kind  EventKind
	Tick  int // Tick of the match on which the event happened
	Score int
	Level int
}

// Listener receives game events synchronously, on the tick that produced them.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}
