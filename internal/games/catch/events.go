package catch

// EventType identifies an outcome produced by a simulation step.
type EventType int

const (
	EventCaught EventType = iota
	EventMissed
	EventLevelUp
	EventGameOver
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventCaught:
		return "caught"
	case EventMissed:
		return "missed"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is an outcome of one step. The caller translates events into audio
// and UI actions; the simulation itself has no side effects.
// Score, Lives and Level hold the stats right after the event applied.
type Event struct {
	Type     EventType
	ObjectID uint64 // Set for caught and missed
	Kind     Kind   // Set for caught and missed
	Score    int
	Lives    int
	Level    int
}
