package ecs

// EventKind names a gameplay event that outlives the frame it happened in.
type EventKind string

const (
	EventPlayerDamaged   EventKind = "player_damaged"
	EventPlayerDied      EventKind = "player_died"
	EventEnemyDefeated   EventKind = "enemy_defeated"
	EventCheckpoint      EventKind = "checkpoint"
	EventLevelCompleted  EventKind = "level_completed"
	EventVictory         EventKind = "victory"
	EventCharacterSwitch EventKind = "character_switch"
	EventLevelLoaded     EventKind = "level_loaded"
)

// Event is a gameplay event payload.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   string
}

// EventQueue is a simple FIFO queue drained by the game loop.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
