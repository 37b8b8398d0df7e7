// ABOUTME: Event notifications published by the tracker on state changes.
// ABOUTME: Consumers subscribe via a buffered channel instead of observing fields.
package session

import (
	"time"

	"github.com/google/uuid"
)

// EventKind identifies a tracker state change.
type EventKind string

const (
	EventSessionStarted   EventKind = "session_started"
	EventReadingAdded     EventKind = "reading_added"
	EventMetricAdded      EventKind = "metric_added"
	EventSessionCompleted EventKind = "session_completed"
	EventWorkoutStarted   EventKind = "workout_started"
	EventSetAdded         EventKind = "set_added"
	EventWorkoutCompleted EventKind = "workout_completed"
	EventHistoryChanged   EventKind = "history_changed"
)

// Event describes one tracker state change.
type Event struct {
	Kind      EventKind
	SessionID uuid.UUID
	At        time.Time
}

// publish sends an event without blocking; slow consumers drop events.
func (t *Tracker) publish(kind EventKind, id uuid.UUID) {
	select {
	case t.events <- Event{Kind: kind, SessionID: id, At: time.Now()}:
	default:
	}
}

// Events returns the notification channel for presentation-layer consumers.
func (t *Tracker) Events() <-chan Event {
	return t.events
}
