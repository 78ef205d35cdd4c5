package timekeeper

import (
	"time"

	"pomodoro/internal/core/model"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventExpired     EventType = "expired"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type  EventType
	State model.State
	// Ended is the phase that just expired. Only set for EventExpired.
	Ended model.Phase
	At    time.Time
}
