// Package events defines the domain event types published on the in-process
// event bus.
package events

import "time"

// EventType identifies a class of domain event.
type EventType string

const (
	UserCreated EventType = "user.created"
	UserDeleted EventType = "user.deleted"
)

// UserEventPayload is the payload carried by user lifecycle events.
type UserEventPayload struct {
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}
