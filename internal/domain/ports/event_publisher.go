package ports

import (
	"context"

	"github.com/userdesk/backend/internal/domain/events"
)

// EventHandler consumes a published event payload.
type EventHandler func(ctx context.Context, payload interface{}) error

// EventPublisher publishes domain events to interested subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, eventType events.EventType, payload interface{}) error
	PublishAsync(eventType events.EventType, payload interface{})
}
