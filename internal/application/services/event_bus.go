package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/userdesk/backend/internal/domain/events"
	"github.com/userdesk/backend/internal/domain/ports"
)

type subscription struct {
	id      int
	handler ports.EventHandler
}

// EventBus is a minimal in-process publish-subscribe dispatcher.
// It implements ports.EventPublisher. Handlers run in subscription order.
type EventBus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[events.EventType][]subscription
}

var _ ports.EventPublisher = (*EventBus)(nil)

// NewEventBus creates a new EventBus instance
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[events.EventType][]subscription),
	}
}

// Subscribe registers a handler for an event type and returns an
// unsubscribe function.
func (eb *EventBus) Subscribe(eventType events.EventType, handler ports.EventHandler) func() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	id := eb.nextID
	eb.nextID++
	eb.handlers[eventType] = append(eb.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		eb.mu.Lock()
		defer eb.mu.Unlock()
		subs := eb.handlers[eventType]
		for i, sub := range subs {
			if sub.id == id {
				eb.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers the payload to every handler registered for the event
// type, in subscription order. The first handler error aborts delivery.
func (eb *EventBus) Publish(ctx context.Context, eventType events.EventType, payload interface{}) error {
	eb.mu.RLock()
	subs := make([]subscription, len(eb.handlers[eventType]))
	copy(subs, eb.handlers[eventType])
	eb.mu.RUnlock()

	for _, sub := range subs {
		if err := sub.handler(ctx, payload); err != nil {
			return fmt.Errorf("event handler error for %s: %w", eventType, err)
		}
	}
	return nil
}

// PublishAsync publishes an event on a separate goroutine. Handler errors
// are logged; async events are decoupled from the originating request.
func (eb *EventBus) PublishAsync(eventType events.EventType, payload interface{}) {
	go func() {
		if err := eb.Publish(context.Background(), eventType, payload); err != nil {
			log.Printf("EventBus async publish error: %v", err)
		}
	}()
}

// Clear removes all handlers (useful for testing)
func (eb *EventBus) Clear() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.handlers = make(map[events.EventType][]subscription)
}
