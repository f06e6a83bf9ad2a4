package ports

import "context"

// Notifier delivers a message to a recipient address. Callers treat delivery
// as best-effort: a non-nil error means the message was not delivered, and
// it is the caller's decision whether that is fatal.
type Notifier interface {
	Send(ctx context.Context, recipient, message string) error
}
