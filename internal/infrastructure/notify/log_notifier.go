package notify

import (
	"context"
	"log"

	"github.com/userdesk/backend/internal/domain/ports"
)

// LogNotifier writes messages to the process log. Useful for development
// and for deployments without a notification store.
type LogNotifier struct{}

var _ ports.Notifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Send(_ context.Context, recipient, message string) error {
	log.Printf("NOTIFY %s: %s", recipient, message)
	return nil
}
