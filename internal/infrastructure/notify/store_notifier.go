// Package notify provides ports.Notifier implementations.
package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/userdesk/backend/internal/domain/models"
	"github.com/userdesk/backend/internal/domain/ports"
)

// StoreNotifier delivers messages by writing them to the notification
// store, where users pick them up in-app. Transient insert failures are
// retried up to maxAttempts before the send is reported as failed.
type StoreNotifier struct {
	store       ports.NotificationStore
	maxAttempts int
}

var _ ports.Notifier = (*StoreNotifier)(nil)

func NewStoreNotifier(store ports.NotificationStore, maxAttempts int) *StoreNotifier {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &StoreNotifier{store: store, maxAttempts: maxAttempts}
}

// Send stores the message for the recipient address.
func (n *StoreNotifier) Send(ctx context.Context, recipient, message string) error {
	var lastErr error
	for attempt := 1; attempt <= n.maxAttempts; attempt++ {
		notification := &models.Notification{
			Recipient: recipient,
			Message:   message,
		}
		if _, err := n.store.Insert(ctx, notification); err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			log.Printf("Notification insert attempt %d/%d failed: %v", attempt, n.maxAttempts, err)
			continue
		}
		return nil
	}
	return fmt.Errorf("failed to store notification for %s: %w", recipient, lastErr)
}
