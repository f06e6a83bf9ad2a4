package ports

import (
	"context"
	"time"

	"github.com/userdesk/backend/internal/domain/models"
)

// NotificationStore persists in-app notifications. Insert assigns and
// returns the notification ID. MarkRead reports whether a row matched.
type NotificationStore interface {
	Insert(ctx context.Context, n *models.Notification) (string, error)
	ListByRecipient(ctx context.Context, recipient string, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, recipient string) (bool, error)
	PurgeRead(ctx context.Context, olderThan time.Time) (int64, error)
}
