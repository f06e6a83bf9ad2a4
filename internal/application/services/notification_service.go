package services

import (
	"context"
	"time"

	"github.com/userdesk/backend/internal/domain/models"
	"github.com/userdesk/backend/internal/domain/ports"
	"github.com/userdesk/backend/pkg/errors"
)

const notificationPageSize = 20

// NotificationService exposes the stored in-app notifications to the API.
type NotificationService struct {
	store ports.NotificationStore
}

func NewNotificationService(store ports.NotificationStore) *NotificationService {
	return &NotificationService{store: store}
}

// GetMyNotifications returns the most recent notifications addressed to the
// session's email.
func (s *NotificationService) GetMyNotifications(ctx context.Context, session *models.UserSession) ([]models.Notification, error) {
	return s.store.ListByRecipient(ctx, session.Email, notificationPageSize)
}

// MarkAsRead marks one of the session's notifications as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, id string, session *models.UserSession) error {
	matched, err := s.store.MarkRead(ctx, id, session.Email)
	if err != nil {
		return err
	}
	if !matched {
		return errors.NewNotFoundError("Notification", id)
	}
	return nil
}

// PurgeRead deletes read notifications older than the cutoff. Used by the
// retention sweeper.
func (s *NotificationService) PurgeRead(ctx context.Context, olderThan time.Time) (int64, error) {
	return s.store.PurgeRead(ctx, olderThan)
}
