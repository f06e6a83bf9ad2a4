package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/userdesk/backend/internal/domain/models"
	"github.com/userdesk/backend/pkg/utils"
)

// NotificationRepository is the SQL implementation of ports.NotificationStore.
type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Insert stores a notification, assigning an ID and creation time.
func (r *NotificationRepository) Insert(ctx context.Context, n *models.Notification) (string, error) {
	if n.ID == "" {
		n.ID = utils.GenerateID()
	}
	if n.CreatedDate.IsZero() {
		n.CreatedDate = time.Now()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, recipient, message, is_read, created_date)
		VALUES (?, ?, ?, ?, ?)`, TableNotifications)

	_, err := r.db.ExecContext(ctx, query, n.ID, n.Recipient, n.Message, n.IsRead, n.CreatedDate)
	if err != nil {
		return "", err
	}
	return n.ID, nil
}

// ListByRecipient returns the newest notifications for a recipient address.
func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipient string, limit int) ([]models.Notification, error) {
	query := fmt.Sprintf(`
		SELECT id, recipient, message, is_read, created_date
		FROM %s
		WHERE recipient = ?
		ORDER BY created_date DESC
		LIMIT ?`, TableNotifications)

	rows, err := r.db.QueryContext(ctx, query, recipient, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Recipient, &n.Message, &n.IsRead, &n.CreatedDate); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead flags a notification as read, scoped to its recipient so users
// cannot touch each other's notifications. Reports whether a row matched.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, recipient string) (bool, error) {
	query := fmt.Sprintf("UPDATE %s SET is_read = TRUE WHERE id = ? AND recipient = ?", TableNotifications)
	res, err := r.db.ExecContext(ctx, query, id, recipient)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// PurgeRead deletes read notifications created before the cutoff.
func (r *NotificationRepository) PurgeRead(ctx context.Context, olderThan time.Time) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE is_read = TRUE AND created_date < ?", TableNotifications)
	res, err := r.db.ExecContext(ctx, query, olderThan)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
