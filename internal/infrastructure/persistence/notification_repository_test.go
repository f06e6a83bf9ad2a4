package persistence

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/userdesk/backend/internal/domain/models"
	"github.com/userdesk/backend/pkg/utils"
)

func newMockNotificationRepo(t *testing.T) (*NotificationRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	return NewNotificationRepository(db), mock, func() { db.Close() }
}

func TestInsertAssignsID(t *testing.T) {
	repo, mock, closeDB := newMockNotificationRepo(t)
	defer closeDB()

	mock.ExpectExec(regexp.QuoteMeta(fmt.Sprintf("INSERT INTO %s", TableNotifications))).
		WithArgs(sqlmock.AnyArg(), "new@example.com", "Welcome, New User!", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Insert(context.Background(), &models.Notification{
		Recipient: "new@example.com",
		Message:   "Welcome, New User!",
	})
	assert.NoError(t, err)
	assert.True(t, utils.IsValidUUID(id))
}

func TestListByRecipient(t *testing.T) {
	repo, mock, closeDB := newMockNotificationRepo(t)
	defer closeDB()

	rows := sqlmock.NewRows([]string{"id", "recipient", "message", "is_read", "created_date"}).
		AddRow("n-2", "user@example.com", "Second", false, time.Now()).
		AddRow("n-1", "user@example.com", "First", true, time.Now())

	mock.ExpectQuery("SELECT id, recipient, message, is_read, created_date").
		WithArgs("user@example.com", 20).
		WillReturnRows(rows)

	notifications, err := repo.ListByRecipient(context.Background(), "user@example.com", 20)
	assert.NoError(t, err)
	if assert.Len(t, notifications, 2) {
		assert.Equal(t, "n-2", notifications[0].ID)
		assert.True(t, notifications[1].IsRead)
	}
}

func TestMarkRead(t *testing.T) {
	repo, mock, closeDB := newMockNotificationRepo(t)
	defer closeDB()

	query := fmt.Sprintf("UPDATE %s SET is_read = TRUE WHERE id = ? AND recipient = ?", TableNotifications)

	mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("n-1", "user@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	matched, err := repo.MarkRead(context.Background(), "n-1", "user@example.com")
	assert.NoError(t, err)
	assert.True(t, matched)

	// Scoped to recipient: another user's notification does not match.
	mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("n-1", "other@example.com").
		WillReturnResult(sqlmock.NewResult(0, 0))
	matched, err = repo.MarkRead(context.Background(), "n-1", "other@example.com")
	assert.NoError(t, err)
	assert.False(t, matched)
}

func TestPurgeRead(t *testing.T) {
	repo, mock, closeDB := newMockNotificationRepo(t)
	defer closeDB()

	cutoff := time.Now().Add(-30 * 24 * time.Hour)
	query := fmt.Sprintf("DELETE FROM %s WHERE is_read = TRUE AND created_date < ?", TableNotifications)
	mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	purged, err := repo.PurgeRead(context.Background(), cutoff)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), purged)
}
