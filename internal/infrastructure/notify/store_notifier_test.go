package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/userdesk/backend/internal/domain/models"
)

type fakeStore struct {
	inserted []*models.Notification
	failures int // number of leading Insert calls that fail
	calls    int
}

func (f *fakeStore) Insert(ctx context.Context, n *models.Notification) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", errors.New("deadlock found")
	}
	f.inserted = append(f.inserted, n)
	return "n-1", nil
}

func (f *fakeStore) ListByRecipient(ctx context.Context, recipient string, limit int) ([]models.Notification, error) {
	return nil, nil
}

func (f *fakeStore) MarkRead(ctx context.Context, id, recipient string) (bool, error) {
	return false, nil
}

func (f *fakeStore) PurgeRead(ctx context.Context, olderThan time.Time) (int64, error) {
	return 0, nil
}

func TestStoreNotifierSend(t *testing.T) {
	store := &fakeStore{}
	notifier := NewStoreNotifier(store, 3)

	err := notifier.Send(context.Background(), "new@example.com", "Welcome, New User!")
	assert.NoError(t, err)
	if assert.Len(t, store.inserted, 1) {
		assert.Equal(t, "new@example.com", store.inserted[0].Recipient)
		assert.Equal(t, "Welcome, New User!", store.inserted[0].Message)
		assert.False(t, store.inserted[0].IsRead)
	}
}

func TestStoreNotifierRetriesTransientFailures(t *testing.T) {
	store := &fakeStore{failures: 2}
	notifier := NewStoreNotifier(store, 3)

	err := notifier.Send(context.Background(), "new@example.com", "Welcome!")
	assert.NoError(t, err)
	assert.Equal(t, 3, store.calls)
}

func TestStoreNotifierGivesUpAfterMaxAttempts(t *testing.T) {
	store := &fakeStore{failures: 5}
	notifier := NewStoreNotifier(store, 3)

	err := notifier.Send(context.Background(), "new@example.com", "Welcome!")
	assert.Error(t, err)
	assert.Equal(t, 3, store.calls)
}

func TestForChannel(t *testing.T) {
	store := &fakeStore{}

	assert.IsType(t, &StoreNotifier{}, ForChannel(ChannelStore, store, 3))
	assert.IsType(t, &LogNotifier{}, ForChannel(ChannelLog, store, 3))

	// No store configured: deliveries degrade to the log.
	assert.IsType(t, &LogNotifier{}, ForChannel(ChannelStore, nil, 3))
}

func TestLogNotifierSendNeverFails(t *testing.T) {
	assert.NoError(t, NewLogNotifier().Send(context.Background(), "new@example.com", "Welcome!"))
}

func TestStoreNotifierStopsOnCancelledContext(t *testing.T) {
	store := &fakeStore{failures: 5}
	notifier := NewStoreNotifier(store, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := notifier.Send(ctx, "new@example.com", "Welcome!")
	assert.Error(t, err)
	assert.Equal(t, 1, store.calls)
}
