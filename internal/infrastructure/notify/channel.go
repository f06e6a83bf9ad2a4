package notify

import "github.com/userdesk/backend/internal/domain/ports"

// Channel names accepted by ForChannel.
const (
	ChannelStore = "store"
	ChannelLog   = "log"
)

// ForChannel selects the notifier for a configured delivery channel. The
// in-app store is the default; the log channel, and a missing store, fall
// back to LogNotifier so sends never hit a nil collaborator.
func ForChannel(channel string, store ports.NotificationStore, maxAttempts int) ports.Notifier {
	if channel == ChannelLog || store == nil {
		return NewLogNotifier()
	}
	return NewStoreNotifier(store, maxAttempts)
}
