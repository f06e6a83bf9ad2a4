package persistence

// Table names owned by this service.
const (
	TableUsers         = "users"
	TableNotifications = "notifications"
)
