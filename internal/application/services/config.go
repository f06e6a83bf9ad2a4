package services

import (
	"os"
	"strconv"
	"time"
)

// ServiceConfig carries the tunables for the user service. It is read once
// at startup and treated as immutable afterwards.
type ServiceConfig struct {
	// MaxRetries bounds delivery attempts inside notifier implementations.
	MaxRetries int
	// Timeout bounds the best-effort welcome notification send.
	Timeout time.Duration
	// EnableNotifications gates welcome notification delivery on create.
	EnableNotifications bool
}

// DefaultServiceConfig returns the built-in defaults.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		MaxRetries:          3,
		Timeout:             30 * time.Second,
		EnableNotifications: true,
	}
}

// LoadServiceConfig builds a ServiceConfig from environment variables,
// falling back to defaults for anything unset.
func LoadServiceConfig() ServiceConfig {
	cfg := DefaultServiceConfig()

	if v := os.Getenv("NOTIFY_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("NOTIFY_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("NOTIFICATIONS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EnableNotifications = b
		}
	}

	return cfg
}

// LoadNotifierChannel returns the welcome notification delivery channel.
// NOTIFY_CHANNEL selects "store" (default, in-app notifications) or "log".
func LoadNotifierChannel() string {
	if v := os.Getenv("NOTIFY_CHANNEL"); v != "" {
		return v
	}
	return "store"
}

// LoadNotificationRetention returns how long read notifications are kept
// before the scheduler purges them. NOTIFICATION_RETENTION_DAYS overrides
// the 30 day default.
func LoadNotificationRetention() time.Duration {
	days := 30
	if v := os.Getenv("NOTIFICATION_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	return time.Duration(days) * 24 * time.Hour
}
