package services

import (
	"context"
	"fmt"
	"log"

	"github.com/userdesk/backend/internal/domain/events"
	"github.com/userdesk/backend/internal/infrastructure/database"
	"github.com/userdesk/backend/internal/infrastructure/notify"
	"github.com/userdesk/backend/internal/infrastructure/persistence"
)

// ServiceManager wires all services with their dependencies.
type ServiceManager struct {
	db *database.Connection

	EventBus      *EventBus
	Validation    *ValidationService
	Users         *UserService
	Directory     *DirectoryService
	Auth          *AuthService
	Notifications *NotificationService
	Scheduler     *SchedulerService
}

// NewServiceManager creates a service manager backed by the SQL
// repositories and the store-backed notifier.
func NewServiceManager(db *database.Connection, cfg ServiceConfig) *ServiceManager {
	sm := &ServiceManager{db: db}

	userRepo := persistence.NewUserRepository(db.DB())
	notificationStore := persistence.NewNotificationRepository(db.DB())

	sm.EventBus = NewEventBus()
	sm.Validation = NewValidationService()
	sm.Notifications = NewNotificationService(notificationStore)
	sm.Directory = NewDirectoryService(userRepo)
	sm.Auth = NewAuthService(userRepo)

	notifier := notify.ForChannel(LoadNotifierChannel(), notificationStore, cfg.MaxRetries)
	sm.Users = NewUserService(userRepo, notifier, sm.Validation, sm.EventBus, cfg)

	sm.Scheduler = NewSchedulerService(sm.Notifications, LoadNotificationRetention())

	sm.registerAuditSubscribers()
	return sm
}

// registerAuditSubscribers logs user lifecycle events as an audit trail.
func (sm *ServiceManager) registerAuditSubscribers() {
	logEvent := func(eventType events.EventType) {
		sm.EventBus.Subscribe(eventType, func(ctx context.Context, payload interface{}) error {
			p, ok := payload.(events.UserEventPayload)
			if !ok {
				return fmt.Errorf("unexpected payload type %T for %s", payload, eventType)
			}
			log.Printf("AUDIT %s user=%s email=%s", eventType, p.UserID, p.Email)
			return nil
		})
	}
	logEvent(events.UserCreated)
	logEvent(events.UserDeleted)
}
