package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/userdesk/backend/internal/domain/events"
	"github.com/userdesk/backend/internal/domain/models"
	"github.com/userdesk/backend/internal/domain/ports"
	"github.com/userdesk/backend/pkg/errors"
)

// UserService mediates between callers and the user repository, applying
// validation on create and a best-effort welcome notification afterwards.
// It holds no state beyond its collaborators and configuration; every
// operation is a single request/response exchange.
type UserService struct {
	repo       ports.UserRepository
	notifier   ports.Notifier // optional
	validation *ValidationService
	eventBus   ports.EventPublisher // optional
	config     ServiceConfig
}

// NewUserService creates a user service. notifier and eventBus may be nil.
func NewUserService(repo ports.UserRepository, notifier ports.Notifier, validation *ValidationService, eventBus ports.EventPublisher, config ServiceConfig) *UserService {
	if validation == nil {
		validation = NewValidationService()
	}
	return &UserService{
		repo:       repo,
		notifier:   notifier,
		validation: validation,
		eventBus:   eventBus,
		config:     config,
	}
}

// GetUser fetches a user by ID. Returns NotFoundError if no such user.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if user == nil {
		return nil, errors.NewNotFoundError("User", id)
	}
	return user, nil
}

// CreateUser validates and persists a new user, returning the identifier
// assigned by the repository. Repositories implementing ports.EmailChecker
// additionally get a duplicate-email check after validation. When
// notifications are enabled and a notifier is configured, a welcome message
// is sent to the user's email; delivery failures are logged and never fail
// the create.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) (string, error) {
	if err := s.validation.ValidateUser(user); err != nil {
		return "", err
	}

	if checker, ok := s.repo.(ports.EmailChecker); ok {
		exists, err := checker.EmailExists(ctx, user.Email)
		if err != nil {
			return "", fmt.Errorf("database error: %w", err)
		}
		if exists {
			return "", errors.NewConflictError("User", "email", user.Email)
		}
	}

	id, err := s.repo.Save(ctx, user)
	if err != nil {
		// The repository reports a concurrent duplicate insert as a conflict.
		if errors.IsConflict(err) {
			return "", err
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	log.Printf("Created user %s", id)

	if s.config.EnableNotifications && s.notifier != nil {
		s.sendWelcomeNotification(ctx, user)
	}

	s.publish(events.UserCreated, id, user)
	return id, nil
}

// DeleteUser removes a user. The existence check shares GetUser's not-found
// semantics; the delete outcome itself is only logged.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("Failed to delete user %s: %v", id, err)
		return nil
	}
	if deleted {
		log.Printf("Deleted user %s", id)
		s.publish(events.UserDeleted, id, user)
	}
	return nil
}

// sendWelcomeNotification delivers the welcome message best-effort. The
// send is bounded by the configured timeout and any failure is swallowed:
// the save has already happened and must not be rolled back or failed.
func (s *UserService) sendWelcomeNotification(ctx context.Context, user *models.User) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	message := fmt.Sprintf("Welcome, %s!", user.Name)
	if err := s.notifier.Send(ctx, user.Email, message); err != nil {
		log.Printf("Failed to send welcome notification to %s: %v", user.Email, err)
	}
}

func (s *UserService) publish(eventType events.EventType, id string, user *models.User) {
	if s.eventBus == nil {
		return
	}
	s.eventBus.PublishAsync(eventType, events.UserEventPayload{
		UserID:     id,
		Name:       user.Name,
		Email:      user.Email,
		OccurredAt: time.Now(),
	})
}
