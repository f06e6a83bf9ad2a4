package services

import (
	"context"
	"fmt"
	"log"

	"github.com/userdesk/backend/internal/domain/models"
	"github.com/userdesk/backend/internal/domain/ports"
	"github.com/userdesk/backend/pkg/auth"
	"github.com/userdesk/backend/pkg/errors"
)

// AuthService issues and validates stateless JWT sessions against the
// credential store.
type AuthService struct {
	store ports.CredentialStore
}

// NewAuthService creates a new auth service
func NewAuthService(store ports.CredentialStore) *AuthService {
	return &AuthService{store: store}
}

// Login verifies credentials and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserSession, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("database error: %w", err)
	}
	// Same failure for unknown email, inactive account, and bad password.
	if user == nil || !user.IsActive || user.PasswordHash == "" || !auth.VerifyPassword(password, user.PasswordHash) {
		return "", nil, errors.NewUnauthorizedError("invalid email or password")
	}

	session := models.UserSession{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}

	token, err := auth.GenerateToken(session)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.store.TouchLastLogin(ctx, user.ID); err != nil {
		log.Printf("Failed to record last login for %s: %v", user.ID, err)
	}

	return token, &session, nil
}

// ValidateSession parses and validates a session token.
func (s *AuthService) ValidateSession(tokenString string) (*models.UserSession, error) {
	claims, err := auth.ValidateToken(tokenString)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid or expired token")
	}
	return &claims.User, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := s.store.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if user == nil {
		return errors.NewNotFoundError("User", userID)
	}
	if !auth.VerifyPassword(current, user.PasswordHash) {
		return errors.NewUnauthorizedError("current password is incorrect")
	}
	if err := auth.ValidatePasswordStrength(next); err != nil {
		return errors.NewValidationError("password", err.Error())
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.store.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	log.Printf("Password changed for user %s", userID)
	return nil
}
