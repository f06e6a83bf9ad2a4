package bootstrap

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/userdesk/backend/internal/domain/models"
	"github.com/userdesk/backend/internal/infrastructure/persistence"
	"github.com/userdesk/backend/pkg/auth"
)

const (
	defaultAdminEmail = "admin@userdesk.local"
	defaultAdminName  = "System Administrator"
)

// SeedAdminUser ensures an administrator account exists so the admin API is
// reachable on a fresh database. Controlled by ADMIN_EMAIL, ADMIN_NAME and
// ADMIN_PASSWORD; seeding is skipped when no password is configured.
func SeedAdminUser(ctx context.Context, repo *persistence.UserRepository) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = defaultAdminName
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin user seed")
		return nil
	}

	exists, err := repo.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	id, err := repo.Save(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      true,
		IsActive:     true,
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Printf("Seeded admin user %s (%s)", email, id)
	return nil
}
