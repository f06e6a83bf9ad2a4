package ports

import (
	"context"

	"github.com/userdesk/backend/internal/domain/models"
)

// UserRepository is the data-access collaborator for user records. It owns
// identifier assignment: Save returns the ID given to the stored record.
// Get returns (nil, nil) when no record matches the identifier.
type UserRepository interface {
	Get(ctx context.Context, id string) (*models.User, error)
	Save(ctx context.Context, user *models.User) (string, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// EmailChecker is an optional repository capability. When the data-access
// collaborator implements it, user creation rejects an already-taken email
// with a ConflictError before the insert.
type EmailChecker interface {
	EmailExists(ctx context.Context, email string) (bool, error)
}

// UserDirectory lists stored users for the read-only directory API.
type UserDirectory interface {
	FindAll(ctx context.Context) ([]*models.User, error)
}

// CredentialStore exposes the lookups the auth layer needs on top of the
// basic repository contract. FindByEmail returns (nil, nil) when absent.
type CredentialStore interface {
	Get(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	TouchLastLogin(ctx context.Context, id string) error
}
