package services

import (
	"context"
	"fmt"

	"github.com/userdesk/backend/internal/domain/models"
	"github.com/userdesk/backend/internal/domain/ports"
)

// DirectoryService serves read-only listings of the user directory.
type DirectoryService struct {
	store ports.UserDirectory
}

func NewDirectoryService(store ports.UserDirectory) *DirectoryService {
	return &DirectoryService{store: store}
}

// ListUsers retrieves all users, newest first.
func (s *DirectoryService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return users, nil
}
