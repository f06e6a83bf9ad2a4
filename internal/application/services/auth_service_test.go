package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/userdesk/backend/internal/domain/models"
	"github.com/userdesk/backend/pkg/auth"
	apperrors "github.com/userdesk/backend/pkg/errors"
)

type fakeCredentialStore struct {
	byEmail      map[string]*models.User
	byID         map[string]*models.User
	updatedID    string
	updatedHash  string
	lastLoginIDs []string
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
}

func (f *fakeCredentialStore) add(user *models.User) {
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
}

func (f *fakeCredentialStore) Get(ctx context.Context, id string) (*models.User, error) {
	return f.byID[id], nil
}

func (f *fakeCredentialStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeCredentialStore) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	f.updatedID = id
	f.updatedHash = passwordHash
	return nil
}

func (f *fakeCredentialStore) TouchLastLogin(ctx context.Context, id string) error {
	f.lastLoginIDs = append(f.lastLoginIDs, id)
	return nil
}

func seedUser(t *testing.T, store *fakeCredentialStore, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	assert.NoError(t, err)

	user := &models.User{
		ID:           "u-1",
		Name:         "Login User",
		Email:        "login@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}
	store.add(user)
	return user
}

func TestLoginSuccess(t *testing.T) {
	store := newFakeCredentialStore()
	seedUser(t, store, "Sup3rSecret")
	svc := NewAuthService(store)

	token, session, err := svc.Login(context.Background(), "login@example.com", "Sup3rSecret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "u-1", session.ID)
	assert.Equal(t, []string{"u-1"}, store.lastLoginIDs)

	parsed, err := svc.ValidateSession(token)
	assert.NoError(t, err)
	assert.Equal(t, session, parsed)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeCredentialStore()
	seedUser(t, store, "Sup3rSecret")
	svc := NewAuthService(store)

	_, _, err := svc.Login(context.Background(), "login@example.com", "wrong")
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeCredentialStore())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestLoginInactiveUser(t *testing.T) {
	store := newFakeCredentialStore()
	user := seedUser(t, store, "Sup3rSecret")
	user.IsActive = false
	svc := NewAuthService(store)

	_, _, err := svc.Login(context.Background(), "login@example.com", "Sup3rSecret")
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestValidateSessionRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newFakeCredentialStore())

	_, err := svc.ValidateSession("not-a-jwt")
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestChangePassword(t *testing.T) {
	store := newFakeCredentialStore()
	seedUser(t, store, "Sup3rSecret")
	svc := NewAuthService(store)

	err := svc.ChangePassword(context.Background(), "u-1", "Sup3rSecret", "NewPassw0rd")
	assert.NoError(t, err)
	assert.Equal(t, "u-1", store.updatedID)
	assert.True(t, auth.VerifyPassword("NewPassw0rd", store.updatedHash))
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	store := newFakeCredentialStore()
	seedUser(t, store, "Sup3rSecret")
	svc := NewAuthService(store)

	err := svc.ChangePassword(context.Background(), "u-1", "wrong", "NewPassw0rd")
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Empty(t, store.updatedID)
}

func TestChangePasswordWeakNew(t *testing.T) {
	store := newFakeCredentialStore()
	seedUser(t, store, "Sup3rSecret")
	svc := NewAuthService(store)

	err := svc.ChangePassword(context.Background(), "u-1", "Sup3rSecret", "short")
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, store.updatedID)
}

func TestChangePasswordUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeCredentialStore())

	err := svc.ChangePassword(context.Background(), "ghost", "a", "b")
	assert.True(t, apperrors.IsNotFound(err))
}
