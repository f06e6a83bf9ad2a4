package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/userdesk/backend/internal/domain/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	session := models.UserSession{
		ID:      "u-1",
		Name:    "Token User",
		Email:   "token@example.com",
		IsAdmin: true,
	}

	token, err := GenerateToken(session)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, session, claims.User)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(models.UserSession{ID: "u-1"})
	assert.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = ValidateToken("not-a-jwt")
	assert.Error(t, err)
}
