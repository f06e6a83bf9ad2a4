package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/userdesk/backend/internal/domain/models"
	apperrors "github.com/userdesk/backend/pkg/errors"
)

func TestValidateUserBuiltinChecks(t *testing.T) {
	svc := NewValidationService()

	err := svc.ValidateUser(&models.User{Name: "Valid User", Email: "valid@example.com"})
	assert.NoError(t, err)

	err = svc.ValidateUser(&models.User{Email: "valid@example.com"})
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "Name is required")

	err = svc.ValidateUser(&models.User{Name: "Valid User"})
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "Email is required")

	err = svc.ValidateUser(&models.User{Name: "Valid User", Email: "no-at-sign"})
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "Invalid email format")
}

func TestRegisterRuleRejectsInvalidExpression(t *testing.T) {
	svc := NewValidationService()

	err := svc.RegisterRule(ValidationRule{
		Name:       "broken",
		Expression: "name ===",
		Message:    "never",
	})
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, svc.Rules())
}

func TestExpressionRuleRejectsRecord(t *testing.T) {
	svc := NewValidationService()

	err := svc.RegisterRule(ValidationRule{
		Name:       "name_length",
		Expression: "LEN(name) <= 10",
		Message:    "Name is too long",
	})
	assert.NoError(t, err)

	err = svc.ValidateUser(&models.User{Name: "Short", Email: "short@example.com"})
	assert.NoError(t, err)

	err = svc.ValidateUser(&models.User{Name: "A Very Long User Name", Email: "long@example.com"})
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "Name is too long")
}

func TestExpressionRulesRunAfterBuiltins(t *testing.T) {
	svc := NewValidationService()

	err := svc.RegisterRule(ValidationRule{
		Name:       "corp_domain",
		Expression: `MATCHES(email, "@example\\.com$")`,
		Message:    "Email must be on example.com",
	})
	assert.NoError(t, err)

	// Built-in email check fires before the domain rule gets a chance.
	err = svc.ValidateUser(&models.User{Name: "User", Email: "no-at-sign"})
	assert.Contains(t, err.Error(), "Invalid email format")

	err = svc.ValidateUser(&models.User{Name: "User", Email: "user@elsewhere.org"})
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "Email must be on example.com")

	err = svc.ValidateUser(&models.User{Name: "User", Email: "user@example.com"})
	assert.NoError(t, err)
}
