package services

import (
	"strings"
	"sync"

	"github.com/userdesk/backend/internal/domain/models"
	"github.com/userdesk/backend/pkg/errors"
	"github.com/userdesk/backend/pkg/expression"
)

// ValidationRule is an admin-configured expression evaluated against a
// candidate user on create. The expression must yield a boolean; false
// rejects the record with Message.
type ValidationRule struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
	Message    string `json:"message"`
}

// ValidationService applies the built-in user checks followed by any
// registered expression rules. The built-in checks run in a fixed order so
// the first violated rule is the one reported.
type ValidationService struct {
	engine *expression.Engine
	mu     sync.RWMutex
	rules  []ValidationRule
}

// NewValidationService creates a validation service with no extra rules.
func NewValidationService() *ValidationService {
	return &ValidationService{
		engine: expression.NewEngine(),
	}
}

// RegisterRule compiles and registers an expression rule. Rules run after
// the built-in checks, in registration order.
func (s *ValidationService) RegisterRule(rule ValidationRule) error {
	sample := (&models.User{}).ToEnv()
	if err := s.engine.Validate(rule.Expression, sample); err != nil {
		return errors.NewValidationError(rule.Name, "invalid rule expression: "+err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, rule)
	return nil
}

// Rules returns the registered expression rules.
func (s *ValidationService) Rules() []ValidationRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ValidationRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// ValidateUser checks a candidate user record. Check order is fixed:
// name present, email present, email contains "@", then expression rules.
func (s *ValidationService) ValidateUser(user *models.User) error {
	if user.Name == "" {
		return errors.NewValidationError("name", "Name is required")
	}
	if user.Email == "" {
		return errors.NewValidationError("email", "Email is required")
	}
	if !strings.Contains(user.Email, "@") {
		return errors.NewValidationError("email", "Invalid email format")
	}

	s.mu.RLock()
	rules := s.rules
	s.mu.RUnlock()

	env := user.ToEnv()
	for _, rule := range rules {
		ok, err := s.engine.EvaluateBool(rule.Expression, env)
		if err != nil {
			return errors.NewValidationError(rule.Name, "rule evaluation failed: "+err.Error())
		}
		if !ok {
			return errors.NewValidationError(rule.Name, rule.Message)
		}
	}

	return nil
}
