package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/userdesk/backend/internal/application/services"
	"github.com/userdesk/backend/internal/domain/models"
	"github.com/userdesk/backend/pkg/auth"
	"github.com/userdesk/backend/pkg/errors"
)

type UserHandler struct {
	users     *services.UserService
	directory *services.DirectoryService
}

func NewUserHandler(users *services.UserService, directory *services.DirectoryService) *UserHandler {
	return &UserHandler{
		users:     users,
		directory: directory,
	}
}

// CreateUserRequest represents a user creation request
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !BindJSON(c, &req) {
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		IsAdmin:  req.IsAdmin,
		IsActive: true,
	}

	// Password is optional; without one the account cannot log in.
	if req.Password != "" {
		if err := auth.ValidatePasswordStrength(req.Password); err != nil {
			RespondAppError(c, errors.NewValidationError("password", err.Error()))
			return
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			RespondAppError(c, errors.NewInternalError("failed to hash password", err))
			return
		}
		user.PasswordHash = hash
	}

	id, err := h.users.CreateUser(c.Request.Context(), user)
	if err != nil {
		RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user": gin.H{
			"id":    id,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")
	HandleGetEnvelope(c, "user", func() (interface{}, error) {
		return h.users.GetUser(c.Request.Context(), userID)
	})
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	HandleGetEnvelope(c, "users", func() (interface{}, error) {
		return h.directory.ListUsers(c.Request.Context())
	})
}

// DeleteUser handles DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")
	HandleActionEnvelope(c, "User deleted successfully", func() error {
		if userID == "" {
			return errors.NewValidationError("id", "is required")
		}
		return h.users.DeleteUser(c.Request.Context(), userID)
	})
}
