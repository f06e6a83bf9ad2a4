package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/userdesk/backend/internal/application/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !BindJSON(c, &req) {
		return
	}

	token, session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  session,
	})
}

// GetMe handles GET /api/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	session := GetUserFromContext(c)
	c.JSON(http.StatusOK, gin.H{"user": session})
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword handles POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	session := GetUserFromContext(c)

	var req ChangePasswordRequest
	if !BindJSON(c, &req) {
		return
	}

	HandleActionEnvelope(c, "Password changed successfully", func() error {
		return h.auth.ChangePassword(c.Request.Context(), session.ID, req.CurrentPassword, req.NewPassword)
	})
}
