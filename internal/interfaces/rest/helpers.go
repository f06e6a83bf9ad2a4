package rest

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/userdesk/backend/internal/domain/models"
	"github.com/userdesk/backend/pkg/errors"
)

// ContextKeyUser is the gin context key the auth middleware stores the
// session under.
const ContextKeyUser = "user"

// GetUserFromContext extracts the authenticated user from gin.Context
func GetUserFromContext(c *gin.Context) *models.UserSession {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	session, ok := value.(*models.UserSession)
	if !ok {
		return nil
	}
	return session
}

// RespondAppError sends a standardised JSON error response using pkg/errors
func RespondAppError(c *gin.Context, err error) {
	status := errors.GetHTTPStatus(err)
	if status >= 500 {
		log.Printf("ERROR [%d] %s %s: %v", status, c.Request.Method, c.Request.URL.Path, err)
	}

	c.JSON(status, gin.H{
		"message": err.Error(),
		"code":    errors.GetErrorCode(err),
		"data":    nil,
	})
}

// BindJSON binds JSON and returns true if successful. If failed, it sends bad request error.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		RespondAppError(c, errors.NewValidationError("body", err.Error()))
		return false
	}
	return true
}

// HandleGetEnvelope executes a read action and returns the result wrapped in
// a JSON key. Response: { [key]: result }
func HandleGetEnvelope(c *gin.Context, key string, action func() (interface{}, error)) {
	result, err := action()
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{key: result})
}

// HandleActionEnvelope executes a mutating action and returns a success
// message. Response: { message: successMsg }
func HandleActionEnvelope(c *gin.Context, successMsg string, action func() error) {
	if err := action(); err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": successMsg})
}
