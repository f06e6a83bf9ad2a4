package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/userdesk/backend/internal/application/services"
)

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// GetNotifications handles GET /api/notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	session := GetUserFromContext(c)
	HandleGetEnvelope(c, "notifications", func() (interface{}, error) {
		return h.notifications.GetMyNotifications(c.Request.Context(), session)
	})
}

// MarkAsRead handles POST /api/notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	session := GetUserFromContext(c)
	id := c.Param("id")
	HandleActionEnvelope(c, "Notification marked as read", func() error {
		return h.notifications.MarkAsRead(c.Request.Context(), id, session)
	})
}
