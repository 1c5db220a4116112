// File: internal/notification/handler.go
package notification

import (
	"sabuconnect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for notification handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new notification handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for notification operations. All routes
// require authentication.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	group := router.Group("/notifications")
	group.Use(authMW)
	{
		group.GET("", h.listNotifications)
		group.GET("/unread-count", h.unreadCount)
		group.POST("/:id/read", h.markRead)
		group.POST("/read-all", h.markAllRead)
	}
}

func (h *Handler) listNotifications(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	page, pageSize := common.GetPaginationParams(c)
	onlyUnread := c.Query("unread") == "true"

	notifications, pagination, err := h.service.GetUserNotifications(
		c.Request.Context(), userID, onlyUnread, common.PaginationQuery{Page: page, PageSize: pageSize})
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondPaginated(c, "Notifications retrieved successfully.", notifications, pagination)
}

func (h *Handler) unreadCount(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	count, err := h.service.GetUnreadCount(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, common.ErrInternalServer.WithDetails("Could not count notifications."))
		return
	}
	common.RespondOK(c, "Unread notification count retrieved.", gin.H{"unread_count": count})
}

func (h *Handler) markRead(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid notification ID format."))
		return
	}
	if err := h.service.MarkNotificationRead(c.Request.Context(), notificationID, userID); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Notification marked as read.", nil)
}

func (h *Handler) markAllRead(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	updated, err := h.service.MarkAllNotificationsRead(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, common.ErrInternalServer.WithDetails("Could not mark notifications as read."))
		return
	}
	common.RespondOK(c, "All notifications marked as read.", gin.H{"updated": updated})
}
