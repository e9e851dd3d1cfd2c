package v1

import (
	"net/http"

	"github.com/bizledger/bizledger/internal/api/dto"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/service"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService service.NotificationService
	logger              *logger.Logger
}

func NewNotificationHandler(notificationService service.NotificationService, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// @Summary Create a notification
// @Tags Notifications
// @Accept json
// @Produce json
// @Param notification body dto.CreateNotificationRequest true "Notification"
// @Success 201 {object} notification.Notification
// @Failure 400 {object} ierr.ErrorResponse
// @Router /notifications [post]
// @Security ApiKeyAuth
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	n := req.ToNotification()
	if err := h.notificationService.CreateNotification(c.Request.Context(), n); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, n)
}

// @Summary List the current user's notifications
// @Tags Notifications
// @Produce json
// @Param filter query types.QueryFilter false "Filter"
// @Success 200 {array} notification.Notification
// @Failure 401 {object} ierr.ErrorResponse
// @Router /notifications [get]
// @Security ApiKeyAuth
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	var filter types.QueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	response, err := h.notificationService.ListNotifications(ctx, types.GetUserID(ctx), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Count unread notifications
// @Tags Notifications
// @Produce json
// @Success 200 {object} map[string]int
// @Router /notifications/unread-count [get]
// @Security ApiKeyAuth
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	count, err := h.notificationService.UnreadCount(ctx, types.GetUserID(ctx))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// @Summary Mark a notification read
// @Tags Notifications
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 403 {object} ierr.ErrorResponse
// @Router /notifications/{id}/read [post]
// @Security ApiKeyAuth
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("notification ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Mark all notifications read
// @Tags Notifications
// @Success 204 "No Content"
// @Router /notifications/read-all [post]
// @Security ApiKeyAuth
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.notificationService.MarkAllRead(ctx, types.GetUserID(ctx)); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete a notification
// @Tags Notifications
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 403 {object} ierr.ErrorResponse
// @Router /notifications/{id} [delete]
// @Security ApiKeyAuth
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("notification ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.notificationService.DeleteNotification(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
