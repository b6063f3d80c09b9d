package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/due-reminders/models"
)

// NotificationService is implemented by service.Notifications.
type NotificationService interface {
	List(ctx context.Context, scope string) ([]models.Notification, error)
	UnreadCount(ctx context.Context, scope string) (int, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, scope string) (int64, error)
	Delete(ctx context.Context, id int64) error
	Mute(ctx context.Context, scope string) (*models.MuteSetting, error)
	UpdateMute(ctx context.Context, scope string, mute *bool) (*models.MuteSetting, error)
}

// GetNotificationsHandler lists a scope's notifications, newest first, with muted reminders hidden.
func GetNotificationsHandler(svc NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		notifications, err := svc.List(c.Request.Context(), c.Query("scope"))
		if err != nil {
			abortWithServiceError(c, err, CodeNotificationsUnavailable)
			return
		}
		c.JSON(http.StatusOK, notifications)
	}
}

// GetUnreadCountHandler returns {"unread": n} for a scope.
func GetUnreadCountHandler(svc NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := svc.UnreadCount(c.Request.Context(), c.Query("scope"))
		if err != nil {
			abortWithServiceError(c, err, CodeNotificationsUnavailable)
			return
		}
		c.JSON(http.StatusOK, gin.H{"unread": count})
	}
}

// MarkNotificationAsReadHandler marks a notification as read
func MarkNotificationAsReadHandler(svc NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := notificationID(c)
		if !ok {
			return
		}
		if err := svc.MarkRead(c.Request.Context(), id); err != nil {
			abortWithServiceError(c, err, CodeNotificationsUnavailable)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "is_read": true})
	}
}

// MarkAllNotificationsAsReadHandler marks every unread notification of a scope as read.
func MarkAllNotificationsAsReadHandler(svc NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		updated, err := svc.MarkAllRead(c.Request.Context(), c.Query("scope"))
		if err != nil {
			abortWithServiceError(c, err, CodeNotificationsUnavailable)
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": updated})
	}
}

// DeleteNotificationHandler deletes a specific notification
func DeleteNotificationHandler(svc NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := notificationID(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			abortWithServiceError(c, err, CodeNotificationsUnavailable)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func notificationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid notification ID")
		return 0, false
	}
	return id, true
}
