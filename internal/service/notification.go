package service

import (
	"context"

	"github.com/bizledger/bizledger/internal/domain/notification"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// NotificationService manages per-user in-app notifications.
type NotificationService interface {
	CreateNotification(ctx context.Context, n *notification.Notification) error
	ListNotifications(ctx context.Context, userID string, filter *types.QueryFilter) ([]*notification.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	DeleteNotification(ctx context.Context, id string) error
}

type notificationService struct {
	ServiceParams
}

func NewNotificationService(params ServiceParams) NotificationService {
	return &notificationService{ServiceParams: params}
}

func (s *notificationService) CreateNotification(ctx context.Context, n *notification.Notification) error {
	if n.UserID == "" {
		return ierr.NewError("user id is required").
			WithHint("Notification must target a user").
			Mark(ierr.ErrValidation)
	}
	if n.Title == "" {
		return ierr.NewError("title is required").
			WithHint("Notification title must not be empty").
			Mark(ierr.ErrValidation)
	}

	if n.ID == "" {
		n.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_NOTIFICATION)
	}
	if n.Priority == "" {
		n.Priority = types.NotificationPriorityNormal
	}
	if n.TenantID == "" {
		n.BaseModel = types.GetDefaultBaseModel(ctx)
	}

	return s.NotificationRepo.Create(ctx, n)
}

// notifyUser writes an in-app notification for userID. Failures are
// logged rather than returned so the calling operation still succeeds.
func notifyUser(ctx context.Context, params ServiceParams, userID string, notificationType types.NotificationType, title, message, entityType, entityID string) {
	if userID == "" {
		return
	}

	n := &notification.Notification{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_NOTIFICATION),
		UserID:           userID,
		Title:            title,
		Message:          message,
		NotificationType: notificationType,
		Priority:         types.NotificationPriorityNormal,
		EntityType:       entityType,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}
	if entityID != "" {
		n.EntityID = &entityID
	}

	if err := params.NotificationRepo.Create(ctx, n); err != nil {
		params.Logger.Errorw("failed to create notification",
			"user_id", userID,
			"entity_type", entityType,
			"entity_id", entityID,
			"error", err)
	}
}

func (s *notificationService) ListNotifications(ctx context.Context, userID string, filter *types.QueryFilter) ([]*notification.Notification, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.NotificationRepo.ListByUser(ctx, userID, filter)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	unread, err := s.NotificationRepo.ListUnreadByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(unread), nil
}

// MarkRead only lets a user touch their own notifications.
func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	n, err := s.NotificationRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if n.UserID != types.GetUserID(ctx) {
		return ierr.NewError("notification belongs to another user").
			WithHint("You can only update your own notifications").
			Mark(ierr.ErrPermissionDenied)
	}
	return s.NotificationRepo.MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.NotificationRepo.MarkAllRead(ctx, userID)
}

func (s *notificationService) DeleteNotification(ctx context.Context, id string) error {
	n, err := s.NotificationRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if n.UserID != types.GetUserID(ctx) {
		return ierr.NewError("notification belongs to another user").
			WithHint("You can only delete your own notifications").
			Mark(ierr.ErrPermissionDenied)
	}
	return s.NotificationRepo.Delete(ctx, id)
}
