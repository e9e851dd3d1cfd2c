package dto

import (
	"github.com/bizledger/bizledger/internal/domain/notification"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

type CreateNotificationRequest struct {
	UserID           string                     `json:"user_id" validate:"required"`
	Title            string                     `json:"title" validate:"required,max=255"`
	Message          string                     `json:"message" validate:"max=2000"`
	NotificationType types.NotificationType     `json:"notification_type" validate:"omitempty"`
	Priority         types.NotificationPriority `json:"priority" validate:"omitempty"`
	EntityType       string                     `json:"entity_type" validate:"omitempty,max=50"`
	EntityID         *string                    `json:"entity_id,omitempty"`
	ActionURL        string                     `json:"action_url" validate:"omitempty,max=500"`
}

func (r *CreateNotificationRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.NotificationType != "" {
		if err := r.NotificationType.Validate(); err != nil {
			return err
		}
	}
	if r.Priority != "" {
		if err := r.Priority.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r *CreateNotificationRequest) ToNotification() *notification.Notification {
	notificationType := r.NotificationType
	if notificationType == "" {
		notificationType = types.NotificationTypeInfo
	}
	return &notification.Notification{
		UserID:           r.UserID,
		Title:            r.Title,
		Message:          r.Message,
		NotificationType: notificationType,
		Priority:         r.Priority,
		EntityType:       r.EntityType,
		EntityID:         r.EntityID,
		ActionURL:        r.ActionURL,
	}
}
