package types

import (
	ierr "github.com/bizledger/bizledger/internal/errors"
)

type NotificationType string

const (
	NotificationTypeInfo     NotificationType = "info"
	NotificationTypeSuccess  NotificationType = "success"
	NotificationTypeWarning  NotificationType = "warning"
	NotificationTypeError    NotificationType = "error"
	NotificationTypeReminder NotificationType = "reminder"
)

func (t NotificationType) Validate() error {
	switch t {
	case NotificationTypeInfo, NotificationTypeSuccess, NotificationTypeWarning,
		NotificationTypeError, NotificationTypeReminder:
		return nil
	}
	return ierr.NewError("invalid notification type").
		WithHint("Notification type must be one of info, success, warning, error, reminder").
		Mark(ierr.ErrValidation)
}

type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityNormal NotificationPriority = "normal"
	NotificationPriorityHigh   NotificationPriority = "high"
)

func (p NotificationPriority) Validate() error {
	switch p {
	case NotificationPriorityLow, NotificationPriorityNormal, NotificationPriorityHigh:
		return nil
	}
	return ierr.NewError("invalid notification priority").
		WithHint("Priority must be one of low, normal, high").
		Mark(ierr.ErrValidation)
}
