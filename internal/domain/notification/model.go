package notification

import (
	"time"

	"github.com/bizledger/bizledger/internal/types"
)

// Notification is an in-app message for a single user.
type Notification struct {
	ID      string `db:"id" json:"id"`
	UserID  string `db:"user_id" json:"user_id"`
	Title   string `db:"title" json:"title"`
	Message string `db:"message" json:"message"`

	NotificationType types.NotificationType     `db:"notification_type" json:"notification_type"`
	Priority         types.NotificationPriority `db:"priority" json:"priority"`

	EntityType string  `db:"entity_type" json:"entity_type"`
	EntityID   *string `db:"entity_id" json:"entity_id,omitempty"`
	ActionURL  string  `db:"action_url" json:"action_url"`

	IsRead bool       `db:"is_read" json:"is_read"`
	ReadAt *time.Time `db:"read_at" json:"read_at,omitempty"`

	types.BaseModel
}
