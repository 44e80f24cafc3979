package db_models

import "time"

type NotificationType string

const (
	NotificationAlert        NotificationType = "alert"
	NotificationTask         NotificationType = "task"
	NotificationWallet       NotificationType = "wallet"
	NotificationVerification NotificationType = "verification"
	NotificationSupport      NotificationType = "support"
	NotificationSystem       NotificationType = "system"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationAlert, NotificationTask, NotificationWallet,
		NotificationVerification, NotificationSupport, NotificationSystem:
		return true
	}
	return false
}

// Notification is never deleted; the only mutation is flipping IsRead.
type Notification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	CreatedAt   time.Time        `json:"created_at"`
	IsRead      bool             `json:"is_read"`
	ActionRoute string           `json:"action_route,omitempty"`
}
