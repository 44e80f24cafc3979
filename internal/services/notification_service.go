package services

import (
	"carelink/internal/models/db_models"
	"carelink/internal/stores"
	"carelink/pkg/utils"
)

type NotificationServiceInterface interface {
	List() []db_models.Notification
	UnreadCount() int
	MarkRead(id string) error
	MarkAllRead()
}

type NotificationService struct {
	notifications *stores.NotificationStore
}

func NewNotificationService(notifications *stores.NotificationStore) NotificationServiceInterface {
	return &NotificationService{notifications: notifications}
}

func (n *NotificationService) List() []db_models.Notification {
	return n.notifications.List()
}

func (n *NotificationService) UnreadCount() int {
	return n.notifications.UnreadCount()
}

func (n *NotificationService) MarkRead(id string) error {
	found := false
	for _, notif := range n.notifications.List() {
		if notif.ID == id {
			found = true
			break
		}
	}
	if !found {
		return utils.ErrNotificationNotFound
	}
	n.notifications.MarkRead(id)
	return nil
}

func (n *NotificationService) MarkAllRead() {
	n.notifications.MarkAllRead()
}
