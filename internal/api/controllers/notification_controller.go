package controllers

import (
	"github.com/gin-gonic/gin"

	"carelink/internal/services"
	"carelink/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

func (nc *NotificationController) List(c *gin.Context) {
	utils.RespondSuccess(c, nc.notificationService.List(), "")
}

func (nc *NotificationController) UnreadCount(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"unread": nc.notificationService.UnreadCount()}, "")
}

func (nc *NotificationController) MarkRead(c *gin.Context) {
	if err := nc.notificationService.MarkRead(c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Marked read")
}

func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	nc.notificationService.MarkAllRead()
	utils.RespondSuccess(c, nil, "All marked read")
}
