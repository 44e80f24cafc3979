package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carelink/internal/models/request_models"
	"carelink/internal/services"
	"carelink/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

func (cc *ChatController) ListConversations(c *gin.Context) {
	convs, err := cc.chatService.FetchConversations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, convs, "")
}

func (cc *ChatController) Messages(c *gin.Context) {
	msgs, err := cc.chatService.Messages(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, msgs, "")
}

func (cc *ChatController) SendMessage(c *gin.Context) {
	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	msg, err := cc.chatService.SendMessage(c.Param("id"), req.SenderID, req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, msg, "Message sent")
}

func (cc *ChatController) MarkRead(c *gin.Context) {
	if err := cc.chatService.MarkRead(c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Conversation marked read")
}

func (cc *ChatController) StartConversation(c *gin.Context) {
	var req request_models.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	conv := cc.chatService.StartConversation(req.Participants)
	utils.RespondSuccess(c, conv, "Conversation started")
}
