package services

import (
	"context"
	"time"

	"carelink/internal/models/db_models"
	"carelink/internal/stores"
	"carelink/pkg/utils"
)

type ChatServiceInterface interface {
	FetchConversations(ctx context.Context) ([]db_models.Conversation, error)
	Messages(convID string) ([]db_models.Message, error)
	SendMessage(convID string, senderID string, text string) (db_models.Message, error)
	MarkRead(convID string) error
	StartConversation(participants []db_models.Participant) db_models.Conversation
}

type ChatService struct {
	chat       *stores.ChatStore
	fetchDelay time.Duration
}

func NewChatService(chat *stores.ChatStore, fetchDelay time.Duration) ChatServiceInterface {
	return &ChatService{
		chat:       chat,
		fetchDelay: fetchDelay,
	}
}

func (c *ChatService) FetchConversations(ctx context.Context) ([]db_models.Conversation, error) {
	if c.fetchDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.fetchDelay):
		}
	}
	return c.chat.Conversations(), nil
}

func (c *ChatService) Messages(convID string) ([]db_models.Message, error) {
	if _, ok := c.chat.Get(convID); !ok {
		return nil, utils.ErrConversationNotFound
	}
	return c.chat.Messages(convID), nil
}

func (c *ChatService) SendMessage(convID string, senderID string, text string) (db_models.Message, error) {
	msg, ok := c.chat.SendMessage(convID, senderID, text)
	if !ok {
		return db_models.Message{}, utils.ErrConversationNotFound
	}
	return msg, nil
}

func (c *ChatService) MarkRead(convID string) error {
	if _, ok := c.chat.Get(convID); !ok {
		return utils.ErrConversationNotFound
	}
	c.chat.MarkConversationRead(convID)
	return nil
}

func (c *ChatService) StartConversation(participants []db_models.Participant) db_models.Conversation {
	return c.chat.AddConversation(participants)
}
