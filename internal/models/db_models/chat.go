package db_models

import "time"

type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Conversation carries a denormalized summary of its message log; SendMessage
// keeps both in step under one lock.
type Conversation struct {
	ID            string        `json:"id"`
	Participants  []Participant `json:"participants"`
	LastMessage   string        `json:"last_message"`
	LastTimestamp time.Time     `json:"last_timestamp"`
	UnreadCount   int           `json:"unread_count"`
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Text           string    `json:"text"`
	Timestamp      time.Time `json:"timestamp"`
}
