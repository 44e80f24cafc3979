package stores

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"carelink/internal/models/db_models"
	"carelink/internal/persistence"
)

// ChatStore owns conversations and their message logs. SendMessage appends
// to the log and updates the owning conversation's denormalized summary
// under the same lock, so readers never see the two out of step.
type ChatStore struct {
	mu            sync.RWMutex
	conversations map[string]*db_models.Conversation
	messages      map[string][]db_models.Message
	flush         persistence.Flusher
}

func NewChatStore(flush persistence.Flusher) *ChatStore {
	return &ChatStore{
		conversations: make(map[string]*db_models.Conversation),
		messages:      make(map[string][]db_models.Message),
		flush:         flush,
	}
}

func (s *ChatStore) Name() string { return "chat" }

type chatState struct {
	Conversations []db_models.Conversation       `json:"conversations"`
	Messages      map[string][]db_models.Message `json:"messages"`
}

func (s *ChatStore) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := chatState{Messages: s.messages}
	for _, c := range s.conversations {
		st.Conversations = append(st.Conversations, *c)
	}
	return json.Marshal(st)
}

func (s *ChatStore) Restore(data []byte) error {
	var st chatState
	if err := json.Unmarshal(data, &st); err != nil {
		return err
	}
	s.mu.Lock()
	s.conversations = make(map[string]*db_models.Conversation, len(st.Conversations))
	for i := range st.Conversations {
		c := st.Conversations[i]
		s.conversations[c.ID] = &c
	}
	s.messages = st.Messages
	if s.messages == nil {
		s.messages = make(map[string][]db_models.Message)
	}
	s.mu.Unlock()
	return nil
}

func (s *ChatStore) Seed() {
	s.mu.Lock()
	s.conversations = make(map[string]*db_models.Conversation)
	s.messages = make(map[string][]db_models.Message)

	conv := db_models.Conversation{
		ID: "conv-1",
		Participants: []db_models.Participant{
			{ID: "senior-1", Name: "Margaret Lee", Role: db_models.RoleSenior},
			{ID: "pal-1", Name: "Anita Gomez", Role: db_models.RolePal},
		},
		LastMessage:   "See you tomorrow at 9!",
		LastTimestamp: time.Date(2026, 8, 28, 18, 5, 0, 0, time.UTC),
		UnreadCount:   1,
	}
	s.conversations[conv.ID] = &conv
	s.messages[conv.ID] = []db_models.Message{
		{
			ID: "msg-1", ConversationID: conv.ID, SenderID: "pal-1",
			Text:      "See you tomorrow at 9!",
			Timestamp: conv.LastTimestamp,
		},
	}
	s.mu.Unlock()
}

func (s *ChatStore) notify() {
	if s.flush != nil {
		s.flush.Flush(s)
	}
}

// AddConversation registers a conversation with an empty log.
func (s *ChatStore) AddConversation(participants []db_models.Participant) db_models.Conversation {
	conv := db_models.Conversation{
		ID:           uuid.New().String(),
		Participants: participants,
	}

	s.mu.Lock()
	s.conversations[conv.ID] = &conv
	out := conv
	s.mu.Unlock()

	s.notify()
	return out
}

// SendMessage appends to the conversation's log and refreshes its summary
// fields in the same critical section. Unknown conversations are no-ops.
func (s *ChatStore) SendMessage(convID string, senderID string, text string) (db_models.Message, bool) {
	s.mu.Lock()
	conv, ok := s.conversations[convID]
	if !ok {
		s.mu.Unlock()
		return db_models.Message{}, false
	}

	msg := db_models.Message{
		ID:             uuid.New().String(),
		ConversationID: convID,
		SenderID:       senderID,
		Text:           text,
		Timestamp:      time.Now(),
	}
	s.messages[convID] = append(s.messages[convID], msg)
	conv.LastMessage = text
	conv.LastTimestamp = msg.Timestamp
	conv.UnreadCount++
	s.mu.Unlock()

	s.notify()
	return msg, true
}

func (s *ChatStore) MarkConversationRead(convID string) {
	s.mu.Lock()
	conv, ok := s.conversations[convID]
	if !ok || conv.UnreadCount == 0 {
		s.mu.Unlock()
		return
	}
	conv.UnreadCount = 0
	s.mu.Unlock()

	s.notify()
}

func (s *ChatStore) Get(convID string) (db_models.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.conversations[convID]
	if !ok {
		return db_models.Conversation{}, false
	}
	return *conv, true
}

// Conversations returns all conversations, most recent activity first.
func (s *ChatStore) Conversations() []db_models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]db_models.Conversation, 0, len(s.conversations))
	for _, c := range s.conversations {
		list = append(list, *c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].LastTimestamp.After(list[j].LastTimestamp)
	})
	return list
}

func (s *ChatStore) Messages(convID string) []db_models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := s.messages[convID]
	out := make([]db_models.Message, len(msgs))
	copy(out, msgs)
	return out
}

// TotalUnread is computed on read across all conversations.
func (s *ChatStore) TotalUnread() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, c := range s.conversations {
		total += c.UnreadCount
	}
	return total
}
