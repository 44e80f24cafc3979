package stores

import (
	"testing"

	"carelink/internal/models/db_models"
)

func TestSendMessageUpdatesLogAndSummaryTogether(t *testing.T) {
	s := NewChatStore(nil)
	s.Seed()

	msg, ok := s.SendMessage("conv-1", "senior-1", "Thanks, see you then")
	if !ok {
		t.Fatal("send against seeded conversation failed")
	}

	conv, _ := s.Get("conv-1")
	if conv.LastMessage != "Thanks, see you then" {
		t.Fatalf("summary last message = %q", conv.LastMessage)
	}
	if !conv.LastTimestamp.Equal(msg.Timestamp) {
		t.Fatal("summary timestamp does not match appended message")
	}
	if conv.UnreadCount != 2 {
		t.Fatalf("unread = %d, want 2", conv.UnreadCount)
	}

	msgs := s.Messages("conv-1")
	if len(msgs) != 2 || msgs[1].ID != msg.ID {
		t.Fatalf("message log out of step: %d entries", len(msgs))
	}
}

func TestSendMessageUnknownConversationIsNoOp(t *testing.T) {
	s := NewChatStore(nil)
	s.Seed()

	if _, ok := s.SendMessage("ghost", "x", "hello"); ok {
		t.Fatal("send to unknown conversation succeeded")
	}
	if len(s.Messages("ghost")) != 0 {
		t.Fatal("message appended to unknown conversation")
	}
}

func TestMarkConversationRead(t *testing.T) {
	s := NewChatStore(nil)
	s.Seed()

	s.MarkConversationRead("conv-1")
	conv, _ := s.Get("conv-1")
	if conv.UnreadCount != 0 {
		t.Fatalf("unread = %d after mark read", conv.UnreadCount)
	}
	if s.TotalUnread() != 0 {
		t.Fatal("total unread nonzero after mark read")
	}
}

func TestConversationsSortedByRecency(t *testing.T) {
	s := NewChatStore(nil)
	s.Seed()

	conv := s.AddConversation([]db_models.Participant{
		{ID: "family-1", Name: "Dana", Role: db_models.RoleFamily},
		{ID: "pal-1", Name: "Anita", Role: db_models.RolePal},
	})
	s.SendMessage(conv.ID, "family-1", "How did today go?")

	list := s.Conversations()
	if list[0].ID != conv.ID {
		t.Fatal("most recent conversation not first")
	}
}

func TestChatSnapshotRoundTrip(t *testing.T) {
	s := NewChatStore(nil)
	s.Seed()
	s.SendMessage("conv-1", "senior-1", "ok")

	data, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	restored := NewChatStore(nil)
	if err := restored.Restore(data); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if len(restored.Messages("conv-1")) != 2 {
		t.Fatal("messages lost in round trip")
	}
	conv, _ := restored.Get("conv-1")
	if conv.LastMessage != "ok" {
		t.Fatal("summary lost in round trip")
	}
}
