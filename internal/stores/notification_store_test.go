package stores

import (
	"testing"

	"carelink/internal/models/db_models"
)

func TestUnreadCountComputedOnRead(t *testing.T) {
	s := NewNotificationStore(nil)
	s.Seed() // one unread welcome notification

	if got := s.UnreadCount(); got != 1 {
		t.Fatalf("seed unread = %d, want 1", got)
	}

	n := s.Add(db_models.NotificationAlert, "Fall detected", "Check on Margaret", "tracking")
	if got := s.UnreadCount(); got != 2 {
		t.Fatalf("unread after add = %d, want 2", got)
	}

	s.MarkRead(n.ID)
	if got := s.UnreadCount(); got != 1 {
		t.Fatalf("unread after mark = %d, want 1", got)
	}

	s.MarkAllRead()
	if got := s.UnreadCount(); got != 0 {
		t.Fatalf("unread after mark all = %d, want 0", got)
	}
}

func TestMarkReadUnknownIDIsNoOp(t *testing.T) {
	s := NewNotificationStore(nil)
	s.Seed()
	before := s.UnreadCount()

	s.MarkRead("ghost")

	if s.UnreadCount() != before {
		t.Fatal("unknown id changed unread count")
	}
}

func TestInvalidTypeFallsBackToSystem(t *testing.T) {
	s := NewNotificationStore(nil)
	s.Seed()

	n := s.Add(db_models.NotificationType("carrier-pigeon"), "Hi", "msg", "")
	if n.Type != db_models.NotificationSystem {
		t.Fatalf("type = %s, want system fallback", n.Type)
	}
}
