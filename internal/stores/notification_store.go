package stores

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"carelink/internal/models/db_models"
	"carelink/internal/persistence"
)

// NotificationStore is append-and-flag only: notifications are added, their
// read flag flips, and nothing is ever deleted.
type NotificationStore struct {
	mu            sync.RWMutex
	notifications map[string]*db_models.Notification
	order         []string
	flush         persistence.Flusher
}

func NewNotificationStore(flush persistence.Flusher) *NotificationStore {
	return &NotificationStore{
		notifications: make(map[string]*db_models.Notification),
		flush:         flush,
	}
}

func (s *NotificationStore) Name() string { return "notifications" }

func (s *NotificationStore) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]db_models.Notification, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, *s.notifications[id])
	}
	return json.Marshal(list)
}

func (s *NotificationStore) Restore(data []byte) error {
	var list []db_models.Notification
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	s.mu.Lock()
	s.notifications = make(map[string]*db_models.Notification, len(list))
	s.order = s.order[:0]
	for i := range list {
		n := list[i]
		s.notifications[n.ID] = &n
		s.order = append(s.order, n.ID)
	}
	s.mu.Unlock()
	return nil
}

func (s *NotificationStore) Seed() {
	s.mu.Lock()
	s.notifications = make(map[string]*db_models.Notification)
	s.order = nil
	welcome := db_models.Notification{
		ID:        "notif-welcome",
		Type:      db_models.NotificationSystem,
		Title:     "Welcome to CareLink",
		Message:   "Finish setting up your profile to get started.",
		CreatedAt: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
	}
	s.notifications[welcome.ID] = &welcome
	s.order = append(s.order, welcome.ID)
	s.mu.Unlock()
}

func (s *NotificationStore) notify() {
	if s.flush != nil {
		s.flush.Flush(s)
	}
}

func (s *NotificationStore) Add(typ db_models.NotificationType, title, message, actionRoute string) db_models.Notification {
	if !typ.Valid() {
		typ = db_models.NotificationSystem
	}
	n := db_models.Notification{
		ID:          uuid.New().String(),
		Type:        typ,
		Title:       title,
		Message:     message,
		CreatedAt:   time.Now(),
		ActionRoute: actionRoute,
	}

	s.mu.Lock()
	s.notifications[n.ID] = &n
	s.order = append(s.order, n.ID)
	out := n
	s.mu.Unlock()

	s.notify()
	return out
}

func (s *NotificationStore) MarkRead(id string) {
	s.mu.Lock()
	n, ok := s.notifications[id]
	if !ok || n.IsRead {
		s.mu.Unlock()
		return
	}
	n.IsRead = true
	s.mu.Unlock()

	s.notify()
}

func (s *NotificationStore) MarkAllRead() {
	s.mu.Lock()
	changed := false
	for _, n := range s.notifications {
		if !n.IsRead {
			n.IsRead = true
			changed = true
		}
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// UnreadCount is computed on read, never cached.
func (s *NotificationStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func (s *NotificationStore) List() []db_models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]db_models.Notification, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, *s.notifications[id])
	}
	return list
}
