package stores

import (
	"encoding/json"
	"sync"
	"time"

	"carelink/internal/models/db_models"
	"carelink/internal/persistence"
)

// TrackingStore keeps one live entry per order. Unlike the gig lifecycle,
// tracking status is advisory and any valid value is accepted in any order.
// Mutations against absent order ids are no-ops.
type TrackingStore struct {
	mu      sync.RWMutex
	entries map[string]*db_models.OrderTracking
	flush   persistence.Flusher
}

func NewTrackingStore(flush persistence.Flusher) *TrackingStore {
	return &TrackingStore{
		entries: make(map[string]*db_models.OrderTracking),
		flush:   flush,
	}
}

func (s *TrackingStore) Name() string { return "tracking" }

func (s *TrackingStore) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]db_models.OrderTracking, 0, len(s.entries))
	for _, e := range s.entries {
		list = append(list, *e)
	}
	return json.Marshal(list)
}

func (s *TrackingStore) Restore(data []byte) error {
	var list []db_models.OrderTracking
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	s.mu.Lock()
	s.entries = make(map[string]*db_models.OrderTracking, len(list))
	for i := range list {
		e := list[i]
		s.entries[e.OrderID] = &e
	}
	s.mu.Unlock()
	return nil
}

func (s *TrackingStore) Seed() {
	s.mu.Lock()
	s.entries = make(map[string]*db_models.OrderTracking)
	s.mu.Unlock()
}

func (s *TrackingStore) notify() {
	if s.flush != nil {
		s.flush.Flush(s)
	}
}

// Start creates the entry for an order at idle. Re-starting an existing
// order resets it.
func (s *TrackingStore) Start(orderID string) db_models.OrderTracking {
	entry := db_models.OrderTracking{
		OrderID:    orderID,
		Status:     db_models.TrackingIdle,
		LastUpdate: time.Now(),
	}

	s.mu.Lock()
	s.entries[orderID] = &entry
	out := entry
	s.mu.Unlock()

	s.notify()
	return out
}

func (s *TrackingStore) UpdateStatus(orderID string, status db_models.TrackingStatus) {
	s.mu.Lock()
	entry, ok := s.entries[orderID]
	if !ok || !status.Valid() {
		s.mu.Unlock()
		return
	}
	entry.Status = status
	entry.LastUpdate = time.Now()
	s.mu.Unlock()

	s.notify()
}

func (s *TrackingStore) UpdateLocation(orderID string, point db_models.GeoPoint) {
	s.mu.Lock()
	entry, ok := s.entries[orderID]
	if !ok {
		s.mu.Unlock()
		return
	}
	entry.Location = &point
	entry.LastUpdate = time.Now()
	s.mu.Unlock()

	s.notify()
}

func (s *TrackingStore) AssignPal(orderID string, palID string) {
	s.mu.Lock()
	entry, ok := s.entries[orderID]
	if !ok {
		s.mu.Unlock()
		return
	}
	entry.PalID = palID
	entry.LastUpdate = time.Now()
	s.mu.Unlock()

	s.notify()
}

func (s *TrackingStore) Get(orderID string) (db_models.OrderTracking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[orderID]
	if !ok {
		return db_models.OrderTracking{}, false
	}
	return *entry, true
}
