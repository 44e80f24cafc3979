package stores

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"carelink/internal/models/db_models"
	"carelink/internal/persistence"
)

// GigStore owns the gig collection. Status only ever advances through the
// lifecycle; a backward or unknown transition is a no-op.
type GigStore struct {
	mu    sync.RWMutex
	gigs  map[string]*db_models.Gig
	order []string
	flush persistence.Flusher
}

func NewGigStore(flush persistence.Flusher) *GigStore {
	return &GigStore{
		gigs:  make(map[string]*db_models.Gig),
		flush: flush,
	}
}

func (s *GigStore) Name() string { return "gigs" }

func (s *GigStore) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]db_models.Gig, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, *s.gigs[id])
	}
	return json.Marshal(list)
}

func (s *GigStore) Restore(data []byte) error {
	var list []db_models.Gig
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}

	s.mu.Lock()
	s.gigs = make(map[string]*db_models.Gig, len(list))
	s.order = s.order[:0]
	for i := range list {
		g := list[i]
		s.gigs[g.ID] = &g
		s.order = append(s.order, g.ID)
	}
	s.mu.Unlock()
	return nil
}

// Seed installs the default demo gigs shipped with a fresh install.
func (s *GigStore) Seed() {
	s.mu.Lock()
	s.gigs = make(map[string]*db_models.Gig)
	s.order = nil
	for _, g := range seedGigs() {
		gig := g
		s.gigs[gig.ID] = &gig
		s.order = append(s.order, gig.ID)
	}
	s.mu.Unlock()
}

func seedGigs() []db_models.Gig {
	return []db_models.Gig{
		{
			ID:         "mock-1",
			SeniorID:   "senior-1",
			SeniorName: "Margaret Lee",
			FamilyID:   "family-1",
			Status:     db_models.GigPendingApproval,
			Category:   "grocery",
			Items: []db_models.GigItem{
				{ID: "item-1", Name: "Milk", Quantity: 2},
				{ID: "item-2", Name: "Wholegrain bread", Quantity: 1},
				{ID: "item-3", Name: "Bananas", Quantity: 6},
			},
			CreatedAt: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:         "mock-2",
			SeniorID:   "senior-1",
			SeniorName: "Margaret Lee",
			Status:     db_models.GigPending,
			Category:   "pharmacy",
			Items: []db_models.GigItem{
				{ID: "item-1", Name: "Prescription pickup", Quantity: 1},
			},
			CreatedAt: time.Date(2026, 8, 22, 14, 30, 0, 0, time.UTC),
		},
	}
}

func (s *GigStore) notify() {
	if s.flush != nil {
		s.flush.Flush(s)
	}
}

// NewGigInput is the caller-supplied part of a gig; ids, timestamps and flags
// are assigned here.
type NewGigInput struct {
	SeniorID   string              `json:"senior_id"`
	SeniorName string              `json:"senior_name"`
	FamilyID   string              `json:"family_id"`
	Category   string              `json:"category"`
	Items      []db_models.GigItem `json:"items"`
	Budget     float64             `json:"budget"`
}

// AddGig creates a gig with a fresh id, a creation timestamp, pending status
// and cleared approval flags.
func (s *GigStore) AddGig(in NewGigInput) db_models.Gig {
	items := make([]db_models.GigItem, len(in.Items))
	copy(items, in.Items)
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
	}

	gig := db_models.Gig{
		ID:         uuid.New().String(),
		SeniorID:   in.SeniorID,
		SeniorName: in.SeniorName,
		FamilyID:   in.FamilyID,
		Status:     db_models.GigPending,
		Category:   in.Category,
		Items:      items,
		Budget:     in.Budget,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	s.gigs[gig.ID] = &gig
	s.order = append(s.order, gig.ID)
	out := gig
	s.mu.Unlock()

	s.notify()
	return out
}

// UpdateGigStatus advances the gig to status. Backward moves, unknown
// statuses and unknown ids are no-ops.
func (s *GigStore) UpdateGigStatus(id string, status db_models.GigStatus) {
	s.mu.Lock()
	gig, ok := s.gigs[id]
	if !ok || status.Rank() < 0 || status.Rank() <= gig.Status.Rank() {
		s.mu.Unlock()
		return
	}
	gig.Status = status
	s.mu.Unlock()

	s.notify()
}

// GigApproval carries the optional field updates applied alongside approval.
type GigApproval struct {
	Budget  *float64 `json:"budget,omitempty"`
	PalID   *string  `json:"pal_id,omitempty"`
	PalName *string  `json:"pal_name,omitempty"`
}

// ApproveGig is the only operation that sets ApprovedByFamily and
// PaymentGuaranteed; both flip together with the move to
// approved_and_assigned. Other gigs are untouched.
func (s *GigStore) ApproveGig(id string, upd GigApproval) {
	s.mu.Lock()
	gig, ok := s.gigs[id]
	if !ok {
		s.mu.Unlock()
		return
	}

	if db_models.GigApprovedAndAssigned.Rank() > gig.Status.Rank() {
		gig.Status = db_models.GigApprovedAndAssigned
	}
	gig.ApprovedByFamily = true
	gig.PaymentGuaranteed = true
	if upd.Budget != nil {
		gig.Budget = *upd.Budget
	}
	if upd.PalID != nil {
		gig.PalID = *upd.PalID
	}
	if upd.PalName != nil {
		gig.PalName = *upd.PalName
	}
	s.mu.Unlock()

	s.notify()
}

// AssignPal records the performing pal and advances the gig to matched.
func (s *GigStore) AssignPal(id string, palID string, palName string) {
	s.mu.Lock()
	gig, ok := s.gigs[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	gig.PalID = palID
	gig.PalName = palName
	if db_models.GigMatched.Rank() > gig.Status.Rank() {
		gig.Status = db_models.GigMatched
	}
	s.mu.Unlock()

	s.notify()
}

// ToggleItem flips the checked flag of one checklist item. Unknown gig or
// item ids leave everything unchanged.
func (s *GigStore) ToggleItem(gigID string, itemID string) {
	s.mu.Lock()
	gig, ok := s.gigs[gigID]
	if !ok {
		s.mu.Unlock()
		return
	}
	changed := false
	for i := range gig.Items {
		if gig.Items[i].ID == itemID {
			gig.Items[i].Checked = !gig.Items[i].Checked
			changed = true
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *GigStore) Get(id string) (db_models.Gig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gig, ok := s.gigs[id]
	if !ok {
		return db_models.Gig{}, false
	}
	return *gig, true
}

func (s *GigStore) List() []db_models.Gig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]db_models.Gig, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, *s.gigs[id])
	}
	return list
}

func (s *GigStore) ListByStatus(status db_models.GigStatus) []db_models.Gig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []db_models.Gig
	for _, id := range s.order {
		if s.gigs[id].Status == status {
			list = append(list, *s.gigs[id])
		}
	}
	return list
}

// ListBySenior returns the requesting senior's gigs in insertion order.
func (s *GigStore) ListBySenior(seniorID string) []db_models.Gig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var list []db_models.Gig
	for _, id := range s.order {
		if s.gigs[id].SeniorID == seniorID {
			list = append(list, *s.gigs[id])
		}
	}
	return list
}
