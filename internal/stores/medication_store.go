package stores

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"carelink/internal/models/db_models"
	"carelink/internal/persistence"
	"carelink/pkg/utils"
)

// MedicationStore owns the medication list. Transitions are deliberately
// loose — any valid status can be set over any other — with one exception:
// archived is terminal, and status mutations on an archived medication are
// no-ops.
type MedicationStore struct {
	mu    sync.RWMutex
	meds  map[string]*db_models.Medication
	order []string
	flush persistence.Flusher
}

func NewMedicationStore(flush persistence.Flusher) *MedicationStore {
	return &MedicationStore{
		meds:  make(map[string]*db_models.Medication),
		flush: flush,
	}
}

func (s *MedicationStore) Name() string { return "medications" }

func (s *MedicationStore) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]db_models.Medication, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, *s.meds[id])
	}
	return json.Marshal(list)
}

func (s *MedicationStore) Restore(data []byte) error {
	var list []db_models.Medication
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	s.mu.Lock()
	s.meds = make(map[string]*db_models.Medication, len(list))
	s.order = s.order[:0]
	for i := range list {
		m := list[i]
		s.meds[m.ID] = &m
		s.order = append(s.order, m.ID)
	}
	s.mu.Unlock()
	return nil
}

func (s *MedicationStore) Seed() {
	s.mu.Lock()
	s.meds = make(map[string]*db_models.Medication)
	s.order = nil
	for _, m := range []db_models.Medication{
		{
			ID: "med-1", Name: "Lisinopril", Dosage: "10mg", Frequency: "daily",
			Time: "08:00", Status: db_models.MedicationActive, AddedBy: db_models.RoleFamily,
			CreatedAt: time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			ID: "med-2", Name: "Metformin", Dosage: "500mg", Frequency: "twice daily",
			Time: "19:00", Status: db_models.MedicationActive, AddedBy: db_models.RoleSenior,
			CreatedAt: time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC),
		},
	} {
		med := m
		s.meds[med.ID] = &med
		s.order = append(s.order, med.ID)
	}
	s.mu.Unlock()
}

func (s *MedicationStore) notify() {
	if s.flush != nil {
		s.flush.Flush(s)
	}
}

type NewMedicationInput struct {
	Name      string         `json:"name"`
	Dosage    string         `json:"dosage"`
	Frequency string         `json:"frequency"`
	Time      string         `json:"time"`
	AddedBy   db_models.Role `json:"added_by"`
}

func (s *MedicationStore) Add(in NewMedicationInput) db_models.Medication {
	med := db_models.Medication{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Dosage:    in.Dosage,
		Frequency: in.Frequency,
		Time:      in.Time,
		Status:    db_models.MedicationPendingReview,
		AddedBy:   in.AddedBy,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.meds[med.ID] = &med
	s.order = append(s.order, med.ID)
	out := med
	s.mu.Unlock()

	s.notify()
	return out
}

// UpdateStatus sets the status. Unknown ids, invalid statuses and archived
// medications are no-ops.
func (s *MedicationStore) UpdateStatus(id string, status db_models.MedicationStatus) {
	s.mu.Lock()
	med, ok := s.meds[id]
	if !ok || !status.Valid() || med.Status == db_models.MedicationArchived {
		s.mu.Unlock()
		return
	}
	med.Status = status
	s.mu.Unlock()

	s.notify()
}

// RequestRefill always moves to refill_requested regardless of the prior
// status, archived excepted.
func (s *MedicationStore) RequestRefill(id string) {
	s.UpdateStatus(id, db_models.MedicationRefillRequested)
}

func (s *MedicationStore) MarkTaken(id string, taken bool) {
	s.mu.Lock()
	med, ok := s.meds[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	med.TakenToday = taken
	s.mu.Unlock()

	s.notify()
}

func (s *MedicationStore) Get(id string) (db_models.Medication, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	med, ok := s.meds[id]
	if !ok {
		return db_models.Medication{}, false
	}
	return *med, true
}

func (s *MedicationStore) List() []db_models.Medication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]db_models.Medication, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, *s.meds[id])
	}
	return list
}

// NextUpcomingDose finds the active, not-yet-taken medication with the
// earliest dose time at or after now's wall clock. Computed on read.
func (s *MedicationStore) NextUpcomingDose(now time.Time) (db_models.Medication, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nowClock, _ := utils.ParseClock(now.Format("15:04"))

	var best *db_models.Medication
	var bestClock time.Time
	for _, id := range s.order {
		med := s.meds[id]
		if med.Status != db_models.MedicationActive || med.TakenToday {
			continue
		}
		clock, ok := utils.ParseClock(med.Time)
		if !ok || clock.Before(nowClock) {
			continue
		}
		if best == nil || clock.Before(bestClock) {
			best = med
			bestClock = clock
		}
	}

	if best == nil {
		return db_models.Medication{}, false
	}
	return *best, true
}
