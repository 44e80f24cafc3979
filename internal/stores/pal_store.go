package stores

import (
	"encoding/json"
	"sort"
	"sync"

	"carelink/internal/models/db_models"
	"carelink/internal/persistence"
)

// PalStore owns the caretaker directory and their availability calendars.
// Dates and slots stay sorted ascending; a slot appears at most once per
// date.
type PalStore struct {
	mu    sync.RWMutex
	pals  map[string]*db_models.Pal
	order []string
	flush persistence.Flusher
}

func NewPalStore(flush persistence.Flusher) *PalStore {
	return &PalStore{
		pals:  make(map[string]*db_models.Pal),
		flush: flush,
	}
}

func (s *PalStore) Name() string { return "pals" }

func (s *PalStore) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]db_models.Pal, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, *s.pals[id])
	}
	return json.Marshal(list)
}

func (s *PalStore) Restore(data []byte) error {
	var list []db_models.Pal
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	s.mu.Lock()
	s.pals = make(map[string]*db_models.Pal, len(list))
	s.order = s.order[:0]
	for i := range list {
		p := list[i]
		s.pals[p.ID] = &p
		s.order = append(s.order, p.ID)
	}
	s.mu.Unlock()
	return nil
}

func (s *PalStore) Seed() {
	s.mu.Lock()
	s.pals = make(map[string]*db_models.Pal)
	s.order = nil
	for _, p := range []db_models.Pal{
		{
			ID: "pal-1", Name: "Anita Gomez", Rating: 4.9, ExperienceYears: 6,
			Specializations: []string{"dementia care", "mobility support"},
			Availability: []db_models.PalAvailability{
				{Date: "2026-08-30", Slots: []string{"09:00-11:00", "14:00-16:00"}},
				{Date: "2026-08-31", Slots: []string{"10:00-12:00"}},
			},
		},
		{
			ID: "pal-2", Name: "Derek Chan", Rating: 4.7, ExperienceYears: 3,
			Specializations: []string{"errands", "companionship"},
			Availability: []db_models.PalAvailability{
				{Date: "2026-08-30", Slots: []string{"13:00-15:00"}},
			},
		},
	} {
		pal := p
		s.pals[pal.ID] = &pal
		s.order = append(s.order, pal.ID)
	}
	s.mu.Unlock()
}

func (s *PalStore) notify() {
	if s.flush != nil {
		s.flush.Flush(s)
	}
}

func (s *PalStore) Get(id string) (db_models.Pal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pal, ok := s.pals[id]
	if !ok {
		return db_models.Pal{}, false
	}
	return clonePal(*pal), true
}

func (s *PalStore) List() []db_models.Pal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]db_models.Pal, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, clonePal(*s.pals[id]))
	}
	return list
}

func clonePal(p db_models.Pal) db_models.Pal {
	avail := make([]db_models.PalAvailability, len(p.Availability))
	for i, a := range p.Availability {
		slots := make([]string, len(a.Slots))
		copy(slots, a.Slots)
		avail[i] = db_models.PalAvailability{Date: a.Date, Slots: slots}
	}
	p.Availability = avail
	specs := make([]string, len(p.Specializations))
	copy(specs, p.Specializations)
	p.Specializations = specs
	return p
}

// UpdateAvailability removes one slot from the pal's calendar; a date whose
// last slot goes is dropped entirely. Unknown pal/date/slot are no-ops.
func (s *PalStore) UpdateAvailability(palID string, date string, slot string) {
	s.mu.Lock()
	pal, ok := s.pals[palID]
	if !ok {
		s.mu.Unlock()
		return
	}

	changed := false
	for i := range pal.Availability {
		if pal.Availability[i].Date != date {
			continue
		}
		slots := pal.Availability[i].Slots
		for j, existing := range slots {
			if existing == slot {
				pal.Availability[i].Slots = append(slots[:j], slots[j+1:]...)
				changed = true
				break
			}
		}
		if changed && len(pal.Availability[i].Slots) == 0 {
			pal.Availability = append(pal.Availability[:i], pal.Availability[i+1:]...)
		}
		break
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// RestoreAvailability reinserts a slot, creating the date entry if absent.
// Dates and slots end up sorted ascending; duplicates are not added.
func (s *PalStore) RestoreAvailability(palID string, date string, slot string) {
	s.mu.Lock()
	pal, ok := s.pals[palID]
	if !ok {
		s.mu.Unlock()
		return
	}

	changed := false
	found := false
	for i := range pal.Availability {
		if pal.Availability[i].Date != date {
			continue
		}
		found = true
		dup := false
		for _, existing := range pal.Availability[i].Slots {
			if existing == slot {
				dup = true
				break
			}
		}
		if !dup {
			pal.Availability[i].Slots = append(pal.Availability[i].Slots, slot)
			sort.Strings(pal.Availability[i].Slots)
			changed = true
		}
		break
	}

	if !found {
		pal.Availability = append(pal.Availability, db_models.PalAvailability{
			Date:  date,
			Slots: []string{slot},
		})
		sort.Slice(pal.Availability, func(i, j int) bool {
			return pal.Availability[i].Date < pal.Availability[j].Date
		})
		changed = true
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}
