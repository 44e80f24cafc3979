package stores

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"carelink/internal/models/db_models"
	"carelink/internal/persistence"
)

// HealthStore keeps the latest snapshot per vital plus an append-only history
// per vital. There are two write paths with different guarantees: Record*
// writes the snapshot AND appends exactly one history entry; the Update*
// point setters only touch the snapshot. Callers pick deliberately.
type HealthStore struct {
	mu      sync.RWMutex
	current db_models.HealthSnapshot
	history []db_models.HealthHistoryEntry
	flush   persistence.Flusher
}

func NewHealthStore(flush persistence.Flusher) *HealthStore {
	return &HealthStore{flush: flush}
}

func (s *HealthStore) Name() string { return "health" }

type healthState struct {
	Current db_models.HealthSnapshot       `json:"current"`
	History []db_models.HealthHistoryEntry `json:"history"`
}

func (s *HealthStore) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(healthState{Current: s.current, History: s.history})
}

func (s *HealthStore) Restore(data []byte) error {
	var st healthState
	if err := json.Unmarshal(data, &st); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = st.Current
	s.history = st.History
	s.mu.Unlock()
	return nil
}

func (s *HealthStore) Seed() {
	s.mu.Lock()
	s.current = db_models.HealthSnapshot{}
	s.history = nil
	s.mu.Unlock()
}

func (s *HealthStore) notify() {
	if s.flush != nil {
		s.flush.Flush(s)
	}
}

// Current returns the latest-value snapshot.
func (s *HealthStore) Current() db_models.HealthSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// History returns the appended log for one vital, oldest first.
func (s *HealthStore) History(vital db_models.Vital) []db_models.HealthHistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []db_models.HealthHistoryEntry
	for _, e := range s.history {
		if e.Vital == vital {
			out = append(out, e)
		}
	}
	return out
}

// setVital writes the snapshot slot for vital. Returns false when the vital
// and reading type disagree, in which case nothing changes.
func (s *HealthStore) setVital(vital db_models.Vital, reading interface{}) bool {
	switch vital {
	case db_models.VitalMood:
		if r, ok := reading.(db_models.MoodReading); ok {
			s.current.Mood = &r
			return true
		}
	case db_models.VitalBloodPressure:
		if r, ok := reading.(db_models.BloodPressureReading); ok {
			s.current.BloodPressure = &r
			return true
		}
	case db_models.VitalBloodSugar:
		if r, ok := reading.(db_models.BloodSugarReading); ok {
			s.current.BloodSugar = &r
			return true
		}
	case db_models.VitalWeight:
		if r, ok := reading.(db_models.WeightReading); ok {
			s.current.Weight = &r
			return true
		}
	case db_models.VitalWater:
		if r, ok := reading.(db_models.WaterReading); ok {
			s.current.Water = &r
			return true
		}
	case db_models.VitalHeartRate:
		if r, ok := reading.(db_models.HeartRateReading); ok {
			s.current.HeartRate = &r
			return true
		}
	case db_models.VitalTemperature:
		if r, ok := reading.(db_models.TemperatureReading); ok {
			s.current.Temperature = &r
			return true
		}
	}
	return false
}

func timestampOf(reading interface{}) time.Time {
	switch r := reading.(type) {
	case db_models.MoodReading:
		return r.Timestamp
	case db_models.BloodPressureReading:
		return r.Timestamp
	case db_models.BloodSugarReading:
		return r.Timestamp
	case db_models.WeightReading:
		return r.Timestamp
	case db_models.WaterReading:
		return r.Timestamp
	case db_models.HeartRateReading:
		return r.Timestamp
	case db_models.TemperatureReading:
		return r.Timestamp
	}
	return time.Time{}
}

// Record is the combined entry point: it updates the snapshot slot and
// appends exactly one history entry for the same vital in the same call.
func (s *HealthStore) Record(vital db_models.Vital, reading interface{}) {
	s.mu.Lock()
	if !s.setVital(vital, reading) {
		s.mu.Unlock()
		return
	}
	s.history = append(s.history, db_models.HealthHistoryEntry{
		ID:        uuid.New().String(),
		Vital:     vital,
		Value:     reading,
		Timestamp: timestampOf(reading),
	})
	s.mu.Unlock()

	s.notify()
}

// Point setters: snapshot only, no history entry.

func (s *HealthStore) UpdateMood(r db_models.MoodReading) {
	s.updatePoint(db_models.VitalMood, r)
}

func (s *HealthStore) UpdateBloodPressure(r db_models.BloodPressureReading) {
	s.updatePoint(db_models.VitalBloodPressure, r)
}

func (s *HealthStore) UpdateBloodSugar(r db_models.BloodSugarReading) {
	s.updatePoint(db_models.VitalBloodSugar, r)
}

func (s *HealthStore) UpdateWeight(r db_models.WeightReading) {
	s.updatePoint(db_models.VitalWeight, r)
}

func (s *HealthStore) UpdateWater(r db_models.WaterReading) {
	s.updatePoint(db_models.VitalWater, r)
}

func (s *HealthStore) UpdateHeartRate(r db_models.HeartRateReading) {
	s.updatePoint(db_models.VitalHeartRate, r)
}

func (s *HealthStore) UpdateTemperature(r db_models.TemperatureReading) {
	s.updatePoint(db_models.VitalTemperature, r)
}

func (s *HealthStore) updatePoint(vital db_models.Vital, reading interface{}) {
	s.mu.Lock()
	ok := s.setVital(vital, reading)
	s.mu.Unlock()

	if ok {
		s.notify()
	}
}
