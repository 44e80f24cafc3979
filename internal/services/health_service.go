package services

import (
	"math"

	"carelink/internal/models/db_models"
	"carelink/internal/stores"
	"carelink/pkg/utils"
)

// HealthService is the UI boundary for vitals: numeric input is validated
// here, so the store below can trust what it receives.
type HealthServiceInterface interface {
	RecordVital(vital string, reading interface{}) error
	UpdateWater(r db_models.WaterReading) error
	UpdateBloodPressure(r db_models.BloodPressureReading) error
	Current() db_models.HealthSnapshot
	History(vital string) ([]db_models.HealthHistoryEntry, error)
}

type HealthService struct {
	health *stores.HealthStore
}

func NewHealthService(health *stores.HealthStore) HealthServiceInterface {
	return &HealthService{health: health}
}

func validNumber(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func validateReading(reading interface{}) bool {
	switch r := reading.(type) {
	case db_models.MoodReading:
		return r.Mood != ""
	case db_models.BloodPressureReading:
		return r.Systolic > 0 && r.Diastolic > 0
	case db_models.BloodSugarReading:
		return validNumber(r.Value) && r.Value > 0
	case db_models.WeightReading:
		return validNumber(r.Kilograms) && r.Kilograms > 0
	case db_models.WaterReading:
		return r.Glasses >= 0 && r.Goal > 0
	case db_models.HeartRateReading:
		return r.BPM > 0
	case db_models.TemperatureReading:
		return validNumber(r.Celsius) && r.Celsius > 0
	}
	return false
}

// RecordVital is the combined write path: snapshot plus one history entry.
func (h *HealthService) RecordVital(vital string, reading interface{}) error {
	v := db_models.Vital(vital)
	if !v.Valid() || !validateReading(reading) {
		return utils.ErrInvalidReading
	}
	h.health.Record(v, reading)
	return nil
}

// UpdateWater is a point setter: snapshot only, no history entry.
func (h *HealthService) UpdateWater(r db_models.WaterReading) error {
	if !validateReading(r) {
		return utils.ErrInvalidReading
	}
	h.health.UpdateWater(r)
	return nil
}

// UpdateBloodPressure is a point setter: snapshot only, no history entry.
func (h *HealthService) UpdateBloodPressure(r db_models.BloodPressureReading) error {
	if !validateReading(r) {
		return utils.ErrInvalidReading
	}
	h.health.UpdateBloodPressure(r)
	return nil
}

func (h *HealthService) Current() db_models.HealthSnapshot {
	return h.health.Current()
}

func (h *HealthService) History(vital string) ([]db_models.HealthHistoryEntry, error) {
	v := db_models.Vital(vital)
	if !v.Valid() {
		return nil, utils.ErrInvalidReading
	}
	return h.health.History(v), nil
}
