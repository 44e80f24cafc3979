package db_models

import "time"

// Vital identifies one measured health quantity.
type Vital string

const (
	VitalMood          Vital = "mood"
	VitalBloodPressure Vital = "blood_pressure"
	VitalBloodSugar    Vital = "blood_sugar"
	VitalWeight        Vital = "weight"
	VitalWater         Vital = "water"
	VitalHeartRate     Vital = "heart_rate"
	VitalTemperature   Vital = "temperature"
)

func (v Vital) Valid() bool {
	switch v {
	case VitalMood, VitalBloodPressure, VitalBloodSugar, VitalWeight,
		VitalWater, VitalHeartRate, VitalTemperature:
		return true
	}
	return false
}

type MoodReading struct {
	Mood      string    `json:"mood"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type BloodPressureReading struct {
	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
	Pulse     int       `json:"pulse,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type BloodSugarReading struct {
	Value     float64   `json:"value"`
	Context   string    `json:"context,omitempty"` // fasting, after_meal, ...
	Timestamp time.Time `json:"timestamp"`
}

type WeightReading struct {
	Kilograms float64   `json:"kilograms"`
	Timestamp time.Time `json:"timestamp"`
}

type WaterReading struct {
	Glasses   int       `json:"glasses"`
	Goal      int       `json:"goal"`
	Timestamp time.Time `json:"timestamp"`
}

type HeartRateReading struct {
	BPM       int       `json:"bpm"`
	Timestamp time.Time `json:"timestamp"`
}

type TemperatureReading struct {
	Celsius   float64   `json:"celsius"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthSnapshot is the latest-value view, one slot per vital, each slot
// carrying its own timestamp.
type HealthSnapshot struct {
	Mood          *MoodReading          `json:"mood,omitempty"`
	BloodPressure *BloodPressureReading `json:"blood_pressure,omitempty"`
	BloodSugar    *BloodSugarReading    `json:"blood_sugar,omitempty"`
	Weight        *WeightReading        `json:"weight,omitempty"`
	Water         *WaterReading         `json:"water,omitempty"`
	HeartRate     *HeartRateReading     `json:"heart_rate,omitempty"`
	Temperature   *TemperatureReading   `json:"temperature,omitempty"`
}

// HealthHistoryEntry is one appended log record for a vital. Value holds the
// reading struct for that vital, serialized as-is.
type HealthHistoryEntry struct {
	ID        string      `json:"id"`
	Vital     Vital       `json:"vital"`
	Value     interface{} `json:"value"`
	Timestamp time.Time   `json:"timestamp"`
}
