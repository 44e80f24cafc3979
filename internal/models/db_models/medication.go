package db_models

import "time"

type MedicationStatus string

const (
	MedicationActive          MedicationStatus = "active"
	MedicationPendingReview   MedicationStatus = "pending_review"
	MedicationRefillRequested MedicationStatus = "refill_requested"
	MedicationArchived        MedicationStatus = "archived"
)

func (s MedicationStatus) Valid() bool {
	switch s {
	case MedicationActive, MedicationPendingReview, MedicationRefillRequested, MedicationArchived:
		return true
	}
	return false
}

type Medication struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Dosage     string           `json:"dosage"`
	Frequency  string           `json:"frequency"`
	Time       string           `json:"time"` // "08:00" wall-clock dose time
	Status     MedicationStatus `json:"status"`
	AddedBy    Role             `json:"added_by"`
	TakenToday bool             `json:"taken_today"`
	CreatedAt  time.Time        `json:"created_at"`
}
