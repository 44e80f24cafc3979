package stores

import (
	"testing"
	"time"

	"carelink/internal/models/db_models"
)

func TestRequestRefillFromAnyLiveStatus(t *testing.T) {
	s := NewMedicationStore(nil)
	s.Seed()

	for _, start := range []db_models.MedicationStatus{
		db_models.MedicationActive,
		db_models.MedicationPendingReview,
		db_models.MedicationRefillRequested,
	} {
		med := s.Add(NewMedicationInput{Name: "Test", Dosage: "1mg", Frequency: "daily", Time: "09:00", AddedBy: db_models.RoleSenior})
		s.UpdateStatus(med.ID, start)
		s.RequestRefill(med.ID)
		got, _ := s.Get(med.ID)
		if got.Status != db_models.MedicationRefillRequested {
			t.Fatalf("refill from %s gave %s", start, got.Status)
		}
	}
}

func TestArchivedIsTerminal(t *testing.T) {
	s := NewMedicationStore(nil)
	s.Seed()

	med := s.Add(NewMedicationInput{Name: "Old", Dosage: "5mg", Frequency: "daily", Time: "10:00", AddedBy: db_models.RoleFamily})
	s.UpdateStatus(med.ID, db_models.MedicationArchived)

	s.RequestRefill(med.ID)
	got, _ := s.Get(med.ID)
	if got.Status != db_models.MedicationArchived {
		t.Fatal("refill escaped archived")
	}

	s.UpdateStatus(med.ID, db_models.MedicationActive)
	got, _ = s.Get(med.ID)
	if got.Status != db_models.MedicationArchived {
		t.Fatal("status update escaped archived")
	}
}

func TestNextUpcomingDose(t *testing.T) {
	s := NewMedicationStore(nil)
	s.Seed() // med-1 at 08:00, med-2 at 19:00, both active

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	med, ok := s.NextUpcomingDose(now)
	if !ok || med.ID != "med-2" {
		t.Fatalf("next dose = %+v, want med-2", med)
	}

	// Once taken, it drops out of the computation.
	s.MarkTaken("med-2", true)
	if _, ok := s.NextUpcomingDose(now); ok {
		t.Fatal("taken medication still offered as next dose")
	}
}

func TestMedicationMutationsUnknownIDAreNoOps(t *testing.T) {
	s := NewMedicationStore(nil)
	s.Seed()
	before := len(s.List())

	s.UpdateStatus("ghost", db_models.MedicationActive)
	s.RequestRefill("ghost")
	s.MarkTaken("ghost", true)

	if len(s.List()) != before {
		t.Fatal("unknown id mutated the collection")
	}
}
