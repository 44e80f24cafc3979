package services

import (
	"time"

	"carelink/internal/models/db_models"
	"carelink/internal/stores"
	"carelink/pkg/utils"
)

type MedicationServiceInterface interface {
	Add(in stores.NewMedicationInput) db_models.Medication
	List() []db_models.Medication
	UpdateStatus(id string, status string) (db_models.Medication, error)
	RequestRefill(id string) (db_models.Medication, error)
	MarkTaken(id string, taken bool) (db_models.Medication, error)
	NextUpcomingDose() (db_models.Medication, bool)
}

type MedicationService struct {
	meds *stores.MedicationStore
}

func NewMedicationService(meds *stores.MedicationStore) MedicationServiceInterface {
	return &MedicationService{meds: meds}
}

func (m *MedicationService) Add(in stores.NewMedicationInput) db_models.Medication {
	return m.meds.Add(in)
}

func (m *MedicationService) List() []db_models.Medication {
	return m.meds.List()
}

func (m *MedicationService) UpdateStatus(id string, status string) (db_models.Medication, error) {
	if _, ok := m.meds.Get(id); !ok {
		return db_models.Medication{}, utils.ErrMedicationNotFound
	}
	m.meds.UpdateStatus(id, db_models.MedicationStatus(status))
	med, _ := m.meds.Get(id)
	return med, nil
}

func (m *MedicationService) RequestRefill(id string) (db_models.Medication, error) {
	if _, ok := m.meds.Get(id); !ok {
		return db_models.Medication{}, utils.ErrMedicationNotFound
	}
	m.meds.RequestRefill(id)
	med, _ := m.meds.Get(id)
	return med, nil
}

func (m *MedicationService) MarkTaken(id string, taken bool) (db_models.Medication, error) {
	if _, ok := m.meds.Get(id); !ok {
		return db_models.Medication{}, utils.ErrMedicationNotFound
	}
	m.meds.MarkTaken(id, taken)
	med, _ := m.meds.Get(id)
	return med, nil
}

func (m *MedicationService) NextUpcomingDose() (db_models.Medication, bool) {
	return m.meds.NextUpcomingDose(time.Now())
}
