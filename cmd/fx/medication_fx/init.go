package medication_fx

import (
	"go.uber.org/fx"

	"carelink/internal/persistence"
	"carelink/internal/services"
	"carelink/internal/stores"
)

var Module = fx.Provide(
	provideMedicationStore, provideMedicationService)

func provideMedicationStore(adapter *persistence.Adapter) *stores.MedicationStore {
	return stores.NewMedicationStore(adapter)
}

func provideMedicationService(meds *stores.MedicationStore) services.MedicationServiceInterface {
	return services.NewMedicationService(meds)
}
