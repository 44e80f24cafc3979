package health_fx

import (
	"go.uber.org/fx"

	"carelink/internal/persistence"
	"carelink/internal/services"
	"carelink/internal/stores"
)

var Module = fx.Provide(
	provideHealthStore, provideHealthService)

func provideHealthStore(adapter *persistence.Adapter) *stores.HealthStore {
	return stores.NewHealthStore(adapter)
}

func provideHealthService(health *stores.HealthStore) services.HealthServiceInterface {
	return services.NewHealthService(health)
}
