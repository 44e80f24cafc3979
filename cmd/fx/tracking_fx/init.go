package tracking_fx

import (
	"go.uber.org/fx"

	"carelink/internal/persistence"
	"carelink/internal/services"
	"carelink/internal/stores"
)

var Module = fx.Provide(
	provideTrackingStore, provideTrackingService)

func provideTrackingStore(adapter *persistence.Adapter) *stores.TrackingStore {
	return stores.NewTrackingStore(adapter)
}

func provideTrackingService(tracking *stores.TrackingStore) services.TrackingServiceInterface {
	return services.NewTrackingService(tracking)
}
