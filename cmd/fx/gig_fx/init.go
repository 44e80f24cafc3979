package gig_fx

import (
	"go.uber.org/fx"

	"carelink/internal/persistence"
	"carelink/internal/services"
	"carelink/internal/stores"
)

var Module = fx.Provide(
	provideGigStore, provideGigService)

func provideGigStore(adapter *persistence.Adapter) *stores.GigStore {
	return stores.NewGigStore(adapter)
}

func provideGigService(gigs *stores.GigStore, notifications *stores.NotificationStore) services.GigServiceInterface {
	return services.NewGigService(gigs, notifications)
}
