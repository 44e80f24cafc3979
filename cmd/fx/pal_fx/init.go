package pal_fx

import (
	"time"

	"go.uber.org/fx"

	"carelink/internal/persistence"
	"carelink/internal/services"
	"carelink/internal/stores"
)

var Module = fx.Provide(
	providePalStore, providePalService)

func providePalStore(adapter *persistence.Adapter) *stores.PalStore {
	return stores.NewPalStore(adapter)
}

func providePalService(pals *stores.PalStore, delay services.FetchDelay) services.PalServiceInterface {
	return services.NewPalService(pals, time.Duration(delay))
}
