package persistence_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"log"

	"carelink/internal/persistence"
)

var Module = fx.Provide(provideAdapter)

func provideAdapter(db *gorm.DB) *persistence.Adapter {
	adapter, err := persistence.NewAdapter(db)
	if err != nil {
		log.Fatalf("Failed to initialize persistence adapter: %v", err)
	}
	return adapter
}
