package config_fx

import (
	"go.uber.org/fx"

	"carelink/internal/services"
)

var Module = fx.Provide(services.FetchDelayFromEnv)
