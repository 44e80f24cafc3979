package memcache_fx

import (
	"go.uber.org/fx"

	mem "carelink/pkg/memcache"
)

var Module = fx.Provide(provideOtpCodes)

func provideOtpCodes() mem.OtpCodeStore {
	return mem.NewOtpCodes()
}
