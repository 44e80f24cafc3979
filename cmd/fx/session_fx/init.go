package session_fx

import (
	"go.uber.org/fx"

	"carelink/internal/persistence"
	"carelink/internal/services"
	"carelink/internal/stores"
	mem "carelink/pkg/memcache"
	"carelink/pkg/verification"
)

var Module = fx.Provide(
	provideSessionStore, provideVerification, provideSessionService)

func provideSessionStore(adapter *persistence.Adapter) *stores.SessionStore {
	return stores.NewSessionStore(adapter)
}

func provideVerification(codes mem.OtpCodeStore) verification.Service {
	return verification.NewService(codes)
}

func provideSessionService(session *stores.SessionStore, verifier verification.Service) services.SessionServiceInterface {
	return services.NewSessionService(session, verifier)
}
