package notification_fx

import (
	"go.uber.org/fx"

	"carelink/internal/persistence"
	"carelink/internal/services"
	"carelink/internal/stores"
)

var Module = fx.Provide(
	provideNotificationStore, provideNotificationService)

func provideNotificationStore(adapter *persistence.Adapter) *stores.NotificationStore {
	return stores.NewNotificationStore(adapter)
}

func provideNotificationService(notifications *stores.NotificationStore) services.NotificationServiceInterface {
	return services.NewNotificationService(notifications)
}
