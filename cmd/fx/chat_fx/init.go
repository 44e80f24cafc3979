package chat_fx

import (
	"time"

	"go.uber.org/fx"

	"carelink/internal/persistence"
	"carelink/internal/services"
	"carelink/internal/stores"
)

var Module = fx.Provide(
	provideChatStore, provideChatService)

func provideChatStore(adapter *persistence.Adapter) *stores.ChatStore {
	return stores.NewChatStore(adapter)
}

func provideChatService(chat *stores.ChatStore, delay services.FetchDelay) services.ChatServiceInterface {
	return services.NewChatService(chat, time.Duration(delay))
}
