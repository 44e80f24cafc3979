package controllers_fx

import (
	"go.uber.org/fx"

	"carelink/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewNavController),
	fx.Provide(controllers.NewGigController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewMedicationController),
	fx.Provide(controllers.NewPalController),
	fx.Provide(controllers.NewTrackingController),
	fx.Provide(controllers.NewNotificationController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewUploadController))
