package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carelink/cmd/fx/chat_fx"
	"carelink/cmd/fx/config_fx"
	"carelink/cmd/fx/controllers_fx"
	"carelink/cmd/fx/db_fx"
	"carelink/cmd/fx/gig_fx"
	"carelink/cmd/fx/health_fx"
	"carelink/cmd/fx/medication_fx"
	"carelink/cmd/fx/memcache_fx"
	"carelink/cmd/fx/notification_fx"
	"carelink/cmd/fx/pal_fx"
	"carelink/cmd/fx/persistence_fx"
	"carelink/cmd/fx/session_fx"
	"carelink/cmd/fx/tracking_fx"
	"carelink/internal/api/controllers"
	"carelink/internal/infra"
	"carelink/internal/models/db_models"
	"carelink/internal/persistence"
	"carelink/internal/stores"
	"carelink/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		db_fx.Module,
		persistence_fx.Module,
		memcache_fx.Module,
		config_fx.Module,
		session_fx.Module,
		gig_fx.Module,
		health_fx.Module,
		medication_fx.Module,
		pal_fx.Module,
		tracking_fx.Module,
		notification_fx.Module,
		chat_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(HydrateStores),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// HydrateStores loads every store's saved snapshot before the HTTP server
// accepts a single request. Stores without a snapshot get their seed data.
func HydrateStores(
	adapter *persistence.Adapter,
	session *stores.SessionStore,
	gigs *stores.GigStore,
	health *stores.HealthStore,
	medications *stores.MedicationStore,
	pals *stores.PalStore,
	tracking *stores.TrackingStore,
	notifications *stores.NotificationStore,
	chat *stores.ChatStore,
) {
	for _, st := range []persistence.Store{
		session, gigs, health, medications, pals, tracking, notifications, chat,
	} {
		adapter.Hydrate(st)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, adapter *persistence.Adapter, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			adapter.Close()
			infra.CloseStorage(db)
			return nil
		},
	})
}

func ProvideRouter(
	sessionController *controllers.SessionController,
	navController *controllers.NavController,
	gigController *controllers.GigController,
	healthController *controllers.HealthController,
	medicationController *controllers.MedicationController,
	palController *controllers.PalController,
	trackingController *controllers.TrackingController,
	notificationController *controllers.NotificationController,
	chatController *controllers.ChatController,
	uploadController *controllers.UploadController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		sessionController, navController, gigController, healthController,
		medicationController, palController, trackingController,
		notificationController, chatController, uploadController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	sessionController *controllers.SessionController,
	navController *controllers.NavController,
	gigController *controllers.GigController,
	healthController *controllers.HealthController,
	medicationController *controllers.MedicationController,
	palController *controllers.PalController,
	trackingController *controllers.TrackingController,
	notificationController *controllers.NotificationController,
	chatController *controllers.ChatController,
	uploadController *controllers.UploadController) {

	// Onboarding surface: reachable before the session token exists.
	session := r.Group("/session")
	session.POST("/role", sessionController.SelectRole)
	session.POST("/otp/request", sessionController.RequestOtp)
	session.POST("/otp/verify", sessionController.VerifyOtp)
	session.POST("/profile", sessionController.CompleteProfile)
	session.GET("", sessionController.Current)
	session.POST("/logout", sessionController.Logout)

	r.GET("/nav/evaluate", navController.Evaluate)
	r.POST("/uploads", uploadController.UploadImage)

	// Post-auth area.
	authed := r.Group("/", middleware.JWTAuthMiddleware())

	gigs := authed.Group("gigs")
	gigs.POST("", gigController.CreateGig)
	gigs.GET("", gigController.ListGigs)
	gigs.GET("/:id", gigController.GetGig)
	gigs.POST("/:id/status", gigController.UpdateStatus)
	gigs.POST("/:id/assign", gigController.Assign)
	gigs.POST("/:id/items/:itemId/toggle", gigController.ToggleItem)
	gigs.POST("/:id/approve", middleware.RoleMiddleware(db_models.RoleFamily), gigController.Approve)

	health := authed.Group("health")
	health.GET("", healthController.Current)
	health.GET("/history/:vital", healthController.History)
	health.POST("/record/:vital", healthController.RecordVital)
	health.PUT("/water", healthController.UpdateWater)
	health.PUT("/blood-pressure", healthController.UpdateBloodPressure)

	medications := authed.Group("medications")
	medications.POST("", medicationController.Add)
	medications.GET("", medicationController.List)
	medications.GET("/next-dose", medicationController.NextDose)
	medications.POST("/:id/status", medicationController.UpdateStatus)
	medications.POST("/:id/refill", medicationController.RequestRefill)
	medications.POST("/:id/taken", medicationController.MarkTaken)

	pals := authed.Group("pals")
	pals.GET("", palController.ListPals)
	pals.GET("/:id", palController.GetPal)
	pals.POST("/:id/book", palController.BookSlot)
	pals.POST("/:id/release", palController.ReleaseSlot)

	tracking := authed.Group("tracking")
	tracking.POST("/:orderId/start", trackingController.Start)
	tracking.GET("/:orderId", trackingController.Get)
	tracking.POST("/:orderId/status", trackingController.UpdateStatus)
	tracking.POST("/:orderId/location", middleware.RoleMiddleware(db_models.RolePal), trackingController.UpdateLocation)
	tracking.POST("/:orderId/assign", trackingController.AssignPal)

	notifications := authed.Group("notifications")
	notifications.GET("", notificationController.List)
	notifications.GET("/unread-count", notificationController.UnreadCount)
	notifications.POST("/:id/read", notificationController.MarkRead)
	notifications.POST("/read-all", notificationController.MarkAllRead)

	chat := authed.Group("chat")
	chat.GET("", chatController.ListConversations)
	chat.POST("", chatController.StartConversation)
	chat.GET("/:id/messages", chatController.Messages)
	chat.POST("/:id/messages", chatController.SendMessage)
	chat.POST("/:id/read", chatController.MarkRead)
}
