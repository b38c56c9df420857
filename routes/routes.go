package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"companion-backend/config"
	"companion-backend/controllers"
	"companion-backend/services"
	"companion-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(whatsapp *services.WhatsAppService, notifier *services.PartnerNotifier) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().Format(time.RFC3339)})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	notificationController := &controllers.NotificationController{WhatsApp: whatsapp}

	api := r.Group("/api")
	// Public probe so the frontend can surface missing Twilio setup.
	api.GET("/test/whatsapp-status", notificationController.WhatsAppStatus)

	api.Use(utils.AuthMiddleware())
	{
		settingsController := &controllers.SettingsController{Notifier: notifier}
		api.GET("/settings", settingsController.GetSettings)
		api.PUT("/settings", settingsController.UpdateSettings)

		moodController := &controllers.MoodController{Notifier: notifier}
		moods := api.Group("/moods")
		{
			moods.POST("/log", utils.RequireMainUser(), moodController.LogMood)
			moods.GET("/today", moodController.TodayMood)
			moods.GET("/history", moodController.MoodHistory)
		}

		api.POST("/test/whatsapp", utils.RequireMainUser(), notificationController.SendTest)
	}

	return r
}

// allowedOrigins reads FRONTEND_URL (comma-separated) and always allows
// the local Vite dev server.
func allowedOrigins() []string {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	for _, raw := range strings.Split(os.Getenv("FRONTEND_URL"), ",") {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
