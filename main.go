package main

import (
	"fmt"
	"log"
	"os"

	"companion-backend/config"
	"companion-backend/models"
	"companion-backend/routes"
	"companion-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.MoodEntry{},
		&models.NotificationLog{},
	)

	config.BackfillNotificationDefaults(config.DB)
}

func main() {
	whatsapp := services.NewWhatsAppService()
	if configured, message := whatsapp.Status(); !configured {
		log.Printf("WhatsApp not configured - notifications will be skipped: %s", message)
	}

	scheduler := services.NewSchedulerService(config.DB, whatsapp)
	scheduler.StartScheduler()
	defer scheduler.StopScheduler()
	defer config.CloseDB(config.DB)

	notifier := services.NewPartnerNotifier(services.NewAudienceResolver(config.DB), whatsapp)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(whatsapp, notifier)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
