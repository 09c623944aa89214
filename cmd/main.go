package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yug1204/event-registration/config"
	"github.com/yug1204/event-registration/database"
	"github.com/yug1204/event-registration/internal/auditlog"
	"github.com/yug1204/event-registration/internal/event"
	"github.com/yug1204/event-registration/internal/registration"
	"github.com/yug1204/event-registration/internal/settings"
	"github.com/yug1204/event-registration/middleware"
	"github.com/yug1204/event-registration/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&event.Event{},
		&registration.Registration{},
		&settings.Setting{},
		&auditlog.AuditLog{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}
	log.Println("✅ Database migrations completed")

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ClientIP())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, db, cfg)

	fmt.Printf("🚀 Server starting on port %s\n", cfg.Port)
	fmt.Printf("📝 Registration form API: http://localhost:%s/api/v1/events/active\n", cfg.Port)
	fmt.Printf("📥 CSV export: http://localhost:%s/api/v1/registrations/export\n", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		panic(fmt.Sprintf("Failed to start server: %v", err))
	}
}
