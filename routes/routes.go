package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yug1204/event-registration/config"
	"github.com/yug1204/event-registration/internal/auditlog"
	"github.com/yug1204/event-registration/internal/event"
	"github.com/yug1204/event-registration/internal/export"
	"github.com/yug1204/event-registration/internal/notification"
	"github.com/yug1204/event-registration/internal/registration"
	"github.com/yug1204/event-registration/internal/settings"
	"github.com/yug1204/event-registration/middleware"
)

// Setup wires repositories, services and handlers and registers all routes.
// Authentication is the host CMS's concern; the admin group is expected to
// sit behind its access control.
func Setup(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Repositories & services
	auditRepo := auditlog.NewRepository(db)
	auditSvc := auditlog.NewService(auditRepo)

	settingsRepo := settings.NewRepository(db)
	settingsSvc := settings.NewService(settingsRepo, auditSvc)

	mailer := notification.NewSMTPMailer(cfg)
	gateway := notification.NewGateway(mailer, settingsSvc)

	eventRepo := event.NewRepository(db)
	eventSvc := event.NewService(eventRepo, auditSvc)

	regRepo := registration.NewRepository(db)
	validator := registration.NewValidator(regRepo)
	regSvc := registration.NewService(regRepo, eventRepo, validator, gateway, auditSvc)

	exportSvc := export.NewService(regRepo, export.NewExporter(), auditSvc)

	// Handlers
	eventHandler := event.NewHandler(eventSvc)
	regHandler := registration.NewHandler(regSvc)
	exportHandler := export.NewHandler(exportSvc)
	settingsHandler := settings.NewHandler(settingsSvc)
	auditHandler := auditlog.NewHandler(auditSvc)

	api := router.Group("/api/v1")

	// Public surface: registration form feeders and submission
	api.GET("/events/active", eventHandler.ListActiveEvents)
	api.GET("/events/categories", eventHandler.ListActiveCategories)
	api.GET("/events/dates", eventHandler.ListEventDates)
	api.POST("/registrations", middleware.RateLimiter(cfg), regHandler.Register)

	// Admin surface
	api.POST("/events", eventHandler.CreateEvent)
	api.GET("/events", eventHandler.ListEvents)
	api.GET("/events/:id", eventHandler.GetEventByID)
	api.GET("/registrations", regHandler.ListRegistrations)
	api.GET("/registrations/export", exportHandler.ExportRegistrations)
	api.GET("/settings", settingsHandler.GetSettings)
	api.PUT("/settings", settingsHandler.UpdateSettings)
	api.GET("/auditlogs", auditHandler.GetAuditLogs)
}
