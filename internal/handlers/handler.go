package handlers

import (
	"automation_snooze/internal/logger"
	"automation_snooze/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Countdown stream (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerSnoozeRoutes(api)
		h.registerAutomationRoutes(api)
		h.registerOptionRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerSnoozeRoutes(api *gin.RouterGroup) {
	snooze := api.Group("/snooze")
	{
		// Body example: {"entity_ids":["automation.porch_light"],"duration":"2h30m"}
		snooze.POST("", h.createSnooze)
		snooze.GET("", h.listSnoozes)
		snooze.POST("/adjust", h.adjustSnooze)
		snooze.DELETE("/:entity_id", h.cancelSnooze)
		snooze.POST("/cancel_all", h.cancelAllSnoozes)
		snooze.POST("/cancel_scheduled", h.cancelScheduledSnooze)
		snooze.POST("/area", h.snoozeArea)
		snooze.POST("/label", h.snoozeLabel)
	}
}

func (h *Handler) registerAutomationRoutes(api *gin.RouterGroup) {
	automations := api.Group("/automations")
	{
		automations.GET("", h.listAutomations)
		automations.GET("/counts", h.automationCounts)
	}
}

func (h *Handler) registerOptionRoutes(api *gin.RouterGroup) {
	options := api.Group("/options")
	{
		options.GET("/dates", h.dateOptions)
		options.GET("/duration", h.previewDuration)
	}
	prefs := api.Group("/preferences")
	{
		prefs.GET("/duration", h.getDurationPreference)
		prefs.PUT("/duration", h.putDurationPreference)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}
