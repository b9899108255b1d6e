package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tourlytics/internal/analytics"
	"tourlytics/internal/records"
	"tourlytics/internal/shared/config"
	"tourlytics/internal/vendors"
	"tourlytics/pkg/cache"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	provider     *records.Provider
	cacheService cache.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, provider *records.Provider, cacheService cache.Service) *Router {
	return &Router{
		config:       cfg,
		provider:     provider,
		cacheService: cacheService,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAnalyticsRoutes(api)
		r.setupVendorRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		redisHealthy := false
		if r.cacheService != nil {
			redisHealthy = r.cacheService.Ping(c.Request.Context()) == nil
		}

		c.JSON(http.StatusOK, gin.H{
			"status":         "healthy",
			"dataset_loaded": r.provider.Loaded(),
			"redis_cache":    redisHealthy,
			"timestamp":      time.Now(),
			"service":        "tourlytics",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAnalyticsRoutes configures the analytics endpoints
func (r *Router) setupAnalyticsRoutes(rg *gin.RouterGroup) {
	service := analytics.NewService(r.provider)
	if r.cacheService != nil {
		service.SetCacheService(r.cacheService)
	}
	controller := analytics.NewController(service)

	analytics.SetupAnalyticsRoutes(rg, controller)
}

// setupVendorRoutes configures the vendor-facing endpoints
func (r *Router) setupVendorRoutes(rg *gin.RouterGroup) {
	service := vendors.NewService(r.provider)
	if r.cacheService != nil {
		service.SetCacheService(r.cacheService)
	}
	controller := vendors.NewController(service)

	vendors.SetupVendorRoutes(rg, controller)
}
