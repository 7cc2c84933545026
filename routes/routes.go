package routes

import (
	"net/http"
	"time"

	"scheduly/config"
	"scheduly/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers the schedule build and optimize endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.POST("/build", hb.BuildScheduleHandler)
		api.POST("/optimize", hb.OptimizeScheduleHandler)
	}
}

// RegisterCatalogRoutes registers course catalog lookups.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.POST("/sections", hb.CatalogSectionsHandler)
	}
}

// RegisterSessionRoutes registers session inspection endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.GET("/:id", hb.GetSessionHandler)
		api.DELETE("/:id", hb.DeleteSessionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint reporting the active
// mode and its feature set.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		dev := config.DevelopmentMode()
		supported := []string{"Any university (AI-powered)"}
		if dev {
			supported = []string{config.AppConfig.DefaultSchool}
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":                true,
			"mode":              config.AppConfig.AppMode,
			"supported_schools": supported,
			"features": gin.H{
				"curated_requirements": dev,
				"ai_requirements":      !dev,
				"ai_prerequisites":     !dev,
				"multi_university":     !dev,
			},
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterScheduleRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
}
