package routes

import (
	"time"

	"slotify/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSlotRoutes registers the unified slot aggregation endpoints.
func RegisterSlotRoutes(r *gin.Engine, sh *handlers.SlotHandler) {
	api := r.Group("/api/slots")
	{
		api.GET("/unified", sh.GetUnifiedSlots)
	}
}

// RegisterHealthRoutes registers the health endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// CORSMiddleware returns the CORS policy for the public API.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
