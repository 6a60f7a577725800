package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecotrip/backend-go/internal/config"
	"github.com/ecotrip/backend-go/internal/handler"
	"github.com/ecotrip/backend-go/internal/middleware"
)

// Handlers bundles the handlers the router wires up
type Handlers struct {
	AI       *handler.AIHandler
	Trip     *handler.TripHandler
	Feedback *handler.FeedbackHandler
	Emission *handler.EmissionHandler
}

// SetupRouter builds the gin engine with all routes and middleware
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(300, time.Minute))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Process liveness, independent of the classifier
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "EcoTrip backend is running",
		})
	})

	auth := middleware.Auth(cfg.JWTSecret)
	api := r.Group("/api/v1")
	{
		ai := api.Group("/ai")
		{
			ai.POST("/predict", auth, h.AI.Predict)
			ai.GET("/health", h.AI.Health)
			ai.POST("/feedback", auth, h.Feedback.Submit)
		}

		trips := api.Group("/trips", auth)
		{
			trips.POST("/start", h.Trip.Start)
			trips.POST("/end", h.Trip.End)
			trips.POST("/cancel", h.Trip.Cancel)
			trips.GET("/:id", h.Trip.Get)
			trips.GET("", h.Trip.List)
		}

		emissions := api.Group("/emissions", auth)
		{
			emissions.POST("/log", h.Emission.Log)
			emissions.GET("/history", h.Emission.History)
			emissions.GET("/leaderboard", h.Emission.Leaderboard)
		}
	}

	return r
}
