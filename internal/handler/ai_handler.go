package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrip/backend-go/internal/classifier"
	"github.com/ecotrip/backend-go/internal/middleware"
	"github.com/ecotrip/backend-go/internal/models"
	"github.com/ecotrip/backend-go/internal/sensor"
	"github.com/ecotrip/backend-go/internal/service"
	"github.com/ecotrip/backend-go/pkg/response"
)

// AIHandler handles HTTP requests for window classification
type AIHandler struct {
	service *service.PredictionService
}

// NewAIHandler creates a new AI handler
func NewAIHandler(service *service.PredictionService) *AIHandler {
	return &AIHandler{service: service}
}

// Predict handles POST /api/v1/ai/predict
func (h *AIHandler) Predict(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The resolved identity wins over whatever the body claims
	if userID, ok := middleware.UserID(c); ok {
		req.UserID = userID
	}

	prediction, err := h.service.Predict(c.Request.Context(), &req)
	if err != nil {
		h.predictError(c, err)
		return
	}

	response.OK(c, gin.H{"prediction": prediction})
}

func (h *AIHandler) predictError(c *gin.Context, err error) {
	var vErr *sensor.ValidationError
	switch {
	case errors.As(err, &vErr):
		response.Error(c, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, classifier.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, "Invalid sensor data format")
	case errors.Is(err, classifier.ErrUnavailable):
		response.ErrorWithFallback(c, http.StatusServiceUnavailable, "AI service unavailable")
	default:
		response.ErrorWithFallback(c, http.StatusInternalServerError, "Prediction service error")
	}
}

// Health handles GET /api/v1/ai/health
func (h *AIHandler) Health(c *gin.Context) {
	if err := h.service.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
