package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrip/backend-go/internal/middleware"
	"github.com/ecotrip/backend-go/internal/service"
	"github.com/ecotrip/backend-go/pkg/response"
)

// TripHandler handles HTTP requests for the trip lifecycle
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

type startTripRequest struct {
	TransportMode string `json:"transportMode"`
}

// Start handles POST /api/v1/trips/start
func (h *TripHandler) Start(c *gin.Context) {
	var req startTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "User identity not resolved")
		return
	}

	trip, err := h.service.StartTrip(userID, req.TransportMode)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.OK(c, gin.H{
		"tripId":  trip.ID,
		"message": "Trip started successfully",
	})
}

type endTripRequest struct {
	TripID          string  `json:"tripId"`
	DistanceKm      float64 `json:"distanceKm"`
	DurationSeconds int64   `json:"durationSeconds"`
}

// End handles POST /api/v1/trips/end
func (h *TripHandler) End(c *gin.Context) {
	var req endTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "User identity not resolved")
		return
	}

	trip, err := h.service.EndTrip(userID, req.TripID, req.DistanceKm, req.DurationSeconds)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.OK(c, gin.H{
		"trip":    trip,
		"message": "Trip completed successfully",
	})
}

type cancelTripRequest struct {
	TripID string `json:"tripId"`
}

// Cancel handles POST /api/v1/trips/cancel
func (h *TripHandler) Cancel(c *gin.Context) {
	var req cancelTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "User identity not resolved")
		return
	}

	trip, err := h.service.CancelTrip(userID, req.TripID)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.OK(c, gin.H{"trip": trip})
}

// Get handles GET /api/v1/trips/:id
func (h *TripHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "User identity not resolved")
		return
	}

	trip, err := h.service.GetTrip(userID, c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}

	response.OK(c, gin.H{"trip": trip})
}

// List handles GET /api/v1/trips
func (h *TripHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "User identity not resolved")
		return
	}

	trips, err := h.service.ListTrips(userID)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.OK(c, gin.H{
		"trips": trips,
		"count": len(trips),
	})
}

// serviceError maps service-level errors onto HTTP statuses
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingField), errors.Is(err, service.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Error(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotInProgress):
		response.Error(c, http.StatusBadRequest, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
