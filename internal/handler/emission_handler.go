package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrip/backend-go/internal/middleware"
	"github.com/ecotrip/backend-go/internal/service"
	"github.com/ecotrip/backend-go/pkg/response"
)

// EmissionHandler handles HTTP requests for manual emission logging
type EmissionHandler struct {
	service *service.EmissionService
}

// NewEmissionHandler creates a new emission handler
func NewEmissionHandler(service *service.EmissionService) *EmissionHandler {
	return &EmissionHandler{service: service}
}

// Log handles POST /api/v1/emissions/log
func (h *EmissionHandler) Log(c *gin.Context) {
	var in service.EmissionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "User identity not resolved")
		return
	}

	rec, err := h.service.Log(userID, in)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.OK(c, gin.H{
		"record":  rec,
		"message": "Emission log saved",
	})
}

// History handles GET /api/v1/emissions/history
func (h *EmissionHandler) History(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "User identity not resolved")
		return
	}

	records, err := h.service.History(userID)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.OK(c, gin.H{"records": records})
}

// Leaderboard handles GET /api/v1/emissions/leaderboard
func (h *EmissionHandler) Leaderboard(c *gin.Context) {
	leaderboard, err := h.service.Leaderboard()
	if err != nil {
		serviceError(c, err)
		return
	}

	response.OK(c, gin.H{"leaderboard": leaderboard})
}
