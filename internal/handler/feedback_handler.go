package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrip/backend-go/internal/service"
	"github.com/ecotrip/backend-go/pkg/response"
)

// FeedbackHandler handles HTTP requests for prediction feedback
type FeedbackHandler struct {
	service *service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(service *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Submit handles POST /api/v1/ai/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var in service.FeedbackInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.service.Record(in); err != nil {
		serviceError(c, err)
		return
	}

	response.OK(c, gin.H{})
}
