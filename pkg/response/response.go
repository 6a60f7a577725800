package response

import "github.com/gin-gonic/gin"

// FallbackManualSelection tells the client to offer manual transport
// mode selection when automated classification is unavailable
const FallbackManualSelection = "manual_selection"

// ErrorBody is the standard failure envelope
type ErrorBody struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Fallback string `json:"fallback,omitempty"`
}

// OK sends a 200 response with success:true merged into the payload
func OK(c *gin.Context, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(200, body)
}

// Error sends a failure envelope with the given status
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Message: message})
}

// ErrorWithFallback sends a failure envelope carrying the manual
// selection hint
func ErrorWithFallback(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Message: message, Fallback: FallbackManualSelection})
}
