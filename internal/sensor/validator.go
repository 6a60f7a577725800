package sensor

import (
	"fmt"

	"github.com/ecotrip/backend-go/internal/models"
)

// Window geometry: 60 seconds of readings at 10 Hz
const (
	WindowSize            = 600
	WindowDurationSeconds = 60
)

// ValidationError reports which part of a submitted window was missing
// or malformed
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateWindow checks a submitted window payload before any transform
// or remote call. The sensor sub-object check is a representative check
// on the first sample only; per-sample completeness is the device's
// responsibility
func ValidateWindow(req *models.PredictRequest) error {
	if req.TripID == "" {
		return &ValidationError{
			Field:   "tripId",
			Message: "tripId is required",
		}
	}

	if len(req.SensorDataArray) != WindowSize {
		return &ValidationError{
			Field: "sensorDataArray",
			Message: fmt.Sprintf("sensorDataArray must contain exactly %d samples, got %d",
				WindowSize, len(req.SensorDataArray)),
		}
	}

	first := req.SensorDataArray[0]
	if first.Accelerometer == nil {
		return &ValidationError{
			Field:   "accelerometer",
			Message: "missing required sensor data: accelerometer",
		}
	}
	if first.Gyroscope == nil {
		return &ValidationError{
			Field:   "gyroscope",
			Message: "missing required sensor data: gyroscope",
		}
	}
	if first.GPS == nil {
		return &ValidationError{
			Field:   "gps",
			Message: "missing required sensor data: gps",
		}
	}

	return nil
}
