package classifier

import (
	"context"

	"github.com/ecotrip/backend-go/internal/models"
	"github.com/ecotrip/backend-go/internal/sensor"
)

// MockClient returns a fixed synthetic prediction without any network
// call. Used for offline development and demos
type MockClient struct{}

// NewMockClient creates a mock classifier client
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Predict returns the canned prediction regardless of window content
func (c *MockClient) Predict(_ context.Context, _ string, samples []models.CanonicalSample) (*models.Prediction, error) {
	return &models.Prediction{
		Mode:                  models.ModeCar,
		Confidence:            0.82,
		NeedsVerification:     false,
		Alternatives:          []string{models.ModeBus, models.ModeBike},
		ProcessingTimeMs:      3,
		SamplesProcessed:      len(samples),
		WindowDurationSeconds: sensor.WindowDurationSeconds,
	}, nil
}

// Health always reports healthy
func (c *MockClient) Health(_ context.Context) error {
	return nil
}
