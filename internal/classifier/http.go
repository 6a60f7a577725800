package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ecotrip/backend-go/internal/models"
	"github.com/ecotrip/backend-go/internal/sensor"
)

// HTTPClient talks to the live classification service over JSON/HTTP
type HTTPClient struct {
	baseURL        string
	client         *http.Client
	predictTimeout time.Duration
	healthTimeout  time.Duration
}

// NewHTTPClient creates a live classifier client. predictTimeout bounds
// full-window batch requests, healthTimeout bounds the health probe
func NewHTTPClient(baseURL string, predictTimeout, healthTimeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:        baseURL,
		client:         &http.Client{},
		predictTimeout: predictTimeout,
		healthTimeout:  healthTimeout,
	}
}

type predictRequest struct {
	TripID  string                   `json:"trip_id"`
	Samples []models.CanonicalSample `json:"samples"`
}

type predictResponse struct {
	PredictedMode    string   `json:"predicted_mode"`
	Confidence       float64  `json:"confidence"`
	NeedsUserCheck   bool     `json:"needs_user_check"`
	AlternativeModes []string `json:"alternative_modes"`
	ProcessingTimeMs int64    `json:"processing_time_ms"`
}

// Predict sends one canonical window to the remote classifier and maps
// its response into the normalized Prediction shape
func (c *HTTPClient) Predict(ctx context.Context, tripID string, samples []models.CanonicalSample) (*models.Prediction, error) {
	ctx, cancel := context.WithTimeout(ctx, c.predictTimeout)
	defer cancel()

	body, err := json.Marshal(predictRequest{TripID: tripID, Samples: samples})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		// Connection refused, unreachable host, exceeded deadline:
		// all surface as unavailable so the caller can fall back to
		// manual mode selection
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, fmt.Errorf("%w: remote returned status %d", ErrInvalidInput, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: remote returned status %d", ErrInternal, resp.StatusCode)
	}

	var remote predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInternal, err)
	}

	alternatives := remote.AlternativeModes
	if alternatives == nil {
		alternatives = []string{}
	}

	return &models.Prediction{
		Mode:                  remote.PredictedMode,
		Confidence:            remote.Confidence,
		NeedsVerification:     remote.NeedsUserCheck,
		Alternatives:          alternatives,
		ProcessingTimeMs:      remote.ProcessingTimeMs,
		SamplesProcessed:      len(samples),
		WindowDurationSeconds: sensor.WindowDurationSeconds,
	}, nil
}

// Health probes the remote classifier's health endpoint
func (c *HTTPClient) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("%w: failed to build request: %v", ErrInternal, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health endpoint returned status %d", ErrUnavailable, resp.StatusCode)
	}

	return nil
}
