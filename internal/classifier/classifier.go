package classifier

import (
	"context"
	"errors"

	"github.com/ecotrip/backend-go/internal/models"
)

// Dispatch error taxonomy. Handlers translate these into the HTTP
// status and manual-selection fallback hint
var (
	// ErrUnavailable covers connection refused, unreachable hosts and
	// exceeded deadlines
	ErrUnavailable = errors.New("classifier service unavailable")
	// ErrInvalidInput means the remote rejected the payload shape
	ErrInvalidInput = errors.New("classifier rejected sensor data")
	// ErrInternal covers everything else, including malformed responses
	ErrInternal = errors.New("classifier internal error")
)

// Client dispatches canonical sensor windows to a transport-mode
// classification service. Implementations: HTTPClient for the live
// service, MockClient for offline development and demos. Which one is
// constructed is a startup decision, never an ambient runtime check
type Client interface {
	// Predict classifies one window. Each call is a single bounded
	// attempt; retry policy belongs to the caller
	Predict(ctx context.Context, tripID string, samples []models.CanonicalSample) (*models.Prediction, error)

	// Health probes the service's reachability under a short deadline
	Health(ctx context.Context) error
}
