// Package logsink persists every incoming sensor window for future
// model refinement. All writes are best-effort: they run off the
// request path and their failures are logged, never surfaced to the
// submitting client.
package logsink

import (
	"github.com/ecotrip/backend-go/internal/models"
)

// Sink is the append-only write capability for ingestion logging.
// The two writes are independent concerns: the raw-payload append
// keeps the submission at full fidelity, the per-sample store feeds
// training-set assembly
type Sink interface {
	LogRawWindow(rec *models.RawWindowRecord) error
	LogSamples(tripID, userID string, samples []models.CanonicalSample) error
}
