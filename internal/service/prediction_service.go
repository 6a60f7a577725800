package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/ecotrip/backend-go/internal/classifier"
	"github.com/ecotrip/backend-go/internal/logsink"
	"github.com/ecotrip/backend-go/internal/models"
	"github.com/ecotrip/backend-go/internal/sensor"
	"github.com/ecotrip/backend-go/internal/spatial"
)

// PredictionService runs the window ingestion pipeline: validate the
// submitted window, transform it into the canonical shape, dispatch it
// to the classifier, and hand the raw and canonical records to the
// ingestion sink off the response path
type PredictionService struct {
	classifier classifier.Client
	sink       *logsink.AsyncSink
}

// NewPredictionService creates a new prediction service. sink may be
// nil, in which case ingestion logging is disabled
func NewPredictionService(client classifier.Client, sink *logsink.AsyncSink) *PredictionService {
	return &PredictionService{classifier: client, sink: sink}
}

// Predict classifies one submitted window. The ingestion log writes
// happen regardless of whether classification succeeds, and never
// block or fail the response
func (s *PredictionService) Predict(ctx context.Context, req *models.PredictRequest) (*models.Prediction, error) {
	if err := sensor.ValidateWindow(req); err != nil {
		return nil, err
	}

	canonical := sensor.Transform(req.SensorDataArray)
	s.logWindow(req, canonical)

	return s.classifier.Predict(ctx, req.TripID, canonical)
}

// Health reports the classifier's reachability
func (s *PredictionService) Health(ctx context.Context) error {
	return s.classifier.Health(ctx)
}

func (s *PredictionService) logWindow(req *models.PredictRequest, canonical []models.CanonicalSample) {
	if s.sink == nil {
		return
	}

	payload, err := json.Marshal(req)
	if err != nil {
		log.Printf("failed to encode raw window for trip %s: %v", req.TripID, err)
		return
	}

	s.sink.Submit(logsink.Job{
		Raw: models.RawWindowRecord{
			TripID:         req.TripID,
			UserID:         req.UserID,
			SampleCount:    len(req.SensorDataArray),
			DistanceMeters: spatial.WindowPathMeters(canonical),
			Payload:        payload,
			ReceivedAt:     time.Now().UTC(),
		},
		Samples: canonical,
	})
}
