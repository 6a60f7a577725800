package service

import (
	"fmt"
	"time"

	"github.com/ecotrip/backend-go/internal/models"
	"github.com/ecotrip/backend-go/internal/repository"
)

// FeedbackInput is one user-supplied prediction correction
type FeedbackInput struct {
	TripID        string     `json:"tripId"`
	PredictedMode string     `json:"predictedMode"`
	ActualMode    string     `json:"actualMode"`
	Confidence    float64    `json:"confidence"`
	Timestamp     *time.Time `json:"timestamp"`
}

// FeedbackService appends prediction corrections for later model
// retraining. Pure append: there is no read or update path on the
// request side
type FeedbackService struct {
	repo *repository.FeedbackRepository
	now  func() time.Time
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(repo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo, now: time.Now}
}

// Record appends one feedback record. The corrected flag is derived
// from the predicted/actual pair; the timestamp defaults to now
func (s *FeedbackService) Record(in FeedbackInput) (*models.FeedbackRecord, error) {
	if in.TripID == "" {
		return nil, fmt.Errorf("%w: tripId", ErrMissingField)
	}
	if in.ActualMode == "" {
		return nil, fmt.Errorf("%w: actualMode", ErrMissingField)
	}

	timestamp := s.now().UTC()
	if in.Timestamp != nil {
		timestamp = in.Timestamp.UTC()
	}

	rec := &models.FeedbackRecord{
		TripID:        in.TripID,
		PredictedMode: in.PredictedMode,
		ActualMode:    in.ActualMode,
		Confidence:    in.Confidence,
		Corrected:     in.PredictedMode != in.ActualMode,
		Timestamp:     timestamp,
	}

	if err := s.repo.Append(rec); err != nil {
		return nil, err
	}
	return rec, nil
}
