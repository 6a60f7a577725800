package models

import "time"

// FeedbackRecord is a user-supplied correction of a prediction,
// appended for later model retraining. Write-once
type FeedbackRecord struct {
	ID            int64     `json:"id" db:"id"`
	TripID        string    `json:"tripId" db:"trip_id"`
	PredictedMode string    `json:"predictedMode" db:"predicted_mode"`
	ActualMode    string    `json:"actualMode" db:"actual_mode"`
	Confidence    float64   `json:"confidence" db:"confidence"`
	Corrected     bool      `json:"corrected" db:"corrected"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
}
