package repository

import (
	"database/sql"
	"fmt"

	"github.com/ecotrip/backend-go/internal/models"
)

// FeedbackRepository handles database operations for prediction
// feedback. Append-only: records are never updated or deleted
type FeedbackRepository struct {
	db *sql.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *sql.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Append stores one feedback record
func (r *FeedbackRepository) Append(rec *models.FeedbackRecord) error {
	query := `INSERT INTO feedback
		(trip_id, predicted_mode, actual_mode, confidence, corrected, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`

	res, err := r.db.Exec(query,
		rec.TripID, rec.PredictedMode, rec.ActualMode,
		rec.Confidence, rec.Corrected, rec.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append feedback: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

// FindByTrip retrieves all feedback records for a trip, oldest first
func (r *FeedbackRepository) FindByTrip(tripID string) ([]models.FeedbackRecord, error) {
	query := `SELECT id, trip_id, predicted_mode, actual_mode, confidence, corrected, timestamp
		FROM feedback WHERE trip_id = ? ORDER BY timestamp`

	rows, err := r.db.Query(query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var records []models.FeedbackRecord
	for rows.Next() {
		var rec models.FeedbackRecord
		err := rows.Scan(
			&rec.ID, &rec.TripID, &rec.PredictedMode, &rec.ActualMode,
			&rec.Confidence, &rec.Corrected, &rec.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
