package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ecotrip/backend-go/internal/models"
)

// SensorLogRepository handles database operations for the ingestion
// logs: the raw-payload append log and the per-sample training store
type SensorLogRepository struct {
	db *sql.DB
}

// NewSensorLogRepository creates a new sensor log repository
func NewSensorLogRepository(db *sql.DB) *SensorLogRepository {
	return &SensorLogRepository{db: db}
}

// LogRawWindow appends one raw window submission at full fidelity
func (r *SensorLogRepository) LogRawWindow(rec *models.RawWindowRecord) error {
	query := `INSERT INTO sensor_payloads
		(trip_id, user_id, sample_count, distance_meters, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	receivedAt := rec.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(query,
		rec.TripID, rec.UserID, rec.SampleCount,
		rec.DistanceMeters, string(rec.Payload), receivedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append raw window: %w", err)
	}
	return nil
}

// LogSamples stores one canonical sample row per window sample, keyed
// by trip and user for later training-set assembly. All rows for one
// window go in a single transaction
func (r *SensorLogRepository) LogSamples(tripID, userID string, samples []models.CanonicalSample) error {
	if len(samples) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO sensor_samples
		(trip_id, user_id, accel_x, accel_y, accel_z,
		 rot_x, rot_y, rot_z, gps_lat, gps_lon,
		 gps_speed, gps_altitude, timestamp, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare sample insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, s := range samples {
		_, err := stmt.Exec(
			tripID, userID,
			s.Accelerometer.X, s.Accelerometer.Y, s.Accelerometer.Z,
			s.Gyroscope.X, s.Gyroscope.Y, s.Gyroscope.Z,
			s.GPS.Lat, s.GPS.Lon,
			s.GPS.Speed, s.GPS.Altitude,
			s.Timestamp, now,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert sample: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit samples: %w", err)
	}
	return nil
}

// CountSamples returns the number of stored samples for a trip
func (r *SensorLogRepository) CountSamples(tripID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM sensor_samples WHERE trip_id = ?", tripID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count samples: %w", err)
	}
	return count, nil
}
