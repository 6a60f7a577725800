package repository

import (
	"database/sql"
	"fmt"

	"github.com/ecotrip/backend-go/internal/models"
)

// TripRepository handles database operations for trips
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create inserts a new trip
func (r *TripRepository) Create(trip *models.Trip) error {
	query := `INSERT INTO trips (id, user_id, transport_mode, status,
		distance_km, duration_sec, emission_kg, start_time, end_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		trip.ID, trip.UserID, trip.TransportMode, trip.Status,
		trip.DistanceKm, trip.DurationSec, trip.EmissionKg,
		trip.StartTime, trip.EndTime,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

// FindByID retrieves a single trip by id. Returns (nil, nil) when the
// trip does not exist
func (r *TripRepository) FindByID(id string) (*models.Trip, error) {
	query := `SELECT id, user_id, transport_mode, status,
		distance_km, duration_sec, emission_kg, start_time, end_time
		FROM trips WHERE id = ?`

	var t models.Trip
	err := r.db.QueryRow(query, id).Scan(
		&t.ID, &t.UserID, &t.TransportMode, &t.Status,
		&t.DistanceKm, &t.DurationSec, &t.EmissionKg,
		&t.StartTime, &t.EndTime,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query trip: %w", err)
	}
	return &t, nil
}

// FindByUser retrieves all trips for a user, most recent start first
func (r *TripRepository) FindByUser(userID string) ([]models.Trip, error) {
	query := `SELECT id, user_id, transport_mode, status,
		distance_km, duration_sec, emission_kg, start_time, end_time
		FROM trips WHERE user_id = ? ORDER BY start_time DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		err := rows.Scan(
			&t.ID, &t.UserID, &t.TransportMode, &t.Status,
			&t.DistanceKm, &t.DurationSec, &t.EmissionKg,
			&t.StartTime, &t.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}

	return trips, rows.Err()
}

// Update writes back a trip's mutable fields
func (r *TripRepository) Update(trip *models.Trip) error {
	query := `UPDATE trips SET status = ?, distance_km = ?,
		duration_sec = ?, emission_kg = ?, end_time = ?
		WHERE id = ?`

	_, err := r.db.Exec(query,
		trip.Status, trip.DistanceKm, trip.DurationSec,
		trip.EmissionKg, trip.EndTime, trip.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	return nil
}
