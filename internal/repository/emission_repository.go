package repository

import (
	"database/sql"
	"fmt"

	"github.com/ecotrip/backend-go/internal/models"
)

// EmissionRepository handles database operations for manually logged
// emission records
type EmissionRepository struct {
	db *sql.DB
}

// NewEmissionRepository creates a new emission repository
func NewEmissionRepository(db *sql.DB) *EmissionRepository {
	return &EmissionRepository{db: db}
}

// Insert stores one emission record
func (r *EmissionRepository) Insert(rec *models.EmissionRecord) error {
	query := `INSERT INTO emissions
		(user_id, transport_mode, distance_km, emission_kg, date,
		 brand, fuel, trips, extra_load,
		 flights, hours_per_flight, airline, flight_class)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.Exec(query,
		rec.UserID, rec.TransportMode, rec.DistanceKm, rec.EmissionKg, rec.Date,
		rec.Brand, rec.Fuel, rec.Trips, rec.ExtraLoad,
		rec.Flights, rec.HoursPerFlight, rec.Airline, rec.FlightClass,
	)
	if err != nil {
		return fmt.Errorf("failed to insert emission record: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

// HistoryByUser retrieves a user's emission records, newest first
func (r *EmissionRepository) HistoryByUser(userID string) ([]models.EmissionRecord, error) {
	query := `SELECT id, user_id, transport_mode, distance_km, emission_kg, date,
		brand, fuel, trips, extra_load,
		flights, hours_per_flight, airline, flight_class
		FROM emissions WHERE user_id = ? ORDER BY date DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query emission history: %w", err)
	}
	defer rows.Close()

	var records []models.EmissionRecord
	for rows.Next() {
		var rec models.EmissionRecord
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.TransportMode, &rec.DistanceKm, &rec.EmissionKg, &rec.Date,
			&rec.Brand, &rec.Fuel, &rec.Trips, &rec.ExtraLoad,
			&rec.Flights, &rec.HoursPerFlight, &rec.Airline, &rec.FlightClass,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emission record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Leaderboard returns per-user emission totals, highest first
func (r *EmissionRepository) Leaderboard() ([]models.LeaderboardEntry, error) {
	query := `SELECT user_id, SUM(emission_kg) AS total_emission
		FROM emissions GROUP BY user_id ORDER BY total_emission DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.TotalEmissionKg); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
