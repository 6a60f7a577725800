package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a single schema migration step
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered list of schema steps. Append-only: never
// edit an applied step, add a new version instead
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_trips",
		SQL: `
			CREATE TABLE IF NOT EXISTS trips (
				id             TEXT PRIMARY KEY,
				user_id        TEXT NOT NULL,
				transport_mode TEXT NOT NULL,
				status         TEXT NOT NULL DEFAULT 'in-progress',
				distance_km    REAL NOT NULL DEFAULT 0,
				duration_sec   INTEGER NOT NULL DEFAULT 0,
				emission_kg    REAL NOT NULL DEFAULT 0,
				start_time     TIMESTAMP NOT NULL,
				end_time       TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_trips_user_start
				ON trips(user_id, start_time DESC);
		`,
	},
	{
		Version: 2,
		Name:    "create_sensor_payloads",
		SQL: `
			CREATE TABLE IF NOT EXISTS sensor_payloads (
				id              INTEGER PRIMARY KEY AUTOINCREMENT,
				trip_id         TEXT NOT NULL,
				user_id         TEXT NOT NULL DEFAULT '',
				sample_count    INTEGER NOT NULL,
				distance_meters REAL NOT NULL DEFAULT 0,
				payload         TEXT NOT NULL,
				created_at      TIMESTAMP NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_sensor_payloads_trip
				ON sensor_payloads(trip_id);
		`,
	},
	{
		Version: 3,
		Name:    "create_sensor_samples",
		SQL: `
			CREATE TABLE IF NOT EXISTS sensor_samples (
				id           INTEGER PRIMARY KEY AUTOINCREMENT,
				trip_id      TEXT NOT NULL,
				user_id      TEXT NOT NULL DEFAULT '',
				accel_x      REAL NOT NULL,
				accel_y      REAL NOT NULL,
				accel_z      REAL NOT NULL,
				rot_x        REAL NOT NULL,
				rot_y        REAL NOT NULL,
				rot_z        REAL NOT NULL,
				gps_lat      REAL,
				gps_lon      REAL,
				gps_speed    REAL NOT NULL DEFAULT 0,
				gps_altitude REAL NOT NULL DEFAULT 0,
				timestamp    INTEGER NOT NULL DEFAULT 0,
				created_at   TIMESTAMP NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_sensor_samples_trip
				ON sensor_samples(trip_id);
		`,
	},
	{
		Version: 4,
		Name:    "create_feedback",
		SQL: `
			CREATE TABLE IF NOT EXISTS feedback (
				id             INTEGER PRIMARY KEY AUTOINCREMENT,
				trip_id        TEXT NOT NULL,
				predicted_mode TEXT NOT NULL DEFAULT '',
				actual_mode    TEXT NOT NULL,
				confidence     REAL NOT NULL DEFAULT 0,
				corrected      INTEGER NOT NULL,
				timestamp      TIMESTAMP NOT NULL
			);
		`,
	},
	{
		Version: 5,
		Name:    "create_emissions",
		SQL: `
			CREATE TABLE IF NOT EXISTS emissions (
				id               INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id          TEXT NOT NULL,
				transport_mode   TEXT NOT NULL,
				distance_km      REAL NOT NULL DEFAULT 0,
				emission_kg      REAL NOT NULL DEFAULT 0,
				date             TIMESTAMP NOT NULL,
				brand            TEXT NOT NULL DEFAULT '',
				fuel             TEXT NOT NULL DEFAULT '',
				trips            INTEGER NOT NULL DEFAULT 0,
				extra_load       TEXT NOT NULL DEFAULT '',
				flights          INTEGER NOT NULL DEFAULT 0,
				hours_per_flight REAL NOT NULL DEFAULT 0,
				airline          TEXT NOT NULL DEFAULT '',
				flight_class     TEXT NOT NULL DEFAULT ''
			);
			CREATE INDEX IF NOT EXISTS idx_emissions_user
				ON emissions(user_id);
		`,
	},
}

// Migrate applies all pending migrations in version order
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}

		if _, err := tx.Exec(
			"INSERT INTO migrations (version, name) VALUES (?, ?)",
			m.Version, m.Name,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}
