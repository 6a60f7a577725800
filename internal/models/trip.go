package models

import "time"

// Trip status values. Transitions are one-directional: a trip starts
// in-progress and ends in exactly one of the terminal states
const (
	TripStatusInProgress = "in-progress"
	TripStatusCompleted  = "completed"
	TripStatusCancelled  = "cancelled"
)

// Trip represents one journey owned by a single user
type Trip struct {
	ID            string     `json:"id" db:"id"`
	UserID        string     `json:"userId" db:"user_id"`
	TransportMode string     `json:"transportMode" db:"transport_mode"`
	Status        string     `json:"status" db:"status"`
	DistanceKm    float64    `json:"distanceKm" db:"distance_km"`
	DurationSec   int64      `json:"durationSec" db:"duration_sec"`
	EmissionKg    float64    `json:"emissionKg" db:"emission_kg"`
	StartTime     time.Time  `json:"startTime" db:"start_time"`
	EndTime       *time.Time `json:"endTime,omitempty" db:"end_time"`
}

// InProgress reports whether the trip can still be ended or cancelled
func (t *Trip) InProgress() bool {
	return t.Status == TripStatusInProgress
}
