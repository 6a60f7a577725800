package models

import "time"

// RawWindowRecord is one appended entry of the raw-payload log: the
// full submitted window plus correlation metadata, kept for dataset
// accumulation
type RawWindowRecord struct {
	ID             int64     `json:"id" db:"id"`
	TripID         string    `json:"tripId" db:"trip_id"`
	UserID         string    `json:"userId" db:"user_id"`
	SampleCount    int       `json:"sampleCount" db:"sample_count"`
	DistanceMeters float64   `json:"distanceMeters" db:"distance_meters"`
	Payload        []byte    `json:"-" db:"payload"`
	ReceivedAt     time.Time `json:"receivedAt" db:"created_at"`
}
