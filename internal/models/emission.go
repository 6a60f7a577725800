package models

import "time"

// EmissionRecord is one manually logged emission entry. Car and flight
// entries carry extra metadata used by their richer formulas
type EmissionRecord struct {
	ID            int64     `json:"id" db:"id"`
	UserID        string    `json:"userId" db:"user_id"`
	TransportMode string    `json:"transportMode" db:"transport_mode"`
	DistanceKm    float64   `json:"distanceKm" db:"distance_km"`
	EmissionKg    float64   `json:"emissionKg" db:"emission_kg"`
	Date          time.Time `json:"date" db:"date"`

	// Car-specific
	Brand     string `json:"brand,omitempty" db:"brand"`
	Fuel      string `json:"fuel,omitempty" db:"fuel"`
	Trips     int    `json:"trips,omitempty" db:"trips"`
	ExtraLoad string `json:"extraLoad,omitempty" db:"extra_load"`

	// Flight-specific
	Flights        int     `json:"flights,omitempty" db:"flights"`
	HoursPerFlight float64 `json:"hoursPerFlight,omitempty" db:"hours_per_flight"`
	Airline        string  `json:"airline,omitempty" db:"airline"`
	FlightClass    string  `json:"flightClass,omitempty" db:"flight_class"`
}

// LeaderboardEntry is one row of the per-user emission total ranking
type LeaderboardEntry struct {
	UserID          string  `json:"userId" db:"user_id"`
	TotalEmissionKg float64 `json:"totalEmission" db:"total_emission"`
}
