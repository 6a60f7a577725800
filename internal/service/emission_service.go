package service

import (
	"fmt"
	"time"

	"github.com/ecotrip/backend-go/internal/emissions"
	"github.com/ecotrip/backend-go/internal/models"
	"github.com/ecotrip/backend-go/internal/repository"
)

// EmissionInput is one manually logged emission entry
type EmissionInput struct {
	TransportMode string             `json:"transportMode"`
	DistanceKm    float64            `json:"distanceKm"`
	Metadata      emissions.Metadata `json:"metadata"`

	// Car-specific detail
	Brand     string `json:"brand"`
	Fuel      string `json:"fuel"`
	Trips     int    `json:"trips"`
	ExtraLoad string `json:"extraLoad"`

	// Flight-specific detail
	Airline     string `json:"airline"`
	FlightClass string `json:"flightClass"`
}

// EmissionService logs manual emission entries and serves history and
// the per-user leaderboard
type EmissionService struct {
	repo *repository.EmissionRepository
	now  func() time.Time
}

// NewEmissionService creates a new emission service
func NewEmissionService(repo *repository.EmissionRepository) *EmissionService {
	return &EmissionService{repo: repo, now: time.Now}
}

// Log computes the emission for an entry and stores it
func (s *EmissionService) Log(userID string, in EmissionInput) (*models.EmissionRecord, error) {
	if in.TransportMode == "" {
		return nil, fmt.Errorf("%w: transportMode", ErrMissingField)
	}

	emissionKg, err := emissions.Estimate(in.TransportMode, in.DistanceKm, in.Metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rec := &models.EmissionRecord{
		UserID:         userID,
		TransportMode:  in.TransportMode,
		DistanceKm:     in.DistanceKm,
		EmissionKg:     emissionKg,
		Date:           s.now().UTC(),
		Brand:          in.Brand,
		Fuel:           in.Fuel,
		Trips:          in.Trips,
		ExtraLoad:      in.ExtraLoad,
		Flights:        in.Metadata.Flights,
		HoursPerFlight: in.Metadata.Hours,
		Airline:        in.Airline,
		FlightClass:    in.FlightClass,
	}

	if err := s.repo.Insert(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// History retrieves the caller's emission records, newest first
func (s *EmissionService) History(userID string) ([]models.EmissionRecord, error) {
	return s.repo.HistoryByUser(userID)
}

// Leaderboard returns per-user emission totals, highest first
func (s *EmissionService) Leaderboard() ([]models.LeaderboardEntry, error) {
	return s.repo.Leaderboard()
}
