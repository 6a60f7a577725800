package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrip/backend-go/internal/emissions"
	"github.com/ecotrip/backend-go/internal/models"
	"github.com/ecotrip/backend-go/internal/repository"
)

// TripService owns the trip state machine: start, end, cancel, query.
// Every operation on an existing trip goes through the same ownership
// check before it reads or mutates anything
type TripService struct {
	repo *repository.TripRepository
	now  func() time.Time
}

// NewTripService creates a new trip service
func NewTripService(repo *repository.TripRepository) *TripService {
	return &TripService{repo: repo, now: time.Now}
}

// StartTrip creates a new in-progress trip owned by the caller
func (s *TripService) StartTrip(userID, transportMode string) (*models.Trip, error) {
	if transportMode == "" {
		return nil, fmt.Errorf("%w: transportMode", ErrMissingField)
	}

	trip := &models.Trip{
		ID:            uuid.NewString(),
		UserID:        userID,
		TransportMode: transportMode,
		Status:        models.TripStatusInProgress,
		StartTime:     s.now().UTC(),
	}

	if err := s.repo.Create(trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// EndTrip completes an in-progress trip, recording distance and
// duration and estimating its emission. Emission accuracy is
// best-effort: a failed estimate leaves emissionKg at 0, completion
// itself is never aborted for it
func (s *TripService) EndTrip(userID, tripID string, distanceKm float64, durationSec int64) (*models.Trip, error) {
	trip, err := s.ownedTrip(userID, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.InProgress() {
		return nil, ErrNotInProgress
	}

	emissionKg, err := emissions.Estimate(trip.TransportMode, distanceKm, emissions.Metadata{})
	if err != nil {
		log.Printf("trip %s: emission estimate failed, recording 0: %v", trip.ID, err)
		emissionKg = 0
	}

	endTime := s.now().UTC()
	trip.DistanceKm = distanceKm
	trip.DurationSec = durationSec
	trip.EmissionKg = emissionKg
	trip.Status = models.TripStatusCompleted
	trip.EndTime = &endTime

	if err := s.repo.Update(trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// CancelTrip moves an in-progress trip to the cancelled terminal state
func (s *TripService) CancelTrip(userID, tripID string) (*models.Trip, error) {
	trip, err := s.ownedTrip(userID, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.InProgress() {
		return nil, ErrNotInProgress
	}

	endTime := s.now().UTC()
	trip.Status = models.TripStatusCancelled
	trip.EndTime = &endTime

	if err := s.repo.Update(trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// GetTrip retrieves a single trip, enforcing ownership
func (s *TripService) GetTrip(userID, tripID string) (*models.Trip, error) {
	return s.ownedTrip(userID, tripID)
}

// ListTrips retrieves the caller's trips, most recent start first
func (s *TripService) ListTrips(userID string) ([]models.Trip, error) {
	return s.repo.FindByUser(userID)
}

// ownedTrip is the single authorization predicate applied before any
// read or mutation of an existing trip
func (s *TripService) ownedTrip(userID, tripID string) (*models.Trip, error) {
	if tripID == "" {
		return nil, fmt.Errorf("%w: tripId", ErrMissingField)
	}

	trip, err := s.repo.FindByID(tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, ErrNotFound
	}
	if trip.UserID != userID {
		return nil, ErrForbidden
	}
	return trip, nil
}
