package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecotrip/backend-go/internal/models"
)

func TestHaversineDistanceKnownPair(t *testing.T) {
	// Berlin to Paris, roughly 878 km
	d := HaversineDistance(52.52, 13.405, 48.8566, 2.3522)
	assert.InDelta(t, 878000, d, 5000)
}

func TestHaversineDistanceZeroForSamePoint(t *testing.T) {
	assert.InDelta(t, 0, HaversineDistance(52.52, 13.405, 52.52, 13.405), 1e-6)
}

func fix(lat, lon float64) models.CanonicalSample {
	return models.CanonicalSample{GPS: models.CanonicalGPS{Lat: &lat, Lon: &lon}}
}

func TestWindowPathMetersSumsLegs(t *testing.T) {
	samples := []models.CanonicalSample{
		fix(52.5200, 13.4050),
		fix(52.5210, 13.4050),
		fix(52.5220, 13.4050),
	}

	total := WindowPathMeters(samples)
	direct := HaversineDistance(52.5200, 13.4050, 52.5220, 13.4050)
	assert.InDelta(t, direct, total, 1.0)
}

func TestWindowPathMetersSkipsMissingCoordinates(t *testing.T) {
	samples := []models.CanonicalSample{
		fix(52.5200, 13.4050),
		{}, // no fix
		fix(52.5210, 13.4050),
	}

	total := WindowPathMeters(samples)
	assert.InDelta(t, HaversineDistance(52.5200, 13.4050, 52.5210, 13.4050), total, 0.5)
}

func TestWindowPathMetersEmptyWindow(t *testing.T) {
	assert.Zero(t, WindowPathMeters(nil))
	assert.Zero(t, WindowPathMeters([]models.CanonicalSample{{}}))
}
