package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/ecotrip/backend-go/internal/models"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle math
const EarthRadiusMeters = 6371000.0

// HaversineDistance calculates the great-circle distance between two
// points in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// WindowPathMeters sums the great-circle distance along a window's GPS
// fixes. Samples without coordinates are skipped; the estimate is a
// data-quality signal attached to the ingestion log, not a substitute
// for the distance the client reports at trip end
func WindowPathMeters(samples []models.CanonicalSample) float64 {
	var total float64
	var haveLast bool
	var lastLat, lastLon float64

	for _, s := range samples {
		if s.GPS.Lat == nil || s.GPS.Lon == nil {
			continue
		}
		lat, lon := *s.GPS.Lat, *s.GPS.Lon
		if haveLast {
			total += HaversineDistance(lastLat, lastLon, lat, lon)
		}
		lastLat, lastLon = lat, lon
		haveLast = true
	}

	return total
}
