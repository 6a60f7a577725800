package sensor

import "github.com/ecotrip/backend-go/internal/models"

// Transform maps device-native samples into the canonical shape the
// classifier expects. The mapping is total and order-preserving:
// rotation alpha/beta/gamma becomes x/y/z, absent speed/altitude
// default to 0, and lat/lon pass through untouched — a missing
// coordinate is a data-quality signal for downstream consumers, never
// silently zeroed here
func Transform(samples []models.SensorSample) []models.CanonicalSample {
	out := make([]models.CanonicalSample, len(samples))
	for i, s := range samples {
		c := models.CanonicalSample{Timestamp: s.Timestamp}

		if s.Accelerometer != nil {
			c.Accelerometer = *s.Accelerometer
		}

		if s.Gyroscope != nil {
			c.Gyroscope = models.Rotation{
				X: s.Gyroscope.Alpha,
				Y: s.Gyroscope.Beta,
				Z: s.Gyroscope.Gamma,
			}
		}

		if s.GPS != nil {
			c.GPS.Lat = s.GPS.Lat
			c.GPS.Lon = s.GPS.Lon
			if s.GPS.Speed != nil {
				c.GPS.Speed = *s.GPS.Speed
			}
			if s.GPS.Altitude != nil {
				c.GPS.Altitude = *s.GPS.Altitude
			}
		}

		out[i] = c
	}
	return out
}
