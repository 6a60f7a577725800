package emissions

import (
	"fmt"
	"strings"
)

// Params is one trip's emission input. Each transport mode family has
// its own variant so the factor table is exhaustive at compile time
// instead of hiding behind string-keyed branching
type Params interface {
	// EmissionKg estimates the trip's CO2-equivalent emission
	EmissionKg() float64
}

// Default factors for the car formula
const (
	DefaultFuelEfficiency = 7.5  // litres per 100 km
	DefaultFuelFactor     = 2.31 // kg CO2e per litre
)

// CarParams estimates from fuel consumption over the distance driven
type CarParams struct {
	DistanceKm     float64
	FuelEfficiency float64 // litres per 100 km, 0 means default
	Factor         float64 // kg CO2e per litre, 0 means default
}

func (p CarParams) EmissionKg() float64 {
	eff := p.FuelEfficiency
	if eff == 0 {
		eff = DefaultFuelEfficiency
	}
	factor := p.Factor
	if factor == 0 {
		factor = DefaultFuelFactor
	}
	return (eff / 100) * p.DistanceKm * factor
}

// Default factors for the flight formula
const (
	DefaultAirlineFactor   = 0.09
	DefaultClassMultiplier = 1
)

// FlightParams estimates from flight count and hours rather than
// ground distance
type FlightParams struct {
	Flights         int
	Hours           float64
	AirlineFactor   float64 // 0 means default
	ClassMultiplier float64 // 0 means default
}

func (p FlightParams) EmissionKg() float64 {
	ef := p.AirlineFactor
	if ef == 0 {
		ef = DefaultAirlineFactor
	}
	mult := p.ClassMultiplier
	if mult == 0 {
		mult = DefaultClassMultiplier
	}
	return float64(p.Flights) * p.Hours * ef * mult * 1000
}

// FlatRateParams estimates with a flat per-km factor
type FlatRateParams struct {
	DistanceKm float64
	PerKm      float64 // kg CO2e per km
}

func (p FlatRateParams) EmissionKg() float64 {
	return p.DistanceKm * p.PerKm
}

// flatFactors holds the per-km factors for flat-rate modes. Modes not
// listed (walk, bike, unknown) emit nothing
var flatFactors = map[string]float64{
	"bus":   0.0001,
	"tram":  0.00007,
	"metro": 0.00006,
}

// Metadata carries the optional mode-specific inputs for the richer
// car and flight formulas
type Metadata struct {
	FuelEfficiency  float64 `json:"fuelEfficiency,omitempty"`
	Factor          float64 `json:"factor,omitempty"`
	Flights         int     `json:"flights,omitempty"`
	Hours           float64 `json:"hours,omitempty"`
	AirlineFactor   float64 `json:"airlineFactor,omitempty"`
	ClassMultiplier float64 `json:"classMultiplier,omitempty"`
}

// ForTrip builds the params variant for a transport mode. Negative
// distance is rejected so a malformed request cannot produce a
// negative emission
func ForTrip(transportMode string, distanceKm float64, meta Metadata) (Params, error) {
	if distanceKm < 0 {
		return nil, fmt.Errorf("distance must be non-negative, got %v", distanceKm)
	}

	switch strings.ToLower(transportMode) {
	case "car":
		return CarParams{
			DistanceKm:     distanceKm,
			FuelEfficiency: meta.FuelEfficiency,
			Factor:         meta.Factor,
		}, nil
	case "flight":
		return FlightParams{
			Flights:         meta.Flights,
			Hours:           meta.Hours,
			AirlineFactor:   meta.AirlineFactor,
			ClassMultiplier: meta.ClassMultiplier,
		}, nil
	default:
		return FlatRateParams{
			DistanceKm: distanceKm,
			PerKm:      flatFactors[strings.ToLower(transportMode)],
		}, nil
	}
}

// Estimate is the one-call convenience over ForTrip
func Estimate(transportMode string, distanceKm float64, meta Metadata) (float64, error) {
	params, err := ForTrip(transportMode, distanceKm, meta)
	if err != nil {
		return 0, err
	}
	return params.EmissionKg(), nil
}
