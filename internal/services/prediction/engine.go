// Package prediction implements the formula-based environmental models:
// temperature, air quality, energy balance, and the composite score that
// blends them. The model functions are pure; Service wires them to the
// weather and satellite sources.
package prediction

import (
	"math"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"
)

// Data source labels reported on prediction results.
const (
	SourceOpenWeatherMap    = "openweathermap"
	SourceSatelliteEstimate = "nasa_viirs_estimated"
	SourceUserInput         = "user_input"
	SourceMockWeather       = "mock"

	PredictionModelLabel = "research_based_algorithms"
)

// Fallback conditions used when no observation is available at all.
const (
	defaultWindSpeed = 5.0
	defaultHumidity  = 60.0
)

const hoursPerDay = 24

func windSpeedFrom(obs *models.Observation) float64 {
	if obs != nil {
		return obs.WindSpeed
	}
	return defaultWindSpeed
}

func humidityFrom(obs *models.Observation) float64 {
	if obs != nil {
		return obs.Humidity
	}
	return defaultHumidity
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
