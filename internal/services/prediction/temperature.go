package prediction

import (
	"math"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"
)

// Heat island coefficients, degrees per unit of coverage. Sourced from
// urban climate studies; cooling terms enter the sum negated.
const (
	concreteHeatCoeff      = 3.5
	buildingHeatCoeff      = 2.0
	industrialHeatCoeff    = 4.0
	treeCoolingCoeff       = 2.0
	vegetationCoolingCoeff = 1.0
	waterCoolingCoeff      = 3.0
)

const (
	windCoolingCoeff     = 0.3
	windCoolingThreshold = 2.0
	dailyAmplitude       = 2.0

	confidenceRealData = 0.90
	confidenceFallback = 0.75
)

// PredictTemperature runs the urban heat model. The baseline prefers a real
// weather observation, then the satellite estimate, then the configured base
// temperature.
func PredictTemperature(cfg models.CityConfig, obs *models.Observation, est *models.SurfaceEstimate) models.TemperatureResult {
	var baseTemp float64
	var dataSource string
	switch {
	case obs != nil && obs.Status == models.SourceStatusReal:
		baseTemp = obs.Temperature
		dataSource = SourceOpenWeatherMap
	case est != nil:
		baseTemp = est.LandSurfaceTemperature
		dataSource = SourceSatelliteEstimate
	case cfg.BaseTemperature != nil:
		baseTemp = *cfg.BaseTemperature
		dataSource = SourceUserInput
	default:
		baseTemp = models.DefaultBaseTemperature
		dataSource = SourceUserInput
	}

	concreteHeating := cfg.ConcreteCoverage * concreteHeatCoeff
	buildingHeating := cfg.BuildingDensity * buildingHeatCoeff
	industrialHeating := cfg.IndustrialBuildings * industrialHeatCoeff
	treeCooling := -cfg.TreeCoverage * treeCoolingCoeff
	vegetationCooling := -cfg.VegetationCoverage * vegetationCoolingCoeff
	waterCooling := -cfg.WaterCoverage * waterCoolingCoeff

	uhiEffect := concreteHeating + buildingHeating + industrialHeating +
		treeCooling + vegetationCooling + waterCooling

	windSpeed := windSpeedFrom(obs)
	windCooling := 0.0
	if windSpeed > windCoolingThreshold {
		windCooling = -windCoolingCoeff * windSpeed
	}

	dailyVariation := math.Sin(2*math.Pi*float64(cfg.HourOfDay)/hoursPerDay) * dailyAmplitude

	predicted := baseTemp + uhiEffect + windCooling + dailyVariation

	confidence := confidenceFallback
	if dataSource == SourceOpenWeatherMap {
		confidence = confidenceRealData
	}

	return models.TemperatureResult{
		PredictedTemperature: round2(predicted),
		BaseTemperature:      round2(baseTemp),
		UHIIntensity:         round2(uhiEffect),
		DataSource:           dataSource,
		Confidence:           confidence,
		Factors: &models.TemperatureFactors{
			BaseTemperature:   baseTemp,
			UHIEffect:         uhiEffect,
			ConcreteHeating:   concreteHeating,
			BuildingHeating:   buildingHeating,
			IndustrialHeating: industrialHeating,
			TreeCooling:       treeCooling,
			VegetationCooling: vegetationCooling,
			WaterCooling:      waterCooling,
			WindCooling:       windCooling,
			DailyVariation:    dailyVariation,
		},
		WeatherConditions: obs,
		SatelliteData:     est,
		Status:            models.StatusSuccess,
	}
}
