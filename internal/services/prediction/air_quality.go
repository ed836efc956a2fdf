package prediction

import (
	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"
)

// Emission and filtering weights, index points per unit of coverage.
const (
	industrialSourceCoeff = 80.0
	buildingSourceCoeff   = 20.0
	trafficSourceCoeff    = 30.0

	treeSinkCoeff       = 30.0
	vegetationSinkCoeff = 15.0
	waterSinkCoeff      = 10.0
)

const (
	windDispersionCoeff = -3.0
	humidityNeutral     = 50.0
	humidityCoeff       = 0.2

	// Baseline urban pollution added to every index before clamping.
	baselineUrbanAQI = 20.0
	maxAQI           = 300.0

	lowTreeCoverage = 0.3
	stagnantWind    = 2.0
)

func categorizeAQI(aqi float64) (category, implications string) {
	switch {
	case aqi <= 50:
		return "Good", "Air quality is considered satisfactory"
	case aqi <= 100:
		return "Moderate", "Air quality is acceptable for most people"
	case aqi <= 150:
		return "Unhealthy for Sensitive Groups", "Members of sensitive groups may experience health effects"
	default:
		return "Unhealthy", "Everyone may begin to experience health effects"
	}
}

// PredictAirQuality balances pollution sources against natural sinks and
// weather dispersion, producing a 0-300 index with a category and
// recommendations.
func PredictAirQuality(cfg models.CityConfig, obs *models.Observation) models.AirQualityResult {
	pollutionSources := cfg.IndustrialBuildings*industrialSourceCoeff +
		cfg.BuildingDensity*buildingSourceCoeff +
		cfg.TrafficDensity*trafficSourceCoeff

	pollutionSinks := cfg.TreeCoverage*treeSinkCoeff +
		cfg.VegetationCoverage*vegetationSinkCoeff +
		cfg.WaterCoverage*waterSinkCoeff

	windSpeed := windSpeedFrom(obs)
	humidity := humidityFrom(obs)

	windDispersion := windSpeed * windDispersionCoeff
	humidityEffect := (humidity - humidityNeutral) * humidityCoeff

	baseAQI := pollutionSources - pollutionSinks + windDispersion + humidityEffect
	aqi := clamp(baseAQI+baselineUrbanAQI, 0, maxAQI)

	category, implications := categorizeAQI(aqi)

	recommendations := make([]string, 0, 4)
	if aqi > 100 {
		recommendations = append(recommendations,
			"Increase green coverage",
			"Reduce industrial emissions",
		)
	}
	if cfg.TreeCoverage < lowTreeCoverage {
		recommendations = append(recommendations, "Plant more trees for air filtration")
	}
	if windSpeed < stagnantWind {
		recommendations = append(recommendations, "Consider urban design to improve air circulation")
	}

	return models.AirQualityResult{
		AirQualityIndex:    round1(aqi),
		Category:           category,
		HealthImplications: implications,
		PollutionSources:   round1(pollutionSources),
		PollutionSinks:     round1(pollutionSinks),
		WindEffect:         round1(windDispersion),
		HumidityEffect:     round1(humidityEffect),
		Recommendations:    recommendations,
		WeatherConditions:  obs,
		Status:             models.StatusSuccess,
	}
}
