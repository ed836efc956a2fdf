package prediction

import (
	"math"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"
)

// Production potentials and per-building-type consumption, in model energy
// units per unit of coverage.
const (
	solarPotentialPerCoverage = 100.0
	windPotentialPerDensity   = 150.0

	buildingConsumption    = 80.0
	industrialConsumption  = 200.0
	residentialConsumption = 60.0
)

const (
	solarDayStart = 6
	solarDayEnd   = 18

	windCutInSpeed = 3.0
	windRatedSpeed = 12.0
)

// Consumption multiplier bands. Hours 17 and 23 intentionally fall through
// to the night rate.
const (
	eveningPeakMultiplier = 1.3
	morningPeakMultiplier = 1.2
	daytimeMultiplier     = 1.1
	nightMultiplier       = 0.8
)

const (
	renewableWeight  = 0.6
	surplusWeight    = 0.3
	efficiencyWeight = 0.1
	surplusBonus     = 50.0
)

func solarEfficiencyAt(hour int) float64 {
	if hour < solarDayStart || hour > solarDayEnd {
		return 0
	}
	return math.Max(0, math.Sin(math.Pi*float64(hour-solarDayStart)/12))
}

// windEfficiencyAt approximates a turbine power curve: zero below the cut-in
// speed, cubic growth up to the rated speed, capped at 1.
func windEfficiencyAt(windSpeed float64) float64 {
	if windSpeed < windCutInSpeed {
		return 0
	}
	ratio := windSpeed / windRatedSpeed
	return math.Min(1, ratio*ratio*ratio)
}

func consumptionMultiplierAt(hour int) float64 {
	switch {
	case hour >= 18 && hour <= 22:
		return eveningPeakMultiplier
	case hour >= 6 && hour <= 9:
		return morningPeakMultiplier
	case hour >= 10 && hour <= 16:
		return daytimeMultiplier
	default:
		return nightMultiplier
	}
}

// PredictEnergy weighs renewable production against time-of-day consumption
// and derives a 0-100 sustainability score.
func PredictEnergy(cfg models.CityConfig, obs *models.Observation) models.EnergyResult {
	windSpeed := windSpeedFrom(obs)

	solarEfficiency := solarEfficiencyAt(cfg.HourOfDay)
	windEfficiency := windEfficiencyAt(windSpeed)

	solarProduction := cfg.SolarPanelCoverage * solarPotentialPerCoverage * solarEfficiency
	windProduction := cfg.WindTurbineDensity * windPotentialPerDensity * windEfficiency
	totalProduction := solarProduction + windProduction

	baseConsumption := cfg.BuildingDensity*buildingConsumption +
		cfg.IndustrialBuildings*industrialConsumption +
		cfg.ResidentialBuildings*residentialConsumption

	multiplier := consumptionMultiplierAt(cfg.HourOfDay)
	totalConsumption := baseConsumption * multiplier

	energyBalance := totalProduction - totalConsumption

	totalDemand := math.Abs(totalConsumption)
	renewablePercentage := 0.0
	if totalDemand > 0 {
		renewablePercentage = totalProduction / totalDemand * 100
	}

	surplusTerm := 0.0
	if energyBalance >= 0 {
		surplusTerm = surplusBonus
	}
	efficiencyTerm := 100 - math.Abs(energyBalance)/math.Max(1, totalDemand)*100

	sustainability := clamp(
		renewablePercentage*renewableWeight+
			surplusTerm*surplusWeight+
			efficiencyTerm*efficiencyWeight,
		0, 100,
	)

	return models.EnergyResult{
		EnergyBalance:         round1(energyBalance),
		TotalProduction:       round1(totalProduction),
		SolarProduction:       round1(solarProduction),
		WindProduction:        round1(windProduction),
		TotalConsumption:      round1(totalConsumption),
		RenewablePercentage:   round1(renewablePercentage),
		SustainabilityScore:   round1(sustainability),
		SolarEfficiency:       round1(solarEfficiency * 100),
		WindEfficiency:        round1(windEfficiency * 100),
		ConsumptionMultiplier: multiplier,
		WeatherConditions:     obs,
		Status:                models.StatusSuccess,
	}
}
