package prediction

import (
	"math"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"
)

const (
	comfortOptimum = 21.5
	tempScoreSlope = 8.0
	airScoreSlope  = 1.5

	uhiPenaltyThreshold = 2.0
	uhiPenaltyRate      = 10.0

	tempScoreWeight   = 0.3
	airScoreWeight    = 0.35
	energyScoreWeight = 0.35
)

const fallbackRecommendation = "Unable to generate recommendations due to prediction errors"

// Score aggregates the three model results into composite 0-100 scores plus
// deduplicated recommendations. When any model failed, every score is zero
// and the single fallback recommendation is returned.
func Score(temp models.TemperatureResult, air models.AirQualityResult, energy models.EnergyResult) (models.Scores, []string) {
	if !temp.IsSuccess() || !air.IsSuccess() || !energy.IsSuccess() {
		return models.Scores{}, []string{fallbackRecommendation}
	}

	tempScore := math.Max(0, 100-math.Abs(temp.PredictedTemperature-comfortOptimum)*tempScoreSlope)
	airScore := math.Max(0, 100-air.AirQualityIndex*airScoreSlope)
	energyScore := energy.SustainabilityScore

	uhiPenalty := math.Max(0, temp.UHIIntensity-uhiPenaltyThreshold) * uhiPenaltyRate

	overall := clamp(
		tempScore*tempScoreWeight+airScore*airScoreWeight+energyScore*energyScoreWeight-uhiPenalty,
		0, 100,
	)

	recommendations := make([]string, 0, 8)
	switch {
	case temp.PredictedTemperature > 27:
		recommendations = append(recommendations,
			"Critical: Add trees and green infrastructure to reduce urban heat")
	case temp.PredictedTemperature > 25:
		recommendations = append(recommendations,
			"Add more vegetation and cooling features")
	}
	switch {
	case air.AirQualityIndex > 150:
		recommendations = append(recommendations,
			"Critical: Reduce pollution sources and improve air circulation")
	case air.AirQualityIndex > 100:
		recommendations = append(recommendations, air.Recommendations...)
	}
	switch {
	case energy.RenewablePercentage < 30:
		recommendations = append(recommendations,
			"Significantly increase renewable energy infrastructure")
	case energy.RenewablePercentage < 60:
		recommendations = append(recommendations,
			"Expand solar and wind energy systems")
	}
	if temp.UHIIntensity > 4 {
		recommendations = append(recommendations,
			"Implement comprehensive urban cooling strategy")
	}

	return models.Scores{
		OverallScore:     round1(overall),
		TemperatureScore: round1(tempScore),
		AirQualityScore:  round1(airScore),
		EnergyScore:      round1(energyScore),
	}, dedupe(recommendations)
}

// dedupe drops repeats while keeping first-seen order, so identical inputs
// always serialize identically.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
