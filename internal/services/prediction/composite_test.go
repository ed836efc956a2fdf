package prediction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"
	"github.com/Nazarious-ucu/environment-prediction-api/internal/services/prediction"
)

func successfulResults() (models.TemperatureResult, models.AirQualityResult, models.EnergyResult) {
	temp := models.TemperatureResult{
		PredictedTemperature: 21.5,
		UHIIntensity:         1.0,
		Status:               models.StatusSuccess,
	}
	air := models.AirQualityResult{
		AirQualityIndex: 20.0,
		Recommendations: []string{"Plant more trees for air filtration"},
		Status:          models.StatusSuccess,
	}
	energy := models.EnergyResult{
		SustainabilityScore: 80.0,
		RenewablePercentage: 70.0,
		Status:              models.StatusSuccess,
	}
	return temp, air, energy
}

func TestScore_PerfectCity(t *testing.T) {
	temp, air, energy := successfulResults()
	air.AirQualityIndex = 0
	energy.SustainabilityScore = 100
	energy.RenewablePercentage = 100

	scores, recommendations := prediction.Score(temp, air, energy)

	assert.InDelta(t, 100.0, scores.TemperatureScore, 0.001)
	assert.InDelta(t, 100.0, scores.AirQualityScore, 0.001)
	assert.InDelta(t, 100.0, scores.EnergyScore, 0.001)
	assert.InDelta(t, 100.0, scores.OverallScore, 0.001)
	assert.Empty(t, recommendations)
	assert.NotNil(t, recommendations)
}

func TestScore_AnyFailureZeroesEverything(t *testing.T) {
	temp, air, energy := successfulResults()

	tests := []struct {
		name string
		fail func(*models.TemperatureResult, *models.AirQualityResult, *models.EnergyResult)
	}{
		{"TemperatureFailed", func(tr *models.TemperatureResult, _ *models.AirQualityResult, _ *models.EnergyResult) {
			tr.Status = models.StatusError
		}},
		{"AirQualityFailed", func(_ *models.TemperatureResult, ar *models.AirQualityResult, _ *models.EnergyResult) {
			ar.Status = models.StatusError
		}},
		{"EnergyFailed", func(_ *models.TemperatureResult, _ *models.AirQualityResult, er *models.EnergyResult) {
			er.Status = models.StatusError
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr, ar, er := temp, air, energy
			tc.fail(&tr, &ar, &er)

			scores, recommendations := prediction.Score(tr, ar, er)

			assert.Equal(t, models.Scores{}, scores)
			assert.Equal(t,
				[]string{"Unable to generate recommendations due to prediction errors"},
				recommendations,
			)
		})
	}
}

func TestScore_UHIPenalty(t *testing.T) {
	temp, air, energy := successfulResults()
	temp.UHIIntensity = 4.5

	scores, recommendations := prediction.Score(temp, air, energy)

	// temp 100, air 70, energy 80 weighted = 82.5, minus (4.5-2)*10 = 25
	assert.InDelta(t, 57.5, scores.OverallScore, 0.001)
	assert.Contains(t, recommendations, "Implement comprehensive urban cooling strategy")
}

func TestScore_TemperatureTiers(t *testing.T) {
	air := models.AirQualityResult{AirQualityIndex: 10, Status: models.StatusSuccess}
	energy := models.EnergyResult{RenewablePercentage: 70, SustainabilityScore: 60, Status: models.StatusSuccess}

	tests := []struct {
		name      string
		predicted float64
		want      string
		absent    string
	}{
		{
			"CriticalHeat", 27.5,
			"Critical: Add trees and green infrastructure to reduce urban heat",
			"Add more vegetation and cooling features",
		},
		{
			"ModerateHeat", 26.0,
			"Add more vegetation and cooling features",
			"Critical: Add trees and green infrastructure to reduce urban heat",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			temp := models.TemperatureResult{PredictedTemperature: tc.predicted, Status: models.StatusSuccess}
			_, recommendations := prediction.Score(temp, air, energy)
			assert.Contains(t, recommendations, tc.want)
			assert.NotContains(t, recommendations, tc.absent)
		})
	}

	t.Run("ComfortableHeat", func(t *testing.T) {
		temp := models.TemperatureResult{PredictedTemperature: 24.0, Status: models.StatusSuccess}
		_, recommendations := prediction.Score(temp, air, energy)
		assert.Empty(t, recommendations)
	})
}

func TestScore_InheritsAirRecommendationsAboveModerate(t *testing.T) {
	temp, air, energy := successfulResults()
	air.AirQualityIndex = 120
	air.Recommendations = []string{
		"Increase green coverage",
		"Reduce industrial emissions",
		"Plant more trees for air filtration",
	}

	_, recommendations := prediction.Score(temp, air, energy)

	assert.Contains(t, recommendations, "Increase green coverage")
	assert.Contains(t, recommendations, "Plant more trees for air filtration")
	assert.NotContains(t, recommendations,
		"Critical: Reduce pollution sources and improve air circulation")
}

func TestScore_CriticalAirSkipsInheritedList(t *testing.T) {
	temp, air, energy := successfulResults()
	air.AirQualityIndex = 180
	air.Recommendations = []string{"Increase green coverage"}

	_, recommendations := prediction.Score(temp, air, energy)

	assert.Contains(t, recommendations,
		"Critical: Reduce pollution sources and improve air circulation")
	assert.NotContains(t, recommendations, "Increase green coverage")
}

func TestScore_RenewableTiers(t *testing.T) {
	temp, air, _ := successfulResults()

	tests := []struct {
		name      string
		renewable float64
		want      string
	}{
		{"VeryLow", 20.0, "Significantly increase renewable energy infrastructure"},
		{"Low", 45.0, "Expand solar and wind energy systems"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			energy := models.EnergyResult{
				RenewablePercentage: tc.renewable,
				SustainabilityScore: 50,
				Status:              models.StatusSuccess,
			}
			_, recommendations := prediction.Score(temp, air, energy)
			assert.Contains(t, recommendations, tc.want)
		})
	}
}

func TestScore_DeduplicatesPreservingOrder(t *testing.T) {
	temp, air, energy := successfulResults()
	air.AirQualityIndex = 120
	air.Recommendations = []string{
		"Increase green coverage",
		"Increase green coverage",
		"Reduce industrial emissions",
	}
	energy.RenewablePercentage = 20

	_, recommendations := prediction.Score(temp, air, energy)

	assert.Equal(t, []string{
		"Increase green coverage",
		"Reduce industrial emissions",
		"Significantly increase renewable energy infrastructure",
	}, recommendations)
}

func TestScore_FullPipelineReference(t *testing.T) {
	cfg := referenceConfig()

	temp := prediction.PredictTemperature(cfg, nil, nil)
	air := prediction.PredictAirQuality(cfg, nil)
	energy := prediction.PredictEnergy(cfg, nil)

	require.True(t, temp.IsSuccess())
	require.True(t, air.IsSuccess())
	require.True(t, energy.IsSuccess())

	scores, recommendations := prediction.Score(temp, air, energy)

	assert.InDelta(t, 99.2, scores.TemperatureScore, 0.001)
	assert.InDelta(t, 70.0, scores.AirQualityScore, 0.001)
	assert.InDelta(t, 10.8, scores.EnergyScore, 0.001)
	// weighted 58.04 minus UHI penalty 1.0
	assert.InDelta(t, 57.0, scores.OverallScore, 0.001)
	assert.Equal(t,
		[]string{"Significantly increase renewable energy infrastructure"},
		recommendations,
	)
}
