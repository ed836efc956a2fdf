//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"
)

func TestScenariosFlow(t *testing.T) {
	resp := getPath(t, "/scenarios")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var presets []models.Scenario
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &presets))

	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"downtown_core", "green_district", "industrial_zone", "suburban_sprawl"}, names)
}

func TestScenariosFlow_Single(t *testing.T) {
	resp := getPath(t, "/scenarios/downtown_core")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var preset models.Scenario
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &preset))

	assert.Equal(t, "downtown_core", preset.Name)
	assert.InDelta(t, 0.7, preset.Config["concrete_coverage"], 0.001)
}

func TestScenariosFlow_Unknown(t *testing.T) {
	resp := getPath(t, "/scenarios/atlantis")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error": "scenario not found: atlantis"}`, readBody(t, resp))
}

// Presets round-trip into the prediction endpoints unchanged.
func TestScenariosFlow_PresetPredicts(t *testing.T) {
	resp := getPath(t, "/scenarios/green_district")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var preset models.Scenario
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &preset))

	body, err := json.Marshal(preset.Config)
	require.NoError(t, err)

	predictResp := postPredict(t, "/predict/complete", string(body))

	assert.Equal(t, http.StatusOK, predictResp.StatusCode)

	var assessment models.Assessment
	decodeBody(t, predictResp, &assessment)

	assert.Equal(t, models.StatusSuccess, assessment.Status)
	assert.Equal(t, models.StatusSuccess, assessment.Temperature.Status)
}
