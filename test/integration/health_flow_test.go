//go:build integration

package integration

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getPath(t *testing.T, path string) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(
		context.Background(),
		http.MethodGet,
		testServerURL+path,
		nil,
	)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer func(body io.ReadCloser) {
		assert.NoError(t, body.Close())
	}(resp.Body)

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed reading response body")

	return string(bodyBytes)
}

func TestHealthFlow(t *testing.T) {
	resp := getPath(t, "/health")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{
		"status": "healthy",
		"version": "2.0.0",
		"service": "Environment Prediction API",
		"external_apis": {
			"openweathermap": "configured",
			"nasa_earthdata": "not_configured"
		},
		"capabilities": ["temperature", "air_quality", "energy", "real_time_weather", "satellite_data"]
	}`, readBody(t, resp))
}

func TestDataSourcesFlow(t *testing.T) {
	resp := getPath(t, "/data/sources")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, `"satellites":["VIIRS","MODIS","Landsat"]`)
	assert.Contains(t, body, `"urban_heat_island_research"`)
	assert.Contains(t, body, `"openweathermap":{"status":"configured"`)
}

func TestMetricsFlow(t *testing.T) {
	// Warm up the instrumented chain so the request counters exist.
	warmup := getPath(t, "/health")
	assert.NoError(t, warmup.Body.Close())

	resp := getPath(t, "/metrics")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "go_goroutines")
	assert.Contains(t, body, "environment_prediction_http_requests_total")
}
