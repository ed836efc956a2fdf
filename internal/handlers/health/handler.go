package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "Environment Prediction API"
	serviceVersion = "2.0.0"

	statusConfigured    = "configured"
	statusNotConfigured = "not_configured"
)

// APIStatus reports the configuration state of each external provider.
type APIStatus struct {
	OpenWeatherMap string `json:"openweathermap"`
	NASAEarthdata  string `json:"nasa_earthdata"`
}

// Status is the /health response body.
type Status struct {
	Status       string    `json:"status"`
	Version      string    `json:"version"`
	Service      string    `json:"service"`
	ExternalAPIs APIStatus `json:"external_apis"`
	Capabilities []string  `json:"capabilities"`
}

// ProviderInfo describes one real-time data provider.
type ProviderInfo struct {
	Status          string   `json:"status"`
	Provides        []string `json:"provides"`
	UpdateFrequency string   `json:"update_frequency"`
	Coverage        string   `json:"coverage"`
	Satellites      []string `json:"satellites,omitempty"`
}

// RealTimeSources groups the supported providers by name.
type RealTimeSources struct {
	OpenWeatherMap ProviderInfo `json:"openweathermap"`
	NASAEarthdata  ProviderInfo `json:"nasa_earthdata"`
}

// SourcesInfo is the /data/sources response body.
type SourcesInfo struct {
	RealTimeSources RealTimeSources   `json:"real_time_sources"`
	DatasetsUsed    map[string]string `json:"datasets_used"`
}

type Handler struct {
	weatherConfigured   bool
	satelliteConfigured bool
}

func NewHandler(weatherConfigured, satelliteConfigured bool) *Handler {
	return &Handler{
		weatherConfigured:   weatherConfigured,
		satelliteConfigured: satelliteConfigured,
	}
}

// Check
// @Summary Health check
// @Description Reports service liveness, version and external API configuration
// @Tags health
// @Produce json
// @Success 200 {object} health.Status
// @Router /health [get]
func (h *Handler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, Status{
		Status:  "healthy",
		Version: serviceVersion,
		Service: serviceName,
		ExternalAPIs: APIStatus{
			OpenWeatherMap: configuredLabel(h.weatherConfigured),
			NASAEarthdata:  configuredLabel(h.satelliteConfigured),
		},
		Capabilities: []string{
			"temperature",
			"air_quality",
			"energy",
			"real_time_weather",
			"satellite_data",
		},
	})
}

// DataSources
// @Summary Available data sources
// @Description Describes the external providers and research datasets feeding the prediction models
// @Tags health
// @Produce json
// @Success 200 {object} health.SourcesInfo
// @Router /data/sources [get]
func (h *Handler) DataSources(c *gin.Context) {
	c.JSON(http.StatusOK, SourcesInfo{
		RealTimeSources: RealTimeSources{
			OpenWeatherMap: ProviderInfo{
				Status:          configuredLabel(h.weatherConfigured),
				Provides:        []string{"temperature", "humidity", "wind_speed", "pressure"},
				UpdateFrequency: "10 minutes",
				Coverage:        "global",
			},
			NASAEarthdata: ProviderInfo{
				Status:          configuredLabel(h.satelliteConfigured),
				Provides:        []string{"land_surface_temperature", "vegetation_index", "thermal_anomalies"},
				UpdateFrequency: "daily",
				Coverage:        "global",
				Satellites:      []string{"VIIRS", "MODIS", "Landsat"},
			},
		},
		DatasetsUsed: map[string]string{
			"urban_heat_island_research":  "Multiple scientific studies on UHI effects",
			"building_thermal_properties": "Engineering data on material heat absorption",
			"vegetation_cooling_effects":  "Research on evapotranspiration and shading",
			"renewable_energy_models":     "Weather-dependent energy production algorithms",
		},
	})
}

func configuredLabel(configured bool) string {
	if configured {
		return statusConfigured
	}
	return statusNotConfigured
}
