package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"
)

type apiResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

// ClientOpenWeatherMap fetches current conditions from the OpenWeatherMap API.
type ClientOpenWeatherMap struct {
	APIKey string
	apiURL string
	client HTTPClient
	logger zerolog.Logger
}

// NewClientOpenWeatherMap constructs a new OpenWeatherMap client.
func NewClientOpenWeatherMap(apiKey, apiURL string,
	httpClient HTTPClient, logger zerolog.Logger,
) *ClientOpenWeatherMap {
	return &ClientOpenWeatherMap{APIKey: apiKey, apiURL: apiURL, client: httpClient, logger: logger}
}

// Fetch retrieves current conditions for a coordinate, with structured logging.
func (s *ClientOpenWeatherMap) Fetch(ctx context.Context, lat, lon float64) (models.Observation, error) {
	start := time.Now()
	url := fmt.Sprintf("%s/weather?lat=%g&lon=%g&appid=%s&units=metric", s.apiURL, lat, lon, s.APIKey)

	s.logger.Debug().
		Float64("lat", lat).
		Float64("lon", lon).
		Msg("starting OpenWeatherMap request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		s.logger.Error().
			Err(err).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("failed to create HTTP request")
		return models.Observation{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().
			Err(err).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("error sending HTTP request to OpenWeatherMap")
		return models.Observation{}, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Error().
				Err(cerr).
				Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error().
			Float64("lat", lat).
			Float64("lon", lon).
			Str("status", resp.Status).
			Msg("OpenWeatherMap API returned non-200 status")
		return models.Observation{}, fmt.Errorf("OpenWeatherAPI error: status %s", resp.Status)
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to decode OpenWeatherMap response")
		return models.Observation{}, err
	}

	data := models.Observation{
		Temperature: raw.Main.Temp,
		Humidity:    raw.Main.Humidity,
		WindSpeed:   raw.Wind.Speed,
		Pressure:    raw.Main.Pressure,
		Status:      models.SourceStatusReal,
	}

	duration := time.Since(start)
	s.logger.Info().
		Float64("lat", lat).
		Float64("lon", lon).
		Dur("duration_ms", duration).
		Msg("successfully fetched weather data")

	return data, nil
}
