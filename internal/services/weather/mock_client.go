package weather

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"
)

const (
	mockTemperature = 22.0
	mockHumidity    = 60.0
	mockWindSpeed   = 5.0
	mockPressure    = 1013.0
)

// ClientMock serves fixed synthetic conditions when no OpenWeatherMap
// credential is configured. Responses are deterministic so predictions
// stay reproducible.
type ClientMock struct {
	logger zerolog.Logger
	rng    *rand.Rand
}

func NewClientMock(logger zerolog.Logger) *ClientMock {
	return &ClientMock{logger: logger}
}

// NewClientMockWithJitter adds seeded gaussian noise around the synthetic
// baseline. Meant for exploratory runs only, never for tests.
func NewClientMockWithJitter(logger zerolog.Logger, seed int64) *ClientMock {
	return &ClientMock{logger: logger, rng: rand.New(rand.NewSource(seed))}
}

func (s *ClientMock) Fetch(ctx context.Context, lat, lon float64) (models.Observation, error) {
	data := models.Observation{
		Temperature: mockTemperature,
		Humidity:    mockHumidity,
		WindSpeed:   mockWindSpeed,
		Pressure:    mockPressure,
		Status:      models.SourceStatusMock,
	}
	if s.rng != nil {
		data.Temperature += s.rng.NormFloat64() * 3
		data.Humidity += s.rng.NormFloat64() * 10
		data.WindSpeed += s.rng.NormFloat64() * 2
		data.Pressure += s.rng.NormFloat64() * 10
	}
	s.logger.Debug().
		Ctx(ctx).
		Float64("lat", lat).
		Float64("lon", lon).
		Bool("jitter", s.rng != nil).
		Msg("serving synthetic weather data")
	return data, nil
}
