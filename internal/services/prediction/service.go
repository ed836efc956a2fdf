package prediction

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"
)

type weatherSource interface {
	GetByCoords(ctx context.Context, lat, lon float64) (models.Observation, error)
}

type surfaceEstimator interface {
	Estimate(ctx context.Context, lat, lon float64) (models.SurfaceEstimate, error)
}

type metricsCollector interface {
	ObserveLatency(op string, d time.Duration)
	IncrementCounter(metric string, labels ...string)
}

// Service runs the prediction models against live source data. Source
// failures degrade to the fallback baseline; a panic inside a model becomes
// an error result for that model only, never a crash.
type Service struct {
	logger    zerolog.Logger
	weather   weatherSource
	satellite surfaceEstimator
	collector metricsCollector
	sources   models.DataSources
}

func NewService(
	logger zerolog.Logger,
	weather weatherSource,
	satellite surfaceEstimator,
	collector metricsCollector,
	sources models.DataSources,
) *Service {
	return &Service{
		logger:    logger,
		weather:   weather,
		satellite: satellite,
		collector: collector,
		sources:   sources,
	}
}

// Temperature predicts the surface temperature for one configuration.
func (s *Service) Temperature(ctx context.Context, cfg models.CityConfig) models.TemperatureResult {
	obs := s.observe(ctx, cfg)
	est := s.estimate(ctx, cfg)
	return s.temperature(ctx, cfg, obs, est)
}

// AirQuality predicts the air quality index for one configuration.
func (s *Service) AirQuality(ctx context.Context, cfg models.CityConfig) models.AirQualityResult {
	obs := s.observe(ctx, cfg)
	return s.airQuality(ctx, cfg, obs)
}

// Energy predicts the energy balance for one configuration.
func (s *Service) Energy(ctx context.Context, cfg models.CityConfig) models.EnergyResult {
	obs := s.observe(ctx, cfg)
	return s.energy(ctx, cfg, obs)
}

// Complete runs all three models plus the composite score. The weather
// observation is fetched once and shared, so the models agree on conditions
// within a single assessment.
func (s *Service) Complete(ctx context.Context, cfg models.CityConfig) models.Assessment {
	start := time.Now()

	obs := s.observe(ctx, cfg)
	est := s.estimate(ctx, cfg)

	temp := s.temperature(ctx, cfg, obs, est)
	air := s.airQuality(ctx, cfg, obs)
	energy := s.energy(ctx, cfg, obs)

	scores, recommendations := Score(temp, air, energy)

	s.collector.ObserveLatency("complete", time.Since(start))
	s.collector.IncrementCounter("complete", models.StatusSuccess)

	return models.Assessment{
		Temperature:     temp,
		AirQuality:      air,
		Energy:          energy,
		Scores:          scores,
		Recommendations: recommendations,
		DataSources:     s.sources,
		Status:          models.StatusSuccess,
	}
}

// Sources reports which providers feed the assessments.
func (s *Service) Sources() models.DataSources {
	return s.sources
}

func (s *Service) temperature(
	ctx context.Context,
	cfg models.CityConfig,
	obs *models.Observation,
	est *models.SurfaceEstimate,
) (result models.TemperatureResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Ctx(ctx).Interface("panic", r).Msg("temperature model panicked")
			result = models.TemperatureResult{
				Status: models.StatusError,
				Error:  fmt.Sprintf("temperature model: %v", r),
			}
		}
		s.collector.ObserveLatency("temperature", time.Since(start))
		s.collector.IncrementCounter("temperature", result.Status)
	}()

	if err := cfg.Validate(); err != nil {
		s.logger.Warn().Ctx(ctx).Err(err).Msg("rejected temperature prediction input")
		return models.TemperatureResult{Status: models.StatusError, Error: err.Error()}
	}

	return PredictTemperature(cfg, obs, est)
}

func (s *Service) airQuality(
	ctx context.Context,
	cfg models.CityConfig,
	obs *models.Observation,
) (result models.AirQualityResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Ctx(ctx).Interface("panic", r).Msg("air quality model panicked")
			result = models.AirQualityResult{
				Status: models.StatusError,
				Error:  fmt.Sprintf("air quality model: %v", r),
			}
		}
		s.collector.ObserveLatency("air_quality", time.Since(start))
		s.collector.IncrementCounter("air_quality", result.Status)
	}()

	if err := cfg.Validate(); err != nil {
		s.logger.Warn().Ctx(ctx).Err(err).Msg("rejected air quality prediction input")
		return models.AirQualityResult{Status: models.StatusError, Error: err.Error()}
	}

	return PredictAirQuality(cfg, obs)
}

func (s *Service) energy(
	ctx context.Context,
	cfg models.CityConfig,
	obs *models.Observation,
) (result models.EnergyResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Ctx(ctx).Interface("panic", r).Msg("energy model panicked")
			result = models.EnergyResult{
				Status: models.StatusError,
				Error:  fmt.Sprintf("energy model: %v", r),
			}
		}
		s.collector.ObserveLatency("energy", time.Since(start))
		s.collector.IncrementCounter("energy", result.Status)
	}()

	if err := cfg.Validate(); err != nil {
		s.logger.Warn().Ctx(ctx).Err(err).Msg("rejected energy prediction input")
		return models.EnergyResult{Status: models.StatusError, Error: err.Error()}
	}

	return PredictEnergy(cfg, obs)
}

func (s *Service) observe(ctx context.Context, cfg models.CityConfig) *models.Observation {
	obs, err := s.weather.GetByCoords(ctx, cfg.Latitude, cfg.Longitude)
	if err != nil {
		s.logger.Warn().
			Ctx(ctx).
			Err(err).
			Msg("weather unavailable, models fall back to baseline conditions")
		s.collector.IncrementCounter("weather_fetch", "unavailable")
		return nil
	}
	s.collector.IncrementCounter("weather_fetch", obs.Status)
	return &obs
}

func (s *Service) estimate(ctx context.Context, cfg models.CityConfig) *models.SurfaceEstimate {
	est, err := s.satellite.Estimate(ctx, cfg.Latitude, cfg.Longitude)
	if err != nil {
		s.logger.Warn().
			Ctx(ctx).
			Err(err).
			Msg("surface estimate unavailable")
		return nil
	}
	return &est
}
