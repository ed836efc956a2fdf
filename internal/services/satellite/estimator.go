package satellite

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"
)

const (
	sourceLabel   = "VIIRS/Suomi NPP"
	dateLayout    = "2006-01-02"
	estConfidence = 0.75

	daysPerYear = 365
)

// Estimator approximates land surface temperature from latitude and season.
// It stands in for real VIIRS ingestion, which needs EarthData credentials
// and a proper granule pipeline.
type Estimator struct {
	logger zerolog.Logger
	now    func() time.Time
}

func NewEstimator(logger zerolog.Logger) *Estimator {
	return &Estimator{logger: logger, now: time.Now}
}

// NewEstimatorAt pins the clock, so estimates are reproducible in tests.
func NewEstimatorAt(logger zerolog.Logger, now func() time.Time) *Estimator {
	return &Estimator{logger: logger, now: now}
}

// Estimate returns a modeled surface temperature for the coordinate. Warmer
// toward the equator, modulated by a seasonal sine over the year.
func (e *Estimator) Estimate(ctx context.Context, lat, lon float64) (models.SurfaceEstimate, error) {
	date := e.now()

	seasonalFactor := math.Sin(2*math.Pi*float64(date.YearDay())/daysPerYear) * 10
	latitudeFactor := (60 - math.Abs(lat)) / 60 * 15

	baseLST := 15 + latitudeFactor + seasonalFactor

	e.logger.Debug().
		Ctx(ctx).
		Float64("lat", lat).
		Float64("lon", lon).
		Float64("lst", baseLST).
		Msg("estimated land surface temperature")

	return models.SurfaceEstimate{
		LandSurfaceTemperature: baseLST,
		SatelliteSource:        sourceLabel,
		AcquisitionDate:        date.Format(dateLayout),
		Confidence:             estConfidence,
		Status:                 models.StatusEstimated,
	}, nil
}
