package predict

import (
	"context"
	"net/http"
	"time"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"

	"github.com/gin-gonic/gin"
)

const timeoutDuration = 10 * time.Second

type predictionService interface {
	Temperature(ctx context.Context, cfg models.CityConfig) models.TemperatureResult
	AirQuality(ctx context.Context, cfg models.CityConfig) models.AirQualityResult
	Energy(ctx context.Context, cfg models.CityConfig) models.EnergyResult
	Complete(ctx context.Context, cfg models.CityConfig) models.Assessment
}

type Handler struct {
	service predictionService
}

func NewHandler(svc predictionService) *Handler {
	return &Handler{service: svc}
}

// Temperature
// @Summary Predict urban temperature
// @Description Runs the urban heat island model for the described area, blending live weather and satellite estimates when available
// @Tags predict
// @Accept json
// @Produce json
// @Param config body models.CityRequest true "Urban area configuration"
// @Success 200 {object} models.TemperatureResult
// @Failure 400
// @Failure 422 {object} models.TemperatureResult
// @Router /predict/temperature [post]
func (h *Handler) Temperature(c *gin.Context) {
	cfg, ok := bindCityConfig(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	result := h.service.Temperature(ctx, cfg)
	if !result.IsSuccess() {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AirQuality
// @Summary Predict urban air quality
// @Description Estimates the air quality index from pollution sources, sinks and wind dispersion
// @Tags predict
// @Accept json
// @Produce json
// @Param config body models.CityRequest true "Urban area configuration"
// @Success 200 {object} models.AirQualityResult
// @Failure 400
// @Failure 422 {object} models.AirQualityResult
// @Router /predict/air_quality [post]
func (h *Handler) AirQuality(c *gin.Context) {
	cfg, ok := bindCityConfig(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	result := h.service.AirQuality(ctx, cfg)
	if !result.IsSuccess() {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Energy
// @Summary Predict urban energy balance
// @Description Estimates renewable production against consumption with time-of-day and weather effects
// @Tags predict
// @Accept json
// @Produce json
// @Param config body models.CityRequest true "Urban area configuration"
// @Success 200 {object} models.EnergyResult
// @Failure 400
// @Failure 422 {object} models.EnergyResult
// @Router /predict/energy [post]
func (h *Handler) Energy(c *gin.Context) {
	cfg, ok := bindCityConfig(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	result := h.service.Energy(ctx, cfg)
	if !result.IsSuccess() {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Complete
// @Summary Complete environmental assessment
// @Description Runs all three models and aggregates them into composite scores with recommendations. Always returns 200; per-model failures are reported inside the assessment
// @Tags predict
// @Accept json
// @Produce json
// @Param config body models.CityRequest true "Urban area configuration"
// @Success 200 {object} models.Assessment
// @Failure 400
// @Router /predict/complete [post]
func (h *Handler) Complete(c *gin.Context) {
	cfg, ok := bindCityConfig(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	c.JSON(http.StatusOK, h.service.Complete(ctx, cfg))
}

// bindCityConfig rejects malformed bodies with 400; absent fields fall back
// to the documented defaults.
func bindCityConfig(c *gin.Context) (models.CityConfig, bool) {
	var req models.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return models.CityConfig{}, false
	}
	return req.ToConfig(), true
}
