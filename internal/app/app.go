package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Nazarious-ucu/environment-prediction-api/docs"
	"github.com/Nazarious-ucu/environment-prediction-api/internal/config"
	"github.com/Nazarious-ucu/environment-prediction-api/internal/handlers/health"
	"github.com/Nazarious-ucu/environment-prediction-api/internal/handlers/middleware"
	"github.com/Nazarious-ucu/environment-prediction-api/internal/handlers/predict"
	scenarioHandler "github.com/Nazarious-ucu/environment-prediction-api/internal/handlers/scenarios"
	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"
	loggerT "github.com/Nazarious-ucu/environment-prediction-api/internal/services/logger"
	metricsSvc "github.com/Nazarious-ucu/environment-prediction-api/internal/services/metrics"
	"github.com/Nazarious-ucu/environment-prediction-api/internal/services/prediction"
	"github.com/Nazarious-ucu/environment-prediction-api/internal/services/satellite"
	scenarioSvc "github.com/Nazarious-ucu/environment-prediction-api/internal/services/scenarios"
	serviceWeather "github.com/Nazarious-ucu/environment-prediction-api/internal/services/weather"
	fLogger "github.com/Nazarious-ucu/environment-prediction-api/pkg/logger"
)

// ServiceContainer holds initialized dependencies for the HTTP server.
type ServiceContainer struct {
	PredictionService *prediction.Service
	ScenarioService   *scenarioSvc.Service

	Router     *gin.Engine
	Srv        *http.Server
	fileLogger *zap.Logger
}

// App ties together config, logger, and metrics for startup/shutdown.
type App struct {
	cfg config.Config
	l   zerolog.Logger
	m   *metricsSvc.Metrics
}

// New prepares a new App with given config, zerolog logger, and metrics.
func New(cfg config.Config, logger zerolog.Logger, met *metricsSvc.Metrics) *App {
	return &App{
		cfg: cfg,
		l:   logger,
		m:   met,
	}
}

// Start initializes services, mounts routes, and blocks until ctx is done.
func (a *App) Start(ctx context.Context) error {
	srvContainer, err := a.init()
	if err != nil {
		a.l.Error().Err(err).Msg("failed to initialize application")
		return err
	}

	a.l.Info().
		Str("address", a.cfg.ServerAddress()).
		Str("weather_api", statusLabel(a.cfg.WeatherConfigured())).
		Str("nasa_earthdata", statusLabel(a.cfg.SatelliteConfigured())).
		Msg("starting environment prediction service")

	go func() {
		if srvErr := srvContainer.Srv.ListenAndServe(); srvErr != nil && !errors.Is(srvErr, http.ErrServerClosed) {
			a.l.Error().Err(srvErr).Msg("HTTP server error")
		}
	}()

	a.l.Info().Msg("environment prediction service started successfully")

	<-ctx.Done()
	a.l.Info().Msg("shutdown signal received, stopping service")

	if err := a.Shutdown(srvContainer); err != nil {
		a.l.Error().Err(err).Msg("failed to shutdown application")
		return err
	}
	a.l.Info().Msg("application shutdown successfully")
	return nil
}

// Shutdown drains the HTTP server and syncs the file logger.
func (a *App) Shutdown(srvContainer ServiceContainer) error {
	defer func(logger *zap.Logger) {
		if logger == nil {
			return
		}
		if err := logger.Sync(); err != nil {
			a.l.Error().Err(err).Msg("failed to sync file logger")
		} else {
			a.l.Info().Msg("file logger synced successfully")
		}
	}(srvContainer.fileLogger)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(a.cfg.Server.ReadTimeout)*time.Second,
	)
	defer cancel()

	if err := srvContainer.Srv.Shutdown(shutdownCtx); err != nil {
		a.l.Error().Err(err).Msg("forced shutdown due to error")
		return err
	}

	a.l.Info().Msg("shutdown complete")
	return nil
}

// init sets up logging, services, metrics, and the gin router without
// starting the server.
func (a *App) init() (ServiceContainer, error) {
	a.l.Info().Msgf("initializing environment prediction service with config: %+v", a.cfg)

	fileLogger, err := fLogger.NewFileLogger(a.cfg.HTTPLogPath)
	if err != nil {
		a.l.Error().Err(err).Msg("failed to create file logger")
	}

	// Outbound HTTP logging
	roundTripper := loggerT.NewRoundTripper(fileLogger)
	httpLogClient := &http.Client{
		Transport: roundTripper,
		Timeout:   time.Duration(a.cfg.OpenWeatherMap.Timeout) * time.Second,
	}

	weatherService := a.newWeatherService(httpLogClient)
	estimator := satellite.NewEstimator(a.l)

	scenarioService, err := scenarioSvc.NewService(a.l, a.cfg.ScenariosPath)
	if err != nil {
		return ServiceContainer{}, err
	}

	predictionService := prediction.NewService(
		a.l,
		weatherService,
		estimator,
		metricsSvc.NewPromCollector(a.m.Registry()),
		models.DataSources{
			WeatherAPI:      a.weatherSourceLabel(),
			SatelliteData:   prediction.SourceSatelliteEstimate,
			PredictionModel: prediction.PredictionModelLabel,
		},
	)

	router := gin.New()
	router.Use(gin.Recovery())

	// The metrics endpoint stays outside the instrumented middleware chain.
	router.GET("/metrics", gin.WrapH(a.m.Handler()))

	router.Use(
		cors.Default(),
		middleware.RequestID(),
		middleware.RequestLogger(a.l),
		a.m.HTTPMiddleware(),
	)

	predictHandler := predict.NewHandler(predictionService)
	healthHandler := health.NewHandler(a.cfg.WeatherConfigured(), a.cfg.SatelliteConfigured())
	scenariosHandler := scenarioHandler.NewHandler(scenarioService)

	router.GET("/health", healthHandler.Check)
	router.GET("/data/sources", healthHandler.DataSources)

	predictGroup := router.Group("/predict")
	{
		predictGroup.POST("/temperature", predictHandler.Temperature)
		predictGroup.POST("/air_quality", predictHandler.AirQuality)
		predictGroup.POST("/energy", predictHandler.Energy)
		predictGroup.POST("/complete", predictHandler.Complete)
	}

	router.GET("/scenarios", scenariosHandler.List)
	router.GET("/scenarios/:name", scenariosHandler.Get)

	router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))

	apiServer := &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     router,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	return ServiceContainer{
		PredictionService: predictionService,
		ScenarioService:   scenarioService,
		Router:            router,
		Srv:               apiServer,
		fileLogger:        fileLogger,
	}, nil
}

// newWeatherService builds the provider chain. Without an API key the chain
// holds only the deterministic mock client, so predictions stay reproducible
// instead of failing.
func (a *App) newWeatherService(httpLogClient *http.Client) *serviceWeather.ServiceProvider {
	if !a.cfg.WeatherConfigured() {
		a.l.Warn().Msg("OPENWEATHER_API_KEY not set, using deterministic mock weather")
		return serviceWeather.NewService(a.l, serviceWeather.NewClientMock(a.l))
	}

	breakerCfg := serviceWeather.BreakerConfig{
		TimeInterval: time.Duration(a.cfg.Breaker.TimeInterval) * time.Second,
		TimeTimeOut:  time.Duration(a.cfg.Breaker.TimeTimeOut) * time.Second,
		RepeatNumber: a.cfg.Breaker.RepeatNumber,
	}
	openWeather := serviceWeather.NewBreakerClient("OpenWeather", breakerCfg,
		serviceWeather.NewClientOpenWeatherMap(
			a.cfg.OpenWeatherMap.APIKey,
			a.cfg.OpenWeatherMap.APIURL,
			httpLogClient,
			a.l,
		),
	)

	return serviceWeather.NewService(a.l, openWeather)
}

func (a *App) weatherSourceLabel() string {
	if a.cfg.WeatherConfigured() {
		return prediction.SourceOpenWeatherMap
	}
	return prediction.SourceMockWeather
}

func statusLabel(configured bool) string {
	if configured {
		return "configured"
	}
	return "not_configured"
}
