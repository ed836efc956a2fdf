package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Server struct {
	Host        string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port        int    `envconfig:"SERVER_PORT" default:"5000"`
	ReadTimeout int    `envconfig:"SERVER_TIMEOUT" default:"10"`
}

type Breaker struct {
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"10"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

type OpenWeatherMap struct {
	// Empty key switches the weather chain to the deterministic mock client.
	APIKey  string `envconfig:"OPENWEATHER_API_KEY"`
	APIURL  string `envconfig:"OPENWEATHER_API_URL" default:"https://api.openweathermap.org/data/2.5"`
	Timeout int    `envconfig:"OPENWEATHER_TIMEOUT" default:"10"`
}

type Satellite struct {
	// Reserved for real VIIRS ingestion; currently only reported by /health
	// and /data/sources.
	EarthdataToken string `envconfig:"NASA_EARTHDATA_TOKEN"`
}

type Config struct {
	Server         Server
	Breaker        Breaker
	OpenWeatherMap OpenWeatherMap
	Satellite      Satellite

	ScenariosPath string `envconfig:"SCENARIOS_PATH"`

	LogsPath    string `envconfig:"LOGS_PATH" default:"./log/environment-prediction-api.log"`
	HTTPLogPath string `envconfig:"HTTP_LOG_PATH" default:"./log/outbound-http.log"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ServerAddress renders the host:port pair the HTTP server binds to.
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// WeatherConfigured reports whether the real OpenWeatherMap client can run.
func (c *Config) WeatherConfigured() bool {
	return c.OpenWeatherMap.APIKey != ""
}

// SatelliteConfigured reports whether an EarthData credential is present.
func (c *Config) SatelliteConfigured() bool {
	return c.Satellite.EarthdataToken != ""
}
