package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/app"
	"github.com/Nazarious-ucu/environment-prediction-api/internal/config"
	"github.com/Nazarious-ucu/environment-prediction-api/internal/services/metrics"
	"github.com/Nazarious-ucu/environment-prediction-api/pkg/logger"
)

// @title Environment Prediction API
// @version 2.0.0
// @description Formula based urban environment prediction service blending live weather and satellite surface estimates.
// @host localhost:5000
// @BasePath /
func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(cfg.LogsPath, "environment-prediction-api")
	if err != nil {
		log.Panicf("failed to create logger: %v", err)
	}

	metr := metrics.NewMetrics("environment_prediction")

	application := app.New(*cfg, l, metr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		log.Panic(err)
	}
}
