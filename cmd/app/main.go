package main

import (
	"context"
	"haven/config"
	"haven/di"
	_ "haven/docs"
	"haven/helper"
	"haven/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Sunset Haven API
// @version 1.0
// @description Public site content and admin back-office for Sunset Haven.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	app := di.InitializeService()
	app.Bootstrap(context.Background())

	stop, err := app.Jobs.Start()
	if err != nil {
		log.Error().Err(err).Msg("failed to start scheduled jobs")
	}
	defer stop()

	app.HTTP.Serve()
}
