package main

import (
	"carehub/config"
	"carehub/di"
	"carehub/helper"
	"carehub/shared/logger"
	"carehub/shared/timezone"

	"github.com/rs/zerolog/log"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go -d ../../ -o ../../docs --parseInternal

// @title CareHub API
// @version 1.0
// @description Nanny marketplace: profiles, reviews and the booking lifecycle.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	if err := timezone.Setup(cfg.App.Timezone); err != nil {
		log.Warn().Err(err).Msg("Invalid APP_TIMEZONE, using UTC")
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
