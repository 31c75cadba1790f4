package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikhailRaia/slugid/internal/app"
	"github.com/MikhailRaia/slugid/internal/config"
	"github.com/MikhailRaia/slugid/internal/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	if err := logger.InitLogger(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("Invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.NewApp(cfg)
	if err := application.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Error running application")
	}

	log.Info().Msg("Server stopped")
}
