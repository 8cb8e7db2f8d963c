package main

import (
	"context"
	"os"

	"github.com/christ0s/freegames-reporter/internal/bot"
	"github.com/christ0s/freegames-reporter/internal/config"
	"github.com/christ0s/freegames-reporter/internal/gamerpower"
	"github.com/christ0s/freegames-reporter/internal/logx"
	"github.com/christ0s/freegames-reporter/internal/reporter"
	"github.com/christ0s/freegames-reporter/internal/store/file"
)

// main defers to run so deferred cleanup still happens on the failure
// path before the process exits non-zero.
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		fallbackLogger := logx.New(false)
		fallbackLogger.Error().Err(err).Msg("failed to load config")
		return err
	}

	logger := logx.New(cfg.Debug)
	logger.Info().
		Str("homeserver", cfg.MatrixHomeserver).
		Strs("allowed_platforms", cfg.AllowedPlatforms).
		Str("state_file", cfg.StateFile).
		Msg("starting free games reporter")

	matrixBot, err := bot.New(cfg.MatrixHomeserver, cfg.MatrixUser, cfg.MatrixAccessToken, cfg.MatrixRoomID, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize matrix bot")
		return err
	}
	defer matrixBot.Close()

	rep := reporter.New(
		file.New(cfg.StateFile, logger),
		gamerpower.NewClient(cfg.GamerPowerURL, cfg.HTTPTimeout, logger),
		matrixBot,
		cfg.AllowedPlatforms,
		logger,
	)

	if err := rep.Run(context.Background()); err != nil {
		logger.Error().Err(err).Msg("reporting cycle failed")
		return err
	}

	logger.Info().Msg("free games reporter finished")
	return nil
}
