package main

import (
	"emuscan/internal"
	"emuscan/internal/i18n"
	"emuscan/internal/logging"
	"emuscan/version"
	"log/slog"
	"os"

	"github.com/spf13/afero"
)

type SetupResult struct {
	Config    *internal.Config
	Localizer *i18n.Localizer
	Logger    *slog.Logger
}

func setup(fs afero.Fs) SetupResult {
	config, err := internal.LoadConfig(fs, ".")
	if err != nil {
		logging.LogStandardFatal("Failed to load configuration", err)
	}

	logger := logging.New(os.Stderr, config.LogLevel.SlogLevel())

	info := version.Get()
	logger.Debug("Starting EmuScan", "version", info.Version, "commit", info.GitCommit, "build_date", info.BuildDate)
	logger.Debug("Configuration loaded", "config", config.ToLoggable())

	localizer, err := i18n.NewDefault(config.Language, logger)
	if err != nil {
		logging.LogStandardFatal("Failed to initialize i18n", err)
	}

	return SetupResult{
		Config:    config,
		Localizer: localizer,
		Logger:    logger,
	}
}
