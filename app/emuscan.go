package main

import (
	"emuscan/internal/constants"
	"emuscan/internal/display"
	"emuscan/internal/site"
	"emuscan/version"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

func main() {
	fs := afero.NewOsFs()
	result := setup(fs)
	logger := result.Logger

	generator, err := site.NewGenerator(fs, result.Config, result.Localizer, version.Get().Generator(), logger)
	if err != nil {
		logger.Error("Failed to prepare generator", "error", err)
		os.Exit(constants.ExitCodeFatal)
	}

	report, err := generator.Run()
	if err != nil {
		logger.Error("Failed to generate ROM library", "error", err)
		os.Exit(constants.ExitCodeFatal)
	}

	logger.Debug("Generation complete", "systems", report.Systems, "games", report.Games, "files", report.FilesWritten)
	fmt.Fprintln(os.Stdout, display.Summary(report))
	os.Exit(constants.ExitCodeSuccess)
}
