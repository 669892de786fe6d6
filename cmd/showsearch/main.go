package main

import (
	"os"

	"github.com/Belphemur/ShowSearch/internal/cli"
	"github.com/Belphemur/ShowSearch/internal/config"
)

func main() {
	if err := cli.Execute(); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Msg("showsearch failed")
		os.Exit(1)
	}
}
