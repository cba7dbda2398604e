// Package main provides the entry point for the runlog CLI.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/Station-Manager/runlog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		log.Error().Err(err).Msg("runlog failed")
		os.Exit(1)
	}
}
