package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raine/wishlist/config"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	config.LoadEnvFile()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(config.LogLevel())

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
