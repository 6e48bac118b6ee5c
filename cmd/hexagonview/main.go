// Command hexagonview renders images masked into a bordered hexagon.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/playdraft/hexagonview/cmd/hexagonview/cmd"
	"github.com/playdraft/hexagonview/pkg/errors"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	errors.SetHandler(&errors.LogHandler{})

	if err := cmd.Execute(os.Args[1:], os.Stdout); err != nil {
		log.Error().Str("tag", errors.LogTag).Err(err).Msg("command failed")
		os.Exit(1)
	}
}
