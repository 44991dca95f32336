// othello-ai plays one game against the game manager over stdin and
// stdout. Logs go to stderr.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/config"
	"github.com/domino14/othello/protocol"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339, NoColor: true}
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	searchCfg, err := cfg.SearchConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("bad-search-config")
	}
	p := protocol.NewPlayer(cfg.GetString(config.ConfigPlayerName), searchCfg)
	if err := p.Run(os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("game-aborted")
	}
}
