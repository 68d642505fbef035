package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/cfgmaze/internal/console"
	"github.com/robalobadob/cfgmaze/internal/daily"
	"github.com/robalobadob/cfgmaze/internal/generator"
	"github.com/robalobadob/cfgmaze/internal/round"
)

var (
	playSeed  uint64
	playDaily bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Keep logs off stdout, where the puzzle is drawn.
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

		b, err := loadBuilder(cmd.Context())
		if err != nil {
			return err
		}
		seed := playSeed
		switch {
		case playDaily:
			seed = daily.Seed(time.Now(), cfg.DailySalt)
		case !cmd.Flags().Changed("seed"):
			if seed, err = generator.NewSeed(); err != nil {
				return err
			}
		}
		g := round.NewGame(b, generator.NewRand(seed), cfg.Game)
		log.Debug().Str("gameId", g.ID).Uint64("seed", seed).Msg("game started")
		return console.Play(cmd.Context(), g, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	f := playCmd.Flags()
	f.Uint64Var(&playSeed, "seed", 0, "random seed (default: random)")
	f.BoolVar(&playDaily, "daily", false, "play today's daily puzzles")
}

func bindPlayFlags() {
	f := playCmd.Flags()
	f.IntVar(&cfg.Game.Trials, "trials", cfg.Game.Trials, "rounds per game")
	f.BoolVar(&cfg.Game.StopOnMistake, "stop-on-mistake", cfg.Game.StopOnMistake, "a wrong pick ends the round")
	f.BoolVar(&cfg.Game.RevealFirst, "reveal-first", cfg.Game.RevealFirst, "give the first word of each sentence")
}
