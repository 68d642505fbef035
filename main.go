// main.go
//
// cfgmaze: "choose the grammatical word" puzzles generated from a
// context-free grammar.
//
// Subcommands:
//   serve     HTTP shell
//   play      terminal shell
//   generate  print puzzles
//   validate  check a grammar and its conflation table
//
// Configuration comes from the environment (and .env); see internal/config.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/cfgmaze/internal/config"
	"github.com/robalobadob/cfgmaze/internal/generator"
	"github.com/robalobadob/cfgmaze/internal/grammar"
)

// cfg is filled in by main before any flag is bound.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "cfgmaze",
	Short: "CFG Maze builds grammar puzzles from a context-free grammar",
	Long: `CFG Maze expands a context-free grammar into sentences and pairs every
word with a distractor that can never be grammatical in its slot.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, playCmd, generateCmd, validateCmd)
}

// bindFlags registers every flag with the loaded configuration as its
// default. It runs once, after cfg is set.
func bindFlags() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.Grammar.File, "grammar", cfg.Grammar.File, "CSV grammar file (default: embedded grammar)")
	pf.StringVar(&cfg.Grammar.DB, "grammar-db", cfg.Grammar.DB, "SQLite grammar database")
	pf.StringVar(&cfg.Grammar.ConflationFile, "conflation", cfg.Grammar.ConflationFile, "YAML conflation table (default: embedded table)")
	pf.StringVar((*string)(&cfg.Grammar.Start), "start", string(cfg.Grammar.Start), "start symbol")
	pf.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "maximum expansion depth")
	pf.IntVar(&cfg.MaxLength, "max-length", cfg.MaxLength, "maximum words per puzzle (0 = unbounded)")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	bindServeFlags()
	bindPlayFlags()
}

func main() {
	cfg = config.Load()
	bindFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadBuilder opens the configured grammar and binds it to a puzzle builder.
// Conflation entries naming unknown symbols are logged, not fatal.
func loadBuilder(ctx context.Context) (*generator.Builder, error) {
	tbl, conf, err := grammar.Open(ctx, cfg.Grammar)
	if err != nil {
		return nil, fmt.Errorf("load grammar: %w", err)
	}
	if err := conf.Validate(tbl); err != nil {
		log.Warn().Err(err).Msg("conflation table names unknown symbols")
	}
	syms, terms, bins := tbl.Stats()
	log.Debug().Int("symbols", syms).Int("terminals", terms).Int("binaries", bins).Str("start", string(tbl.Start())).Msg("grammar loaded")
	return generator.NewBuilder(tbl, conf, cfg.GeneratorOptions()...), nil
}
