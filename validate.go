package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/cfgmaze/internal/generator"
	"github.com/robalobadob/cfgmaze/internal/grammar"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a grammar and its conflation table",
	Long: `Loads the grammar, checks that the conflation table only names known
symbols, and that every symbol producing words has at least one distractor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, conf, err := grammar.Open(cmd.Context(), cfg.Grammar)
		if err != nil {
			return err
		}
		if err := conf.Validate(tbl); err != nil {
			return err
		}
		for _, sym := range tbl.Symbols() {
			if len(tbl.Terminals(sym)) == 0 {
				continue
			}
			if _, err := generator.Pick(tbl, conf, sym, generator.NewRand(0)); err != nil {
				return err
			}
		}
		syms, terms, bins := tbl.Stats()
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d symbols, %d words, %d binary rules, start %s\n", syms, terms, bins, tbl.Start())
		return nil
	},
}
