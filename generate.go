package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/cfgmaze/internal/generator"
)

var (
	genSeed  uint64
	genCount int
	genJSON  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print generated puzzles",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBuilder(cmd.Context())
		if err != nil {
			return err
		}
		seed := genSeed
		if !cmd.Flags().Changed("seed") {
			if seed, err = generator.NewSeed(); err != nil {
				return err
			}
		}
		rng := generator.NewRand(seed)
		out := cmd.OutOrStdout()
		enc := json.NewEncoder(out)

		for i := 0; i < genCount; i++ {
			p, err := b.Build(rng)
			if err != nil {
				return err
			}
			if genJSON {
				if err := enc.Encode(p); err != nil {
					return err
				}
				continue
			}
			fmt.Fprintln(out, p.String())
			for _, st := range p {
				fmt.Fprintf(out, "  %-4s %-12s x %s\n", st.Origin, st.Correct, st.Distractor)
			}
		}
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.Uint64Var(&genSeed, "seed", 0, "random seed (default: random)")
	f.IntVarP(&genCount, "count", "n", 1, "number of puzzles")
	f.BoolVar(&genJSON, "json", false, "print one JSON puzzle per line")
}
