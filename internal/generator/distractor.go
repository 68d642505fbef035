// internal/generator/distractor.go
//
// Distractor selection: for a word produced by some symbol, pick a word that
// can never be correct in that slot.
//
// Pool (Pool):
//   - blocked = conflation set of the origin symbol (always includes it).
//   - banned  = every word listed directly under a blocked symbol.
//   - pool    = words listed directly under any non-blocked symbol, minus
//     banned, de-duplicated, in table order.
//
// A word listed under both a blocked and a non-blocked symbol is never
// offered.

package generator

import (
	"fmt"

	"github.com/robalobadob/cfgmaze/internal/grammar"
)

// Pool returns the candidate distractors for a word produced by origin.
func Pool(t *grammar.Table, c *grammar.Conflation, origin grammar.Symbol) ([]string, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if _, err := t.Lookup(origin); err != nil {
		return nil, err
	}
	blocked := c.Blocked(origin)

	banned := make(map[string]struct{})
	for sym := range blocked {
		for _, w := range t.Terminals(sym) {
			banned[w] = struct{}{}
		}
	}

	var pool []string
	seen := make(map[string]struct{})
	for _, sym := range t.Symbols() {
		if blocked.Has(sym) {
			continue
		}
		for _, w := range t.Terminals(sym) {
			if _, no := banned[w]; no {
				continue
			}
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			pool = append(pool, w)
		}
	}
	return pool, nil
}

// Pick draws one distractor uniformly from Pool.
func Pick(t *grammar.Table, c *grammar.Conflation, origin grammar.Symbol, rng Rand) (string, error) {
	if rng == nil {
		return "", ErrNilRand
	}
	pool, err := Pool(t, c, origin)
	if err != nil {
		return "", err
	}
	if len(pool) == 0 {
		return "", fmt.Errorf("%w: every word source is blocked for %q (blocked %s)", ErrNoDistractor, origin, c.Blocked(origin))
	}
	return pool[rng.IntN(len(pool))], nil
}
