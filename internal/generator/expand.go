// internal/generator/expand.go
//
// Sentence generation: recursive expansion of a start symbol into words.
//
// Algorithm (Expand):
//   1. Draw one alternative of the symbol uniformly at random.
//   2. A terminal yields a single step (symbol, word).
//   3. A binary rule yields the steps of its left symbol followed by the
//      steps of its right symbol.
//
// Depth is the number of symbols on the current expansion path; the start
// symbol is depth 1. Exceeding the maximum fails with ErrDepthExceeded.

package generator

import (
	"fmt"

	"github.com/robalobadob/cfgmaze/internal/grammar"
)

// DefaultMaxDepth bounds recursion for grammars that never reach a terminal.
const DefaultMaxDepth = 200

// Step is one generated word and the symbol that produced it.
type Step struct {
	Origin grammar.Symbol
	Word   string
}

type config struct {
	maxDepth  int
	maxLength int
}

func defaults() config {
	return config{maxDepth: DefaultMaxDepth}
}

// Option customises Expand and Build.
type Option func(*config)

// WithMaxDepth bounds recursion depth. Values < 1 keep the default.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.maxDepth = n
		}
	}
}

// WithMaxLength bounds the number of words in a puzzle. 0 means unbounded.
func WithMaxLength(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxLength = n
		}
	}
}

// Expand generates one sentence from start, in reading order.
// With WithMaxLength set, expansion stops as soon as the sentence grows past
// the limit.
func Expand(t *grammar.Table, start grammar.Symbol, rng Rand, opts ...Option) ([]Step, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	x := &expander{t: t, rng: rng, cfg: defaults()}
	for _, o := range opts {
		o(&x.cfg)
	}
	if err := x.expand(start, 1); err != nil {
		return nil, err
	}
	return x.out, nil
}

type expander struct {
	t   *grammar.Table
	rng Rand
	cfg config
	out []Step
}

func (x *expander) expand(sym grammar.Symbol, depth int) error {
	if depth > x.cfg.maxDepth {
		return fmt.Errorf("%w: %d levels at %q", ErrDepthExceeded, x.cfg.maxDepth, sym)
	}
	alts, err := x.t.Lookup(sym)
	if err != nil {
		return err
	}
	e := alts[x.rng.IntN(len(alts))]
	if !e.IsTerminal() {
		if err := x.expand(e.Left, depth+1); err != nil {
			return err
		}
		return x.expand(e.Right, depth+1)
	}
	if x.cfg.maxLength > 0 && len(x.out) >= x.cfg.maxLength {
		return fmt.Errorf("%w: more than %d words", ErrPuzzleTooLong, x.cfg.maxLength)
	}
	x.out = append(x.out, Step{Origin: sym, Word: e.Word})
	return nil
}
