// internal/generator/puzzle.go
//
// Puzzle building: one sentence plus one distractor per word.
// Construction is all-or-nothing; any error discards the whole puzzle.

package generator

import (
	"strings"

	"github.com/robalobadob/cfgmaze/internal/grammar"
)

// PuzzleStep is one binary choice: the grammatical word and a wrong one.
type PuzzleStep struct {
	Origin     grammar.Symbol `json:"origin"`
	Correct    string         `json:"correct"`
	Distractor string         `json:"distractor"`
}

// Puzzle is one round's ordered sequence of choices.
type Puzzle []PuzzleStep

// Sentence returns the correct words in order.
func (p Puzzle) Sentence() []string {
	out := make([]string, len(p))
	for i, s := range p {
		out[i] = s.Correct
	}
	return out
}

func (p Puzzle) String() string { return strings.Join(p.Sentence(), " ") }

// Build expands start and picks a distractor for every word, in order.
func Build(t *grammar.Table, c *grammar.Conflation, start grammar.Symbol, rng Rand, opts ...Option) (Puzzle, error) {
	steps, err := Expand(t, start, rng, opts...)
	if err != nil {
		return nil, err
	}
	p := make(Puzzle, len(steps))
	for i, st := range steps {
		d, err := Pick(t, c, st.Origin, rng)
		if err != nil {
			return nil, err
		}
		p[i] = PuzzleStep{Origin: st.Origin, Correct: st.Word, Distractor: d}
	}
	return p, nil
}

// Builder binds a grammar, conflation index, start symbol and options so
// shells can build puzzles with nothing but a random source. It holds no
// mutable state and may be shared.
type Builder struct {
	Table      *grammar.Table
	Conflation *grammar.Conflation
	Start      grammar.Symbol
	Options    []Option
}

// NewBuilder returns a Builder starting from the table's start symbol.
func NewBuilder(t *grammar.Table, c *grammar.Conflation, opts ...Option) *Builder {
	return &Builder{Table: t, Conflation: c, Start: t.Start(), Options: opts}
}

// Build builds one puzzle using rng.
func (b *Builder) Build(rng Rand) (Puzzle, error) {
	return Build(b.Table, b.Conflation, b.Start, rng, b.Options...)
}
