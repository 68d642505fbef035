// internal/round/engine.go
//
// Round engine for a single puzzle.
// Responsibilities:
//   - Track position in the puzzle and the words chosen so far.
//   - Validate and score picks against the current step.
//   - Move playing -> round_complete when the last step is answered, or on
//     the first mistake when StopOnMistake is set.

package round

import (
	"errors"

	"github.com/robalobadob/cfgmaze/internal/generator"
)

var (
	// ErrRoundComplete: a pick was submitted after the round ended.
	ErrRoundComplete = errors.New("round: round complete")

	// ErrInvalidPick: the pick is neither option of the current step.
	ErrInvalidPick = errors.New("round: pick is not one of the options")
)

// Round is the state of one puzzle being played.
type Round struct {
	Puzzle   generator.Puzzle `json:"-"`
	Position int              `json:"position"`
	Chosen   []string         `json:"chosen"`
	Correct  int              `json:"correct"`
	Mistakes int              `json:"mistakes"`
	Revealed int              `json:"revealed"` // leading words shown without a choice

	stopOnMistake bool
	done          bool
	counted       bool // already recorded by its Game
}

// NewRound starts a round over p. RevealFirst gives the first word only
// when at least one choice is left after it.
func NewRound(p generator.Puzzle, cfg Config) *Round {
	r := &Round{Puzzle: p, Chosen: []string{}, stopOnMistake: cfg.StopOnMistake}
	if cfg.RevealFirst && len(p) > 1 {
		r.Chosen = append(r.Chosen, p[0].Correct)
		r.Position, r.Revealed = 1, 1
	}
	r.done = r.Position >= len(p)
	return r
}

// Current returns the step awaiting a pick.
func (r *Round) Current() (generator.PuzzleStep, bool) {
	if r.done {
		return generator.PuzzleStep{}, false
	}
	return r.Puzzle[r.Position], true
}

// Submit scores pick against the current step and advances the round.
func (r *Round) Submit(pick string) (Outcome, error) {
	step, ok := r.Current()
	if !ok {
		return Outcome{Position: r.Position, State: r.State()}, ErrRoundComplete
	}
	if pick != step.Correct && pick != step.Distractor {
		return Outcome{Position: r.Position, State: r.State()}, ErrInvalidPick
	}

	correct := pick == step.Correct
	r.Chosen = append(r.Chosen, pick)
	r.Position++
	if correct {
		r.Correct++
	} else {
		r.Mistakes++
	}
	if r.Position >= len(r.Puzzle) || (!correct && r.stopOnMistake) {
		r.done = true
	}
	return Outcome{Correct: correct, Expected: step.Correct, Position: r.Position, State: r.State()}, nil
}

// State reports playing or round_complete.
func (r *Round) State() State {
	if r.done {
		return StateRoundComplete
	}
	return StatePuzzleReady
}

// Done reports whether the round has ended.
func (r *Round) Done() bool { return r.done }

// Solved reports whether every step was answered without a mistake.
// A round with no picks is never solved.
func (r *Round) Solved() bool {
	return r.done && r.Mistakes == 0 && r.Position == len(r.Puzzle) && r.Correct > 0
}

// Remaining returns the correct words not yet chosen.
func (r *Round) Remaining() []string {
	if r.Position >= len(r.Puzzle) {
		return []string{}
	}
	return r.Puzzle[r.Position:].Sentence()
}

// Options returns the two choices of step in display order. The order is
// drawn from rng so position gives no hint.
func Options(step generator.PuzzleStep, rng generator.Rand) [2]string {
	if rng.IntN(2) == 0 {
		return [2]string{step.Correct, step.Distractor}
	}
	return [2]string{step.Distractor, step.Correct}
}
