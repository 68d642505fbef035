// internal/round/game.go
//
// Game: a fixed number of rounds played by one learner.
//
// State transitions:
//   awaiting_start --NextRound--> playing --last pick--> round_complete
//   round_complete --NextRound--> playing ...
//   after the last trial's round completes --> game_over
//
// A trial counts as solved when its round finishes with no mistakes.
// A Game owns its random source; the grammar behind its PuzzleSource is
// shared read-only. Methods are safe for concurrent use.

package round

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"

	"github.com/robalobadob/cfgmaze/internal/generator"
)

var (
	// ErrGameOver: every trial of the game has been played.
	ErrGameOver = errors.New("round: game over")

	// ErrRoundInProgress: NextRound was called before the current round ended.
	ErrRoundInProgress = errors.New("round: round in progress")

	// ErrNoRound: a pick was submitted before the first round started.
	ErrNoRound = errors.New("round: no round started")
)

// PuzzleSource builds puzzles; *generator.Builder satisfies it.
type PuzzleSource interface {
	Build(rng generator.Rand) (generator.Puzzle, error)
}

// Game holds the state of one game session.
type Game struct {
	ID string

	mu      sync.Mutex
	cfg     Config
	src     PuzzleSource
	rng     generator.Rand
	played  int // finished rounds
	solved  int
	round   *Round
	options [2]string // display order of the current step
}

// Snapshot is a consistent copy of a game's public state.
type Snapshot struct {
	ID          string   `json:"gameId"`
	State       State    `json:"state"`
	Trial       int      `json:"trial"` // 1-based number of the current or last round
	Trials      int      `json:"trials"`
	Solved      int      `json:"solved"`
	Played      int      `json:"played"`
	Revealed    []string `json:"revealed"`            // correct words placed so far
	Options     []string `json:"options,omitempty"`   // choices for the current step
	Remaining   []string `json:"remaining,omitempty"` // answer shown after a failed round
	Position    int      `json:"position"`
	RoundSolved bool     `json:"roundSolved"` // current round ended without mistakes
	Length      int      `json:"length"`
}

// NewGame creates a game that draws puzzles from src using rng.
func NewGame(src PuzzleSource, rng generator.Rand, cfg Config) *Game {
	if cfg.Trials <= 0 {
		cfg.Trials = DefaultTrials
	}
	return &Game{ID: randomID(), cfg: cfg, src: src, rng: rng}
}

// NextRound builds a new puzzle and starts a round over it.
// A failed build leaves the game unchanged; the caller may simply retry,
// which draws a fresh sentence from the same source.
func (g *Game) NextRound() (*Round, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.played >= g.cfg.Trials {
		return nil, ErrGameOver
	}
	if g.round != nil && !g.round.Done() {
		return nil, ErrRoundInProgress
	}
	p, err := g.src.Build(g.rng)
	if err != nil {
		return nil, err
	}
	g.round = NewRound(p, g.cfg)
	g.finishIfDone()
	g.shuffle()
	return g.round, nil
}

// Submit applies a pick to the current round.
func (g *Game) Submit(pick string) (Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.round == nil {
		return Outcome{State: StateAwaitingStart}, ErrNoRound
	}
	out, err := g.round.Submit(pick)
	if err != nil {
		return out, err
	}
	g.finishIfDone()
	g.shuffle()
	return out, nil
}

// finishIfDone records a round that has just ended. Callers hold g.mu.
func (g *Game) finishIfDone() {
	if !g.round.Done() || g.round.counted {
		return
	}
	g.round.counted = true
	g.played++
	if g.round.Solved() {
		g.solved++
	}
}

// shuffle draws the display order of the current step. Callers hold g.mu.
func (g *Game) shuffle() {
	g.options = [2]string{}
	if step, ok := g.round.Current(); ok {
		g.options = Options(step, g.rng)
	}
}

// Current returns the step awaiting a pick in the current round.
func (g *Game) Current() (generator.PuzzleStep, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.round == nil {
		return generator.PuzzleStep{}, false
	}
	return g.round.Current()
}

// State reports the game's coarse state.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state()
}

func (g *Game) state() State {
	switch {
	case g.played >= g.cfg.Trials:
		return StateGameOver
	case g.round == nil:
		return StateAwaitingStart
	case g.round.Done():
		return StateRoundComplete
	}
	return StatePuzzleReady
}

// Score returns (solved rounds, trials per game).
func (g *Game) Score() (solved, trials int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.solved, g.cfg.Trials
}

// Snapshot returns a copy of the game's public state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{
		ID:       g.ID,
		State:    g.state(),
		Trials:   g.cfg.Trials,
		Solved:   g.solved,
		Played:   g.played,
		Revealed: []string{},
	}
	if g.round == nil {
		return s
	}
	r := g.round
	s.Trial = g.played
	if !r.Done() {
		s.Trial++
		s.Options = []string{g.options[0], g.options[1]}
	}
	s.Position, s.Length = r.Position, len(r.Puzzle)
	s.Revealed = r.Puzzle[:r.Position].Sentence()
	s.RoundSolved = r.Solved()
	if r.Done() && !r.Solved() {
		miss := firstMistake(r)
		s.Revealed = r.Puzzle[:miss].Sentence()
		s.Remaining = r.Puzzle[miss:].Sentence()
	}
	return s
}

// firstMistake returns the puzzle index of the first wrong pick, or the
// current position when there is none.
func firstMistake(r *Round) int {
	for i := r.Revealed; i < len(r.Chosen); i++ {
		if r.Chosen[i] != r.Puzzle[i].Correct {
			return i
		}
	}
	return r.Position
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
