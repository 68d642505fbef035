// internal/round/types.go
//
// Core type definitions for puzzle rounds and games.
// Defines:
//   - State: coarse state of a round or game.
//   - Outcome: result of submitting one pick.
//   - Config: per-game rules.

package round

// State is a coarse, JSON-friendly state label.
type State string

const (
	StateAwaitingStart State = "awaiting_start" // game created, no round yet
	StatePuzzleReady   State = "playing"        // round in progress
	StateRoundComplete State = "round_complete" // round finished, next round not started
	StateGameOver      State = "game_over"      // all trials played
)

// Outcome reports the result of a single pick.
type Outcome struct {
	Correct  bool   `json:"correct"`
	Expected string `json:"expected"` // the grammatical word for this step
	Position int    `json:"position"` // position after the pick
	State    State  `json:"state"`    // round state after the pick
}

// Config holds the rules of a game.
type Config struct {
	Trials        int  // rounds per game (default 20)
	StopOnMistake bool // a wrong pick ends the round
	RevealFirst   bool // the first word is shown, choices start at position 1
}

// DefaultTrials is the number of rounds in a game when Config.Trials is unset.
const DefaultTrials = 20
