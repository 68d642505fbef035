// internal/console/play.go
//
// Terminal shell: plays a game on a line-oriented reader/writer pair.
//
// Each prompt shows the sentence so far and two numbered options. The player
// answers with 1, 2, or the word itself; "q" quits. A wrong pick shows the
// rest of the sentence, as the original game did.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/cfgmaze/internal/round"
)

const buildAttempts = 3

// Play runs g to completion, or until the player quits or input ends.
func Play(ctx context.Context, g *round.Game, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	fmt.Fprintln(out, "Welcome to the CFG Maze game!")
	fmt.Fprintln(out, "Please select the option that makes the sentence grammatical.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch g.State() {
		case round.StateGameOver:
			solved, trials := g.Score()
			fmt.Fprintf(out, "\nGame end! Your score: %d/%d\n", solved, trials)
			return nil
		case round.StateAwaitingStart, round.StateRoundComplete:
			if err := nextRound(g); err != nil {
				return err
			}
			continue
		}

		snap := g.Snapshot()
		solved, trials := g.Score()
		fmt.Fprintf(out, "\n[%d/%d] score %d/%d\n", snap.Trial, trials, solved, trials)
		fmt.Fprintf(out, "  %s ...\n", strings.Join(snap.Revealed, " "))
		fmt.Fprintf(out, "  1) %s   2) %s\n> ", snap.Options[0], snap.Options[1])

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return nil
		}
		line := strings.TrimSpace(sc.Text())
		pick := line
		switch line {
		case "q", "quit":
			return nil
		case "1":
			pick = snap.Options[0]
		case "2":
			pick = snap.Options[1]
		}

		res, err := g.Submit(pick)
		if errors.Is(err, round.ErrInvalidPick) {
			fmt.Fprintln(out, "Pick 1 or 2.")
			continue
		}
		if err != nil {
			return err
		}
		if res.State != round.StateRoundComplete {
			continue
		}
		done := g.Snapshot()
		if done.RoundSolved {
			fmt.Fprintf(out, "Congrats! %s\n", strings.Join(done.Revealed, " "))
		} else {
			fmt.Fprintf(out, "Wrong... %s [%s]\n", strings.Join(done.Revealed, " "), strings.Join(done.Remaining, " "))
		}
	}
}

// nextRound starts a round, retrying failed builds with fresh draws.
func nextRound(g *round.Game) error {
	var err error
	for i := 0; i < buildAttempts; i++ {
		if _, err = g.NextRound(); err == nil {
			return nil
		}
		log.Warn().Err(err).Int("attempt", i+1).Msg("build puzzle")
	}
	return fmt.Errorf("build puzzle: %w", err)
}
