package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/cfgmaze/internal/console"
	"github.com/robalobadob/cfgmaze/internal/generator"
	"github.com/robalobadob/cfgmaze/internal/round"
)

type fixedSource struct{ p generator.Puzzle }

func (f fixedSource) Build(generator.Rand) (generator.Puzzle, error) { return f.p, nil }

var puzzle = generator.Puzzle{
	{Origin: "D", Correct: "the", Distractor: "walk"},
	{Origin: "N", Correct: "cat", Distractor: "love"},
	{Origin: "VP", Correct: "sleep", Distractor: "dogs"},
}

func TestPlay_ByWord(t *testing.T) {
	g := round.NewGame(fixedSource{puzzle}, generator.NewRand(3), round.Config{Trials: 2, StopOnMistake: true, RevealFirst: true})
	in := strings.NewReader("cat\nsleep\nlove\n")
	var out bytes.Buffer

	require.NoError(t, console.Play(context.Background(), g, in, &out))
	text := out.String()
	assert.Contains(t, text, "Congrats! the cat sleep")
	assert.Contains(t, text, "Wrong... the [cat sleep]")
	assert.Contains(t, text, "Game end! Your score: 1/2")
}

func TestPlay_InvalidThenQuit(t *testing.T) {
	g := round.NewGame(fixedSource{puzzle}, generator.NewRand(3), round.Config{Trials: 1})
	in := strings.NewReader("banana\nq\n")
	var out bytes.Buffer

	require.NoError(t, console.Play(context.Background(), g, in, &out))
	assert.Contains(t, out.String(), "Pick 1 or 2.")
	assert.NotContains(t, out.String(), "Game end!")
}

func TestPlay_NumberedOptions(t *testing.T) {
	g := round.NewGame(fixedSource{puzzle[:1]}, generator.NewRand(3), round.Config{Trials: 1})
	in := strings.NewReader("1\n")
	var out bytes.Buffer

	require.NoError(t, console.Play(context.Background(), g, in, &out))
	solved, _ := g.Score()
	text := out.String()
	if strings.Contains(text, "1) the") {
		assert.Equal(t, 1, solved)
	} else {
		assert.Equal(t, 0, solved)
	}
	assert.Contains(t, text, "Game end!")
}

func TestPlay_EndOfInput(t *testing.T) {
	g := round.NewGame(fixedSource{puzzle}, generator.NewRand(3), round.Config{Trials: 1})
	var out bytes.Buffer
	assert.NoError(t, console.Play(context.Background(), g, strings.NewReader(""), &out))
}

func TestPlay_CanceledContext(t *testing.T) {
	g := round.NewGame(fixedSource{puzzle}, generator.NewRand(3), round.Config{Trials: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := console.Play(ctx, g, strings.NewReader("1\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}
