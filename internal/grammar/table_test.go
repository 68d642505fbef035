package grammar_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/cfgmaze/internal/grammar"
)

func TestLoad_AccumulatesInEncounterOrder(t *testing.T) {
	tbl, err := grammar.Load(grammar.Rows(
		[]string{"S", "NP", "VP"},
		[]string{"NP", "a cat"},
		[]string{"VP", "sleeps"},
		[]string{"NP", "a dog"},
		[]string{"VP", "runs"},
	))
	require.NoError(t, err)

	np, err := tbl.Lookup("NP")
	require.NoError(t, err)
	assert.Equal(t, []grammar.Expansion{grammar.Terminal("a cat"), grammar.Terminal("a dog")}, np)

	s, err := tbl.Lookup("S")
	require.NoError(t, err)
	assert.Equal(t, []grammar.Expansion{grammar.Binary("NP", "VP")}, s)

	assert.Equal(t, []grammar.Symbol{"S", "NP", "VP"}, tbl.Symbols())
	assert.Equal(t, grammar.DefaultStart, tbl.Start())
}

func TestLoad_TrimsFields(t *testing.T) {
	tbl, err := grammar.Load(grammar.Rows(
		[]string{" S ", "A", " B"},
		[]string{"A", "  x "},
		[]string{"B", "y"},
	))
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, tbl.Terminals("A"))
}

func TestLoad_UndefinedSymbol(t *testing.T) {
	_, err := grammar.Load(grammar.Rows([]string{"S", "A", "B"}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, grammar.ErrUndefinedSymbol), "got %v", err)

	var le *grammar.LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 1, le.Line)
	assert.Equal(t, grammar.Symbol("A"), le.Symbol)
}

func TestLoad_EmptyGrammar(t *testing.T) {
	_, err := grammar.Load(nil)
	assert.True(t, errors.Is(err, grammar.ErrEmptyGrammar), "got %v", err)

	// Rules exist, but not for the configured start symbol.
	_, err = grammar.Load(grammar.Rows([]string{"NP", "cats"}), grammar.WithStart("ROOT"))
	assert.True(t, errors.Is(err, grammar.ErrEmptyGrammar), "got %v", err)
}

func TestLoad_MalformedRows(t *testing.T) {
	cases := map[string][]string{
		"one field":    {"S"},
		"four fields":  {"S", "A", "B", "C"},
		"empty word":   {"S", ""},
		"blank symbol": {"  ", "word"},
	}
	for name, rec := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := grammar.Load(grammar.Rows([]string{"S", "ok"}, rec))
			require.Error(t, err)
			assert.True(t, errors.Is(err, grammar.ErrMalformedRow), "got %v", err)
			var le *grammar.LoadError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, 2, le.Line)
		})
	}
}

func TestLoad_WithStart(t *testing.T) {
	tbl, err := grammar.Load(grammar.Rows([]string{"ROOT", "hello"}), grammar.WithStart("ROOT"))
	require.NoError(t, err)
	assert.Equal(t, grammar.Symbol("ROOT"), tbl.Start())
}

func TestLookup_UnknownSymbol(t *testing.T) {
	tbl, err := grammar.Load(grammar.Rows([]string{"S", "hi"}))
	require.NoError(t, err)

	_, err = tbl.Lookup("VP")
	assert.True(t, errors.Is(err, grammar.ErrUnknownSymbol))
	assert.Contains(t, err.Error(), `"VP"`)
	assert.False(t, tbl.Has("VP"))
}

func TestTerminals_DirectOnly(t *testing.T) {
	tbl, err := grammar.LoadCSV(strings.NewReader("S,NP,VP\nNP,cats\nVP,V,NP\nVP,walk\nV,love\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"walk"}, tbl.Terminals("VP"))
	assert.Empty(t, tbl.Terminals("S"))

	syms, terms, bins := tbl.Stats()
	assert.Equal(t, 4, syms)
	assert.Equal(t, 3, terms)
	assert.Equal(t, 2, bins)
}
