package generator_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/cfgmaze/internal/generator"
	"github.com/robalobadob/cfgmaze/internal/grammar"
)

// firstRand always selects the first alternative.
type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

// lastRand always selects the last alternative.
type lastRand struct{}

func (lastRand) IntN(n int) int { return n - 1 }

func mustCSV(t *testing.T, src string, opts ...grammar.LoadOption) *grammar.Table {
	t.Helper()
	tbl, err := grammar.LoadCSV(strings.NewReader(src), opts...)
	require.NoError(t, err)
	return tbl
}

const catsDogs = `S,NP,VP
NP,a cat
NP,a dog
VP,sleeps
VP,runs
`

// defaultGrammar mirrors the embedded game grammar.
const defaultGrammar = `S,NP,VP
NP,D,N
NP,cats
NP,dogs
NP,humans
VP,V,NP
VP,walk
VP,sleep
VP,cry
D,the
D,a
N,cat
N,dog
N,human
V,love
V,tolerate
V,like
`

func defaultConflation() *grammar.Conflation {
	return grammar.NewConflation(map[grammar.Symbol][]grammar.Symbol{
		"NP": {"NP", "N"},
		"N":  {"N", "NP"},
		"VP": {"VP", "V"},
		"V":  {"V", "VP"},
		"D":  {"D", "NP", "N"},
	})
}

func TestExpand_PreservesOrder(t *testing.T) {
	tbl := mustCSV(t, "S,NP,VP\nNP,a\nVP,b\n")
	for seed := uint64(0); seed < 20; seed++ {
		steps, err := generator.Expand(tbl, "S", generator.NewRand(seed))
		require.NoError(t, err)
		assert.Equal(t, []generator.Step{{Origin: "NP", Word: "a"}, {Origin: "VP", Word: "b"}}, steps)
	}
}

func TestExpand_TerminatesOnAcyclicGrammar(t *testing.T) {
	tbl := mustCSV(t, defaultGrammar)
	for seed := uint64(0); seed < 500; seed++ {
		steps, err := generator.Expand(tbl, "S", generator.NewRand(seed))
		require.NoError(t, err, "seed %d", seed)
		assert.GreaterOrEqual(t, len(steps), 2)
		assert.LessOrEqual(t, len(steps), 5)
	}
}

func TestExpand_DepthExceeded(t *testing.T) {
	// S only ever rewrites to itself.
	tbl := mustCSV(t, "S,S,S\n")
	_, err := generator.Expand(tbl, "S", firstRand{})
	assert.True(t, errors.Is(err, generator.ErrDepthExceeded), "got %v", err)

	// A terminal is reachable but the stub never picks it.
	tbl = mustCSV(t, "S,S,S\nS,end\n")
	_, err = generator.Expand(tbl, "S", firstRand{}, generator.WithMaxDepth(10))
	assert.True(t, errors.Is(err, generator.ErrDepthExceeded), "got %v", err)
	steps, err := generator.Expand(tbl, "S", lastRand{}, generator.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []generator.Step{{Origin: "S", Word: "end"}}, steps)
}

func TestExpand_MaxDepthBoundary(t *testing.T) {
	// S(1) -> VP(2) -> NP(3) -> D(4)
	tbl := mustCSV(t, defaultGrammar)
	_, err := generator.Expand(tbl, "S", firstRand{}, generator.WithMaxDepth(3))
	assert.True(t, errors.Is(err, generator.ErrDepthExceeded))

	steps, err := generator.Expand(tbl, "S", firstRand{}, generator.WithMaxDepth(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "cat", "love", "the", "cat"}, words(steps))
}

func TestExpand_UnknownStart(t *testing.T) {
	tbl := mustCSV(t, catsDogs)
	_, err := generator.Expand(tbl, "Q", firstRand{})
	assert.True(t, errors.Is(err, grammar.ErrUnknownSymbol))
}

func TestExpand_NilArguments(t *testing.T) {
	tbl := mustCSV(t, catsDogs)
	_, err := generator.Expand(tbl, "S", nil)
	assert.ErrorIs(t, err, generator.ErrNilRand)
	_, err = generator.Expand(nil, "S", firstRand{})
	assert.ErrorIs(t, err, generator.ErrNilTable)
}

func TestPool_ExcludesBlockedSymbols(t *testing.T) {
	tbl := mustCSV(t, defaultGrammar)
	conf := defaultConflation()

	pool, err := generator.Pool(tbl, conf, "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"walk", "sleep", "cry", "love", "tolerate", "like"}, pool)

	// NP does not list D, so articles stay in its pool.
	pool, err = generator.Pool(tbl, conf, "NP")
	require.NoError(t, err)
	assert.Contains(t, pool, "the")
	assert.NotContains(t, pool, "cat")
	assert.NotContains(t, pool, "cats")
}

func TestPool_WordSharedWithBlockedSymbol(t *testing.T) {
	tbl := mustCSV(t, "S,NP,VP\nNP,run\nNP,dogs\nVP,run\nVP,walk\n")
	pool, err := generator.Pool(tbl, nil, "NP")
	require.NoError(t, err)
	assert.Equal(t, []string{"walk"}, pool)
}

func TestPool_Deduplicates(t *testing.T) {
	tbl := mustCSV(t, "S,NP,VP\nNP,dogs\nVP,walk\nVP,V,V\nV,walk\nV,run\n")
	pool, err := generator.Pool(tbl, nil, "NP")
	require.NoError(t, err)
	assert.Equal(t, []string{"walk", "run"}, pool)
}

func TestPick_NoDistractor(t *testing.T) {
	tbl := mustCSV(t, "S,NP,VP\nNP,a\nVP,b\n")
	conf := grammar.NewConflation(map[grammar.Symbol][]grammar.Symbol{"NP": {"VP"}})
	_, err := generator.Pick(tbl, conf, "NP", firstRand{})
	assert.True(t, errors.Is(err, generator.ErrNoDistractor), "got %v", err)
}

func TestPick_UnknownOrigin(t *testing.T) {
	tbl := mustCSV(t, catsDogs)
	_, err := generator.Pick(tbl, nil, "ADJ", firstRand{})
	assert.True(t, errors.Is(err, grammar.ErrUnknownSymbol))
}

func TestBuild_EndToEnd(t *testing.T) {
	tbl := mustCSV(t, catsDogs)
	conf := grammar.NewConflation(map[grammar.Symbol][]grammar.Symbol{"NP": {"NP"}, "VP": {"VP"}})

	p, err := generator.Build(tbl, conf, "S", firstRand{})
	require.NoError(t, err)
	require.Len(t, p, 2)

	assert.Equal(t, "a cat", p[0].Correct)
	assert.Contains(t, []string{"sleeps", "runs"}, p[0].Distractor)
	assert.Equal(t, "sleeps", p[1].Correct)
	assert.Contains(t, []string{"a cat", "a dog"}, p[1].Distractor)
	assert.Equal(t, "a cat sleeps", p.String())
}

func TestBuild_DistractorSafety(t *testing.T) {
	tbl := mustCSV(t, defaultGrammar)
	conf := defaultConflation()

	for seed := uint64(0); seed < 300; seed++ {
		p, err := generator.Build(tbl, conf, "S", generator.NewRand(seed))
		require.NoError(t, err, "seed %d", seed)
		for _, st := range p {
			assert.NotEqual(t, st.Correct, st.Distractor)
			for sym := range conf.Blocked(st.Origin) {
				assert.NotContains(t, tbl.Terminals(sym), st.Distractor,
					"seed %d: %q offered for %s slot", seed, st.Distractor, st.Origin)
			}
		}
	}
}

func TestBuild_DeterministicUnderSeed(t *testing.T) {
	tbl := mustCSV(t, defaultGrammar)
	b := generator.NewBuilder(tbl, defaultConflation())

	for seed := uint64(1); seed < 50; seed++ {
		a, err := b.Build(generator.NewRand(seed))
		require.NoError(t, err)
		c, err := b.Build(generator.NewRand(seed))
		require.NoError(t, err)
		assert.Equal(t, a, c)
	}
}

func TestBuild_MaxLength(t *testing.T) {
	tbl := mustCSV(t, catsDogs)
	p, err := generator.Build(tbl, nil, "S", firstRand{}, generator.WithMaxLength(1))
	assert.True(t, errors.Is(err, generator.ErrPuzzleTooLong), "got %v", err)
	assert.Nil(t, p)

	p, err = generator.Build(tbl, nil, "S", firstRand{}, generator.WithMaxLength(2))
	require.NoError(t, err)
	assert.Len(t, p, 2)
}

func TestBuild_AllOrNothing(t *testing.T) {
	tbl := mustCSV(t, "S,NP,VP\nNP,a\nVP,b\n")
	conf := grammar.NewConflation(map[grammar.Symbol][]grammar.Symbol{"VP": {"NP"}})
	p, err := generator.Build(tbl, conf, "S", firstRand{})
	assert.True(t, errors.Is(err, generator.ErrNoDistractor))
	assert.Nil(t, p)
}

func words(steps []generator.Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Word
	}
	return out
}
