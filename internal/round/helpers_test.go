package round_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/cfgmaze/internal/grammar"
)

func mustDefaultTable(t *testing.T) *grammar.Table {
	t.Helper()
	tbl, err := grammar.LoadCSV(strings.NewReader("S,NP,VP\nNP,D,N\nNP,cats\nVP,V,NP\nVP,walk\nD,the\nN,cat\nV,love\n"))
	require.NoError(t, err)
	return tbl
}
