// internal/grammar/types.go
//
// Core type definitions for context-free grammars.
// Defines:
//   - Symbol: a nonterminal name ("S", "NP", ...).
//   - Expansion: one alternative of a symbol, either a terminal word or a
//     pair of symbols.
//   - Row: one raw line of grammar source.

package grammar

import (
	"sort"
	"strings"
)

// Symbol names a grammar nonterminal.
type Symbol string

// DefaultStart is the conventional start symbol.
const DefaultStart Symbol = "S"

// Expansion is a single production alternative.
// A terminal carries Word; a binary rule carries Left and Right.
type Expansion struct {
	Word  string `json:"word,omitempty"`
	Left  Symbol `json:"left,omitempty"`
	Right Symbol `json:"right,omitempty"`
}

// Terminal returns the alternative that produces word.
func Terminal(word string) Expansion { return Expansion{Word: word} }

// Binary returns the alternative that expands into left followed by right.
func Binary(left, right Symbol) Expansion { return Expansion{Left: left, Right: right} }

// IsTerminal reports whether e produces a word directly.
func (e Expansion) IsTerminal() bool { return e.Left == "" }

func (e Expansion) String() string {
	if e.IsTerminal() {
		return `"` + e.Word + `"`
	}
	return string(e.Left) + " " + string(e.Right)
}

// Row is one line of grammar source: 2 fields for a terminal rule,
// 3 fields for a binary rule.
type Row struct {
	Line   int
	Fields []string
}

// Rows numbers plain records 1..n, for callers that build grammars in code.
func Rows(records ...[]string) []Row {
	out := make([]Row, len(records))
	for i, rec := range records {
		out[i] = Row{Line: i + 1, Fields: rec}
	}
	return out
}

// SymbolSet is a set of symbols.
type SymbolSet map[Symbol]struct{}

// Has reports whether s is in the set.
func (s SymbolSet) Has(sym Symbol) bool {
	_, ok := s[sym]
	return ok
}

func (s SymbolSet) String() string {
	names := make([]string, 0, len(s))
	for sym := range s {
		names = append(names, string(sym))
	}
	sort.Strings(names)
	return "{" + strings.Join(names, ",") + "}"
}
