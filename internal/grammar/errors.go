// internal/grammar/errors.go
//
// Sentinel errors for grammar loading and lookup.
// Callers branch with errors.Is(err, ErrX); every load failure is also a
// *LoadError so the whole family can be recognised with errors.As.

package grammar

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRow: a row that is neither `Symbol,word` nor `Symbol,Symbol,Symbol`.
	ErrMalformedRow = errors.New("grammar: malformed row")

	// ErrUndefinedSymbol: a binary rule names a symbol that has no rules of its own.
	ErrUndefinedSymbol = errors.New("grammar: undefined symbol")

	// ErrEmptyGrammar: the start symbol has no alternatives.
	ErrEmptyGrammar = errors.New("grammar: start symbol has no alternatives")

	// ErrUnknownSymbol: lookup of a symbol absent from the table.
	ErrUnknownSymbol = errors.New("grammar: unknown symbol")
)

// LoadError reports why a grammar could not be built.
// Line is the 1-based source line (0 when the failure is not tied to a row).
type LoadError struct {
	Line   int
	Symbol Symbol
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Line > 0 && e.Symbol != "":
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Symbol)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	case e.Symbol != "":
		return fmt.Sprintf("%v: %q", e.Err, e.Symbol)
	}
	return e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// LookupError reports a symbol that is absent from a table.
// It matches ErrUnknownSymbol under errors.Is.
type LookupError struct {
	Symbol Symbol
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownSymbol, e.Symbol)
}

func (e *LookupError) Unwrap() error { return ErrUnknownSymbol }
