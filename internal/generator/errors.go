// internal/generator/errors.go
//
// Sentinel errors for sentence generation and puzzle building.
// Errors from the grammar package (ErrUnknownSymbol) pass through unchanged.

package generator

import "errors"

var (
	// ErrDepthExceeded: expansion nested deeper than the configured maximum,
	// usually a cycle of binary-only rules.
	ErrDepthExceeded = errors.New("generator: maximum expansion depth exceeded")

	// ErrNoDistractor: every symbol offering words is blocked for this slot.
	ErrNoDistractor = errors.New("generator: no distractor available")

	// ErrPuzzleTooLong: the sentence has more words than the configured maximum.
	ErrPuzzleTooLong = errors.New("generator: puzzle exceeds maximum length")

	// ErrNilRand: a nil random source was supplied.
	ErrNilRand = errors.New("generator: random source is required")

	// ErrNilTable: a nil grammar table was supplied.
	ErrNilTable = errors.New("generator: grammar table is required")
)
