// internal/grammar/table.go
//
// Table owns a parsed rule set: symbol -> ordered list of alternatives.
//
// Load rules:
//   - Rows sharing a left-hand symbol accumulate in encounter order.
//   - Every symbol named by a binary rule must have rules of its own.
//   - The start symbol must have at least one alternative.
//
// A Table is immutable once Load returns and may be shared by any number of
// goroutines without synchronization.

package grammar

import (
	"strings"
)

// Table is a validated, read-only grammar.
type Table struct {
	start Symbol
	order []Symbol // symbols in first-encounter order
	rules map[Symbol][]Expansion
}

type loadConfig struct {
	start Symbol
}

// LoadOption customises Load.
type LoadOption func(*loadConfig)

// WithStart sets the start symbol (default "S"). Empty values are ignored.
func WithStart(s Symbol) LoadOption {
	return func(c *loadConfig) {
		if s != "" {
			c.start = s
		}
	}
}

// Load builds a Table from rows, failing fast on the first problem.
// A malformed grammar never yields a partially usable table.
func Load(rows []Row, opts ...LoadOption) (*Table, error) {
	cfg := loadConfig{start: DefaultStart}
	for _, o := range opts {
		o(&cfg)
	}

	t := &Table{start: cfg.start, rules: make(map[Symbol][]Expansion)}
	refs := make([]ref, 0)

	for _, row := range rows {
		lhs, exp, err := parseRow(row)
		if err != nil {
			return nil, err
		}
		if _, seen := t.rules[lhs]; !seen {
			t.order = append(t.order, lhs)
		}
		t.rules[lhs] = append(t.rules[lhs], exp)
		if !exp.IsTerminal() {
			refs = append(refs, ref{line: row.Line, sym: exp.Left}, ref{line: row.Line, sym: exp.Right})
		}
	}

	if len(t.rules[t.start]) == 0 {
		return nil, &LoadError{Symbol: t.start, Err: ErrEmptyGrammar}
	}
	for _, r := range refs {
		if _, ok := t.rules[r.sym]; !ok {
			return nil, &LoadError{Line: r.line, Symbol: r.sym, Err: ErrUndefinedSymbol}
		}
	}
	return t, nil
}

// ref is a symbol mention inside a binary rule, checked once all rows are in.
type ref struct {
	line int
	sym  Symbol
}

// parseRow validates the shape of one row. Fields are trimmed; empty fields
// are malformed.
func parseRow(row Row) (Symbol, Expansion, error) {
	fields := make([]string, len(row.Fields))
	for i, f := range row.Fields {
		fields[i] = strings.TrimSpace(f)
		if fields[i] == "" {
			return "", Expansion{}, &LoadError{Line: row.Line, Err: ErrMalformedRow}
		}
	}
	switch len(fields) {
	case 2:
		return Symbol(fields[0]), Terminal(fields[1]), nil
	case 3:
		return Symbol(fields[0]), Binary(Symbol(fields[1]), Symbol(fields[2])), nil
	default:
		return "", Expansion{}, &LoadError{Line: row.Line, Err: ErrMalformedRow}
	}
}

// Start returns the start symbol the table was validated against.
func (t *Table) Start() Symbol { return t.start }

// Lookup returns the alternatives of s in load order.
func (t *Table) Lookup(s Symbol) ([]Expansion, error) {
	alts, ok := t.rules[s]
	if !ok {
		return nil, &LookupError{Symbol: s}
	}
	return alts, nil
}

// Has reports whether s has rules.
func (t *Table) Has(s Symbol) bool {
	_, ok := t.rules[s]
	return ok
}

// Symbols returns every symbol in first-encounter order.
func (t *Table) Symbols() []Symbol {
	return append([]Symbol(nil), t.order...)
}

// Terminals returns the words listed directly as alternatives of s.
// Words reachable only through binary rules are not included.
func (t *Table) Terminals(s Symbol) []string {
	var out []string
	for _, e := range t.rules[s] {
		if e.IsTerminal() {
			out = append(out, e.Word)
		}
	}
	return out
}

// Stats returns (symbols, terminal alternatives, binary alternatives).
func (t *Table) Stats() (symbols, terminals, binaries int) {
	for _, alts := range t.rules {
		for _, e := range alts {
			if e.IsTerminal() {
				terminals++
			} else {
				binaries++
			}
		}
	}
	return len(t.order), terminals, binaries
}
