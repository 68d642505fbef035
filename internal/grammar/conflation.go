// internal/grammar/conflation.go
//
// Conflation maps a symbol to the symbols that may legally occupy the same
// syntactic slot. Distractors are never drawn from a symbol's conflation set.
//
// The table is used exactly as authored: if D lists NP but NP does not list
// D, only D is affected. Symbols without an entry conflate with themselves.

package grammar

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Conflation is an immutable symbol -> interchangeable-symbols index.
// The zero value and a nil *Conflation are valid and block only the symbol
// itself.
type Conflation struct {
	sets map[Symbol]SymbolSet
}

// NewConflation copies m into a Conflation. Every set also contains its key.
func NewConflation(m map[Symbol][]Symbol) *Conflation {
	c := &Conflation{sets: make(map[Symbol]SymbolSet, len(m))}
	for sym, others := range m {
		set := SymbolSet{sym: {}}
		for _, o := range others {
			set[o] = struct{}{}
		}
		c.sets[sym] = set
	}
	return c
}

// ParseConflation reads a YAML mapping such as:
//
//	NP: [NP, N]
//	VP: [VP, V]
func ParseConflation(data []byte) (*Conflation, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse conflation: %w", err)
	}
	m := make(map[Symbol][]Symbol, len(raw))
	for k, vs := range raw {
		syms := make([]Symbol, len(vs))
		for i, v := range vs {
			syms[i] = Symbol(v)
		}
		m[Symbol(k)] = syms
	}
	return NewConflation(m), nil
}

// Blocked returns the conflation set of s, always including s itself.
// The returned set must not be modified.
func (c *Conflation) Blocked(s Symbol) SymbolSet {
	if c != nil {
		if set, ok := c.sets[s]; ok {
			return set
		}
	}
	return SymbolSet{s: {}}
}

// Validate reports every conflation entry that names a symbol the table
// does not define. Such entries are harmless for blocking but usually mean
// the grammar and conflation files have drifted apart.
func (c *Conflation) Validate(t *Table) error {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.sets))
	for k := range c.sets {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		set := c.sets[Symbol(k)]
		members := make([]string, 0, len(set))
		for m := range set {
			members = append(members, string(m))
		}
		sort.Strings(members)
		for _, m := range members {
			if !t.Has(Symbol(m)) {
				errs = append(errs, fmt.Errorf("conflation entry %q: %w", k, &LookupError{Symbol: Symbol(m)}))
			}
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of explicit entries.
func (c *Conflation) Len() int {
	if c == nil {
		return 0
	}
	return len(c.sets)
}
