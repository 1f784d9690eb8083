// Package firstset implements the FIRST-set Engine from the generator's
// design (spec §4.2): an iterative, memoized computation of the terminals
// that can begin some derivation of a non-terminal.
//
// The worklist algorithm and its memoization are deliberately faithful to
// the Python prototype this generator replaces
// (original_source/gb_compiler/grammar_parser/lr1_parser.py's firstSet):
// only the originally requested non-terminal's result is cached, not the
// intermediate non-terminals visited along the way. See the Open Questions
// in spec §9 and DESIGN.md for why that under-caching is preserved rather
// than "fixed".
package firstset

import (
	"github.com/dekarrin/bnflr/internal/diag"
	"github.com/dekarrin/bnflr/internal/grammar"
)

// Engine computes and memoizes FIRST sets for a single Grammar.
type Engine struct {
	g     *grammar.Grammar
	sink  diag.Sink
	cache map[string]*grammar.SymbolSet
}

// New returns an Engine for computing FIRST sets over g. Diagnostics raised
// while computing FIRST (UnknownProduction, FirstOfTerminal) are reported to
// sink.
func New(g *grammar.Grammar, sink diag.Sink) *Engine {
	return &Engine{g: g, sink: sink, cache: map[string]*grammar.SymbolSet{}}
}

// First returns the set of terminal names that can begin some derivation of
// the non-terminal named nt. Calling First with a terminal name is a
// FirstOfTerminal diagnostic and returns an empty set. A non-terminal with
// no productions is an UnknownProduction diagnostic; its FIRST set is empty
// and is not memoized, since there is nothing useful to cache.
func (e *Engine) First(nt string) *grammar.SymbolSet {
	if terminal, known := e.g.Symbols.IsTerminal(nt); known && terminal {
		e.sink.Report(diag.New(diag.FirstOfTerminal, "first() called with terminal %q", nt))
		return grammar.NewSymbolSet()
	}

	if cached, ok := e.cache[nt]; ok {
		return cached
	}

	result := grammar.NewSymbolSet()

	type todoEntry struct{ name string }
	var pending []todoEntry
	seen := map[string]bool{}

	pending = append(pending, todoEntry{nt})
	seen[nt] = true

	for len(pending) > 0 {
		cur := pending[0]
		pending = pending[1:]

		if cached, ok := e.cache[cur.name]; ok {
			for _, t := range cached.Slice() {
				result.Add(t)
			}
			continue
		}

		prods := e.g.Productions(cur.name)
		if prods == nil {
			e.sink.Report(diag.New(diag.UnknownProduction, "no productions for non-terminal %q", cur.name))
			if cur.name == nt {
				return result
			}
			continue
		}

		for _, p := range prods {
			firstSym := p.RHS[0]
			if terminal, _ := e.g.Symbols.IsTerminal(firstSym); terminal {
				result.Add(firstSym)
				continue
			}
			if !seen[firstSym] {
				seen[firstSym] = true
				pending = append(pending, todoEntry{firstSym})
			}
		}
	}

	e.cache[nt] = result
	return result
}

// CacheEntry returns the memoized FIRST set for nt and whether an entry
// exists, without triggering computation. Exposed for tests asserting on
// memoization (spec §8 scenario 5).
func (e *Engine) CacheEntry(nt string) (*grammar.SymbolSet, bool) {
	s, ok := e.cache[nt]
	return s, ok
}
