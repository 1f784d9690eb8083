// Package grammar implements the Grammar Loader described in the generator's
// design: it ingests rule records from an external tokenizer (see
// internal/bnf, a boundary collaborator, not part of this package), interns
// every symbol into an insertion-ordered symbol table, classifies each as
// terminal or non-terminal, and exposes the productions as an indexed table.
package grammar

import (
	"fmt"
	"strings"

	"github.com/dekarrin/bnflr/internal/diag"
)

// Goal is the reserved start non-terminal. EndOfInput is the reserved
// end-of-input terminal, written "$" per the BNF/GPF conventions; it is never
// entered into the SymbolTable since it never appears on a grammar
// right-hand side.
const (
	Goal       = "Goal"
	EndOfInput = "$"
)

// SymbolRecord names one symbol on the right-hand side of a rule, tagged by
// the external tokenizer as terminal or non-terminal. This is the boundary
// contract between the BNF tokenizer (out of scope for this package) and the
// Grammar Loader.
type SymbolRecord struct {
	Name     string
	Terminal bool
}

// RuleRecord is a single production as handed to the loader: a left-hand
// non-terminal name plus its ordered right-hand side. Per spec, empty
// right-hand sides are not supported; Load rejects them.
type RuleRecord struct {
	LHS string
	RHS []SymbolRecord
}

// SymbolTable maps every symbol name encountered while loading a grammar to
// whether it is a terminal. It is insertion-ordered: Names returns symbols
// in first-sighting order, which is what gives the canonical collection
// builder (internal/lr1) its deterministic state numbering (spec §5).
type SymbolTable struct {
	m *orderedMap[bool]
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{m: newOrderedMap[bool]()}
}

// declare records a sighting of name with the given terminal classification.
// A second sighting with a different classification is a GrammarInconsistent
// diagnostic.
func (t *SymbolTable) declare(name string, terminal bool) error {
	if existing, ok := t.m.get(name); ok {
		if existing != terminal {
			return fmt.Errorf("symbol %q sighted as both terminal=%t and terminal=%t", name, existing, terminal)
		}
		return nil
	}
	t.m.set(name, terminal)
	return nil
}

// IsTerminal reports whether name is a known terminal. The second return
// value is false if name was never declared.
func (t *SymbolTable) IsTerminal(name string) (bool, bool) {
	if name == EndOfInput {
		return true, true
	}
	return t.m.get(name)
}

// Names returns every declared symbol name in first-sighting order.
func (t *SymbolTable) Names() []string {
	return t.m.keysInOrder()
}

// Terminals returns every declared terminal name, in first-sighting order.
func (t *SymbolTable) Terminals() []string {
	var out []string
	for _, name := range t.m.keysInOrder() {
		if terminal, _ := t.m.get(name); terminal {
			out = append(out, name)
		}
	}
	return out
}

// Len returns the number of declared symbols.
func (t *SymbolTable) Len() int {
	return t.m.len()
}

// Production is an ordered pair (left-hand non-terminal, non-empty
// right-hand symbol sequence). Index is the stable integer assigned on first
// observation and is the payload of any reduce action that reduces by this
// production.
type Production struct {
	Index int
	LHS   string
	RHS   []string
}

func (p Production) String() string {
	return fmt.Sprintf("%s -> %s", p.LHS, strings.Join(p.RHS, " "))
}

// Grammar is a mapping from non-terminal name to its ordered list of
// productions (order of first appearance preserved), plus the global symbol
// table.
type Grammar struct {
	Symbols     *SymbolTable
	productions []Production
	byLHS       *orderedMap[[]int]
}

// NonTerminals returns every non-terminal that has at least one production,
// in first-appearance order.
func (g *Grammar) NonTerminals() []string {
	return g.byLHS.keysInOrder()
}

// Productions returns the productions of nt in first-seen order, or nil if
// nt has no productions (the UnknownProduction case from spec §4.2).
func (g *Grammar) Productions(nt string) []Production {
	idxs, ok := g.byLHS.get(nt)
	if !ok {
		return nil
	}
	prods := make([]Production, len(idxs))
	for i, idx := range idxs {
		prods[i] = g.productions[idx]
	}
	return prods
}

// HasProductions reports whether nt has at least one production.
func (g *Grammar) HasProductions(nt string) bool {
	return g.byLHS.has(nt)
}

// Production returns the production at the given stable index. Index must
// be in [0, NumProductions()).
func (g *Grammar) Production(index int) Production {
	return g.productions[index]
}

// NumProductions returns the total number of productions in the grammar.
func (g *Grammar) NumProductions() int {
	return len(g.productions)
}

// AllProductions returns every production in the grammar, in the order they
// were first observed (this is the order the GPF artifact's rule section
// uses, spec §6.2).
func (g *Grammar) AllProductions() []Production {
	out := make([]Production, len(g.productions))
	copy(out, g.productions)
	return out
}

// Load ingests rule records from the external tokenizer and builds the
// Grammar and symbol table, per spec §4.1. Every symbol sighting updates the
// symbol table; a sighting that contradicts an earlier classification of
// the same name is reported to sink as a GrammarInconsistent diagnostic and
// aborts the load, since the rest of the pipeline assumes a consistent
// symbol table.
func Load(records []RuleRecord, sink diag.Sink) (*Grammar, error) {
	g := &Grammar{
		Symbols: newSymbolTable(),
		byLHS:   newOrderedMap[[]int](),
	}

	for _, rec := range records {
		if rec.LHS == "" {
			d := diag.New(diag.GrammarInconsistent, "rule record has empty left-hand side")
			sink.Report(d)
			return nil, d
		}
		if len(rec.RHS) == 0 {
			d := diag.New(diag.GrammarInconsistent, "rule for %q has an empty right-hand side; epsilon productions are not supported", rec.LHS)
			sink.Report(d)
			return nil, d
		}

		if err := g.Symbols.declare(rec.LHS, false); err != nil {
			d := diag.New(diag.GrammarInconsistent, "%s", err.Error())
			sink.Report(d)
			return nil, d
		}

		rhs := make([]string, len(rec.RHS))
		for i, sr := range rec.RHS {
			if sr.Name == "" {
				d := diag.New(diag.GrammarInconsistent, "rule for %q has an unnamed right-hand symbol", rec.LHS)
				sink.Report(d)
				return nil, d
			}
			if err := g.Symbols.declare(sr.Name, sr.Terminal); err != nil {
				d := diag.New(diag.GrammarInconsistent, "%s", err.Error())
				sink.Report(d)
				return nil, d
			}
			rhs[i] = sr.Name
		}

		prod := Production{Index: len(g.productions), LHS: rec.LHS, RHS: rhs}
		g.productions = append(g.productions, prod)

		idxs, _ := g.byLHS.get(rec.LHS)
		idxs = append(idxs, prod.Index)
		g.byLHS.set(rec.LHS, idxs)
	}

	return g, nil
}
