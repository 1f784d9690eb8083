package lr1

import (
	"github.com/dekarrin/bnflr/internal/diag"
	"github.com/dekarrin/bnflr/internal/firstset"
	"github.com/dekarrin/bnflr/internal/grammar"
)

// GetLookaheads derives the lookahead set to propagate when closing over the
// non-terminal immediately to the right of the dot in it (spec §4.3). This
// is deliberately not the textbook "FIRST(βa) for every lookahead a"
// computation: it inspects only the single symbol immediately following the
// non-terminal being closed over, matching the behavior of the Python
// prototype this generator replaces.
func GetLookaheads(it Item, g *grammar.Grammar, fe *firstset.Engine) []string {
	// Dot is assumed to point at a non-terminal B; beta is RHS[Dot+1:].
	if it.Dot+1 >= len(it.RHS) {
		return []string{it.Lookahead}
	}
	x := it.RHS[it.Dot+1]
	if terminal, _ := g.Symbols.IsTerminal(x); terminal {
		return []string{x}
	}
	return fe.First(x).Slice()
}

// Closure computes the closure of a seed set of items (spec §4.4): a
// worklist is seeded with seeds, and every item popped from it is appended
// to the result; if its dot sits before a non-terminal B, every production
// of B is added at dot position 0 with the lookahead(s) GetLookaheads
// derives, unless an equal item is already pending or already in the
// result.
func Closure(seeds []Item, g *grammar.Grammar, fe *firstset.Engine, sink diag.Sink) *ItemSet {
	result := NewItemSet()
	pendingKeys := map[string]bool{}
	queue := make([]Item, 0, len(seeds))

	for _, s := range seeds {
		key := s.String()
		if pendingKeys[key] {
			continue
		}
		pendingKeys[key] = true
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		result.Add(cur)
		delete(pendingKeys, cur.String())

		x, ok := cur.DotSymbol()
		if !ok {
			continue
		}
		terminal, _ := g.Symbols.IsTerminal(x)
		if terminal {
			continue
		}

		prods := g.Productions(x)
		if prods == nil {
			sink.Report(diag.New(diag.UnknownProduction, "no productions for non-terminal %q while closing over %s", x, cur.String()))
			continue
		}

		lookaheads := GetLookaheads(cur, g, fe)
		for _, p := range prods {
			for _, la := range lookaheads {
				newItem := Item{LHS: x, RHS: p.RHS, Dot: 0, Lookahead: la}
				key := newItem.String()
				if pendingKeys[key] || result.HasKey(key) {
					continue
				}
				pendingKeys[key] = true
				queue = append(queue, newItem)
			}
		}
	}

	return result
}

// Goto computes the state reached from item set i on grammar symbol sym
// (spec §4.5): every item in i whose dot sits directly before sym is
// advanced past it, and the closure of those advanced items is returned.
// Returns an empty ItemSet if no item in i has sym immediately after its
// dot.
func Goto(i *ItemSet, sym string, g *grammar.Grammar, fe *firstset.Engine, sink diag.Sink) *ItemSet {
	var seeds []Item
	seen := map[string]bool{}
	for _, item := range i.Items() {
		x, ok := item.DotSymbol()
		if !ok || x != sym {
			continue
		}
		advanced := item.Advance()
		key := advanced.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		seeds = append(seeds, advanced)
	}
	if len(seeds) == 0 {
		return NewItemSet()
	}
	return Closure(seeds, g, fe, sink)
}
