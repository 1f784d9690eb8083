package lr1

import (
	"github.com/dekarrin/bnflr/internal/diag"
	"github.com/dekarrin/bnflr/internal/firstset"
	"github.com/dekarrin/bnflr/internal/grammar"
)

// Transition records a single GOTO edge of the canonical collection: from
// state From, consuming Symbol, control moves to state To.
type Transition struct {
	From   int
	Symbol string
	To     int
}

// Collection is the canonical collection of LR(1) item sets (spec §4.6):
// the states, numbered by discovery order starting at 0, plus every GOTO
// edge discovered while building it. Terminal-labeled edges feed ACTION
// shift entries; non-terminal-labeled edges feed the GOTO table. Which is
// which is internal/lrtable's concern, not this package's.
type Collection struct {
	states []*ItemSet
	keyIdx map[string]int
	edges  map[int]map[string]int
}

// States returns every state in the collection, indexed by state number.
func (c *Collection) States() []*ItemSet {
	return c.states
}

// NumStates returns the number of states in the collection.
func (c *Collection) NumStates() int {
	return len(c.states)
}

// Transition returns the state reached from state on sym, and whether such
// an edge exists.
func (c *Collection) Transition(state int, sym string) (int, bool) {
	row, ok := c.edges[state]
	if !ok {
		return 0, false
	}
	to, ok := row[sym]
	return to, ok
}

// TransitionsFrom returns every (symbol, target) edge out of state, in no
// particular order.
func (c *Collection) TransitionsFrom(state int) map[string]int {
	return c.edges[state]
}

func (c *Collection) addState(s *ItemSet) (index int, added bool) {
	key := s.Key()
	if idx, ok := c.keyIdx[key]; ok {
		return idx, false
	}
	idx := len(c.states)
	c.states = append(c.states, s)
	c.keyIdx[key] = idx
	return idx, true
}

func (c *Collection) recordEdge(from int, sym string, to int) {
	if c.edges[from] == nil {
		c.edges[from] = map[string]int{}
	}
	c.edges[from][sym] = to
}

// Build constructs the canonical collection of LR(1) item sets for g (spec
// §4.6). State 0 is the closure of the augmented start item
// Goal -> . <start-production-rhs> , $. States are discovered by a
// growing-index walk: for each state in turn (including ones appended
// during the walk), GOTO is attempted on every known grammar symbol, in the
// symbol table's first-sighting order, and any non-empty result becomes
// either a newly numbered state or a transition to an already-known one.
//
// If g has no production for grammar.Goal, an UnknownProduction diagnostic
// is reported and an empty Collection is returned; the design assumes every
// grammar loaded here carries a distinguished start production, so this
// case reflects a malformed caller, not a normal grammar failure.
func Build(g *grammar.Grammar, fe *firstset.Engine, sink diag.Sink) *Collection {
	c := &Collection{
		keyIdx: map[string]int{},
		edges:  map[int]map[string]int{},
	}

	startProds := g.Productions(grammar.Goal)
	if startProds == nil {
		sink.Report(diag.New(diag.UnknownProduction, "grammar has no production for distinguished start symbol %q", grammar.Goal))
		return c
	}

	startItem := Item{LHS: grammar.Goal, RHS: startProds[0].RHS, Dot: 0, Lookahead: grammar.EndOfInput}
	state0 := Closure([]Item{startItem}, g, fe, sink)
	c.addState(state0)

	symbols := g.Symbols.Names()

	for i := 0; i < len(c.states); i++ {
		state := c.states[i]
		for _, sym := range symbols {
			next := Goto(state, sym, g, fe, sink)
			if next.Len() == 0 {
				continue
			}
			idx, _ := c.addState(next)
			c.recordEdge(i, sym, idx)
		}
	}

	return c
}
