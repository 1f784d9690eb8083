// Package lrtable implements the ACTION/GOTO Table Assembler from the
// generator's design (spec §4.7): it walks a canonical collection of LR(1)
// item sets and produces the two tables a shift-reduce parser drives off of,
// detecting shift/reduce and reduce/reduce conflicts as it goes.
//
// The action-kind vocabulary and conflict-reporting shape are grounded on
// the teacher's internal/ictiobus/parse package (LRAction/LRActionType,
// lraction.go), adapted to this generator's final-write-wins conflict
// policy: spec §4.7 requires the table to reflect whichever write happened
// last, with the earlier write reported as a conflict diagnostic rather
// than rejected outright, matching the Python prototype's "overwrite and
// print" behavior rather than the teacher's own "return an error" behavior.
package lrtable

import (
	"fmt"

	"github.com/dekarrin/bnflr/internal/diag"
	"github.com/dekarrin/bnflr/internal/grammar"
	"github.com/dekarrin/bnflr/internal/lr1"
)

// ActionKind is the tag of an Action: shift, reduce, or accept. There is no
// explicit error kind; the absence of an entry for (state, terminal) in a
// Table is itself the error case, checked by the caller that drives the
// parse.
type ActionKind int

const (
	Shift ActionKind = iota
	Reduce
	Accept
)

func (k ActionKind) String() string {
	switch k {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	default:
		return "unknown"
	}
}

// Action is one ACTION table entry.
type Action struct {
	Kind ActionKind

	// ToState is the state to shift to. Populated only when Kind == Shift.
	ToState int

	// Production is the production to reduce by. Populated only when
	// Kind == Reduce.
	Production grammar.Production
}

func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("shift %d", a.ToState)
	case Reduce:
		return fmt.Sprintf("reduce %s", a.Production.String())
	case Accept:
		return "accept"
	default:
		return "?"
	}
}

// ActionKey addresses one cell of the ACTION table: a state and the
// terminal (or end-of-input marker) the parser has looked ahead to.
type ActionKey struct {
	State    int
	Terminal string
}

// GotoKey addresses one cell of the GOTO table: a state and the
// non-terminal just reduced to.
type GotoKey struct {
	State       int
	NonTerminal string
}

// Table is the assembled ACTION/GOTO table for a grammar's canonical
// collection. Entries are addressed by ActionKey/GotoKey; a missing entry
// is a parse error at runtime, not represented here.
type Table struct {
	Action map[ActionKey]Action
	Goto   map[GotoKey]int
}

// Assemble builds the ACTION and GOTO tables from a grammar and its
// canonical collection of LR(1) item sets (spec §4.7). For every state:
//
//   - an item with the dot at the end, reducing production P with
//     lookahead a, writes Reduce(P) at ACTION[state, a] — unless P is the
//     augmented start production and a is the end-of-input marker, in
//     which case it writes Accept instead;
//   - an item with the dot before a terminal t, with a GOTO edge to state
//     s on t, writes Shift(s) at ACTION[state, t];
//   - a GOTO edge to state s on non-terminal A writes GOTO[state, A] = s.
//
// Writes are applied in state order, and within a state in the canonical
// collection's item discovery order. A write that would overwrite an
// existing ACTION cell is a conflict: it is reported to sink as
// ShiftReduceConflict or ReduceReduceConflict (neither shift nor reduce is
// preferred, unlike the textbook's usual "prefer shift" rule; the later
// write simply wins), and the table cell ends up holding whichever
// action was written last.
func Assemble(g *grammar.Grammar, coll *lr1.Collection, sink diag.Sink) *Table {
	t := &Table{
		Action: map[ActionKey]Action{},
		Goto:   map[GotoKey]int{},
	}
	// history records every action description ever written to a given
	// cell, in write order, so a conflict diagnostic can name all of them
	// via diag.JoinNames rather than just the two most recent.
	history := map[ActionKey][]string{}

	for state, items := range coll.States() {
		for _, it := range items.Items() {
			if it.AtEnd() {
				// A completed item for the augmented start symbol Goal,
				// with the lookahead at end-of-input, is the accept action.
				// The check is on the left-hand side and lookahead only, so
				// every such Goal item is written as accept, not as a reduce.
				if it.LHS == grammar.Goal && it.Lookahead == grammar.EndOfInput {
					writeAction(t, sink, history, state, grammar.EndOfInput, Action{Kind: Accept})
					continue
				}
				prod := lookupProduction(g, it.LHS, it.RHS)
				writeAction(t, sink, history, state, it.Lookahead, Action{Kind: Reduce, Production: prod})
				continue
			}

			sym, _ := it.DotSymbol()
			terminal, known := g.Symbols.IsTerminal(sym)
			if !known {
				continue
			}
			if terminal {
				to, ok := coll.Transition(state, sym)
				if !ok {
					continue
				}
				writeAction(t, sink, history, state, sym, Action{Kind: Shift, ToState: to})
			}
		}

		for sym, to := range coll.TransitionsFrom(state) {
			if terminal, known := g.Symbols.IsTerminal(sym); known && !terminal {
				t.Goto[GotoKey{State: state, NonTerminal: sym}] = to
			}
		}
	}

	return t
}

func lookupProduction(g *grammar.Grammar, lhs string, rhs []string) grammar.Production {
	for _, p := range g.Productions(lhs) {
		if len(p.RHS) != len(rhs) {
			continue
		}
		match := true
		for i := range rhs {
			if p.RHS[i] != rhs[i] {
				match = false
				break
			}
		}
		if match {
			return p
		}
	}
	return grammar.Production{LHS: lhs, RHS: rhs, Index: -1}
}

func writeAction(t *Table, sink diag.Sink, history map[ActionKey][]string, state int, term string, newAction Action) {
	key := ActionKey{State: state, Terminal: term}
	existing, had := t.Action[key]
	if had && !actionsEqual(existing, newAction) {
		reportConflict(sink, history[key], state, term, existing, newAction)
	}
	t.Action[key] = newAction
	history[key] = append(history[key], newAction.String())
}

func actionsEqual(a, b Action) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Shift:
		return a.ToState == b.ToState
	case Reduce:
		return a.Production.Index == b.Production.Index
	default:
		return true
	}
}

// reportConflict reports a write that overwrote an existing ACTION cell.
// prior is every action description written to that cell so far (in write
// order, not including incoming); diag.JoinNames renders all of them by
// name so a cell that has flip-flopped more than once names its whole
// history, not just the single write being overwritten right now.
func reportConflict(sink diag.Sink, prior []string, state int, term string, existing, incoming Action) {
	priorNames := diag.JoinNames(prior)

	if existing.Kind == Reduce && incoming.Kind == Shift || existing.Kind == Shift && incoming.Kind == Reduce {
		sink.Report(diag.NewInState(diag.ShiftReduceConflict, state,
			"shift/reduce conflict on terminal %q (%s overwritten by %s)", term, priorNames, incoming.String()))
		return
	}
	if existing.Kind == Reduce && incoming.Kind == Reduce {
		sink.Report(diag.NewInState(diag.ReduceReduceConflict, state,
			"reduce/reduce conflict on terminal %q (%s overwritten by reduce %s)", term, priorNames, incoming.Production.String()))
		return
	}
	sink.Report(diag.NewInState(diag.ShiftReduceConflict, state,
		"conflicting ACTION entries on terminal %q (%s overwritten by %s)", term, priorNames, incoming.String()))
}
