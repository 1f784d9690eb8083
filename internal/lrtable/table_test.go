package lrtable

import (
	"testing"

	"github.com/dekarrin/bnflr/internal/diag"
	"github.com/dekarrin/bnflr/internal/firstset"
	"github.com/dekarrin/bnflr/internal/grammar"
	"github.com/dekarrin/bnflr/internal/lr1"
	"github.com/stretchr/testify/assert"
)

func term(name string) grammar.SymbolRecord  { return grammar.SymbolRecord{Name: name, Terminal: true} }
func nterm(name string) grammar.SymbolRecord { return grammar.SymbolRecord{Name: name, Terminal: false} }

func build(t *testing.T, records []grammar.RuleRecord) (*grammar.Grammar, *lr1.Collection, diag.Sink) {
	t.Helper()
	g, err := grammar.Load(records, diag.NewCollector())
	if err != nil {
		t.Fatalf("build: load: %v", err)
	}
	fe := firstset.New(g, diag.NewCollector())
	sink := diag.NewCollector()
	coll := lr1.Build(g, fe, sink)
	return g, coll, sink
}

// Goal -> S ; S -> a S | b : an unambiguous right-recursive list, matching
// the grammar used throughout the lr1 package's tests.
func listGrammarRecords() []grammar.RuleRecord {
	return []grammar.RuleRecord{
		{LHS: grammar.Goal, RHS: []grammar.SymbolRecord{nterm("S")}},
		{LHS: "S", RHS: []grammar.SymbolRecord{term("a"), nterm("S")}},
		{LHS: "S", RHS: []grammar.SymbolRecord{term("b")}},
	}
}

func Test_Assemble_NoConflictsOnUnambiguousGrammar(t *testing.T) {
	assert := assert.New(t)

	g, coll, _ := build(t, listGrammarRecords())
	conflicts := diag.NewCollector()
	table := Assemble(g, coll, conflicts)

	assert.True(conflicts.Empty())
	assert.NotEmpty(table.Action)
}

func Test_Assemble_AcceptOnGoalAtEndOfInput(t *testing.T) {
	assert := assert.New(t)

	g, coll, _ := build(t, listGrammarRecords())
	table := Assemble(g, coll, diag.NewCollector())

	toAccept, ok := coll.Transition(0, "S")
	assert.True(ok)

	act, ok := table.Action[ActionKey{State: toAccept, Terminal: grammar.EndOfInput}]
	assert.True(ok)
	assert.Equal(Accept, act.Kind)
}

func Test_Assemble_ShiftAndGotoEntriesFromStartState(t *testing.T) {
	assert := assert.New(t)

	g, coll, _ := build(t, listGrammarRecords())
	table := Assemble(g, coll, diag.NewCollector())

	shiftA, ok := table.Action[ActionKey{State: 0, Terminal: "a"}]
	assert.True(ok)
	assert.Equal(Shift, shiftA.Kind)

	shiftB, ok := table.Action[ActionKey{State: 0, Terminal: "b"}]
	assert.True(ok)
	assert.Equal(Shift, shiftB.Kind)

	gotoS, ok := table.Goto[GotoKey{State: 0, NonTerminal: "S"}]
	assert.True(ok)
	assert.Equal(1, coll.States()[gotoS].Len())
	assert.True(coll.States()[gotoS].Items()[0].AtEnd())
}

// Goal -> E ; E -> E + E | id : the classic ambiguous expression grammar,
// which cannot decide whether to shift "+" or reduce E -> E + E once it has
// seen "E + E" with "+" as lookahead.
func ambiguousGrammarRecords() []grammar.RuleRecord {
	return []grammar.RuleRecord{
		{LHS: grammar.Goal, RHS: []grammar.SymbolRecord{nterm("E")}},
		{LHS: "E", RHS: []grammar.SymbolRecord{nterm("E"), term("+"), nterm("E")}},
		{LHS: "E", RHS: []grammar.SymbolRecord{term("id")}},
	}
}

func Test_Assemble_DetectsShiftReduceConflict(t *testing.T) {
	assert := assert.New(t)

	g, coll, buildSink := build(t, ambiguousGrammarRecords())
	assert.True(buildSink.(*diag.Collector).Empty())

	conflicts := diag.NewCollector()
	table := Assemble(g, coll, conflicts)

	assert.NotEmpty(conflicts.OfKind(diag.ShiftReduceConflict))
	assert.NotEmpty(table.Action)
}

func Test_Table_String_RendersStatesAndHeader(t *testing.T) {
	assert := assert.New(t)

	g, coll, _ := build(t, listGrammarRecords())
	table := Assemble(g, coll, diag.NewCollector())

	out := table.String(coll.NumStates(), g.Symbols.Terminals(), g.NonTerminals())

	assert.Contains(out, "state")
	assert.Contains(out, "a")
	assert.Contains(out, "b")
	assert.Contains(out, "S")
}

func Test_ActionKind_StringAndAction_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("shift", Shift.String())
	assert.Equal("reduce", Reduce.String())
	assert.Equal("accept", Accept.String())

	a := Action{Kind: Shift, ToState: 3}
	assert.Equal("shift 3", a.String())

	acc := Action{Kind: Accept}
	assert.Equal("accept", acc.String())
}
