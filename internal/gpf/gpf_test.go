package gpf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dekarrin/bnflr/internal/diag"
	"github.com/dekarrin/bnflr/internal/firstset"
	"github.com/dekarrin/bnflr/internal/grammar"
	"github.com/dekarrin/bnflr/internal/lr1"
	"github.com/dekarrin/bnflr/internal/lrtable"
	"github.com/stretchr/testify/assert"
)

func term(name string) grammar.SymbolRecord  { return grammar.SymbolRecord{Name: name, Terminal: true} }
func nterm(name string) grammar.SymbolRecord { return grammar.SymbolRecord{Name: name, Terminal: false} }

// buildListGrammarTable assembles the ACTION/GOTO table for
// Goal -> S ; S -> a S | b, the unambiguous grammar shared by the lr1 and
// lrtable packages' own tests.
func buildListGrammarTable(t *testing.T) (*grammar.Grammar, *lrtable.Table) {
	t.Helper()
	records := []grammar.RuleRecord{
		{LHS: grammar.Goal, RHS: []grammar.SymbolRecord{nterm("S")}},
		{LHS: "S", RHS: []grammar.SymbolRecord{term("a"), nterm("S")}},
		{LHS: "S", RHS: []grammar.SymbolRecord{term("b")}},
	}
	g, err := grammar.Load(records, diag.NewCollector())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	fe := firstset.New(g, diag.NewCollector())
	coll := lr1.Build(g, fe, diag.NewCollector())
	table := lrtable.Assemble(g, coll, diag.NewCollector())
	return g, table
}

func Test_WriteRead_RoundTripsRulesSymbolsAndTables(t *testing.T) {
	assert := assert.New(t)
	g, table := buildListGrammarTable(t)

	var buf bytes.Buffer
	assert.NoError(Write(&buf, g, table))

	a, err := Read(&buf)
	assert.NoError(err)

	assert.Len(a.Productions, g.NumProductions())
	for _, p := range g.AllProductions() {
		assert.Equal(p.LHS, a.Productions[p.Index].LHS)
		assert.Equal(p.RHS, a.Productions[p.Index].RHS)
	}

	assert.Len(a.Symbols, g.Symbols.Len())
	for _, se := range a.Symbols {
		want, known := g.Symbols.IsTerminal(se.Name)
		assert.True(known)
		assert.Equal(want, se.Terminal)
	}

	assert.Len(a.Actions, len(table.Action))
	assert.Len(a.Gotos, len(table.Goto))

	for _, ae := range a.Actions {
		original, ok := table.Action[lrtable.ActionKey{State: ae.State, Terminal: ae.Terminal}]
		assert.True(ok)
		assert.Equal(original.Kind, ae.Kind)
	}
	for _, ge := range a.Gotos {
		original, ok := table.Goto[lrtable.GotoKey{State: ge.State, NonTerminal: ge.NonTerminal}]
		assert.True(ok)
		assert.Equal(original, ge.NextState)
	}
}

func Test_Write_SectionOrderAndCounts(t *testing.T) {
	assert := assert.New(t)
	g, table := buildListGrammarTable(t)

	var buf bytes.Buffer
	assert.NoError(Write(&buf, g, table))

	lines := bytesSplitLines(buf.String())
	assert.NotEmpty(lines)

	ruleCount := mustAtoiForTest(t, lines[0])
	assert.Equal(g.NumProductions(), ruleCount)

	symbolCountLine := lines[1+ruleCount]
	symbolCount := mustAtoiForTest(t, symbolCountLine)
	assert.Equal(g.Symbols.Len(), symbolCount)
}

func Test_RuleLine_FlagPolarityIsZeroForTerminal(t *testing.T) {
	assert := assert.New(t)
	g, table := buildListGrammarTable(t)

	var buf bytes.Buffer
	assert.NoError(Write(&buf, g, table))
	text := buf.String()

	lines := bytesSplitLines(text)
	ruleCount := mustAtoiForTest(t, lines[0])
	for _, line := range lines[1 : 1+ruleCount] {
		fields := strings.Fields(line)
		for i := 2; i+1 < len(fields); i += 2 {
			terminal, known := g.Symbols.IsTerminal(fields[i+1])
			assert.True(known)
			if terminal {
				assert.Equal("0", fields[i])
			} else {
				assert.Equal("1", fields[i])
			}
		}
	}

	a, err := Read(strings.NewReader(text))
	assert.NoError(err)

	for _, se := range a.Symbols {
		terminal, known := g.Symbols.IsTerminal(se.Name)
		assert.True(known)
		assert.Equal(terminal, se.Terminal)
	}
}

func bytesSplitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}

func mustAtoiForTest(t *testing.T, s string) int {
	t.Helper()
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			t.Fatalf("not a count line: %q", s)
		}
		n = n*10 + int(r-'0')
	}
	return n
}
