package bnf

import (
	"testing"

	"github.com/dekarrin/bnflr/internal/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_ParseString_SingleRule(t *testing.T) {
	assert := assert.New(t)

	records, err := ParseString(`<Goal> ::= <S>`)
	assert.NoError(err)
	assert.Equal([]grammar.RuleRecord{
		{LHS: "Goal", RHS: []grammar.SymbolRecord{{Name: "S", Terminal: false}}},
	}, records)
}

func Test_ParseString_MixedTerminalsAndNonTerminals(t *testing.T) {
	assert := assert.New(t)

	records, err := ParseString(`<S> ::= "a" <S> "b"`)
	assert.NoError(err)
	assert.Len(records, 1)
	assert.Equal("S", records[0].LHS)
	assert.Equal([]grammar.SymbolRecord{
		{Name: "a", Terminal: true},
		{Name: "S", Terminal: false},
		{Name: "b", Terminal: true},
	}, records[0].RHS)
}

func Test_ParseString_SkipsBlankAndCommentLines(t *testing.T) {
	assert := assert.New(t)

	src := "\n# a comment\n<Goal> ::= \"x\"\n   \n"
	records, err := ParseString(src)
	assert.NoError(err)
	assert.Len(records, 1)
}

func Test_ParseString_MultipleRulesForSameNonTerminal(t *testing.T) {
	assert := assert.New(t)

	src := "<S> ::= \"a\"\n<S> ::= \"b\"\n"
	records, err := ParseString(src)
	assert.NoError(err)
	assert.Len(records, 2)
	assert.Equal("S", records[0].LHS)
	assert.Equal("S", records[1].LHS)
}

func Test_ParseString_MalformedLineIsParseError(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseString("this is not a rule at all")
	assert.Error(err)
	var perr *ParseError
	assert.ErrorAs(err, &perr)
	assert.Equal(1, perr.Line)
}
