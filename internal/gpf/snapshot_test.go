package gpf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_WriteReadSnapshot_RoundTrips(t *testing.T) {
	assert := assert.New(t)
	g, table := buildListGrammarTable(t)

	a := BuildArtifact(g, table)
	data := WriteSnapshot(a)
	assert.NotEmpty(data)

	got, err := ReadSnapshot(data)
	assert.NoError(err)

	assert.ElementsMatch(a.Productions, got.Productions)
	assert.ElementsMatch(a.Symbols, got.Symbols)
	assert.ElementsMatch(a.Actions, got.Actions)
	assert.ElementsMatch(a.Gotos, got.Gotos)
}
