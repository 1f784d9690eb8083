package lr1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Item_AtEndAndDotSymbol(t *testing.T) {
	assert := assert.New(t)

	it := Item{LHS: "S", RHS: []string{"a", "b"}, Dot: 1, Lookahead: "$"}
	assert.False(it.AtEnd())
	sym, ok := it.DotSymbol()
	assert.True(ok)
	assert.Equal("b", sym)

	advanced := it.Advance()
	assert.True(advanced.AtEnd())
	_, ok = advanced.DotSymbol()
	assert.False(ok)
}

func Test_Item_StringIsStructuralKey(t *testing.T) {
	assert := assert.New(t)

	a := Item{LHS: "S", RHS: []string{"a", "b"}, Dot: 1, Lookahead: "$"}
	b := Item{LHS: "S", RHS: []string{"a", "b"}, Dot: 1, Lookahead: "$"}
	c := Item{LHS: "S", RHS: []string{"a", "b"}, Dot: 0, Lookahead: "$"}
	d := Item{LHS: "S", RHS: []string{"a", "b"}, Dot: 1, Lookahead: "x"}

	assert.Equal(a.String(), b.String())
	assert.NotEqual(a.String(), c.String())
	assert.NotEqual(a.String(), d.String())
}

func Test_ItemSet_AddDeduplicatesByStructuralKey(t *testing.T) {
	assert := assert.New(t)

	s := NewItemSet()
	it := Item{LHS: "S", RHS: []string{"a"}, Dot: 0, Lookahead: "$"}

	assert.True(s.Add(it))
	assert.False(s.Add(it))
	assert.Equal(1, s.Len())
}

func Test_ItemSet_EqualIsOrderIndependent(t *testing.T) {
	assert := assert.New(t)

	i1 := Item{LHS: "S", RHS: []string{"a"}, Dot: 0, Lookahead: "$"}
	i2 := Item{LHS: "S", RHS: []string{"b"}, Dot: 0, Lookahead: "$"}

	s1 := NewItemSet()
	s1.Add(i1)
	s1.Add(i2)

	s2 := NewItemSet()
	s2.Add(i2)
	s2.Add(i1)

	assert.True(s1.Equal(s2))
	assert.Equal(s1.Key(), s2.Key())
}
