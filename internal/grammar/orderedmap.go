package grammar

// This file carries forward the teacher's convention of backing every
// "set of symbol names" with an insertion-ordered map (see
// internal/util.SVSet and util.OrderedKeys in the teacher's own tree) rather
// than a bare Go map. Bare maps iterate in randomized order; this generator's
// determinism guarantee (spec §5: "running the generator twice on the same
// input produces byte-identical artifacts") depends on iterating the symbol
// table, the grammar's productions and FIRST-set results in first-seen
// order. The teacher's own
// internal/util.OrderedKeys helper was not among the retrieved sources (only
// internal/util/set.go and sb.go were), so the small piece needed here is
// rebuilt directly rather than guessed at.

// SymbolSet is an insertion-ordered set of symbol names. It backs FIRST set
// results and LR(1) lookahead sets, where preserving discovery order is what
// makes the generator's output byte-reproducible across runs (spec §5).
type SymbolSet struct {
	index map[string]int
	order []string
}

// NewSymbolSet returns an empty SymbolSet.
func NewSymbolSet() *SymbolSet {
	return &SymbolSet{index: map[string]int{}}
}

// Add inserts s if not already present. Returns whether it was newly added.
func (o *SymbolSet) Add(s string) bool {
	if _, ok := o.index[s]; ok {
		return false
	}
	o.index[s] = len(o.order)
	o.order = append(o.order, s)
	return true
}

// Has reports whether s is in the set.
func (o *SymbolSet) Has(s string) bool {
	_, ok := o.index[s]
	return ok
}

// Slice returns the set's contents in insertion order. The returned slice
// must not be mutated by callers.
func (o *SymbolSet) Slice() []string {
	return o.order
}

// Len returns the number of elements in the set.
func (o *SymbolSet) Len() int {
	return len(o.order)
}

// orderedMap is an insertion-ordered map keyed by string, carrying an
// arbitrary value type V.
type orderedMap[V any] struct {
	index map[string]int
	keys  []string
	vals  []V
}

func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{index: map[string]int{}}
}

func (o *orderedMap[V]) set(k string, v V) {
	if i, ok := o.index[k]; ok {
		o.vals[i] = v
		return
	}
	o.index[k] = len(o.keys)
	o.keys = append(o.keys, k)
	o.vals = append(o.vals, v)
}

func (o *orderedMap[V]) get(k string) (V, bool) {
	var zero V
	i, ok := o.index[k]
	if !ok {
		return zero, false
	}
	return o.vals[i], true
}

func (o *orderedMap[V]) has(k string) bool {
	_, ok := o.index[k]
	return ok
}

// keysInOrder returns the map's keys in first-insertion order. The returned
// slice must not be mutated by callers.
func (o *orderedMap[V]) keysInOrder() []string {
	return o.keys
}

func (o *orderedMap[V]) len() int {
	return len(o.keys)
}
