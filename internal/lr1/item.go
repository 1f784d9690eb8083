// Package lr1 implements the Canonical Collection Builder from the
// generator's design (spec §4.3–§4.6): LR(1) items, CLOSURE, GOTO, and the
// fixed-point construction of the canonical collection of item sets.
package lr1

import (
	"fmt"
	"sort"
	"strings"
)

// Item is an LR(1) item: a quadruple (left-hand name, right-hand sequence,
// dot position, lookahead terminal name). Equality and hashing are
// structural over all four fields, implemented here via String(), which is
// used as the map key everywhere an Item needs to be deduplicated.
type Item struct {
	LHS       string
	RHS       []string
	Dot       int
	Lookahead string
}

// AtEnd reports whether the dot has reached the end of the right-hand side.
func (it Item) AtEnd() bool {
	return it.Dot >= len(it.RHS)
}

// DotSymbol returns the symbol immediately to the right of the dot and true,
// or ("", false) if the dot is at the end.
func (it Item) DotSymbol() (string, bool) {
	if it.AtEnd() {
		return "", false
	}
	return it.RHS[it.Dot], true
}

// Advance returns the item with the dot moved one position to the right.
// The caller must ensure the dot is not already at the end.
func (it Item) Advance() Item {
	return Item{LHS: it.LHS, RHS: it.RHS, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

// String renders the item as "LHS -> sym sym . sym sym , lookahead", used
// both for human-readable dumps and as the structural-equality key.
func (it Item) String() string {
	left := strings.Join(it.RHS[:it.Dot], " ")
	right := strings.Join(it.RHS[it.Dot:], " ")
	var sb strings.Builder
	sb.WriteString(it.LHS)
	sb.WriteString(" -> ")
	if left != "" {
		sb.WriteString(left)
		sb.WriteByte(' ')
	}
	sb.WriteByte('.')
	if right != "" {
		sb.WriteByte(' ')
		sb.WriteString(right)
	}
	sb.WriteString(fmt.Sprintf(" , %s", it.Lookahead))
	return sb.String()
}

// ItemSet is an unordered collection of LR(1) items: set-equality (order
// independent, duplicates forbidden) between sets, but a deterministic
// discovery order is retained for iteration, since spec §5 requires that
// order to drive the byte-reproducible ACTION/GOTO output.
type ItemSet struct {
	order []string
	items map[string]Item
}

// NewItemSet returns an empty ItemSet.
func NewItemSet() *ItemSet {
	return &ItemSet{items: map[string]Item{}}
}

// Add inserts it if not already present (by structural key). Returns
// whether it was newly added.
func (s *ItemSet) Add(it Item) bool {
	key := it.String()
	if _, ok := s.items[key]; ok {
		return false
	}
	s.items[key] = it
	s.order = append(s.order, key)
	return true
}

// HasKey reports whether an item with the given structural key is already
// present.
func (s *ItemSet) HasKey(key string) bool {
	_, ok := s.items[key]
	return ok
}

// Items returns the set's items in discovery order. The returned slice must
// not be mutated by callers.
func (s *ItemSet) Items() []Item {
	out := make([]Item, len(s.order))
	for i, k := range s.order {
		out[i] = s.items[k]
	}
	return out
}

// Len returns the number of items in the set.
func (s *ItemSet) Len() int {
	return len(s.order)
}

// Key returns a canonical, order-independent representation of the set's
// contents, suitable as a hash key for de-duplicating item sets when
// building the canonical collection (spec §9: "store the canonical
// collection as a vector plus a hash index from set-hash to state number").
func (s *ItemSet) Key() string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	sort.Strings(keys)
	return strings.Join(keys, "\x00")
}

// Equal reports whether two item sets contain exactly the same items,
// independent of discovery order.
func (s *ItemSet) Equal(o *ItemSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for key := range s.items {
		if !o.HasKey(key) {
			return false
		}
	}
	return true
}
