package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// unchecked builds a registry without validation so ordering can be
// exercised on lists NewRegistry would reject.
func unchecked(patterns ...Pattern) *Registry {
	r := &Registry{patterns: patterns, positions: make(map[PatternID]int, len(patterns))}
	for i := range patterns {
		r.positions[patterns[i].Key()] = i
	}

	return r
}

func scalar(name string, refs ...PatternID) Pattern {
	p := Pattern{StructName: name, SymbolName: name, Kind: KindScalar}
	for _, ref := range refs {
		p.Members = append(p.Members, Reference(string(ref), ref))
	}

	return p
}

func TestDeclarationOrder_KeepsValidOrder(t *testing.T) {
	order, cycle := unchecked(MinosPatterns()...).declarationOrder()

	assert.Empty(t, cycle)
	assert.Equal(t, []PatternID{PatternVMTags, PatternIRQTags, PatternMemTags, PatternVirtConfig}, order)
}

func TestDeclarationOrder_PlacesTargetsFirst(t *testing.T) {
	order, cycle := unchecked(
		scalar("root", "leaf", "mid"),
		scalar("mid", "leaf"),
		scalar("leaf"),
		scalar("other"),
	).declarationOrder()

	assert.Empty(t, cycle)
	assert.Equal(t, []PatternID{"leaf", "mid", "root", "other"}, order)
}

func TestDeclarationOrder_Cycle(t *testing.T) {
	order, cycle := unchecked(
		scalar("first"),
		scalar("a", "first", "b"),
		scalar("b", "c"),
		scalar("c", "a"),
	).declarationOrder()

	assert.Nil(t, order)
	assert.Equal(t, []PatternID{"a", "b", "c", "a"}, cycle)
}
