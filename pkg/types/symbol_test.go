package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolID_IsMemberScoped(t *testing.T) {
	assert.True(t, SymbolID("rust-analyzer cargo c 0.1.0 m/Foo#neg().").IsMemberScoped())
	assert.False(t, SymbolID("rust-analyzer cargo c 0.1.0 m/free_fn().").IsMemberScoped())
}

func TestSymbolID_IsFunction(t *testing.T) {
	assert.True(t, SymbolID("m/Foo#neg().").IsFunction())
	assert.False(t, SymbolID("m/Foo#Output#").IsFunction())
	assert.False(t, SymbolID("m/Foo#").IsFunction())
}

func TestSymbolID_IsLocal(t *testing.T) {
	assert.True(t, SymbolID("local 12").IsLocal())
	assert.False(t, SymbolID("m/Foo#neg().").IsLocal())
}

func TestSymbolID_Quoted(t *testing.T) {
	assert.Equal(t, `"m/Foo#neg()."`, SymbolID("m/Foo#neg().").Quoted())
}

func TestCandidateSet_SetSemantics(t *testing.T) {
	set := make(CandidateSet)
	set.Add("m/Foo#neg().")
	set.Add("m/Foo#neg().")
	set.Add("m/Bar#mul().")

	assert.Len(t, set, 2)
	assert.True(t, set.Contains("m/Foo#neg()."))
	assert.False(t, set.Contains("m/Baz#add()."))
}

func TestCandidateSet_Sorted(t *testing.T) {
	set := make(CandidateSet)
	set.Add("m/C#neg().")
	set.Add("m/A#neg().")
	set.Add("m/B#mul().")

	sorted := set.Sorted()
	assert.Equal(t, []SymbolID{"m/A#neg().", "m/B#mul().", "m/C#neg()."}, sorted)
}

func TestOccurrenceMap_Sorted(t *testing.T) {
	occ := OccurrenceMap{
		"m/B#mul().": {4, 9},
		"m/A#neg().": {2},
	}
	assert.Equal(t, []SymbolID{"m/A#neg().", "m/B#mul()."}, occ.Sorted())
}
