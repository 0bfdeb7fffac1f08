package correlator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/scipdup/pkg/types"
)

// rawIndex is a pretty-printed index fixture with known line positions:
// m/Foo#neg(). on line 5, m/Bar#mul(). on lines 6, 7 and 12.
const rawIndex = `{
  "documents": [
    {
      "symbols": [
        { "symbol": "m/Foo#neg()." },
        { "symbol": "m/Bar#mul()." },
        { "symbol": "m/Bar#mul()." }
      ]
    },
    {
      "symbols": [
        { "symbol": "m/Bar#mul()." }
      ]
    }
  ]
}`

func candidates(ids ...types.SymbolID) types.CandidateSet {
	set := make(types.CandidateSet)
	for _, id := range ids {
		set.Add(id)
	}
	return set
}

func TestCorrelate_LineNumbers(t *testing.T) {
	occ, err := New().Correlate([]byte(rawIndex), candidates("m/Foo#neg().", "m/Bar#mul()."))
	require.NoError(t, err)

	assert.Equal(t, []int{5}, occ["m/Foo#neg()."])
	assert.Equal(t, []int{6, 7, 12}, occ["m/Bar#mul()."])
}

func TestCorrelate_LinesStrictlyAscending(t *testing.T) {
	occ, err := New().Correlate([]byte(rawIndex), candidates("m/Bar#mul()."))
	require.NoError(t, err)

	lines := occ["m/Bar#mul()."]
	for i := 1; i < len(lines); i++ {
		assert.Greater(t, lines[i], lines[i-1])
	}
}

func TestCorrelate_EmptyCandidates(t *testing.T) {
	occ, err := New().Correlate([]byte(rawIndex), candidates())
	require.NoError(t, err)
	assert.Empty(t, occ)
}

func TestCorrelate_ExactQuotedMatchOnly(t *testing.T) {
	// A candidate that is a prefix of a longer identifier must not match.
	occ, err := New().Correlate([]byte(rawIndex), candidates("m/Bar#mul"))
	require.Error(t, err)

	var ce *types.CorrelationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []types.SymbolID{"m/Bar#mul"}, ce.Missing)
	assert.Empty(t, occ)
}

func TestCorrelate_MissingCandidateIsDistinctError(t *testing.T) {
	occ, err := New().Correlate([]byte(rawIndex),
		candidates("m/Foo#neg().", "m/Ghost#mul()."))

	var ce *types.CorrelationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []types.SymbolID{"m/Ghost#mul()."}, ce.Missing)

	// The partial map still carries the symbols that did correlate.
	assert.Equal(t, []int{5}, occ["m/Foo#neg()."])
}

func TestCorrelate_PreFilterSkipsUnmarkedLines(t *testing.T) {
	// The identifier appears on a line without the symbol field marker;
	// those lines must not be counted.
	raw := strings.Join([]string{
		`{`,
		`  "comment": "m/Foo#neg(). appears here without a symbol field",`,
		`  "documents": [ { "symbols": [`,
		`    { "symbol": "m/Foo#neg()." }`,
		`  ] } ]`,
		`}`,
	}, "\n")

	occ, err := New().Correlate([]byte(raw), candidates("m/Foo#neg()."))
	require.NoError(t, err)
	assert.Equal(t, []int{4}, occ["m/Foo#neg()."])
}

func TestCorrelate_Idempotent(t *testing.T) {
	set := candidates("m/Foo#neg().", "m/Bar#mul().")

	first, err := New().Correlate([]byte(rawIndex), set)
	require.NoError(t, err)
	second, err := New().Correlate([]byte(rawIndex), set)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClassify_LexicographicOrder(t *testing.T) {
	occ := types.OccurrenceMap{
		"m/C#neg().": {30},
		"m/A#mul().": {10, 20, 40},
		"m/B#neg().": {15, 18},
	}

	findings := Classify(occ)
	require.Len(t, findings, 3)

	assert.Equal(t, types.SymbolID("m/A#mul()."), findings[0].Symbol)
	assert.Equal(t, types.SymbolID("m/B#neg()."), findings[1].Symbol)
	assert.Equal(t, types.SymbolID("m/C#neg()."), findings[2].Symbol)

	assert.True(t, findings[0].IsCollision())
	assert.False(t, findings[1].IsCollision())
	assert.False(t, findings[2].IsCollision())
}
