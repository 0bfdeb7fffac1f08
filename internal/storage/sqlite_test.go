package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/scipdup/pkg/types"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testReport(path string) *types.Report {
	return &types.Report{
		Path:     path,
		Patterns: []string{"neg", "mul"},
		Findings: []types.Finding{
			{Symbol: "m/Bar#mul().", Lines: []int{12, 40, 88}},
			{Symbol: "m/Foo#neg().", Lines: []int{5}},
		},
	}
}

func TestSaveReport_Roundtrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	run, err := s.SaveReport(ctx, testReport("index.json"), FilterRecord{
		Patterns:      []string{"neg", "mul"},
		FunctionsOnly: true,
	})
	require.NoError(t, err)
	require.NotZero(t, run.ID)

	got, err := s.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "index.json", got.FilePath)
	assert.Equal(t, "neg,mul", got.Patterns)
	assert.True(t, got.FunctionsOnly)
	assert.Equal(t, 2, got.UniqueCount)
	assert.Equal(t, 1, got.CollisionCount)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetRun_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetRun(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListRuns_NewestFirst(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	filter := FilterRecord{Patterns: []string{"neg"}}

	first, err := s.SaveReport(ctx, testReport("a.json"), filter)
	require.NoError(t, err)
	second, err := s.SaveReport(ctx, testReport("b.json"), filter)
	require.NoError(t, err)

	runs, err := s.ListRuns(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, first.ID, runs[1].ID)
}

func TestListRuns_FilterAndLimit(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	filter := FilterRecord{Patterns: []string{"neg"}}

	for i := 0; i < 3; i++ {
		_, err := s.SaveReport(ctx, testReport("a.json"), filter)
		require.NoError(t, err)
	}
	_, err := s.SaveReport(ctx, testReport("b.json"), filter)
	require.NoError(t, err)

	runs, err := s.ListRuns(ctx, "a.json", 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, run := range runs {
		assert.Equal(t, "a.json", run.FilePath)
	}
}

func TestListFindingsByRun(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	run, err := s.SaveReport(ctx, testReport("index.json"), FilterRecord{Patterns: []string{"neg", "mul"}})
	require.NoError(t, err)

	findings, err := s.ListFindingsByRun(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, findings, 2)

	mul := findings[0]
	assert.Equal(t, "m/Bar#mul().", mul.Symbol)
	assert.Equal(t, 12, mul.FirstLine)
	assert.Equal(t, "12,40,88", mul.Lines)
	assert.True(t, mul.Collision)

	neg := findings[1]
	assert.Equal(t, "m/Foo#neg().", neg.Symbol)
	assert.Equal(t, 5, neg.FirstLine)
	assert.Equal(t, "5", neg.Lines)
	assert.False(t, neg.Collision)

	lines, err := SplitLines(mul.Lines)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 40, 88}, lines)
}

func TestSplitLines(t *testing.T) {
	lines, err := SplitLines("")
	require.NoError(t, err)
	assert.Nil(t, lines)

	_, err = SplitLines("1,x,3")
	assert.Error(t, err)
}

func TestSaveReport_EmptyReport(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	run, err := s.SaveReport(ctx, &types.Report{Path: "empty.json", Patterns: []string{"neg"}},
		FilterRecord{Patterns: []string{"neg"}})
	require.NoError(t, err)
	assert.Equal(t, 0, run.UniqueCount)
	assert.Equal(t, 0, run.CollisionCount)

	findings, err := s.ListFindingsByRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Empty(t, findings)
}
