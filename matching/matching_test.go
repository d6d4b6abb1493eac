package matching_test

import (
	"testing"

	"github.com/arcpost/arcpost/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weights: a small complete graph on {1,2,3,4} where the optimal perfect
// matching is (1,2)+(3,4) at cost 1+1=2, versus (1,3)+(2,4) or (1,4)+(2,3)
// at cost 10+10=20 each.
func cheapAdjacentWeight(a, b int) int64 {
	pairs := map[[2]int]int64{
		{1, 2}: 1, {3, 4}: 1,
		{1, 3}: 10, {2, 4}: 10,
		{1, 4}: 10, {2, 3}: 10,
	}
	if a > b {
		a, b = b, a
	}

	return pairs[[2]int{a, b}]
}

func TestSolveOddSetErrors(t *testing.T) {
	_, err := matching.Solve([]int{1, 2, 3}, cheapAdjacentWeight, matching.Auto)
	assert.ErrorIs(t, err, matching.ErrOddVertexSet)
}

func TestSolveEmptySet(t *testing.T) {
	m, err := matching.Solve(nil, cheapAdjacentWeight, matching.Auto)
	require.NoError(t, err)
	assert.Equal(t, int64(0), m.Cost)
	assert.Empty(t, m.Pairs)
}

func TestExactFindsOptimum(t *testing.T) {
	m, err := matching.Solve([]int{1, 2, 3, 4}, cheapAdjacentWeight, matching.ForceExact)
	require.NoError(t, err)
	assert.Equal(t, int64(2), m.Cost)
	assert.True(t, m.Exact)
	assert.ElementsMatch(t, m.Pairs, []matching.Pair{{A: 1, B: 2}, {A: 3, B: 4}})
}

func TestGreedyMatchesEveryVertexExactlyOnce(t *testing.T) {
	m, err := matching.Solve([]int{1, 2, 3, 4}, cheapAdjacentWeight, matching.ForceGreedy)
	require.NoError(t, err)
	assert.False(t, m.Exact)
	seen := map[int]bool{}
	for _, p := range m.Pairs {
		assert.False(t, seen[p.A])
		assert.False(t, seen[p.B])
		seen[p.A], seen[p.B] = true, true
		assert.Less(t, p.A, p.B)
	}
	assert.Len(t, seen, 4)
}

func TestAutoPicksExactBelowCeiling(t *testing.T) {
	m, err := matching.Solve([]int{1, 2, 3, 4}, cheapAdjacentWeight, matching.Auto)
	require.NoError(t, err)
	assert.True(t, m.Exact)
}
