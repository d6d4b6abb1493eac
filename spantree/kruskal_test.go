package spantree_test

import (
	"testing"

	"github.com/arcpost/arcpost/spantree"
	"github.com/stretchr/testify/assert"
)

func TestKruskalPicksMinimumSpanningTree(t *testing.T) {
	vertices := []int{1, 2, 3, 4}
	edges := []spantree.WeightedEdge{
		{ID: 1, U: 1, V: 2, Weight: 5},
		{ID: 2, U: 2, V: 3, Weight: 3},
		{ID: 3, U: 3, V: 4, Weight: 7},
		{ID: 4, U: 4, V: 1, Weight: 2},
		{ID: 5, U: 1, V: 3, Weight: 100},
	}
	f := spantree.Kruskal(vertices, edges)
	assert.Equal(t, int64(10), f.TotalWeight) // picks 2(4-1) + 3(2-3) + 5(1-2), skipping 7 and 100
	assert.Len(t, f.Edges, 3)
}

func TestKruskalDeterministicTieBreak(t *testing.T) {
	vertices := []int{1, 2, 3}
	edges := []spantree.WeightedEdge{
		{ID: 2, U: 1, V: 3, Weight: 1},
		{ID: 1, U: 1, V: 2, Weight: 1},
		{ID: 3, U: 2, V: 3, Weight: 1},
	}
	f := spantree.Kruskal(vertices, edges)
	assert.Equal(t, int64(2), f.TotalWeight)
	assert.Len(t, f.Edges, 2)
	assert.Equal(t, 1, f.Edges[0].ID)
}

func TestKruskalForestOnDisconnectedInput(t *testing.T) {
	vertices := []int{1, 2, 3, 4}
	edges := []spantree.WeightedEdge{
		{ID: 1, U: 1, V: 2, Weight: 1},
		{ID: 2, U: 3, V: 4, Weight: 1},
	}
	f := spantree.Kruskal(vertices, edges)
	assert.Len(t, f.Edges, 2)
	assert.Equal(t, int64(2), f.TotalWeight)
}
