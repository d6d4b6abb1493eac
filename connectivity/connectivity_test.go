package connectivity_test

import (
	"testing"

	"github.com/arcpost/arcpost/connectivity"
	"github.com/arcpost/arcpost/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeaklyConnectedComponentsTwoIslands(t *testing.T) {
	g := core.NewGraph(core.Undirected)
	for i := 0; i < 4; i++ {
		g.AddVertex()
	}
	_, _ = g.AddLink(1, 2, 1)
	_, _ = g.AddLink(3, 4, 1)

	comps := connectivity.WeaklyConnectedComponents(g)
	require.Len(t, comps, 2)

	unreachable, ok := connectivity.WeaklyReachableFromDepot(g, 1, []int{3})
	assert.False(t, ok)
	assert.Equal(t, 3, unreachable)
}

func TestStronglyConnectedComponentsDirectedCycle(t *testing.T) {
	g := core.NewGraph(core.Directed)
	for i := 0; i < 3; i++ {
		g.AddVertex()
	}
	_, _ = g.AddLink(1, 2, 1)
	_, _ = g.AddLink(2, 3, 1)
	_, _ = g.AddLink(3, 1, 1)

	_, ok := connectivity.StronglyReachableFromDepot(g, 1, []int{2, 3})
	assert.True(t, ok)
}

func TestStronglyConnectedComponentsDirectedNoReturn(t *testing.T) {
	g := core.NewGraph(core.Directed)
	for i := 0; i < 2; i++ {
		g.AddVertex()
	}
	_, _ = g.AddLink(1, 2, 1) // no way back to 1

	unreachable, ok := connectivity.StronglyReachableFromDepot(g, 1, []int{2})
	assert.False(t, ok)
	assert.Equal(t, 2, unreachable)
}

func TestOddDegreeVerticesSquareIsEmpty(t *testing.T) {
	g := core.NewGraph(core.Undirected)
	for i := 0; i < 4; i++ {
		g.AddVertex()
	}
	_, _ = g.AddLink(1, 2, 1)
	_, _ = g.AddLink(2, 3, 1)
	_, _ = g.AddLink(3, 4, 1)
	_, _ = g.AddLink(4, 1, 1)

	odd, err := connectivity.OddDegreeVertices(g)
	require.NoError(t, err)
	assert.Empty(t, odd)
}

func TestImbalanceDirected(t *testing.T) {
	g := core.NewGraph(core.Directed)
	for i := 0; i < 4; i++ {
		g.AddVertex()
	}
	_, _ = g.AddLink(1, 2, 5)
	_, _ = g.AddLink(2, 3, 3)
	_, _ = g.AddLink(3, 4, 7)
	_, _ = g.AddLink(4, 1, 2)
	_, _ = g.AddLink(1, 3, 4)

	imb, err := connectivity.Imbalance(g)
	require.NoError(t, err)
	pos, neg := connectivity.PositiveNegativeExcess(imb)
	assert.Equal(t, []int{3}, pos)
	assert.Equal(t, []int{1}, neg)
}
