package eulerian_test

import (
	"testing"

	"github.com/arcpost/arcpost/core"
	"github.com/arcpost/arcpost/eulerian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitSquare(t *testing.T) {
	g := core.NewGraph(core.Undirected)
	for i := 0; i < 4; i++ {
		g.AddVertex()
	}
	_, _ = g.AddLink(1, 2, 5)
	_, _ = g.AddLink(2, 3, 3)
	_, _ = g.AddLink(3, 4, 7)
	_, _ = g.AddLink(4, 1, 2)

	adj, n := eulerian.BuildAdjacency(g)
	segs, err := eulerian.Circuit(adj, 1, n)
	require.NoError(t, err)
	require.Len(t, segs, 4)
	assert.Equal(t, 1, segs[0].From)
	assert.Equal(t, 1, segs[len(segs)-1].To)
}

func TestCircuitTrivialSingleVertex(t *testing.T) {
	g := core.NewGraph(core.Undirected)
	g.AddVertex()
	adj, n := eulerian.BuildAdjacency(g)
	segs, err := eulerian.Circuit(adj, 1, n)
	require.NoError(t, err)
	assert.Empty(t, segs)
}

func TestCircuitSelfLoopTraversedOnce(t *testing.T) {
	g := core.NewGraph(core.Undirected)
	g.AddVertex()
	_, _ = g.AddLink(1, 1, 3)
	adj, n := eulerian.BuildAdjacency(g)
	segs, err := eulerian.Circuit(adj, 1, n)
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, 1, segs[0].From)
	assert.Equal(t, 1, segs[0].To)
}

// TestCircuitForwardSplicePreference builds a graph where the depot (1) has
// two disjoint triangles hanging off it: 1-2-3-1 and 1-4-5-1. Starting the
// walk at 1, the lowest-id link takes the first triangle, and on returning
// to 1 the walk continues straight into the second, producing
// 1->2->3->1->4->5->1 — never the second triangle placed ahead of the first.
func TestCircuitForwardSplicePreference(t *testing.T) {
	g := core.NewGraph(core.Undirected)
	for i := 0; i < 5; i++ {
		g.AddVertex()
	}
	_, _ = g.AddLink(1, 2, 1)
	_, _ = g.AddLink(2, 3, 1)
	_, _ = g.AddLink(3, 1, 1)
	_, _ = g.AddLink(1, 4, 1)
	_, _ = g.AddLink(4, 5, 1)
	_, _ = g.AddLink(5, 1, 1)

	adj, n := eulerian.BuildAdjacency(g)
	segs, err := eulerian.Circuit(adj, 1, n)
	require.NoError(t, err)
	require.Len(t, segs, 6)

	var walk []int
	walk = append(walk, segs[0].From)
	for _, s := range segs {
		walk = append(walk, s.To)
	}
	assert.Equal(t, []int{1, 2, 3, 1, 4, 5, 1}, walk)
}

func TestCircuitDirectedArcOnlyOneWay(t *testing.T) {
	g := core.NewGraph(core.Directed)
	for i := 0; i < 3; i++ {
		g.AddVertex()
	}
	_, _ = g.AddLink(1, 2, 1)
	_, _ = g.AddLink(2, 3, 1)
	_, _ = g.AddLink(3, 1, 1)

	adj, n := eulerian.BuildAdjacency(g)
	segs, err := eulerian.Circuit(adj, 1, n)
	require.NoError(t, err)
	require.Len(t, segs, 3)
}
