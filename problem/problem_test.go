package problem_test

import (
	"testing"

	"github.com/arcpost/arcpost/core"
	"github.com/arcpost/arcpost/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.Undirected)
	for i := 0; i < 4; i++ {
		g.AddVertex()
	}
	_, err := g.AddLink(1, 2, 5, core.WithRequired())
	require.NoError(t, err)
	_, err = g.AddLink(2, 3, 3, core.WithRequired())
	require.NoError(t, err)
	_, err = g.AddLink(3, 4, 7)
	require.NoError(t, err)
	require.NoError(t, g.SetDepot(1))

	return g
}

func TestNewRejectsMissingDepot(t *testing.T) {
	g := core.NewGraph(core.Undirected)
	g.AddVertex()
	_, err := problem.New(g)
	assert.ErrorIs(t, err, problem.ErrNoDepot)
}

func TestNewRural(t *testing.T) {
	g := buildSquare(t)
	p, err := problem.New(g)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Depot())
	assert.Equal(t, []int{1, 2}, p.Required())
	assert.True(t, p.IsRequired(1))
	assert.False(t, p.IsRequired(3))
	assert.Equal(t, problem.Rural, p.Family())
}

func TestNewPostmanWhenEveryLinkRequired(t *testing.T) {
	g := core.NewGraph(core.Undirected)
	for i := 0; i < 3; i++ {
		g.AddVertex()
	}
	_, _ = g.AddLink(1, 2, 1, core.WithRequired())
	_, _ = g.AddLink(2, 3, 1, core.WithRequired())
	require.NoError(t, g.SetDepot(1))

	p, err := problem.New(g)
	require.NoError(t, err)
	assert.Equal(t, problem.Postman, p.Family())
}

func TestRequiredReturnsACopy(t *testing.T) {
	g := buildSquare(t)
	p, err := problem.New(g)
	require.NoError(t, err)
	r := p.Required()
	r[0] = 999
	assert.Equal(t, []int{1, 2}, p.Required())
}
