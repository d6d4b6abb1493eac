package route_test

import (
	"math"
	"testing"

	"github.com/arcpost/arcpost/apperr"
	"github.com/arcpost/arcpost/core"
	"github.com/arcpost/arcpost/problem"
	"github.com/arcpost/arcpost/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareProblem(t *testing.T) *problem.Problem {
	t.Helper()
	g := core.NewGraph(core.Undirected)
	for i := 0; i < 4; i++ {
		g.AddVertex()
	}
	_, _ = g.AddLink(1, 2, 5, core.WithRequired())
	_, _ = g.AddLink(2, 3, 3, core.WithRequired())
	_, _ = g.AddLink(3, 4, 7, core.WithRequired())
	_, _ = g.AddLink(4, 1, 2, core.WithRequired())
	require.NoError(t, g.SetDepot(1))

	p, err := problem.New(g)
	require.NoError(t, err)

	return p
}

func squareRoute() *route.Route {
	return route.New([]route.Traversal{
		{LinkID: 1, From: 1, To: 2, Cost: 5},
		{LinkID: 2, From: 2, To: 3, Cost: 3},
		{LinkID: 3, From: 3, To: 4, Cost: 7},
		{LinkID: 4, From: 4, To: 1, Cost: 2},
	})
}

func TestRouteValidatesSquare(t *testing.T) {
	p := squareProblem(t)
	r := squareRoute()
	assert.NoError(t, r.Validate(p))
	total, err := r.TotalCost()
	require.NoError(t, err)
	assert.Equal(t, int64(17), total)
	assert.Equal(t, 0, r.DeadheadCount(p))
	assert.Equal(t, []int{1, 2, 3, 4, 1}, r.Vertices(1))
}

func TestRouteEmptyValidWhenNoRequiredLinks(t *testing.T) {
	g := core.NewGraph(core.Undirected)
	g.AddVertex()
	require.NoError(t, g.SetDepot(1))
	p, err := problem.New(g)
	require.NoError(t, err)

	r := route.New(nil)
	assert.NoError(t, r.Validate(p))
	total, err := r.TotalCost()
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestTotalCostReportsOverflow(t *testing.T) {
	r := route.New([]route.Traversal{
		{LinkID: 1, From: 1, To: 2, Cost: math.MaxInt64 - 1},
		{LinkID: 2, From: 2, To: 3, Cost: 2},
	})

	_, err := r.TotalCost()
	var overflow *apperr.CostOverflow
	require.ErrorAs(t, err, &overflow)
}

func TestRouteRejectsDisconnectedTraversals(t *testing.T) {
	p := squareProblem(t)
	r := route.New([]route.Traversal{
		{LinkID: 1, From: 1, To: 2, Cost: 5},
		{LinkID: 3, From: 3, To: 4, Cost: 7},
	})
	assert.ErrorIs(t, r.Validate(p), route.ErrNotAWalk)
}

func TestRouteRejectsMissingRequiredLink(t *testing.T) {
	p := squareProblem(t)
	r := route.New([]route.Traversal{
		{LinkID: 1, From: 1, To: 2, Cost: 5},
		{LinkID: 2, From: 2, To: 3, Cost: 3},
	})
	err := r.Validate(p)
	var missing *route.MissingRequiredLinkError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 3, missing.LinkID)
}

func TestRouteRejectsWrongDepot(t *testing.T) {
	p := squareProblem(t)
	r := route.New([]route.Traversal{
		{LinkID: 2, From: 2, To: 3, Cost: 3},
	})
	err := r.Validate(p)
	var mismatch *route.DepotMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.False(t, mismatch.AtEnd)
}

func TestReportString(t *testing.T) {
	p := squareProblem(t)
	r := squareRoute()
	require.NoError(t, r.Validate(p))
	rep, err := route.NewReport("square.txt", "ucpp", r, p)
	require.NoError(t, err)
	s := rep.String()
	assert.Contains(t, s, "total cost: 17")
	assert.Contains(t, s, "required links: 4")
	assert.Contains(t, s, "deadheads: 0")
	assert.Contains(t, s, "walk: 1 -> 2 -> 3 -> 4 -> 1")
	assert.NotEmpty(t, rep.RunID)
}
