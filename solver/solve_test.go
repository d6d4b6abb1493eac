package solver_test

import (
	"testing"

	"github.com/arcpost/arcpost/apperr"
	"github.com/arcpost/arcpost/core"
	"github.com/arcpost/arcpost/problem"
	"github.com/arcpost/arcpost/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSquareProblem(t *testing.T) *problem.Problem {
	t.Helper()
	g := core.NewGraph(core.Undirected)
	g.EnsureVertices(4)
	_, err := g.AddLink(1, 2, 5, core.WithRequired())
	require.NoError(t, err)
	_, err = g.AddLink(2, 3, 3, core.WithRequired())
	require.NoError(t, err)
	_, err = g.AddLink(3, 4, 7, core.WithRequired())
	require.NoError(t, err)
	_, err = g.AddLink(4, 1, 2, core.WithRequired())
	require.NoError(t, err)
	require.NoError(t, g.SetDepot(1))

	p, err := problem.New(g)
	require.NoError(t, err)

	return p
}

func TestSolveDispatchesToUCPP(t *testing.T) {
	p := buildSquareProblem(t)
	r, err := solver.Solve(p, 1, solver.DefaultOptions())
	require.NoError(t, err)
	total, err := r.TotalCost()
	require.NoError(t, err)
	assert.EqualValues(t, 17, total)
}

func TestSolveRejectsReservedID(t *testing.T) {
	p := buildSquareProblem(t)
	_, err := solver.Solve(p, 6, solver.DefaultOptions())
	require.Error(t, err)
	var ue *apperr.UnsupportedSolver
	require.ErrorAs(t, err, &ue)
}

func TestSolveRejectsOutOfRangeID(t *testing.T) {
	p := buildSquareProblem(t)
	_, err := solver.Solve(p, 42, solver.DefaultOptions())
	require.Error(t, err)
	var ue *apperr.UnsupportedSolver
	require.ErrorAs(t, err, &ue)
}

func TestNameCoversEverySupportedID(t *testing.T) {
	for _, id := range []int{1, 2, 3, 4, 5, 7} {
		assert.NotEmpty(t, solver.Name(id))
	}
	assert.Empty(t, solver.Name(6))
}
