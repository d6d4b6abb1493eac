package app_test

import (
	"strings"
	"testing"

	"github.com/arcpost/arcpost/apperr"
	"github.com/arcpost/arcpost/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ucppSquare = `Graph Type: undirected
N: 4
Depot ID: 1

LINKS
1,2,5,true
2,3,3,true
3,4,7,true
4,1,2,true
END LINKS
`

func TestSolveUCPPSquareEndToEnd(t *testing.T) {
	report, err := app.Solve(1, ucppSquare)
	require.NoError(t, err)
	assert.Contains(t, report, "solver: UCPP")
	assert.Contains(t, report, "total cost: 17")
	assert.Contains(t, report, "walk: 1 -> 2 -> 3 -> 4 -> 1")
}

func TestSolveDCPPWithImbalanceEndToEnd(t *testing.T) {
	text := `Graph Type: directed
N: 4
Depot ID: 1

LINKS
1,2,5,true
2,3,3,true
3,4,7,true
4,1,2,true
1,3,4,true
END LINKS
`
	report, err := app.Solve(2, text)
	require.NoError(t, err)
	assert.Contains(t, report, "total cost: 30")
}

func TestSolveRejectsReservedSolverID(t *testing.T) {
	_, err := app.Solve(6, ucppSquare)
	require.Error(t, err)
	var ue *apperr.UnsupportedSolver
	require.ErrorAs(t, err, &ue)
}

func TestSolvePropagatesParseError(t *testing.T) {
	_, err := app.Solve(1, "not an instance")
	require.Error(t, err)
	var pe *apperr.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestSolveNoDepotIsParseError(t *testing.T) {
	text := `Graph Type: undirected
N: 2

LINKS
1,2,5,true
END LINKS
`
	_, err := app.Solve(1, text)
	require.Error(t, err)
	var pe *apperr.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestValidateAcceptsWellFormedInstance(t *testing.T) {
	require.NoError(t, app.Validate(ucppSquare))
}

func TestValidateRejectsMalformedInstance(t *testing.T) {
	err := app.Validate("Graph Type: undirected\n")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "parse error"))
}
