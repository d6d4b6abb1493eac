package solver

import (
	"github.com/arcpost/arcpost/apperr"
	"github.com/arcpost/arcpost/problem"
	"github.com/arcpost/arcpost/route"
)

// Name reports the human-readable name of solver id solverID, the way
// route reports identify which procedure produced them. Returns "" for an
// id Solve would reject.
func Name(solverID int) string {
	switch solverID {
	case 1:
		return "UCPP"
	case 2:
		return "DCPP"
	case 3:
		return "Frederickson MCPP"
	case 4:
		return "Yaoyuenyong MCPP"
	case 5:
		return "Win WPP"
	case 7:
		return "Benavent H1 WRPP"
	default:
		return ""
	}
}

// Solve dispatches p to the procedure named by solverID (§4.2-§4.7):
//
//	1 UCPP                2 DCPP                3 Frederickson MCPP
//	4 Yaoyuenyong MCPP     5 Win WPP             7 Benavent H1 WRPP
//
// Id 6 is reserved and, like any id outside 1..7, returns
// UnsupportedSolver.
func Solve(p *problem.Problem, solverID int, opts Options) (*route.Route, error) {
	switch solverID {
	case 1:
		return UCPP(p, opts)
	case 2:
		return DCPP(p, opts)
	case 3:
		return Frederickson(p, opts)
	case 4:
		return Yaoyuenyong(p, opts)
	case 5:
		return WPPWin(p, opts)
	case 7:
		return BenaventH1(p, opts)
	default:
		return nil, apperr.NewUnsupportedSolver(solverID)
	}
}
