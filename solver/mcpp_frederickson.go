// File: mcpp_frederickson.go
// Role: §4.4 mixed Chinese Postman, Frederickson's 2-approximation.
package solver

import (
	"github.com/arcpost/arcpost/apperr"
	"github.com/arcpost/arcpost/connectivity"
	"github.com/arcpost/arcpost/core"
	"github.com/arcpost/arcpost/problem"
	"github.com/arcpost/arcpost/route"
)

// fixpointRounds bounds the alternation between parity repair and
// imbalance repair that each Frederickson sub-procedure runs: repairing
// one property can disturb the other (duplicating an arc changes its
// endpoints' total degree; duplicating an edge's path can touch arcs and
// so change in/out balance), so both fixes are re-applied until a round
// changes nothing. Small mixed instances converge in one or two rounds;
// this is a safety margin, not an expected iteration count.
const fixpointRounds = 8

// Frederickson solves the mixed Chinese Postman problem by running two
// sub-procedures — EvenDegree-then-InOut and InOut-then-Even — to a fixed
// point of "every vertex has even total degree and in-degree == out-degree"
// (the mixed-graph Eulerian precondition), then returning whichever
// produced the cheaper circuit. Ties are broken in favor of sub-procedure 1
// (EvenDegree-then-InOut), per §4.4's "ties broken by sub-procedure index."
func Frederickson(p *problem.Problem, opts Options) (*route.Route, error) {
	if opts.cancelled() {
		return nil, apperr.NewCancelled()
	}

	required := p.Required()
	if len(required) == 0 {
		return route.New(nil), nil
	}

	depot := p.Depot()
	base := p.Graph().Copy()

	if lid, bad := firstUnreachableLink(base, depot, required, true); bad {
		return nil, apperr.NewInfeasibleInstance(lid, "required link is not strongly reachable from the depot")
	}

	g1 := base.Copy()
	dup1 := DuplicateMap{}
	if err := frederickSubProcedure(g1, dup1, opts, true); err != nil {
		return nil, err
	}
	r1, err := buildCircuit(g1, depot, dup1)
	if err != nil {
		return nil, err
	}

	if opts.cancelled() {
		return nil, apperr.NewCancelled()
	}

	g2 := base.Copy()
	dup2 := DuplicateMap{}
	if err := frederickSubProcedure(g2, dup2, opts, false); err != nil {
		return nil, err
	}
	r2, err := buildCircuit(g2, depot, dup2)
	if err != nil {
		return nil, err
	}

	c1, err := r1.TotalCost()
	if err != nil {
		return nil, err
	}
	c2, err := r2.TotalCost()
	if err != nil {
		return nil, err
	}
	if c2 < c1 {
		return r2, nil
	}

	return r1, nil
}

// frederickSubProcedure runs one of §4.4's two orderings to a fixed point:
// evenFirst == true is "EvenDegree then InOut", false is "InOut then Even".
func frederickSubProcedure(g *core.Graph, dup DuplicateMap, opts Options, evenFirst bool) error {
	for round := 0; round < fixpointRounds; round++ {
		oddBefore, err := connectivity.OddDegreeVertices(g)
		if err != nil {
			return apperr.NewInternalInvariantViolation("odd-degree classification failed", err)
		}
		imbBefore, err := connectivity.Imbalance(g)
		if err != nil {
			return apperr.NewInternalInvariantViolation("imbalance classification failed", err)
		}
		if len(oddBefore) == 0 && allZero(imbBefore) {
			return nil
		}

		if evenFirst {
			if err := repairParity(g, dup, opts); err != nil {
				return err
			}
			if err := resolveImbalance(g, dup, opts); err != nil {
				return err
			}
		} else {
			if err := resolveImbalance(g, dup, opts); err != nil {
				return err
			}
			if err := repairParity(g, dup, opts); err != nil {
				return err
			}
		}
	}

	odd, err := connectivity.OddDegreeVertices(g)
	if err != nil || len(odd) > 0 {
		return apperr.NewInternalInvariantViolation("mixed parity/imbalance repair did not converge", err)
	}
	imb, err := connectivity.Imbalance(g)
	if err != nil || !allZero(imb) {
		return apperr.NewInternalInvariantViolation("mixed parity/imbalance repair did not converge", err)
	}

	return nil
}

func allZero(imb []int) bool {
	for _, v := range imb {
		if v != 0 {
			return false
		}
	}

	return true
}
