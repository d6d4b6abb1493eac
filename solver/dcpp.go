// File: dcpp.go
// Role: §4.3 directed Chinese Postman, exact.
package solver

import (
	"github.com/arcpost/arcpost/apperr"
	"github.com/arcpost/arcpost/connectivity"
	"github.com/arcpost/arcpost/core"
	"github.com/arcpost/arcpost/problem"
	"github.com/arcpost/arcpost/route"
)

// DCPP solves the directed Chinese Postman problem exactly: every arc of
// p's graph is required, so every vertex's in-degree must already equal
// (or be brought to equal, by arc duplication) its out-degree before an
// Eulerian circuit exists. Classify vertices by (in-out), duplicate
// shortest directed paths from excess-in to excess-out vertices chosen by
// a min-cost flow over the resulting transportation network, then extract
// the circuit.
func DCPP(p *problem.Problem, opts Options) (*route.Route, error) {
	if opts.cancelled() {
		return nil, apperr.NewCancelled()
	}

	required := p.Required()
	if len(required) == 0 {
		return route.New(nil), nil
	}

	depot := p.Depot()
	g := p.Graph().Copy()

	if lid, bad := firstUnreachableLink(g, depot, required, true); bad {
		return nil, apperr.NewInfeasibleInstance(lid, "required arc is not strongly reachable from the depot")
	}

	dup := DuplicateMap{}
	if err := resolveImbalance(g, dup, opts); err != nil {
		return nil, err
	}

	if err := verifyDirectedEulerian(g); err != nil {
		return nil, err
	}

	return buildCircuit(g, depot, dup)
}

// verifyDirectedEulerian checks the precondition Hierholzer needs for a
// purely directed multigraph: every vertex with any incident link has
// in-degree == out-degree.
func verifyDirectedEulerian(g *core.Graph) error {
	imb, err := connectivity.Imbalance(g)
	if err != nil {
		return apperr.NewInternalInvariantViolation("post-augmentation imbalance check failed", err)
	}
	for v := 1; v < len(imb); v++ {
		if imb[v] != 0 {
			return apperr.NewInternalInvariantViolation("vertex in/out degree imbalance remains after augmentation", nil)
		}
	}

	return nil
}
