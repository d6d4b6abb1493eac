// File: ucpp.go
// Role: §4.2 undirected Chinese Postman, exact.
package solver

import (
	"github.com/arcpost/arcpost/apperr"
	"github.com/arcpost/arcpost/problem"
	"github.com/arcpost/arcpost/route"
)

// UCPP solves the undirected Chinese Postman problem exactly: every edge
// of p's graph is required. Odd-degree vertices are paired by a
// minimum-cost perfect matching over all-pairs shortest-path distances,
// and the shortest path of each matched pair is duplicated so every
// vertex ends with even degree, satisfying Hierholzer's precondition. The
// result is optimal whenever the matching step runs exact.
func UCPP(p *problem.Problem, opts Options) (*route.Route, error) {
	if opts.cancelled() {
		return nil, apperr.NewCancelled()
	}

	required := p.Required()
	if len(required) == 0 {
		return route.New(nil), nil
	}

	depot := p.Depot()
	g := p.Graph().Copy()

	if lid, bad := firstUnreachableLink(g, depot, required, false); bad {
		return nil, apperr.NewInfeasibleInstance(lid, "required edge is not reachable from the depot")
	}

	dup := DuplicateMap{}
	if err := repairParity(g, dup, opts); err != nil {
		return nil, err
	}

	return buildCircuit(g, depot, dup)
}
