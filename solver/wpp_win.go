// File: wpp_win.go
// Role: §4.6 windy Chinese Postman, Win's heuristic.
package solver

import (
	"github.com/arcpost/arcpost/apperr"
	"github.com/arcpost/arcpost/core"
	"github.com/arcpost/arcpost/eulerian"
	"github.com/arcpost/arcpost/problem"
	"github.com/arcpost/arcpost/route"
)

// WPPWin solves the windy Chinese Postman problem: every edge of p's graph
// carries a forward cost and a (possibly different) reverse cost, and every
// edge is required. Win's heuristic averages the two costs into an
// ordinary undirected instance, runs UCPP's own augmentation (odd-vertex
// matching over the averaged distances) to get a valid Eulerian multigraph,
// extracts the circuit once, and then — since no per-edge direction choice
// can be made independently without breaking the walk's continuity — picks
// whichever of "traverse forward" or "traverse the whole circuit reversed"
// realizes the lower total cost under the true, asymmetric windy costs.
func WPPWin(p *problem.Problem, opts Options) (*route.Route, error) {
	if opts.cancelled() {
		return nil, apperr.NewCancelled()
	}

	required := p.Required()
	if len(required) == 0 {
		return route.New(nil), nil
	}

	depot := p.Depot()
	windy := p.Graph().Copy()

	if lid, bad := firstUnreachableLink(windy, depot, required, false); bad {
		return nil, apperr.NewInfeasibleInstance(lid, "required edge is not reachable from the depot")
	}

	avg := relabelGraph(windy, averageCost)

	dup := DuplicateMap{}
	if err := repairParity(avg, dup, opts); err != nil {
		return nil, err
	}

	if opts.cancelled() {
		return nil, apperr.NewCancelled()
	}

	adj, n := eulerian.BuildAdjacency(avg)
	segs, err := eulerian.Circuit(adj, depot, n)
	if err != nil {
		return nil, err
	}

	// avg's own ids and From/To (including any parity-repair duplicates)
	// are what segs actually names; windy has no entry at all for a
	// duplicate id, so the circuit must be realized over a graph that
	// shares avg's topology but carries windy's true, asymmetric costs.
	trueAvg, err := trueCostGraph(avg, windy, dup)
	if err != nil {
		return nil, apperr.NewInternalInvariantViolation("true-cost graph reconstruction failed", err)
	}

	return resolveWindyDirection(trueAvg, segs, dup)
}

// resolveWindyDirection realizes the Eulerian circuit extracted from the
// averaged graph under windy's true costs, in both the as-extracted
// direction and fully reversed, and returns a Route for whichever totals
// less. Ties keep the forward direction.
func resolveWindyDirection(windy *core.Graph, segs []eulerian.Segment, dup DuplicateMap) (*route.Route, error) {
	forward, err := segmentsToTraversals(windy, segs, dup)
	if err != nil {
		return nil, err
	}

	reversed, err := segmentsToTraversals(windy, reverseSegments(segs), dup)
	if err != nil {
		return nil, err
	}

	fwdRoute, revRoute := route.New(forward), route.New(reversed)
	fwdCost, err := fwdRoute.TotalCost()
	if err != nil {
		return nil, err
	}
	revCost, err := revRoute.TotalCost()
	if err != nil {
		return nil, err
	}
	if revCost < fwdCost {
		return revRoute, nil
	}

	return fwdRoute, nil
}

// reverseSegments reverses the order of a closed walk's segments and each
// segment's own direction, producing the same circuit traversed the other
// way — a valid closed walk in its own right since every underlying link is
// undirected.
func reverseSegments(segs []eulerian.Segment) []eulerian.Segment {
	out := make([]eulerian.Segment, len(segs))
	for i, s := range segs {
		out[len(segs)-1-i] = eulerian.Segment{LinkID: s.LinkID, From: s.To, To: s.From}
	}

	return out
}
