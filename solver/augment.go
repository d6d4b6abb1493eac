// File: augment.go
// Role: augmentation helpers shared by every solver: edge doubling along a
// shortest path, feasibility checks, and translating an extracted Eulerian
// circuit into a route.Route that names original link ids.
package solver

import (
	"fmt"

	"github.com/arcpost/arcpost/apperr"
	"github.com/arcpost/arcpost/connectivity"
	"github.com/arcpost/arcpost/core"
	"github.com/arcpost/arcpost/eulerian"
	"github.com/arcpost/arcpost/matching"
	"github.com/arcpost/arcpost/route"
	"github.com/arcpost/arcpost/shortestpath"
)

// repairParity matches every odd-degree vertex of g (undirected-projection
// degree, per connectivity.OddDegreeVertices) by minimum-cost perfect
// matching over current shortest-path distances, and duplicates each
// matched pair's shortest path — the parity-repair step shared by UCPP
// (§4.2) and Frederickson's EvenDegree phase (§4.4).
func repairParity(g *core.Graph, dup DuplicateMap, opts Options) error {
	odd, err := connectivity.OddDegreeVertices(g)
	if err != nil {
		return apperr.NewInternalInvariantViolation("odd-degree classification failed", err)
	}
	if len(odd) == 0 {
		return nil
	}
	if opts.cancelled() {
		return apperr.NewCancelled()
	}

	apsp := shortestpath.APSP(g)
	m, err := matching.Solve(odd, func(a, b int) int64 { return apsp.CostOf(a, b) }, opts.Matching)
	if err != nil {
		return apperr.NewInternalInvariantViolation("odd-vertex matching failed", err)
	}
	for _, pair := range m.Pairs {
		if opts.cancelled() {
			return apperr.NewCancelled()
		}
		if err := duplicatePath(g, apsp, dup, pair.A, pair.B); err != nil {
			return err
		}
	}

	return nil
}

// DuplicateMap records, for each link id a solver adds purely to satisfy an
// Eulerian precondition, the id of the original link it duplicates — so the
// final Route reports the graph the caller actually passed in, per
// spec.md §3's "solvers work on copies and return a new Route referencing
// the original link ids."
type DuplicateMap map[int]int

// cheapestLinkBetween returns the lowest-cost link of g directly
// traversable from u to v, tie-broken by ascending link id, or nil if none
// exists.
func cheapestLinkBetween(g *core.Graph, u, v int) *core.Link {
	neighbors, err := g.Neighbors(u)
	if err != nil {
		return nil
	}

	var best *core.Link
	for _, l := range neighbors {
		if l.Other(u) != v {
			continue
		}
		if best == nil || l.Cost < best.Cost {
			best = l
		}
	}

	return best
}

// duplicatePath adds a parallel copy of every link along the shortest path
// from 'from' to 'to' (as reconstructed from apsp), recording each added
// link in dup. This is the "duplicate the shortest path... adding parallel
// edges" step of §4.2-§4.7.
func duplicatePath(g *core.Graph, apsp *shortestpath.Result, dup DuplicateMap, from, to int) error {
	path, err := apsp.Path(from, to)
	if err != nil {
		return apperr.NewInternalInvariantViolation("augmentation path reconstruction failed", err)
	}

	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		orig := cheapestLinkBetween(g, u, v)
		if orig == nil {
			return apperr.NewInternalInvariantViolation(
				fmt.Sprintf("no direct link from %d to %d to duplicate", u, v), nil)
		}

		fwd, err := g.TraversalCost(orig, u)
		if err != nil {
			return apperr.NewInternalInvariantViolation("augmentation cost lookup failed", err)
		}
		rev := fwd
		if !orig.Directed {
			if r, err := g.TraversalCost(orig, v); err == nil {
				rev = r
			}
		}

		newID, err := g.AddLink(u, v, fwd, core.WithReverseCost(rev), core.WithLinkDirected(orig.Directed))
		if err != nil {
			return apperr.NewInternalInvariantViolation("augmentation duplicate insertion failed", err)
		}
		dup[newID] = orig.ID
	}

	return nil
}

// buildCircuit extracts an Eulerian circuit from g starting at depot and
// translates it into the Traversal sequence a route.Route is built from,
// mapping duplicate link ids back to the originals they stand in for.
func buildCircuit(g *core.Graph, depot int, dup DuplicateMap) (*route.Route, error) {
	adj, n := eulerian.BuildAdjacency(g)
	segs, err := eulerian.Circuit(adj, depot, n)
	if err != nil {
		return nil, err
	}

	traversals, err := segmentsToTraversals(g, segs, dup)
	if err != nil {
		return nil, err
	}

	return route.New(traversals), nil
}

func segmentsToTraversals(g *core.Graph, segs []eulerian.Segment, dup DuplicateMap) ([]route.Traversal, error) {
	out := make([]route.Traversal, 0, len(segs))
	for _, s := range segs {
		l, err := g.Link(s.LinkID)
		if err != nil {
			return nil, apperr.NewInternalInvariantViolation("circuit referenced an unknown link", err)
		}
		cost, err := g.TraversalCost(l, s.From)
		if err != nil {
			return nil, apperr.NewInternalInvariantViolation("circuit traversed a link against its direction", err)
		}

		reportID := s.LinkID
		if orig, ok := dup[s.LinkID]; ok {
			reportID = orig
		}

		dir := core.Forward
		if s.From != l.From {
			dir = core.Backward
		}

		out = append(out, route.Traversal{LinkID: reportID, From: s.From, To: s.To, Direction: dir, Cost: cost})
	}

	return out, nil
}

// requiredEndpoints returns, in first-seen order, every distinct vertex
// touched by the given link ids.
func requiredEndpoints(g *core.Graph, linkIDs []int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, id := range linkIDs {
		l, err := g.Link(id)
		if err != nil {
			continue
		}
		for _, v := range [2]int{l.From, l.To} {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}

	return out
}

// firstUnreachableLink reports the lowest-id link among linkIDs whose
// endpoints are not both in depot's component, using the strongly-connected
// (directed-respecting) classification when strong is true, the weakly-
// connected one otherwise. This is how every solver names the link
// apperr.InfeasibleInstance reports.
func firstUnreachableLink(g *core.Graph, depot int, linkIDs []int, strong bool) (int, bool) {
	var comps [][]int
	if strong {
		comps = connectivity.StronglyConnectedComponents(g)
	} else {
		comps = connectivity.WeaklyConnectedComponents(g)
	}
	depotComp := connectivity.ComponentOf(comps, depot)

	for _, id := range linkIDs {
		l, err := g.Link(id)
		if err != nil {
			continue
		}
		if connectivity.ComponentOf(comps, l.From) != depotComp || connectivity.ComponentOf(comps, l.To) != depotComp {
			return id, true
		}
	}

	return 0, false
}
