// File: wrpp_h1.go
// Role: §4.7 windy rural postman, Benavent's H1 heuristic.
package solver

import (
	"sort"

	"github.com/arcpost/arcpost/apperr"
	"github.com/arcpost/arcpost/connectivity"
	"github.com/arcpost/arcpost/core"
	"github.com/arcpost/arcpost/eulerian"
	"github.com/arcpost/arcpost/matching"
	"github.com/arcpost/arcpost/problem"
	"github.com/arcpost/arcpost/route"
	"github.com/arcpost/arcpost/shortestpath"
	"github.com/arcpost/arcpost/spantree"
)

// BenaventH1 solves the windy rural postman problem: only a subset of the
// graph's edges is required, and that subset may be disconnected. The
// required subgraph's components are joined by minimum-cost connector
// paths (an MST over components, weighted by the cheapest symmetric
// shortest-path distance between any two of their vertices), the resulting
// required-plus-connector multigraph is made Eulerian by matching its
// odd-degree vertices on average-cost distances and duplicating the
// matched pairs' minimum-cost shortest paths, and the circuit is extracted
// and — as in Win's heuristic — reported under whichever of its two
// traversal directions realizes the lower total cost under true windy
// costs.
func BenaventH1(p *problem.Problem, opts Options) (*route.Route, error) {
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

	baseIDs, err := connectRequiredComponents(windy, required, depot, opts)
	if err != nil {
		return nil, err
	}

	base, baseToWindy := inducedGraph(windy, baseIDs)

	if opts.cancelled() {
		return nil, apperr.NewCancelled()
	}

	dup := DuplicateMap{}
	if err := repairWindyParity(base, dup, opts); err != nil {
		return nil, err
	}

	resolved := resolveBaseLinkIDs(base, dup, baseToWindy)

	adj, n := eulerian.BuildAdjacency(base)
	segs, err := eulerian.Circuit(adj, depot, n)
	if err != nil {
		return nil, err
	}

	return resolveWindyDirection(base, segs, resolved)
}

// connectRequiredComponents returns every windy link id that must appear
// in the base Eulerian multigraph: the required links themselves, plus
// every link on a chosen connector path. The required subgraph's
// components (with the depot folded in as its own singleton component when
// it is not already an endpoint of any required link, so the circuit
// extraction below always has somewhere to start) are joined by a minimum
// spanning tree over a complete graph weighted by symmetric shortest-path
// distance; each MST edge is traced back to the windy path it stands for.
func connectRequiredComponents(windy *core.Graph, required []int, depot int, opts Options) ([]int, error) {
	base := make(map[int]bool, len(required))
	for _, id := range required {
		base[id] = true
	}

	comps, err := requiredComponents(windy, required)
	if err != nil {
		return nil, apperr.NewInternalInvariantViolation("required-subgraph component classification failed", err)
	}
	if !vertexInComponents(comps, depot) {
		comps = append(comps, []int{depot})
	}
	if len(comps) <= 1 {
		return sortedKeys(base), nil
	}
	if opts.cancelled() {
		return nil, apperr.NewCancelled()
	}

	minGraph := relabelGraph(windy, minCost)
	minAPSP := shortestpath.APSP(minGraph)

	type realizer struct{ u, v int }
	realizers := make(map[[2]int]realizer)
	var candidates []spantree.WeightedEdge
	id := 0
	for i := 0; i < len(comps); i++ {
		for j := i + 1; j < len(comps); j++ {
			var best int64 = shortestpath.Inf
			var bu, bv int
			for _, u := range comps[i] {
				for _, v := range comps[j] {
					if !minAPSP.Reachable(u, v) {
						continue
					}
					if c := minAPSP.CostOf(u, v); c < best {
						best, bu, bv = c, u, v
					}
				}
			}
			if best >= shortestpath.Inf {
				continue
			}
			id++
			candidates = append(candidates, spantree.WeightedEdge{ID: id, U: i, V: j, Weight: best})
			realizers[[2]int{i, j}] = realizer{u: bu, v: bv}
		}
	}

	compIdx := make([]int, len(comps))
	for i := range comps {
		compIdx[i] = i
	}
	forest := spantree.Kruskal(compIdx, candidates)

	for _, e := range forest.Edges {
		r, ok := realizers[[2]int{e.U, e.V}]
		if !ok {
			r, ok = realizers[[2]int{e.V, e.U}]
		}
		if !ok {
			return nil, apperr.NewInternalInvariantViolation("component connector MST referenced an unknown component pair", nil)
		}

		path, err := minAPSP.Path(r.u, r.v)
		if err != nil {
			return nil, apperr.NewInternalInvariantViolation("connector path reconstruction failed", err)
		}
		for k := 0; k+1 < len(path); k++ {
			l := cheapestLinkBetween(windy, path[k], path[k+1])
			if l == nil {
				return nil, apperr.NewInternalInvariantViolation("connector path traversed a non-existent link", nil)
			}
			base[l.ID] = true
		}
	}

	return sortedKeys(base), nil
}

// requiredComponents partitions the endpoints of required into weakly
// connected components, restricted to the required links themselves, and
// reports each component as a slice of windy's own vertex ids.
func requiredComponents(windy *core.Graph, required []int) ([][]int, error) {
	sub, err := windy.Subgraph(required)
	if err != nil {
		return nil, err
	}

	comps := connectivity.WeaklyConnectedComponents(sub)
	out := make([][]int, len(comps))
	for i, c := range comps {
		mapped := make([]int, len(c))
		for j, v := range c {
			vx, err := sub.Vertex(v)
			if err != nil {
				return nil, err
			}
			mapped[j] = vx.MatchID
		}
		out[i] = mapped
	}

	return out, nil
}

func vertexInComponents(comps [][]int, v int) bool {
	for _, c := range comps {
		for _, u := range c {
			if u == v {
				return true
			}
		}
	}

	return false
}

func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// inducedGraph builds a graph over windy's full vertex set containing only
// the given windy link ids, each copied with its true cost, reverse cost,
// and directedness unchanged. Returned link ids are freshly assigned in
// the order linkIDs was given; baseToWindy maps each one back to the windy
// link id it copies.
func inducedGraph(windy *core.Graph, linkIDs []int) (*core.Graph, map[int]int) {
	base := core.NewGraph(windy.Kind())
	base.EnsureVertices(windy.NumVertices())

	baseToWindy := make(map[int]int, len(linkIDs))
	for _, id := range linkIDs {
		l, err := windy.Link(id)
		if err != nil {
			continue
		}
		newID, err := base.AddLink(l.From, l.To, l.Cost, core.WithReverseCost(l.ReverseCost), core.WithLinkDirected(l.Directed))
		if err != nil {
			continue
		}
		baseToWindy[newID] = l.ID
	}

	return base, baseToWindy
}

// repairWindyParity matches base's odd-degree vertices by minimum-cost
// perfect matching over average-cost shortest-path distances, then
// duplicates each pair's minimum-cost (symmetric) shortest path — §4.7
// step 3's "matched using MCPM on average costs; shortest paths... use the
// minimum of forward/reverse costs."
func repairWindyParity(base *core.Graph, dup DuplicateMap, opts Options) error {
	odd, err := connectivity.OddDegreeVertices(base)
	if err != nil {
		return apperr.NewInternalInvariantViolation("odd-degree classification failed", err)
	}
	if len(odd) == 0 {
		return nil
	}
	if opts.cancelled() {
		return apperr.NewCancelled()
	}

	avgAPSP := shortestpath.APSP(relabelGraph(base, averageCost))
	weight := func(a, b int) int64 { return avgAPSP.CostOf(a, b) }
	m, err := matching.Solve(odd, weight, opts.Matching)
	if err != nil {
		return apperr.NewInternalInvariantViolation("odd-vertex matching failed", err)
	}

	minAPSP := shortestpath.APSP(relabelGraph(base, minCost))
	for _, pair := range m.Pairs {
		if opts.cancelled() {
			return apperr.NewCancelled()
		}
		if err := duplicatePath(base, minAPSP, dup, pair.A, pair.B); err != nil {
			return err
		}
	}

	return nil
}

// resolveBaseLinkIDs composes dup (a base-local duplicate id -> the
// base-local id it copies) with baseToWindy (a base-local id -> the windy
// link id it was induced from) into a single map from every link id base
// currently carries to the windy link id it should be reported as.
func resolveBaseLinkIDs(base *core.Graph, dup DuplicateMap, baseToWindy map[int]int) DuplicateMap {
	out := make(DuplicateMap, base.NumLinks())
	for _, l := range base.Links() {
		id := l.ID
		for {
			orig, ok := dup[id]
			if !ok {
				break
			}
			id = orig
		}
		out[l.ID] = baseToWindy[id]
	}

	return out
}
