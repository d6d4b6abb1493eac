// File: transport.go
// Role: the bipartite transportation network §4.3 describes — positive- and
// negative-excess vertices connected by arcs costed at shortest directed
// distance — solved by a small successive-shortest-augmenting-path min-cost
// flow, since instances are small (§4.3's own allowance). Shared by DCPP's
// arc-duplication step and Frederickson's InOut step (§4.4), which the spec
// says runs "as in DCPP."
package solver

import (
	"math"

	"github.com/arcpost/arcpost/apperr"
	"github.com/arcpost/arcpost/connectivity"
	"github.com/arcpost/arcpost/core"
	"github.com/arcpost/arcpost/matching"
	"github.com/arcpost/arcpost/shortestpath"
)

// flowEdge is one arc of the residual graph used by the min-cost flow
// search: to names the head node index, cap/cost its residual capacity and
// cost, rev the index of its paired reverse edge.
type flowEdge struct {
	to   int
	cap  int64
	cost int64
	rev  int
}

type flowGraph struct {
	edges [][]flowEdge
}

func newFlowGraph(n int) *flowGraph {
	return &flowGraph{edges: make([][]flowEdge, n)}
}

func (fg *flowGraph) addEdge(u, v int, cap, cost int64) {
	fg.edges[u] = append(fg.edges[u], flowEdge{to: v, cap: cap, cost: cost, rev: len(fg.edges[v])})
	fg.edges[v] = append(fg.edges[v], flowEdge{to: u, cap: 0, cost: -cost, rev: len(fg.edges[u]) - 1})
}

// minCostFlow pushes up to maxFlow units of flow from source to sink at
// minimum total cost, using repeated Bellman-Ford shortest paths over the
// residual graph (correct in the presence of negative reverse-edge costs,
// unlike Dijkstra without potentials). Returns the flow actually sent (==
// maxFlow unless the network cannot carry it, which never happens for the
// balanced transportation networks built below); per-edge flow amounts are
// left in the residual capacities of the reverse edges. Fails with a CostOverflow if accumulating a residual distance would
// overflow a 64-bit signed integer.
func (fg *flowGraph) minCostFlow(source, sink int, maxFlow int64) (int64, error) {
	n := len(fg.edges)
	var sent int64

	for sent < maxFlow {
		const inf = int64(1) << 62
		dist := make([]int64, n)
		inQueue := make([]bool, n)
		prevEdge := make([]int, n)
		prevNode := make([]int, n)
		for i := range dist {
			dist[i] = inf
			prevNode[i] = -1
		}
		dist[source] = 0

		queue := []int{source}
		inQueue[source] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			inQueue[u] = false
			for i, e := range fg.edges[u] {
				if e.cap <= 0 || dist[u] >= inf {
					continue
				}
				nd, err := apperr.AddCost(dist[u], e.cost, "min-cost flow shortest path")
				if err != nil {
					return 0, err
				}
				if nd < dist[e.to] {
					dist[e.to] = nd
					prevNode[e.to] = u
					prevEdge[e.to] = i
					if !inQueue[e.to] {
						queue = append(queue, e.to)
						inQueue[e.to] = true
					}
				}
			}
		}

		if prevNode[sink] == -1 {
			break // no augmenting path remains
		}

		push := maxFlow - sent
		for v := sink; v != source; {
			u := prevNode[v]
			e := fg.edges[u][prevEdge[v]]
			if e.cap < push {
				push = e.cap
			}
			v = u
		}

		for v := sink; v != source; {
			u := prevNode[v]
			ei := prevEdge[v]
			fg.edges[u][ei].cap -= push
			rev := fg.edges[u][ei].rev
			fg.edges[v][rev].cap += push
			v = u
		}
		sent += push
	}

	return sent, nil
}

// resolveImbalance fixes in/out-degree imbalance by duplicating shortest
// directed paths from every positive-excess vertex to negative-excess
// vertices, the amounts determined by an optimal min-cost flow over the
// transportation network §4.3 describes. It mutates g in place and records
// every duplicated link in dup.
func resolveImbalance(g *core.Graph, dup DuplicateMap, opts Options) error {
	imb, err := connectivity.Imbalance(g)
	if err != nil {
		return apperr.NewInternalInvariantViolation("imbalance classification failed", err)
	}
	pos, neg := connectivity.PositiveNegativeExcess(imb)
	if len(pos) == 0 && len(neg) == 0 {
		return nil
	}
	if opts.cancelled() {
		return apperr.NewCancelled()
	}

	apsp := shortestpath.APSP(g)
	assignment, err := flowAssignment(pos, neg, imb, apsp)
	if err != nil {
		return err
	}

	for _, pr := range assignment {
		if opts.cancelled() {
			return apperr.NewCancelled()
		}
		if err := duplicatePath(g, apsp, dup, pr.A, pr.B); err != nil {
			return err
		}
	}

	return nil
}

// flowAssignment solves the min-cost transportation network between
// positive-excess vertices pos and negative-excess vertices neg (capacities
// |imb[v]|, costs the shortest directed distance apsp.CostOf(p, n)) and
// returns it as one matching.Pair per unit of flow (A = source-side
// positive-excess vertex, B = sink-side negative-excess vertex).
func flowAssignment(pos, neg []int, imb []int, apsp *shortestpath.Result) ([]matching.Pair, error) {
	// node 0 = source, 1..len(pos) = P, len(pos)+1..len(pos)+len(neg) = N,
	// last = sink.
	n := len(pos) + len(neg) + 2
	source, sink := 0, n-1
	fg := newFlowGraph(n)

	var total int64
	for i, p := range pos {
		amt := int64(imb[p])
		total += amt
		fg.addEdge(source, 1+i, amt, 0)
	}
	for j, ng := range neg {
		amt := int64(-imb[ng])
		fg.addEdge(1+len(pos)+j, sink, amt, 0)
	}
	for i, p := range pos {
		for j, ng := range neg {
			if !apsp.Reachable(p, ng) {
				continue
			}
			fg.addEdge(1+i, 1+len(pos)+j, int64(math.MaxInt32), apsp.CostOf(p, ng))
		}
	}

	sent, err := fg.minCostFlow(source, sink, total)
	if err != nil {
		return nil, err
	}
	if sent != total {
		return nil, apperr.NewInternalInvariantViolation("transportation network could not balance every vertex's in/out degree", nil)
	}

	// Read back the flow actually sent along each P->N arc: the residual
	// capacity on the reverse edge equals the amount pushed forward.
	var out []matching.Pair
	for i, p := range pos {
		for _, e := range fg.edges[1+i] {
			if e.to <= len(pos) || e.to == sink {
				continue
			}
			j := e.to - len(pos) - 1
			units := fg.edges[e.to][e.rev].cap
			ng := neg[j]
			for u := int64(0); u < units; u++ {
				out = append(out, matching.Pair{A: p, B: ng})
			}
		}
	}

	return out, nil
}
