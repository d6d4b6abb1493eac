// Package shortestpath computes all-pairs shortest paths (Floyd–Warshall)
// and reconstructs individual paths from the resulting predecessor matrix.
//
// Loop order is fixed (k -> i -> j) and a candidate only replaces the
// incumbent on strict improvement, so ties are broken by the first
// (lowest-id) intermediate vertex that achieves the optimum — this is the
// determinism rule arcpost's callers (matching, augmentation) depend on for
// reproducible reports.
package shortestpath

import (
	"math"

	"github.com/arcpost/arcpost/core"
	"github.com/pkg/errors"
)

// Inf represents an unreachable pair in a Result's Cost matrix.
const Inf = math.MaxInt64 / 4 // generous headroom so Inf+Inf never overflows int64

// ErrPathLoop indicates path reconstruction revisited a vertex — a bug in
// the predecessor matrix, never a property of valid input.
var ErrPathLoop = errors.New("shortestpath: path reconstruction looped")

// Result holds an all-pairs shortest-path solution over a graph with n
// vertices: Cost[i][j] is the shortest distance from vertex i+1 to j+1 (Inf
// if unreachable); Pred[i][j] is the id of the vertex immediately before
// j+1 on that shortest path from i+1 (0 if i+1==j+1 or unreachable).
type Result struct {
	n    int
	Cost [][]int64
	Pred [][]int
}

// CostOf returns the shortest distance from vertex u to vertex v (1-based
// ids).
func (r *Result) CostOf(u, v int) int64 { return r.Cost[u-1][v-1] }

// Reachable reports whether v is reachable from u.
func (r *Result) Reachable(u, v int) bool { return r.Cost[u-1][v-1] < Inf }

// Path reconstructs the shortest path from u to v as a sequence of vertex
// ids, inclusive of both endpoints. Returns ErrPathLoop if more than n+1
// vertices are visited before reaching u — this can only happen if Pred is
// corrupt, which is an internal bug.
func (r *Result) Path(u, v int) ([]int, error) {
	if u == v {
		return []int{u}, nil
	}
	if !r.Reachable(u, v) {
		return nil, errors.Errorf("shortestpath: no path from %d to %d", u, v)
	}

	rev := []int{v}
	cur := v
	for cur != u {
		p := r.Pred[u-1][cur-1]
		if p == 0 {
			return nil, errors.Errorf("shortestpath: broken predecessor chain from %d to %d", u, v)
		}
		rev = append(rev, p)
		cur = p
		if len(rev) > r.n+1 {
			return nil, ErrPathLoop
		}
	}

	// reverse in place
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// APSP runs Floyd–Warshall over g's current link costs (direction-specific
// for Windy graphs) and returns the resulting Result.
// Complexity: O(V^3) time, O(V^2) space.
func APSP(g *core.Graph) *Result {
	n := g.NumVertices()
	res := &Result{n: n}
	res.Cost = make([][]int64, n)
	res.Pred = make([][]int, n)
	for i := range res.Cost {
		res.Cost[i] = make([]int64, n)
		res.Pred[i] = make([]int, n)
		for j := range res.Cost[i] {
			if i == j {
				res.Cost[i][j] = 0
			} else {
				res.Cost[i][j] = Inf
			}
		}
	}

	for _, l := range g.Links() {
		if l.IsLoop() {
			continue
		}
		relaxDirect(res, l.From, l.To, l.Cost)
		if !l.Directed {
			relaxDirect(res, l.To, l.From, l.ReverseCost)
		}
	}

	for k := 1; k <= n; k++ {
		ck := res.Cost[k-1]
		for i := 1; i <= n; i++ {
			ik := res.Cost[i-1][k-1]
			if ik >= Inf {
				continue
			}
			rowI := res.Cost[i-1]
			for j := 1; j <= n; j++ {
				kj := ck[j-1]
				if kj >= Inf {
					continue
				}
				cand := ik + kj
				if cand < rowI[j-1] {
					rowI[j-1] = cand
					res.Pred[i-1][j-1] = res.Pred[k-1][j-1]
				}
			}
		}
	}

	return res
}

// relaxDirect installs a direct link's cost as the initial candidate for
// (from, to), keeping the cheapest among parallel links and recording the
// direct predecessor.
func relaxDirect(res *Result, from, to int, cost int64) {
	if cost < res.Cost[from-1][to-1] {
		res.Cost[from-1][to-1] = cost
		res.Pred[from-1][to-1] = from
	}
}
