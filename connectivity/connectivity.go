// Package connectivity provides the reachability analyses solvers consult
// before trusting an augmentation step: weakly-connected components (treat
// every link as traversable both ways) and strongly-connected components
// (respect arc direction), plus degree-parity and in/out-degree imbalance
// classification used by the parity-repair and orientation-repair steps.
package connectivity

import "github.com/arcpost/arcpost/core"

// WeaklyConnectedComponents partitions every vertex of g into components
// reachable from one another, treating every link (arc or edge) as
// traversable in both directions. Components are returned in ascending
// order of their lowest-id member; within a component, ids are ascending.
// Complexity: O(V + E).
func WeaklyConnectedComponents(g *core.Graph) [][]int {
	n := g.NumVertices()
	adj := buildUndirectedAdjacency(g, n)
	visited := make([]bool, n+1)

	var comps [][]int
	for v := 1; v <= n; v++ {
		if visited[v] {
			continue
		}
		comp := bfsComponent(v, adj, visited)
		comps = append(comps, comp)
	}

	return comps
}

// ComponentOf returns the index into the result of WeaklyConnectedComponents
// such that comps[idx] contains v, or -1 if v is out of range.
func ComponentOf(comps [][]int, v int) int {
	for i, c := range comps {
		for _, u := range c {
			if u == v {
				return i
			}
		}
	}

	return -1
}

func buildUndirectedAdjacency(g *core.Graph, n int) [][]int {
	adj := make([][]int, n+1)
	for _, l := range g.Links() {
		if l.IsLoop() {
			continue
		}
		adj[l.From] = append(adj[l.From], l.To)
		adj[l.To] = append(adj[l.To], l.From)
	}

	return adj
}

func bfsComponent(start int, adj [][]int, visited []bool) []int {
	var comp []int
	queue := []int{start}
	visited[start] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		comp = append(comp, u)
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return comp
}

// StronglyConnectedComponents runs Kosaraju's algorithm over g's directed
// structure: an arc (Directed link) is traversable From->To only; an edge
// (non-directed link, including every link on an Undirected/Windy graph) is
// traversable both ways. Components are returned as slices of vertex ids;
// order among components is the reverse-finish-time order Kosaraju
// produces, which is deterministic for a fixed link iteration order.
// Complexity: O(V + E).
func StronglyConnectedComponents(g *core.Graph) [][]int {
	n := g.NumVertices()
	out := make([][]int, n+1)
	in := make([][]int, n+1)
	for _, l := range g.Links() {
		if l.IsLoop() {
			continue
		}
		out[l.From] = append(out[l.From], l.To)
		in[l.To] = append(in[l.To], l.From)
		if !l.Directed {
			out[l.To] = append(out[l.To], l.From)
			in[l.From] = append(in[l.From], l.To)
		}
	}

	visited := make([]bool, n+1)
	var order []int
	var visit func(int)
	visit = func(u int) {
		visited[u] = true
		for _, v := range out[u] {
			if !visited[v] {
				visit(v)
			}
		}
		order = append(order, u)
	}
	for v := 1; v <= n; v++ {
		if !visited[v] {
			visit(v)
		}
	}

	assigned := make([]bool, n+1)
	var comps [][]int
	for i := len(order) - 1; i >= 0; i-- {
		root := order[i]
		if assigned[root] {
			continue
		}
		var comp []int
		stack := []int{root}
		assigned[root] = true
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, u)
			for _, v := range in[u] {
				if !assigned[v] {
					assigned[v] = true
					stack = append(stack, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// StronglyReachableFromDepot reports whether every vertex in required is in
// the same strongly-connected component as depot — the feasibility
// precondition for directed/mixed variants, since augmentation can only
// duplicate existing arcs, never create new connectivity.
func StronglyReachableFromDepot(g *core.Graph, depot int, required []int) (unreachable int, ok bool) {
	comps := StronglyConnectedComponents(g)
	depotComp := ComponentOf(comps, depot)
	for _, v := range required {
		if ComponentOf(comps, v) != depotComp {
			return v, false
		}
	}

	return 0, true
}

// WeaklyReachableFromDepot reports whether every vertex in required shares
// a weakly-connected component with depot.
func WeaklyReachableFromDepot(g *core.Graph, depot int, required []int) (unreachable int, ok bool) {
	comps := WeaklyConnectedComponents(g)
	depotComp := ComponentOf(comps, depot)
	for _, v := range required {
		if ComponentOf(comps, v) != depotComp {
			return v, false
		}
	}

	return 0, true
}
