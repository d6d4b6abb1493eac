// Package spantree computes a minimum spanning tree (or forest, if
// disconnected) over a weighted undirected structure. It operates on a
// generic (vertex, weight) view rather than *core.Graph directly, so it can
// serve both a graph's own edges (via FromGraph) and an auxiliary complete
// graph built over connected components (Benavent H1's component-connector
// step).
package spantree

import "sort"

// WeightedEdge is one candidate edge for Kruskal: an id (used only for the
// deterministic tie-break), two endpoints, and a weight.
type WeightedEdge struct {
	ID     int
	U, V   int
	Weight int64
}

// Forest is the result of Kruskal: the selected edges, in the order they
// were accepted, and the total weight.
type Forest struct {
	Edges       []WeightedEdge
	TotalWeight int64
}

// Kruskal computes a minimum spanning forest over the given vertex ids and
// candidate edges. Ties on weight are broken by ascending edge id, per the
// spec's deterministic tie-break rule.
// Complexity: O(E log E + V * alpha(V)).
func Kruskal(vertices []int, edges []WeightedEdge) *Forest {
	sorted := append([]WeightedEdge(nil), edges...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Weight != sorted[j].Weight {
			return sorted[i].Weight < sorted[j].Weight
		}

		return sorted[i].ID < sorted[j].ID
	})

	parent := make(map[int]int, len(vertices))
	rank := make(map[int]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	var find func(int) int
	find = func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	f := &Forest{}
	need := len(vertices) - 1
	for _, e := range sorted {
		if need == 0 {
			break
		}
		if find(e.U) != find(e.V) {
			union(e.U, e.V)
			f.Edges = append(f.Edges, e)
			f.TotalWeight += e.Weight
			need--
		}
	}

	return f
}
