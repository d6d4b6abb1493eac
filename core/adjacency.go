// File: adjacency.go
// Role: neighbor queries and degree accounting.
package core

import "sort"

// Neighbors returns every link incident to v in a traversable sense: for an
// arc, only if it departs v; for an edge (or a Mixed link with
// Directed==false), regardless of which endpoint v is. Order is by
// ascending link id, for determinism.
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) Neighbors(v int) ([]*Link, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 1 || v > len(g.vertices) {
		return nil, ErrInvalidVertexID
	}

	ids := append([]int(nil), g.outAdj[v-1]...)
	sort.Ints(ids)

	out := make([]*Link, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.links[id-1])
	}

	return out, nil
}

// IncomingArcs returns every arc with To==v (Directed links on a Directed
// graph, or Directed Mixed links). Undirected/Windy graphs never populate
// inAdj, so this is empty for them.
// Complexity: O(indeg(v) log indeg(v)).
func (g *Graph) IncomingArcs(v int) ([]*Link, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 1 || v > len(g.vertices) {
		return nil, ErrInvalidVertexID
	}

	ids := append([]int(nil), g.inAdj[v-1]...)
	sort.Ints(ids)

	out := make([]*Link, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.links[id-1])
	}

	return out, nil
}

// Degree returns the total degree of v under the undirected projection:
// every incident link counts once, loops count twice. Valid for any Kind;
// on Directed/Mixed graphs this is in-degree + out-degree.
// Complexity: O(deg(v)).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 1 || v > len(g.vertices) {
		return 0, ErrInvalidVertexID
	}

	d := len(g.outAdj[v-1]) + len(g.inAdj[v-1])
	for _, id := range g.outAdj[v-1] {
		l := g.links[id-1]
		if l.IsLoop() && !l.Directed {
			d++ // undirected self-loop contributes 2 to degree
		}
	}

	return d, nil
}

// InOutDegree returns (in-degree, out-degree) of v treating every
// undirected/Mixed-undirected link incident to v as contributing to both.
// Complexity: O(deg(v)).
func (g *Graph) InOutDegree(v int) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 1 || v > len(g.vertices) {
		return 0, 0, ErrInvalidVertexID
	}

	in = len(g.inAdj[v-1])
	for _, id := range g.outAdj[v-1] {
		l := g.links[id-1]
		out++
		if !l.Directed {
			in++ // undirected link also counts as arriving
		}
	}

	return in, out, nil
}
