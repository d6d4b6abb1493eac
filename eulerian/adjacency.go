// File: adjacency.go
// Role: build a Circuit-ready adjacency view from a *core.Graph.
package eulerian

import "github.com/arcpost/arcpost/core"

// BuildAdjacency converts every link of g into the AdjEntry form Circuit
// expects: an arc contributes one entry, to its From vertex's list; an
// edge (or a Mixed link with Directed==false) contributes one entry to
// each endpoint's list. It returns the adjacency slice and the distinct
// link count Circuit should expect to consume.
// Complexity: O(V + E).
func BuildAdjacency(g *core.Graph) ([][]AdjEntry, int) {
	adjacency := make([][]AdjEntry, g.NumVertices()+1)
	n := 0
	for _, l := range g.Links() {
		n++
		adjacency[l.From] = append(adjacency[l.From], AdjEntry{LinkID: l.ID, To: l.To})
		if !l.Directed && l.From != l.To {
			adjacency[l.To] = append(adjacency[l.To], AdjEntry{LinkID: l.ID, To: l.From})
		}
	}

	return adjacency, n
}
