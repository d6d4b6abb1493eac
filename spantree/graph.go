// File: graph.go
// Role: adapt a *core.Graph's own links into Kruskal's WeightedEdge view.
package spantree

import "github.com/arcpost/arcpost/core"

// FromGraph builds the Kruskal input from every non-loop link of g,
// treating each link as undirected and weighting it by its forward Cost.
// No solver calls it; Benavent H1 builds its Kruskal input over components
// directly.
func FromGraph(g *core.Graph) ([]int, []WeightedEdge) {
	vertices := make([]int, 0, g.NumVertices())
	for _, v := range g.Vertices() {
		vertices = append(vertices, v.ID)
	}

	links := g.Links()
	edges := make([]WeightedEdge, 0, len(links))
	for _, l := range links {
		if l.IsLoop() {
			continue
		}
		edges = append(edges, WeightedEdge{ID: l.ID, U: l.From, V: l.To, Weight: l.Cost})
	}

	return vertices, edges
}
