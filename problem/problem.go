// Package problem binds a graph, a required-link designation, and a depot
// into the single immutable object every solver consumes.
package problem

import (
	"errors"

	"github.com/arcpost/arcpost/core"
)

// ErrNoDepot is returned by New when the graph has no depot configured.
var ErrNoDepot = errors.New("problem: graph has no depot set")

// Family classifies a Problem by whether every link of its graph is
// required.
type Family int

const (
	// Postman problems require every link of the graph (the CPP family).
	Postman Family = iota
	// Rural problems require only a subset of the graph's links (the RPP
	// family).
	Rural
)

// String renders the Family the way report text names it.
func (f Family) String() string {
	switch f {
	case Postman:
		return "postman"
	case Rural:
		return "rural postman"
	default:
		return "unknown"
	}
}

// Problem is the immutable triple (graph, required-set, depot) a solver
// operates on. The required set is read directly from the graph's own
// Link.Required flags at construction time; a Problem never mutates its
// graph.
type Problem struct {
	graph    *core.Graph
	required []int
	isReq    map[int]bool
	depot    int
}

// New builds a Problem from g's current required-link designation and
// depot. Returns ErrNoDepot if g has no depot set.
// Complexity: O(E).
func New(g *core.Graph) (*Problem, error) {
	depot := g.DepotID()
	if depot == 0 {
		return nil, ErrNoDepot
	}

	links := g.RequiredLinks()
	ids := make([]int, len(links))
	isReq := make(map[int]bool, len(links))
	for i, l := range links {
		ids[i] = l.ID
		isReq[l.ID] = true
	}

	return &Problem{graph: g, required: ids, isReq: isReq, depot: depot}, nil
}

// Graph returns the underlying graph. Callers must not mutate it; solvers
// work on copies (core.Graph.Copy) of what this returns.
func (p *Problem) Graph() *core.Graph { return p.graph }

// Depot returns the depot vertex id.
func (p *Problem) Depot() int { return p.depot }

// Required returns the required link ids, ascending. The returned slice is
// a fresh copy.
func (p *Problem) Required() []int {
	return append([]int(nil), p.required...)
}

// IsRequired reports whether linkID is in the required set.
func (p *Problem) IsRequired(linkID int) bool { return p.isReq[linkID] }

// Family reports whether every link of the graph is required (Postman) or
// only a strict subset is (Rural).
func (p *Problem) Family() Family {
	if len(p.required) == p.graph.NumLinks() {
		return Postman
	}

	return Rural
}
