// Package route holds the Route model (an ordered walk of links) and the
// validity and cost-accounting rules every solver's output must satisfy.
package route

import (
	"errors"
	"fmt"

	"github.com/arcpost/arcpost/apperr"
	"github.com/arcpost/arcpost/core"
	"github.com/arcpost/arcpost/problem"
)

// Sentinel errors surfaced by Validate.
var (
	// ErrEmptyRouteWithRequiredLinks is returned when a route has no
	// traversals but the problem has at least one required link.
	ErrEmptyRouteWithRequiredLinks = errors.New("route: empty route but problem has required links")
	// ErrNotAWalk is returned when consecutive traversals do not share an
	// endpoint in the direction traversed.
	ErrNotAWalk = errors.New("route: consecutive traversals do not connect")
)

// MissingRequiredLinkError reports a required link never traversed.
type MissingRequiredLinkError struct {
	LinkID int
}

func (e *MissingRequiredLinkError) Error() string {
	return fmt.Sprintf("route: required link %d never traversed", e.LinkID)
}

// DepotMismatchError reports a route that does not start or end at the
// depot.
type DepotMismatchError struct {
	Depot, Got int
	AtEnd      bool
}

func (e *DepotMismatchError) Error() string {
	end := "start"
	if e.AtEnd {
		end = "end"
	}

	return fmt.Sprintf("route: %s vertex %d does not match depot %d", end, e.Got, e.Depot)
}

// Traversal is one step of a Route: a single pass over a link in a given
// direction, carrying the cost that traversal actually incurred.
type Traversal struct {
	LinkID    int
	From, To  int
	Direction core.Direction
	Cost      int64
}

// Route is the ordered sequence of traversals a solver produces, starting
// and (when valid) ending at the depot.
type Route struct {
	Traversals []Traversal
}

// New wraps a traversal sequence into a Route. It performs no validation;
// callers check Validate before trusting a Route's properties.
func New(traversals []Traversal) *Route {
	return &Route{Traversals: traversals}
}

// Vertices returns the sequence of vertices visited: len(Traversals)+1
// entries, or a single-element slice naming depot for an empty route.
func (r *Route) Vertices(depot int) []int {
	if len(r.Traversals) == 0 {
		return []int{depot}
	}

	out := make([]int, 0, len(r.Traversals)+1)
	out = append(out, r.Traversals[0].From)
	for _, t := range r.Traversals {
		out = append(out, t.To)
	}

	return out
}

// TotalCost sums the realized cost of every traversal, failing with a
// CostOverflow error rather than wrapping if the running total would
// exceed what a 64-bit signed integer can hold.
func (r *Route) TotalCost() (int64, error) {
	var total int64
	for _, t := range r.Traversals {
		var err error
		total, err = apperr.AddCost(total, t.Cost, "route total cost")
		if err != nil {
			return 0, err
		}
	}

	return total, nil
}

// TraversalCounts maps each distinct link id traversed to the number of
// times it was traversed.
func (r *Route) TraversalCounts() map[int]int {
	counts := make(map[int]int, len(r.Traversals))
	for _, t := range r.Traversals {
		counts[t.LinkID]++
	}

	return counts
}

// DeadheadCount reports the number of traversals of links not in p's
// required set.
func (r *Route) DeadheadCount(p *problem.Problem) int {
	n := 0
	for _, t := range r.Traversals {
		if !p.IsRequired(t.LinkID) {
			n++
		}
	}

	return n
}

// Validate checks the three properties spec.md §3 requires of a valid
// route: consecutive traversals connect, every required link of p appears
// at least once, and the route starts and ends at p's depot.
// A route with no traversals is valid only if p has no required links, in
// which case it trivially starts and ends at the depot.
func (r *Route) Validate(p *problem.Problem) error {
	depot := p.Depot()

	if len(r.Traversals) == 0 {
		if len(p.Required()) > 0 {
			return ErrEmptyRouteWithRequiredLinks
		}

		return nil
	}

	if r.Traversals[0].From != depot {
		return &DepotMismatchError{Depot: depot, Got: r.Traversals[0].From}
	}

	for i := 1; i < len(r.Traversals); i++ {
		if r.Traversals[i].From != r.Traversals[i-1].To {
			return ErrNotAWalk
		}
	}

	last := r.Traversals[len(r.Traversals)-1]
	if last.To != depot {
		return &DepotMismatchError{Depot: depot, Got: last.To, AtEnd: true}
	}

	seen := r.TraversalCounts()
	for _, id := range p.Required() {
		if seen[id] == 0 {
			return &MissingRequiredLinkError{LinkID: id}
		}
	}

	return nil
}
