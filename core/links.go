// File: links.go
// Role: link (edge/arc) construction, lookup, and cost queries.
package core

import "errors"

// ErrNegativeCost indicates a link cost or reverse cost was negative.
var ErrNegativeCost = errors.New("core: link cost must be non-negative")

// LinkOption configures an optional attribute of a link being added.
type LinkOption func(*Link)

// WithReverseCost sets the To->From cost of a Windy link. Ignored (and
// invalid) for any other Kind.
func WithReverseCost(cost int64) LinkOption {
	return func(l *Link) { l.ReverseCost = cost }
}

// WithRequired marks the link as required.
func WithRequired() LinkOption {
	return func(l *Link) { l.Required = true }
}

// WithLinkDirected overrides per-link directedness. Only meaningful on a
// Mixed graph.
func WithLinkDirected(directed bool) LinkOption {
	return func(l *Link) { l.Directed = directed }
}

// WithLabel attaches a free-form, non-semantic label to the link.
func WithLabel(label string) LinkOption {
	return func(l *Link) { l.Label = label }
}

// AddLink inserts a new link from 'from' to 'to' with the given forward
// cost and returns its id. Directedness defaults per Kind: always false for
// Undirected and Windy, always true for Directed, and false (undirected)
// for Mixed unless overridden with WithLinkDirected — this preserves the
// OARLIB default that an absent isDirected column means undirected.
//
// Returns ErrEndpointNotFound if either endpoint does not exist, or
// ErrNegativeCost if cost (or, for Windy, the reverse cost) is negative.
// Complexity: O(1) amortized.
func (g *Graph) AddLink(from, to int, cost int64, opts ...LinkOption) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if from < 1 || from > len(g.vertices) || to < 1 || to > len(g.vertices) {
		return 0, ErrEndpointNotFound
	}
	if cost < 0 {
		return 0, ErrNegativeCost
	}

	l := &Link{
		ID:          len(g.links) + 1,
		From:        from,
		To:          to,
		Cost:        cost,
		ReverseCost: cost,
	}
	switch g.kind {
	case Undirected:
		l.Directed = false
	case Directed:
		l.Directed = true
	case Mixed:
		l.Directed = false // OARLIB default: absent isDirected -> undirected
	case Windy:
		l.Directed = false
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.ReverseCost < 0 {
		return 0, ErrNegativeCost
	}
	if g.kind != Windy {
		l.ReverseCost = l.Cost
	}
	if g.kind == Undirected {
		l.Directed = false
	}
	if g.kind == Directed {
		l.Directed = true
	}

	g.links = append(g.links, l)
	g.outAdj[from-1] = append(g.outAdj[from-1], l.ID)
	if l.Directed {
		g.inAdj[to-1] = append(g.inAdj[to-1], l.ID)
	} else {
		if to != from {
			g.outAdj[to-1] = append(g.outAdj[to-1], l.ID)
		}
	}

	return l.ID, nil
}

// Link returns the link with the given id, or ErrInvalidLinkID.
// Complexity: O(1).
func (g *Graph) Link(id int) (*Link, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 1 || id > len(g.links) {
		return nil, ErrInvalidLinkID
	}

	return g.links[id-1], nil
}

// Links returns every link, ordered by ascending id. The returned slice is
// a fresh copy of the pointer slice; links themselves are not copied.
// Complexity: O(E).
func (g *Graph) Links() []*Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Link, len(g.links))
	copy(out, g.links)

	return out
}

// RequiredLinks returns every link with Required set, ordered by ascending
// id.
// Complexity: O(E).
func (g *Graph) RequiredLinks() []*Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []*Link
	for _, l := range g.links {
		if l.Required {
			out = append(out, l)
		}
	}

	return out
}

// NumLinks reports |E|.
// Complexity: O(1).
func (g *Graph) NumLinks() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.links)
}

// TraversalCost reports the cost of traversing link l starting at vertex
// from. Returns ErrLinkNotDirected if l is an arc and from is not l.From.
// Complexity: O(1).
func (g *Graph) TraversalCost(l *Link, from int) (int64, error) {
	switch from {
	case l.From:
		return l.Cost, nil
	case l.To:
		if l.Directed {
			return 0, ErrLinkNotDirected
		}

		return l.ReverseCost, nil
	default:
		return 0, ErrEndpointNotFound
	}
}

// Other returns the endpoint of l that is not v. Behavior is undefined if v
// is not an endpoint of l (callers only use this after confirming adjacency).
func (l *Link) Other(v int) int {
	if l.From == v {
		return l.To
	}

	return l.From
}
