// File: windy.go
// Role: shared derived-graph helpers for the two windy heuristics (Win,
// Benavent H1): building a same-topology undirected graph whose link
// weights are some symmetric function of a windy link's forward and
// reverse cost, used wherever a solver needs a topology to run ordinary
// (symmetric-cost) graph algorithms over before recovering true costs.
package solver

import "github.com/arcpost/arcpost/core"

// relabelGraph builds an Undirected graph sharing windy's vertex ids and,
// in windy's own link-id order, one edge per windy link weighted by
// weight(l) — so every non-augmented link keeps the same id in both graphs.
func relabelGraph(windy *core.Graph, weight func(l *core.Link) int64) *core.Graph {
	out := core.NewGraph(core.Undirected)
	out.EnsureVertices(windy.NumVertices())

	for _, l := range windy.Links() {
		// Both endpoints already exist (EnsureVertices above) and weight
		// never produces a negative cost for non-negative inputs, so
		// AddLink cannot fail here.
		_, _ = out.AddLink(l.From, l.To, weight(l))
	}

	return out
}

// averageCost is Win's heuristic's edge weight: the mean of a windy link's
// two directional costs.
func averageCost(l *core.Link) int64 { return (l.Cost + l.ReverseCost) / 2 }

// minCost is Benavent H1's symmetric distance: the cheaper of a windy
// link's two directional costs.
func minCost(l *core.Link) int64 {
	if l.Cost < l.ReverseCost {
		return l.Cost
	}

	return l.ReverseCost
}

// resolveWindyLinkID chases dup (a duplicate-added link's id -> the id it
// copies) to a fixed point. Parity repair only ever duplicates a link that
// is itself not a duplicate (cheapestLinkBetween prefers the lowest-id,
// hence original, link on ties), so this normally resolves in one step,
// but chasing to a fixed point costs nothing and stays correct either way.
func resolveWindyLinkID(dup DuplicateMap, id int) int {
	for {
		orig, ok := dup[id]
		if !ok {
			return id
		}
		id = orig
	}
}

// trueCostGraph rebuilds derived's own topology, link ids, and From/To
// exactly, but with every link's cost replaced by the true windy cost it
// stands for: dup resolves each id (including any parity-repair
// duplicate) down to the windy link it copies, oriented to match derived's
// own From/To. relabelGraph gives every non-duplicated link in derived the
// same id windy itself uses, so a duplicate is the only id that needs
// resolving; an original link resolves to itself.
func trueCostGraph(derived, windy *core.Graph, dup DuplicateMap) (*core.Graph, error) {
	out := core.NewGraph(core.Windy)
	out.EnsureVertices(derived.NumVertices())

	for _, l := range derived.Links() {
		wl, err := windy.Link(resolveWindyLinkID(dup, l.ID))
		if err != nil {
			return nil, err
		}

		fwd, rev := wl.Cost, wl.ReverseCost
		if l.From == wl.To && l.To == wl.From {
			fwd, rev = wl.ReverseCost, wl.Cost
		}

		if _, err := out.AddLink(l.From, l.To, fwd, core.WithReverseCost(rev)); err != nil {
			return nil, err
		}
	}

	return out, nil
}
