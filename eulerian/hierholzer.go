// Package eulerian extracts a closed walk traversing every link of an
// Eulerian multigraph exactly once (Hierholzer's algorithm), starting and
// ending at a given vertex.
//
// The extraction respects a forward-movement preference: whenever the walk
// discovers, at some already-visited vertex, that unused links remain
// there, the subtour built from that vertex is spliced into the result
// immediately after the position where it was discovered — forward of the
// current position — rather than prepended behind the already-built
// prefix. This is what makes the resulting route visit nearby required
// links before returning to the depot, instead of deferring them to a
// final detour at the very end.
package eulerian

import "github.com/arcpost/arcpost/apperr"

// AdjEntry is one link departing a vertex, from that vertex's point of
// view: LinkID identifies the link, To is the vertex reached by traversing
// it from here. Undirected links contribute one AdjEntry to each endpoint's
// list; arcs contribute only to their From vertex's list.
type AdjEntry struct {
	LinkID int
	To     int
}

// Segment is one traversal in the extracted circuit.
type Segment struct {
	LinkID   int
	From, To int
}

// Circuit runs Hierholzer's algorithm over the multigraph described by
// adjacency (indexed by vertex id, 1-based; adjacency[0] is unused),
// starting and ending at start, and returns the ordered list of
// traversals. totalLinks is the number of distinct link ids present across
// adjacency (each undirected link counted once even though it appears in
// two vertices' lists); Circuit verifies every one of them was used exactly
// once and returns apperr.NewInternalInvariantViolation otherwise — a post-
// augmentation precondition failure, never a property of valid input.
//
// A vertex with no incident links returns an empty, trivially valid
// circuit (the depot-only route).
// Complexity: O(E).
func Circuit(adjacency [][]AdjEntry, start int, totalLinks int) ([]Segment, error) {
	ptr := make([]int, len(adjacency))
	used := make(map[int]bool, totalLinks)

	walkFrom := func(from int) ([]Segment, error) {
		var segs []Segment
		cur := from
		for {
			entry, ok := popUnused(adjacency, ptr, cur, used)
			if !ok {
				break
			}
			used[entry.LinkID] = true
			segs = append(segs, Segment{LinkID: entry.LinkID, From: cur, To: entry.To})
			cur = entry.To
		}
		if cur != from {
			return nil, apperr.NewInternalInvariantViolation(
				"hierholzer subtour did not return to its start vertex", nil)
		}

		return segs, nil
	}

	result, err := walkFrom(start)
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(result); i++ {
		v := result[i].To
		sub, err := walkFrom(v)
		if err != nil {
			return nil, err
		}
		if len(sub) == 0 {
			continue
		}
		// Splice sub-tour in immediately after position i: forward of the
		// current position, never behind the already-built prefix.
		spliced := make([]Segment, 0, len(result)+len(sub))
		spliced = append(spliced, result[:i+1]...)
		spliced = append(spliced, sub...)
		spliced = append(spliced, result[i+1:]...)
		result = spliced
	}

	if len(used) != totalLinks {
		return nil, apperr.NewInternalInvariantViolation(
			"hierholzer did not consume every link: graph was not Eulerian/connected", nil)
	}

	return result, nil
}

// popUnused advances ptr[v] over adjacency[v], skipping entries whose link
// has already been used, and returns the first unused one it finds.
// Entries are visited in the order BuildAdjacency produced them — ascending
// link id at each vertex — which is what gives the walk its forward-splice
// bias: a vertex's lowest-numbered unused link is always taken next.
func popUnused(adjacency [][]AdjEntry, ptr []int, v int, used map[int]bool) (AdjEntry, bool) {
	entries := adjacency[v]
	for ptr[v] < len(entries) {
		e := entries[ptr[v]]
		ptr[v]++
		if used[e.LinkID] {
			continue
		}

		return e, true
	}

	return AdjEntry{}, false
}
