// File: mcpp_yaoyuenyong.go
// Role: §4.5 mixed Chinese Postman, Yaoyuenyong's iterative improvement over
// Frederickson's starting point.
//
// §9's Open Questions note that the source's exact Yaoyuenyong move set is
// not fully specified in public literature, so only approximation quality
// and structural validity are testable properties of this solver — the
// move this implementation runs is a well-defined, deterministic 2-opt
// recombination over the pairings Frederickson's augmentation step chose
// (the parity-matching pairs and the imbalance-flow assignment pairs),
// swapping partners whenever doing so strictly lowers the total
// augmentation cost. This is "swap an orientation... reroute via an
// alternative path" read as a local search over pairings rather than over
// individual edge directions, since a pairing swap is the move that is
// both well-defined or a general mixed graph and literally cost-reducible.
package solver

import (
	"sort"

	"github.com/arcpost/arcpost/apperr"
	"github.com/arcpost/arcpost/connectivity"
	"github.com/arcpost/arcpost/core"
	"github.com/arcpost/arcpost/matching"
	"github.com/arcpost/arcpost/problem"
	"github.com/arcpost/arcpost/route"
	"github.com/arcpost/arcpost/shortestpath"
)

// yaoMoveBudget caps the number of improving recombinations a single
// augmentation step will apply, per §4.5's "terminate when no single-move
// improvement exists or a move budget is exhausted."
const yaoMoveBudget = 64

// Yaoyuenyong solves MCPP by running the same EvenDegree-then-InOut and
// InOut-then-Even sub-procedures as Frederickson (§4.4), but improves each
// pairing step (the parity matching, the imbalance flow assignment) with a
// bounded, deterministic 2-opt local search before committing its
// duplications, then returns the cheaper of the two resulting circuits.
func Yaoyuenyong(p *problem.Problem, opts Options) (*route.Route, error) {
	if opts.cancelled() {
		return nil, apperr.NewCancelled()
	}

	required := p.Required()
	if len(required) == 0 {
		return route.New(nil), nil
	}

	depot := p.Depot()
	base := p.Graph().Copy()

	if lid, bad := firstUnreachableLink(base, depot, required, true); bad {
		return nil, apperr.NewInfeasibleInstance(lid, "required link is not strongly reachable from the depot")
	}

	g1 := base.Copy()
	dup1 := DuplicateMap{}
	if err := yaoSubProcedure(g1, dup1, opts, true); err != nil {
		return nil, err
	}
	r1, err := buildCircuit(g1, depot, dup1)
	if err != nil {
		return nil, err
	}

	if opts.cancelled() {
		return nil, apperr.NewCancelled()
	}

	g2 := base.Copy()
	dup2 := DuplicateMap{}
	if err := yaoSubProcedure(g2, dup2, opts, false); err != nil {
		return nil, err
	}
	r2, err := buildCircuit(g2, depot, dup2)
	if err != nil {
		return nil, err
	}

	c1, err := r1.TotalCost()
	if err != nil {
		return nil, err
	}
	c2, err := r2.TotalCost()
	if err != nil {
		return nil, err
	}
	if c2 < c1 {
		return r2, nil
	}

	return r1, nil
}

func yaoSubProcedure(g *core.Graph, dup DuplicateMap, opts Options, evenFirst bool) error {
	for round := 0; round < fixpointRounds; round++ {
		odd, err := connectivity.OddDegreeVertices(g)
		if err != nil {
			return apperr.NewInternalInvariantViolation("odd-degree classification failed", err)
		}
		imb, err := connectivity.Imbalance(g)
		if err != nil {
			return apperr.NewInternalInvariantViolation("imbalance classification failed", err)
		}
		if len(odd) == 0 && allZero(imb) {
			return nil
		}

		if evenFirst {
			if err := yaoRepairParity(g, dup, opts); err != nil {
				return err
			}
			if err := yaoResolveImbalance(g, dup, opts); err != nil {
				return err
			}
		} else {
			if err := yaoResolveImbalance(g, dup, opts); err != nil {
				return err
			}
			if err := yaoRepairParity(g, dup, opts); err != nil {
				return err
			}
		}
	}

	odd, err := connectivity.OddDegreeVertices(g)
	if err != nil || len(odd) > 0 {
		return apperr.NewInternalInvariantViolation("mixed parity/imbalance repair did not converge", err)
	}
	imb, err := connectivity.Imbalance(g)
	if err != nil || !allZero(imb) {
		return apperr.NewInternalInvariantViolation("mixed parity/imbalance repair did not converge", err)
	}

	return nil
}

// yaoRepairParity is repairParity with a 2-opt improvement pass inserted
// between the matching solve and the duplication step.
func yaoRepairParity(g *core.Graph, dup DuplicateMap, opts Options) error {
	odd, err := connectivity.OddDegreeVertices(g)
	if err != nil {
		return apperr.NewInternalInvariantViolation("odd-degree classification failed", err)
	}
	if len(odd) == 0 {
		return nil
	}
	if opts.cancelled() {
		return apperr.NewCancelled()
	}

	apsp := shortestpath.APSP(g)
	weight := func(a, b int) int64 { return apsp.CostOf(a, b) }
	m, err := matching.Solve(odd, weight, opts.Matching)
	if err != nil {
		return apperr.NewInternalInvariantViolation("odd-vertex matching failed", err)
	}

	pairs := twoOptImprove(m.Pairs, weight, false)
	for _, pair := range pairs {
		if opts.cancelled() {
			return apperr.NewCancelled()
		}
		if err := duplicatePath(g, apsp, dup, pair.A, pair.B); err != nil {
			return err
		}
	}

	return nil
}

// yaoResolveImbalance is resolveImbalance with a 2-opt improvement pass
// inserted between the min-cost-flow solve and the duplication step.
func yaoResolveImbalance(g *core.Graph, dup DuplicateMap, opts Options) error {
	imb, err := connectivity.Imbalance(g)
	if err != nil {
		return apperr.NewInternalInvariantViolation("imbalance classification failed", err)
	}
	pos, neg := connectivity.PositiveNegativeExcess(imb)
	if len(pos) == 0 && len(neg) == 0 {
		return nil
	}
	if opts.cancelled() {
		return apperr.NewCancelled()
	}

	apsp := shortestpath.APSP(g)
	assignment, err := flowAssignment(pos, neg, imb, apsp)
	if err != nil {
		return err
	}

	weight := func(a, b int) int64 { return apsp.CostOf(a, b) }
	assignment = twoOptImprove(assignment, weight, true)

	for _, pr := range assignment {
		if opts.cancelled() {
			return apperr.NewCancelled()
		}
		if err := duplicatePath(g, apsp, dup, pr.A, pr.B); err != nil {
			return err
		}
	}

	return nil
}

// twoOptImprove runs a bounded, deterministic local search over pairs:
// repeatedly finds the recombination of two pairs (i, j) with the most
// negative cost delta and applies it, until no improving recombination
// remains or the move budget is exhausted. When bipartite is true (the
// imbalance assignment, A always positive-excess and B always
// negative-excess), the only valid recombination swaps the B side; when
// false (an undirected parity matching), pairing the two A ends together
// and the two B ends together is also a valid alternative pairing.
func twoOptImprove(pairs []matching.Pair, weight func(a, b int) int64, bipartite bool) []matching.Pair {
	out := append([]matching.Pair(nil), pairs...)

	for move := 0; move < yaoMoveBudget; move++ {
		type candidate struct {
			i, j  int
			delta int64
			swapA bool
		}
		var candidates []candidate
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				cur := weight(out[i].A, out[i].B) + weight(out[j].A, out[j].B)
				crossDelta := weight(out[i].A, out[j].B) + weight(out[j].A, out[i].B) - cur
				candidates = append(candidates, candidate{i: i, j: j, delta: crossDelta, swapA: false})
				if !bipartite {
					aSwapDelta := weight(out[i].A, out[j].A) + weight(out[i].B, out[j].B) - cur
					candidates = append(candidates, candidate{i: i, j: j, delta: aSwapDelta, swapA: true})
				}
			}
		}

		sort.SliceStable(candidates, func(a, b int) bool {
			if candidates[a].delta != candidates[b].delta {
				return candidates[a].delta < candidates[b].delta
			}
			if candidates[a].i != candidates[b].i {
				return candidates[a].i < candidates[b].i
			}

			return candidates[a].j < candidates[b].j
		})

		if len(candidates) == 0 || candidates[0].delta >= 0 {
			break
		}

		best := candidates[0]
		i, j := best.i, best.j
		if best.swapA {
			out[i].B, out[j].A = out[j].A, out[i].B
		} else {
			out[i].B, out[j].B = out[j].B, out[i].B
		}
	}

	return out
}
