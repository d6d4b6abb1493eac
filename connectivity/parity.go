// File: parity.go
// Role: degree-parity and in/out-degree imbalance classification, consumed
// by the augmentation step of every CPP/RPP solver.
package connectivity

import "github.com/arcpost/arcpost/core"

// OddDegreeVertices returns, in ascending order, every vertex of g whose
// undirected-projection degree (core.Graph.Degree) is odd. This is the set
// UCPP's matching step must pair up.
// Complexity: O(V + E).
func OddDegreeVertices(g *core.Graph) ([]int, error) {
	var odd []int
	for v := 1; v <= g.NumVertices(); v++ {
		d, err := g.Degree(v)
		if err != nil {
			return nil, err
		}
		if d%2 != 0 {
			odd = append(odd, v)
		}
	}

	return odd, nil
}

// Imbalance reports, for every vertex, in-degree minus out-degree. A
// positive value names a vertex DCPP's transportation network must send
// flow away from (it has excess incoming arcs needing an outgoing
// duplicate); negative names one needing an incoming duplicate.
// Complexity: O(V + E).
func Imbalance(g *core.Graph) ([]int, error) {
	imb := make([]int, g.NumVertices()+1)
	for v := 1; v <= g.NumVertices(); v++ {
		in, out, err := g.InOutDegree(v)
		if err != nil {
			return nil, err
		}
		imb[v] = in - out
	}

	return imb, nil
}

// PositiveNegativeExcess splits Imbalance's output into the positive-excess
// set P (in > out) and negative-excess set N (in < out) DCPP's
// transportation network is built over.
func PositiveNegativeExcess(imb []int) (positive, negative []int) {
	for v := 1; v < len(imb); v++ {
		switch {
		case imb[v] > 0:
			positive = append(positive, v)
		case imb[v] < 0:
			negative = append(negative, v)
		}
	}

	return positive, negative
}
