// File: report.go
// Role: render a solved Route into the text block described by the
// programmatic and CLI surfaces.
package route

import (
	"fmt"
	"strings"

	"github.com/arcpost/arcpost/problem"
	"github.com/google/uuid"
)

// Report is the result of one solve: a Route plus the bookkeeping the
// external interfaces report alongside it.
type Report struct {
	// RunID uniquely identifies this solve call, for correlating a CLI
	// invocation with its log lines.
	RunID string

	Instance    string
	SolverName  string
	TotalCost   int64
	NumRequired int
	NumDeadhead int

	Route *Route
	Depot int
}

// NewReport builds a Report from a validated route. Callers should call
// Route.Validate before constructing a Report from it.
func NewReport(instance, solverName string, r *Route, p *problem.Problem) (*Report, error) {
	total, err := r.TotalCost()
	if err != nil {
		return nil, err
	}

	return &Report{
		RunID:       uuid.New().String(),
		Instance:    instance,
		SolverName:  solverName,
		TotalCost:   total,
		NumRequired: len(p.Required()),
		NumDeadhead: r.DeadheadCount(p),
		Route:       r,
		Depot:       p.Depot(),
	}, nil
}

// String renders the report as the text block spec.md §6 describes:
// instance name, solver name, total cost, required/deadhead counts, the
// walk rendered as v0 -> v1 -> v2 -> ..., and one line per link showing
// link id, direction, and cost.
func (rep *Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "instance: %s\n", rep.Instance)
	fmt.Fprintf(&b, "solver: %s\n", rep.SolverName)
	fmt.Fprintf(&b, "run id: %s\n", rep.RunID)
	fmt.Fprintf(&b, "total cost: %d\n", rep.TotalCost)
	fmt.Fprintf(&b, "required links: %d\n", rep.NumRequired)
	fmt.Fprintf(&b, "deadheads: %d\n", rep.NumDeadhead)

	verts := rep.Route.Vertices(rep.Depot)
	walk := make([]string, len(verts))
	for i, v := range verts {
		walk[i] = fmt.Sprintf("%d", v)
	}
	fmt.Fprintf(&b, "walk: %s\n", strings.Join(walk, " -> "))

	for _, t := range rep.Route.Traversals {
		fmt.Fprintf(&b, "link %d: %d -> %d (%s, cost %d)\n", t.LinkID, t.From, t.To, t.Direction, t.Cost)
	}

	return b.String()
}
