// Package apperr defines the six error kinds a solve can fail with, per the
// propagation policy: solvers recover nothing internally, they bubble these
// up to the programmatic entry point, which the CLI then maps to exit
// codes. Each kind is a concrete type (not a bare sentinel) so callers can
// branch with errors.As and inspect structured context (a line number, a
// link id, a solver id) rather than parsing a message string.
package apperr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError reports malformed OARLIB input.
type ParseError struct {
	Line   int
	Reason string
	cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Reason)
}

// Unwrap exposes the underlying cause, if any, to errors.Is/As chains.
func (e *ParseError) Unwrap() error { return e.cause }

// NewParseError builds a ParseError, optionally wrapping cause.
func NewParseError(line int, reason string, cause error) *ParseError {
	return &ParseError{Line: line, Reason: reason, cause: cause}
}

// InfeasibleInstance reports that a required link is unreachable from the
// depot under the active variant's connectivity rules.
type InfeasibleInstance struct {
	LinkID int
	Reason string
}

func (e *InfeasibleInstance) Error() string {
	return fmt.Sprintf("required link %d is unreachable from the depot: %s", e.LinkID, e.Reason)
}

// NewInfeasibleInstance builds an InfeasibleInstance naming the unreachable
// link.
func NewInfeasibleInstance(linkID int, reason string) *InfeasibleInstance {
	return &InfeasibleInstance{LinkID: linkID, Reason: reason}
}

// UnsupportedSolver reports a solverID outside 1..7, or exactly 6 (reserved,
// "not supported" per the CLI surface contract).
type UnsupportedSolver struct {
	SolverID int
}

func (e *UnsupportedSolver) Error() string {
	return fmt.Sprintf("solver %d is not supported", e.SolverID)
}

// NewUnsupportedSolver builds an UnsupportedSolver for the given id.
func NewUnsupportedSolver(solverID int) *UnsupportedSolver {
	return &UnsupportedSolver{SolverID: solverID}
}

// CostOverflow reports that a 64-bit cost accumulator would have
// overflowed.
type CostOverflow struct {
	Context string
}

func (e *CostOverflow) Error() string {
	return fmt.Sprintf("cost accumulator overflow: %s", e.Context)
}

// NewCostOverflow builds a CostOverflow with the given context string.
func NewCostOverflow(context string) *CostOverflow {
	return &CostOverflow{Context: context}
}

// AddCost adds b to a, reporting a CostOverflow naming context instead of
// wrapping around when the 64-bit sum would overflow.
func AddCost(a, b int64, context string) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, NewCostOverflow(context)
	}

	return sum, nil
}

// Cancelled reports that a solve observed its cancel token fire.
type Cancelled struct{}

func (e *Cancelled) Error() string { return "solve cancelled" }

// NewCancelled builds a Cancelled error.
func NewCancelled() *Cancelled { return &Cancelled{} }

// InternalInvariantViolation reports that a post-augmentation precondition
// for Eulerian extraction failed. This always indicates a bug in a solver
// or its augmentation step, never a property of the input; it is caught by
// tests and never surfaced to end users at runtime.
type InternalInvariantViolation struct {
	Invariant string
	cause     error
}

func (e *InternalInvariantViolation) Error() string {
	return fmt.Sprintf("internal invariant violated: %s", e.Invariant)
}

func (e *InternalInvariantViolation) Unwrap() error { return e.cause }

// NewInternalInvariantViolation builds an InternalInvariantViolation,
// optionally wrapping cause.
func NewInternalInvariantViolation(invariant string, cause error) *InternalInvariantViolation {
	return &InternalInvariantViolation{Invariant: invariant, cause: cause}
}

// Wrap attaches additional context to err using github.com/pkg/errors,
// preserving it for errors.As/errors.Is against the concrete kinds above.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}

	return errors.Wrap(err, context)
}
