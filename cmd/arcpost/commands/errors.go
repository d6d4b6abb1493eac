package commands

import (
	"errors"

	"github.com/arcpost/arcpost/apperr"
)

// exitCodeFor maps a returned error to spec.md §6's exit codes: 1 user
// error (bad args, parse error, unsupported solver id — also the default
// for errors this command tree raises itself, like an unreadable instance
// path), 2 solver infeasibility, 3 internal error (cancellation, cost
// overflow, and invariant violations are never expected from well-formed
// input, so they surface the same way a genuine bug would).
func exitCodeFor(err error) int {
	var infeasible *apperr.InfeasibleInstance
	if errors.As(err, &infeasible) {
		return exitInfeasible
	}

	var cancelled *apperr.Cancelled
	if errors.As(err, &cancelled) {
		return exitInternalErr
	}

	var overflow *apperr.CostOverflow
	if errors.As(err, &overflow) {
		return exitInternalErr
	}

	var invariant *apperr.InternalInvariantViolation
	if errors.As(err, &invariant) {
		return exitInternalErr
	}

	return exitUserError
}
