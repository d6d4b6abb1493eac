// Package solver implements the six arc-routing procedures (§4.2-§4.7) and
// the augmentation helpers they share: edge doubling along a shortest path,
// arc orientation repair, and translating an extracted Eulerian circuit into
// a route.Route that reports original link ids.
package solver

import (
	"github.com/arcpost/arcpost/matching"
	"github.com/rs/zerolog"
)

// Options carries everything a solver needs beyond the Problem itself: a
// per-solve logger (never a package-level one, per §9's redesign note), the
// matching implementation to use for parity repair, and a cancellation
// token.
type Options struct {
	Logger   zerolog.Logger
	Matching matching.Implementation
	Cancel   *CancelToken
}

// DefaultOptions returns the Options a caller gets when it supplies none: a
// no-op logger, Auto matching selection, and a CancelToken that never
// cancels.
func DefaultOptions() Options {
	return Options{
		Logger:   zerolog.Nop(),
		Matching: matching.Auto,
		Cancel:   NewCancelToken(nil),
	}
}

func (o Options) cancelled() bool {
	return o.Cancel != nil && o.Cancel.Cancelled()
}
