// File: cancel.go
// Role: cooperative cancellation handle checked at the top of every outer
// loop a solver runs.
package solver

import "context"

// CancelToken is the cooperative cancellation handle spec.md §5 describes:
// checked at the top of each outer loop (matching attempts, Yaoyuenyong
// improvement passes, Hierholzer subtour merges), never polled from inside
// an inner loop. A nil *CancelToken is never cancelled.
type CancelToken struct {
	ctx context.Context
}

// NewCancelToken wraps ctx. A nil ctx is treated as context.Background
// (never cancels).
func NewCancelToken(ctx context.Context) *CancelToken {
	if ctx == nil {
		ctx = context.Background()
	}

	return &CancelToken{ctx: ctx}
}

// Cancelled reports whether the wrapped context has been cancelled or its
// deadline exceeded.
func (c *CancelToken) Cancelled() bool {
	if c == nil || c.ctx == nil {
		return false
	}
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}
