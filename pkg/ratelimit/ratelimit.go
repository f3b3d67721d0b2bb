// Package ratelimit enforces a maximum number of accepted attempts per key
// inside a sliding time window.
//
// Only accepted attempts occupy a slot: a key is allowed again as soon as its
// oldest accepted attempt falls out of the window.
package ratelimit

import (
	"context"
	"time"
)

// Result describes the outcome of a single check-and-increment.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	// Reset is when the oldest occupied slot frees up.
	Reset time.Time
}

// RetryAfter is the wait before the next attempt could be accepted,
// rounded up to whole seconds and never below one.
func (r Result) RetryAfter(now time.Time) time.Duration {
	wait := r.Reset.Sub(now)
	if wait < time.Second {
		return time.Second
	}
	return (wait + time.Second - 1).Truncate(time.Second)
}

// Limiter atomically checks whether key may make another attempt and, if so,
// records it.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// Clock returns the current time. Tests substitute a manual clock.
type Clock func() time.Time
