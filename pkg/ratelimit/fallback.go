package ratelimit

import "context"

// FallbackLimiter consults primary and, when it errors, answers from
// secondary instead. Used to keep the contact form available while Redis is
// down.
type FallbackLimiter struct {
	primary   Limiter
	secondary Limiter
	onError   func(error)
}

// NewFallbackLimiter wires a primary limiter with an in-process fallback.
// onError may be nil.
func NewFallbackLimiter(primary, secondary Limiter, onError func(error)) *FallbackLimiter {
	return &FallbackLimiter{primary: primary, secondary: secondary, onError: onError}
}

// Allow implements Limiter.
func (f *FallbackLimiter) Allow(ctx context.Context, key string) (Result, error) {
	res, err := f.primary.Allow(ctx, key)
	if err == nil {
		return res, nil
	}
	if f.onError != nil {
		f.onError(err)
	}
	return f.secondary.Allow(ctx, key)
}
