package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter keeps a per-key log of accepted attempts in process memory.
// It is safe for concurrent use; the check and the increment happen under
// the same lock so two callers can never both take the last slot.
type MemoryLimiter struct {
	limit  int
	window time.Duration
	now    Clock

	mu   sync.Mutex
	logs map[string][]time.Time
}

// NewMemoryLimiter creates an in-memory sliding-window limiter.
func NewMemoryLimiter(limit int, window time.Duration, clock Clock) *MemoryLimiter {
	if clock == nil {
		clock = time.Now
	}
	return &MemoryLimiter{
		limit:  limit,
		window: window,
		now:    clock,
		logs:   make(map[string][]time.Time),
	}
}

// Allow implements Limiter.
func (m *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	entries := prune(m.logs[key], now.Add(-m.window))
	if len(entries) >= m.limit {
		m.logs[key] = entries
		// A limit below 1 holds no slots; match the Redis script's reset.
		reset := now.Add(m.window)
		if len(entries) > 0 {
			reset = entries[0].Add(m.window)
		}
		return Result{
			Allowed:   false,
			Limit:     m.limit,
			Remaining: 0,
			Reset:     reset,
		}, nil
	}

	entries = append(entries, now)
	m.logs[key] = entries

	return Result{
		Allowed:   true,
		Limit:     m.limit,
		Remaining: m.limit - len(entries),
		Reset:     entries[0].Add(m.window),
	}, nil
}

// Sweep drops keys whose attempts have all left the window.
func (m *MemoryLimiter) Sweep() {
	cutoff := m.now().Add(-m.window)

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, entries := range m.logs {
		entries = prune(entries, cutoff)
		if len(entries) == 0 {
			delete(m.logs, key)
			continue
		}
		m.logs[key] = entries
	}
}

// StartJanitor sweeps expired keys every interval until ctx is done.
func (m *MemoryLimiter) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Sweep()
			}
		}
	}()
}

// prune drops entries at or before cutoff. Entries are in insertion order.
func prune(entries []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(entries) && !entries[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return entries
	}
	return append(entries[:0:0], entries[i:]...)
}
