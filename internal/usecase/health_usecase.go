package usecase

import (
	"context"
	"time"
)

// PingFunc probes one dependency.
type PingFunc func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	checks map[string]PingFunc
}

// NewHealthUsecase reports on the named optional dependencies. An absent
// dependency is simply not listed.
func NewHealthUsecase(checks map[string]PingFunc) HealthUsecase {
	return &healthUsecase{checks: checks}
}

// Check returns per-dependency status and whether everything is up.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok"}
	healthy := true
	for name, ping := range u.checks {
		if err := ping(ctx); err != nil {
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "up"
	}
	if !healthy {
		status["status"] = "degraded"
	}
	return status, healthy
}
