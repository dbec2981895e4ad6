package cache

import (
	"context"
	"time"

	"salestracker/backend/internal/domain"
)

// DashboardCache holds the most recent dashboard payload between sale
// mutations. It is a short-TTL response cache, not a source of truth:
// the report engine still recomputes from scratch on every miss.
type DashboardCache interface {
	Get(ctx context.Context, key string) (*domain.DashboardResponse, bool, error)
	Set(ctx context.Context, key string, value *domain.DashboardResponse, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

type NoopDashboardCache struct{}

func (NoopDashboardCache) Get(_ context.Context, _ string) (*domain.DashboardResponse, bool, error) {
	return nil, false, nil
}

func (NoopDashboardCache) Set(_ context.Context, _ string, _ *domain.DashboardResponse, _ time.Duration) error {
	return nil
}

func (NoopDashboardCache) Invalidate(_ context.Context, _ string) error {
	return nil
}
