// Package cache guarda la última instantánea calculada del dashboard.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
)

// DashboardCache instantánea del dashboard con TTL.
type DashboardCache interface {
	Get(ctx context.Context, key string) (*dto.DashboardSummaryDTO, bool, error)
	Set(ctx context.Context, key string, value *dto.DashboardSummaryDTO, ttl time.Duration) error
}

// ForTTL caché en proceso; con ttl <= 0 la caché queda desactivada.
func ForTTL(ttl time.Duration) DashboardCache {
	if ttl <= 0 {
		return NoopDashboardCache{}
	}
	return NewMemoryDashboardCache()
}

// NoopDashboardCache nunca guarda nada; cada lectura recalcula.
type NoopDashboardCache struct{}

func (NoopDashboardCache) Get(_ context.Context, _ string) (*dto.DashboardSummaryDTO, bool, error) {
	return nil, false, nil
}

func (NoopDashboardCache) Set(_ context.Context, _ string, _ *dto.DashboardSummaryDTO, _ time.Duration) error {
	return nil
}

type memoryEntry struct {
	value   dto.DashboardSummaryDTO
	expires time.Time
}

// MemoryDashboardCache caché en proceso, usada cuando no hay REDIS_ADDR.
type MemoryDashboardCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryDashboardCache() *MemoryDashboardCache {
	return &MemoryDashboardCache{entries: make(map[string]memoryEntry), now: time.Now}
}

func (c *MemoryDashboardCache) Get(_ context.Context, key string) (*dto.DashboardSummaryDTO, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && !c.now().Before(e.expires) {
		delete(c.entries, key)
		return nil, false, nil
	}
	v := e.value
	return &v, true, nil
}

func (c *MemoryDashboardCache) Set(_ context.Context, key string, value *dto.DashboardSummaryDTO, ttl time.Duration) error {
	if value == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e := memoryEntry{value: *value}
	if ttl > 0 {
		e.expires = c.now().Add(ttl)
	}
	c.entries[key] = e
	return nil
}
