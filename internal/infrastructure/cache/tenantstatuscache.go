// Package cache holds Redis-backed caches that sit in front of the
// database on hot request paths.
package cache

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marai-app/marai/internal/shared/logger"
)

// CachedTenantStatus is the tenant state consulted on every request by
// the tenant-status middleware.
type CachedTenantStatus struct {
	Active bool
	Plan   string
	// NotFound marks a tenant confirmed absent in the database so
	// repeated lookups of bad IDs don't hit the database.
	NotFound bool
}

// TenantStatusCache defines the interface for tenant status caching
type TenantStatusCache interface {
	GetStatus(ctx context.Context, tenantID uint) (*CachedTenantStatus, error)
	SetStatus(ctx context.Context, tenantID uint, status *CachedTenantStatus) error
	Invalidate(ctx context.Context, tenantID uint) error
	SetNullMarker(ctx context.Context, tenantID uint) error
}

const (
	statusKeyPrefix = "tenant:status:"
	baseStatusTTL   = 10 * time.Minute
	statusTTLJitter = 5 * time.Minute
	nullMarkerTTL   = 2 * time.Minute

	fieldActive     = "active"
	fieldPlan       = "plan"
	fieldNullMarker = "_null"
)

// RedisTenantStatusCache implements TenantStatusCache using Redis Hash
type RedisTenantStatusCache struct {
	client *redis.Client
	logger logger.Interface
}

// NewRedisTenantStatusCache creates a new Redis-based tenant status
// cache
func NewRedisTenantStatusCache(client *redis.Client, logger logger.Interface) *RedisTenantStatusCache {
	return &RedisTenantStatusCache{
		client: client,
		logger: logger,
	}
}

func (c *RedisTenantStatusCache) key(tenantID uint) string {
	return fmt.Sprintf("%s%d", statusKeyPrefix, tenantID)
}

// GetStatus retrieves tenant status from cache. Returns nil on a cache
// miss.
func (c *RedisTenantStatusCache) GetStatus(ctx context.Context, tenantID uint) (*CachedTenantStatus, error) {
	result, err := c.client.HGetAll(ctx, c.key(tenantID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant status from cache: %w", err)
	}

	if len(result) == 0 {
		return nil, nil
	}

	if result[fieldNullMarker] == "1" {
		return &CachedTenantStatus{NotFound: true}, nil
	}

	return &CachedTenantStatus{
		Active: result[fieldActive] == "1",
		Plan:   result[fieldPlan],
	}, nil
}

// SetStatus stores tenant status in cache
func (c *RedisTenantStatusCache) SetStatus(ctx context.Context, tenantID uint, status *CachedTenantStatus) error {
	fields := map[string]interface{}{
		fieldActive: boolToInt(status.Active),
		fieldPlan:   status.Plan,
	}

	pipe := c.client.Pipeline()
	pipe.HSet(ctx, c.key(tenantID), fields)
	pipe.Expire(ctx, c.key(tenantID), statusTTLWithJitter())

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set tenant status in cache: %w", err)
	}

	c.logger.Debugw("tenant status cached",
		"tenant_id", tenantID,
		"active", status.Active,
	)

	return nil
}

// Invalidate removes tenant status from cache. Called on activation,
// deactivation and plan changes so the middleware sees the new state
// immediately.
func (c *RedisTenantStatusCache) Invalidate(ctx context.Context, tenantID uint) error {
	if err := c.client.Del(ctx, c.key(tenantID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate tenant status cache: %w", err)
	}

	c.logger.Debugw("tenant status cache invalidated", "tenant_id", tenantID)
	return nil
}

// SetNullMarker stores a short-lived not-found marker for the tenant.
func (c *RedisTenantStatusCache) SetNullMarker(ctx context.Context, tenantID uint) error {
	pipe := c.client.Pipeline()
	pipe.HSet(ctx, c.key(tenantID), fieldNullMarker, "1")
	pipe.Expire(ctx, c.key(tenantID), nullMarkerTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set null marker in cache: %w", err)
	}

	return nil
}

// statusTTLWithJitter randomizes the TTL so a burst of tenants cached
// together doesn't expire together.
func statusTTLWithJitter() time.Duration {
	jitter := time.Duration(rand.Int64N(int64(statusTTLJitter)))
	return baseStatusTTL + jitter
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
