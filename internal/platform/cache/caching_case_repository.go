// Package cache provides Redis decorators for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"ecourts_backend/internal/feature/cases/domain/entity"
	"ecourts_backend/internal/feature/cases/usecase"
)

// CaseStore is the case repository surface that CachingCaseRepository decorates.
type CaseStore interface {
	usecase.CaseRepository
	Count(ctx context.Context) (int64, error)
	CountHearingsBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// CachingCaseRepository caches case listings and counts in Redis.
// Single-case reads always hit the store so reconciliation sees the current row.
// Every write drops all cached entries of the namespace.
type CachingCaseRepository struct {
	inner     CaseStore
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ CaseStore = (*CachingCaseRepository)(nil)

// NewCachingCaseRepository decorates inner with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "cases".
// A nil rdb disables caching.
func NewCachingCaseRepository(rdb *redis.Client, ttl time.Duration, inner CaseStore, namespace string) *CachingCaseRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "cases"
	}
	return &CachingCaseRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: safe(namespace),
	}
}

// FindByCNR reads through to the store.
func (c *CachingCaseRepository) FindByCNR(ctx context.Context, cnr string) (*entity.Case, error) {
	return c.inner.FindByCNR(ctx, cnr)
}

// Create inserts the case and invalidates cached listings.
func (c *CachingCaseRepository) Create(ctx context.Context, cs *entity.Case) error {
	if err := c.inner.Create(ctx, cs); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Save updates the case and invalidates cached listings.
func (c *CachingCaseRepository) Save(ctx context.Context, cs *entity.Case) error {
	if err := c.inner.Save(ctx, cs); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// ListRecent returns the recent cases, checking the cache first.
func (c *CachingCaseRepository) ListRecent(ctx context.Context, limit int) ([]entity.Case, error) {
	if c.rdb == nil {
		return c.inner.ListRecent(ctx, limit)
	}

	key := fmt.Sprintf("%s:recent:%d", c.namespace, limit)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Case
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// Count returns the number of stored cases, checking the cache first.
func (c *CachingCaseRepository) Count(ctx context.Context) (int64, error) {
	return c.cachedCount(ctx, c.namespace+":count:all", func() (int64, error) {
		return c.inner.Count(ctx)
	})
}

// CountHearingsBetween returns the hearing count for the day range, checking the cache first.
func (c *CachingCaseRepository) CountHearingsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	key := fmt.Sprintf("%s:count:hearings:%s:%s", c.namespace, from.Format("2006-01-02"), to.Format("2006-01-02"))
	return c.cachedCount(ctx, key, func() (int64, error) {
		return c.inner.CountHearingsBetween(ctx, from, to)
	})
}

func (c *CachingCaseRepository) cachedCount(ctx context.Context, key string, load func() (int64, error)) (int64, error) {
	if c.rdb == nil {
		return load()
	}
	if n, err := c.rdb.Get(ctx, key).Int64(); err == nil {
		return n, nil
	}

	n, err := load()
	if err != nil {
		return 0, err
	}
	_ = c.rdb.Set(ctx, key, n, c.ttl).Err()
	return n, nil
}

// invalidate drops every cached entry of the namespace. Failures are ignored; entries expire with the TTL.
func (c *CachingCaseRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingCaseRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			return nil
		}
	}
}

// safe escapes characters that are problematic in Redis key patterns.
func safe(s string) string {
	return strings.NewReplacer(" ", "_", ":", "_", "*", "_").Replace(s)
}
