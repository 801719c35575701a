package workforce

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/amoghpatel/careerisk/internal/cache"
	"github.com/amoghpatel/careerisk/pkg/models"
)

// CachedClient decorates a Client with a Redis-backed cache for the company
// aggregate queries. Person lookups are not cached: careers change under us
// and the resolver response is small anyway. Cache failures are ignored and
// fall through to the inner client.
type CachedClient struct {
	inner Client
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedClient(inner Client, c cache.Cache, ttl time.Duration) *CachedClient {
	return &CachedClient{inner: inner, cache: c, ttl: ttl}
}

func (c *CachedClient) FindByName(ctx context.Context, name, company string) []models.Subject {
	return c.inner.FindByName(ctx, name, company)
}

func (c *CachedClient) FindByProfileSlug(ctx context.Context, slug string) []models.Subject {
	return c.inner.FindByProfileSlug(ctx, slug)
}

func (c *CachedClient) Demographics(ctx context.Context, companyID string, from, to time.Time) []models.DemographicsRow {
	key := cache.DemographicsKey(companyID, window(from, to))
	var rows []models.DemographicsRow
	if c.lookup(ctx, key, &rows) {
		return rows
	}
	rows = c.inner.Demographics(ctx, companyID, from, to)
	c.store(ctx, key, rows)
	return rows
}

func (c *CachedClient) Flows(ctx context.Context, companyID string, from, to time.Time) []models.FlowsRow {
	return c.cachedFlows(ctx, companyID, "function", from, to,
		func() []models.FlowsRow { return c.inner.Flows(ctx, companyID, from, to) })
}

func (c *CachedClient) FlowsByLevel(ctx context.Context, companyID string, from, to time.Time) []models.FlowsRow {
	return c.cachedFlows(ctx, companyID, "level", from, to,
		func() []models.FlowsRow { return c.inner.FlowsByLevel(ctx, companyID, from, to) })
}

func (c *CachedClient) Search(ctx context.Context, req SearchRequest) json.RawMessage {
	body, err := json.Marshal(req)
	if err != nil {
		return c.inner.Search(ctx, req)
	}
	key := cache.SearchKey(cache.HashBody(body))
	if val, ok, err := c.cache.Get(ctx, key); err == nil && ok {
		return json.RawMessage(val)
	}
	results := c.inner.Search(ctx, req)
	if string(results) != "[]" {
		if err := c.cache.Set(ctx, key, results, c.ttl); err != nil {
			slog.Debug("workforce cache set failed", "key", key, "error", err)
		}
	}
	return results
}

func (c *CachedClient) cachedFlows(ctx context.Context, companyID, groupBy string, from, to time.Time, fetch func() []models.FlowsRow) []models.FlowsRow {
	key := cache.FlowsKey(companyID, groupBy, window(from, to))
	var rows []models.FlowsRow
	if c.lookup(ctx, key, &rows) {
		return rows
	}
	rows = fetch()
	c.store(ctx, key, rows)
	return rows
}

func (c *CachedClient) lookup(ctx context.Context, key string, v any) bool {
	val, ok, err := c.cache.Get(ctx, key)
	if err != nil || !ok {
		return false
	}
	return json.Unmarshal(val, v) == nil
}

// store skips empty results so an upstream outage is not cached as truth.
func (c *CachedClient) store(ctx context.Context, key string, v any) {
	switch rows := v.(type) {
	case []models.DemographicsRow:
		if len(rows) == 0 {
			return
		}
	case []models.FlowsRow:
		if len(rows) == 0 {
			return
		}
	}
	val, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, val, c.ttl); err != nil {
		slog.Debug("workforce cache set failed", "key", key, "error", err)
	}
}

func window(from, to time.Time) string {
	return from.Format("2006-01-02") + ":" + to.Format("2006-01-02")
}

var _ Client = (*CachedClient)(nil)
