package dynconfig

import (
	"context"
	"log/slog"
	"time"

	"discount-hub/internal/infra"
	"discount-hub/internal/infra/sqldb"
	"discount-hub/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix = "dynconfig:"
	cacheTTL       = 5 * time.Minute
)

var ErrUnknownKey = errs.New("unknown config key")

type ConfigQueries interface {
	GetConfigValue(ctx context.Context, db sqldb.DBTX, key string) (sqldb.ConfigParameter, error)
	UpsertConfigValue(ctx context.Context, db sqldb.DBTX, key, value string) error
	ListConfigValues(ctx context.Context, db sqldb.DBTX) ([]sqldb.ConfigParameter, error)
}

// Provider serves runtime parameters cache-aside: reads hit Redis first
// and fall back to Postgres; writes go to Postgres and invalidate the
// cached entry.
type Provider struct {
	queries ConfigQueries
	db      sqldb.DBTX
	cache   *redis.Client
}

func NewProvider(queries ConfigQueries, db sqldb.DBTX, cache *redis.Client) *Provider {
	return &Provider{
		queries: queries,
		db:      db,
		cache:   cache,
	}
}

func (p *Provider) Get(ctx context.Context, key string) (string, error) {
	fallback, known := DefaultFor(key)
	if !known {
		return "", ErrUnknownKey
	}

	if p.cache != nil {
		if cached, err := p.cache.Get(ctx, cacheKeyPrefix+key).Result(); err == nil {
			return cached, nil
		} else if err != redis.Nil {
			slog.Warn("dynconfig cache read failed", "key", key, "error", err.Error())
		}
	}

	row, err := p.queries.GetConfigValue(ctx, p.db, key)
	if err != nil {
		if infra.IsNoRows(err) {
			return fallback, nil
		}
		return "", infra.WrapRepoErr("failed to read config value", err)
	}

	p.fillCache(ctx, key, row.Value)
	return row.Value, nil
}

func (p *Provider) GetBool(ctx context.Context, key string) (bool, error) {
	v, err := p.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return AsBool(v), nil
}

func (p *Provider) GetInt(ctx context.Context, key string, fallback int) (int, error) {
	v, err := p.Get(ctx, key)
	if err != nil {
		return fallback, err
	}
	return AsInt(v, fallback), nil
}

// GetAll returns every known key with its effective value.
func (p *Provider) GetAll(ctx context.Context) (map[string]string, error) {
	result := make(map[string]string, len(defaults))
	for k, v := range defaults {
		result[k] = v
	}

	rows, err := p.queries.ListConfigValues(ctx, p.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list config values", err)
	}
	for _, row := range rows {
		if _, known := defaults[row.Key]; known {
			result[row.Key] = row.Value
		}
	}
	return result, nil
}

func (p *Provider) Set(ctx context.Context, key, value string) error {
	if _, known := DefaultFor(key); !known {
		return ErrUnknownKey
	}

	if err := p.queries.UpsertConfigValue(ctx, p.db, key, value); err != nil {
		return infra.WrapRepoErr("failed to store config value", err)
	}

	// Invalidate rather than refresh: the next read repopulates the cache
	// and a failed delete only extends staleness by the TTL.
	if p.cache != nil {
		if err := p.cache.Del(ctx, cacheKeyPrefix+key).Err(); err != nil {
			slog.Warn("dynconfig cache invalidation failed", "key", key, "error", err.Error())
		}
	}
	return nil
}

func (p *Provider) fillCache(ctx context.Context, key, value string) {
	if p.cache == nil {
		return
	}
	if err := p.cache.Set(ctx, cacheKeyPrefix+key, value, cacheTTL).Err(); err != nil {
		slog.Warn("dynconfig cache write failed", "key", key, "error", err.Error())
	}
}
