//go:build unit

package dynconfig

import (
	"context"
	"testing"

	"discount-hub/internal/infra/sqldb"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConfigQueries backs the provider with an in-memory parameter table.
type fakeConfigQueries struct {
	values map[string]string
	reads  int
}

func (f *fakeConfigQueries) GetConfigValue(ctx context.Context, db sqldb.DBTX, key string) (sqldb.ConfigParameter, error) {
	f.reads++
	v, ok := f.values[key]
	if !ok {
		return sqldb.ConfigParameter{}, pgx.ErrNoRows
	}
	return sqldb.ConfigParameter{Key: key, Value: v}, nil
}

func (f *fakeConfigQueries) UpsertConfigValue(ctx context.Context, db sqldb.DBTX, key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeConfigQueries) ListConfigValues(ctx context.Context, db sqldb.DBTX) ([]sqldb.ConfigParameter, error) {
	rows := make([]sqldb.ConfigParameter, 0, len(f.values))
	for k, v := range f.values {
		rows = append(rows, sqldb.ConfigParameter{Key: k, Value: v})
	}
	return rows, nil
}

func newTestProvider(t *testing.T, values map[string]string) (*Provider, *fakeConfigQueries, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = cache.Close() })

	if values == nil {
		values = make(map[string]string)
	}
	queries := &fakeConfigQueries{values: values}
	return NewProvider(queries, nil, cache), queries, srv
}

func TestProviderGet(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown key", func(t *testing.T) {
		p, _, _ := newTestProvider(t, nil)

		_, err := p.Get(ctx, "no_such_key")
		require.ErrorIs(t, err, ErrUnknownKey)
	})

	t.Run("falls back to registered default", func(t *testing.T) {
		p, _, _ := newTestProvider(t, nil)

		v, err := p.Get(ctx, KeyPublicPageSize)
		require.NoError(t, err)
		assert.Equal(t, "50", v)
	})

	t.Run("stored override wins and fills the cache", func(t *testing.T) {
		p, queries, srv := newTestProvider(t, map[string]string{KeyPublicPageSize: "25"})

		v, err := p.Get(ctx, KeyPublicPageSize)
		require.NoError(t, err)
		assert.Equal(t, "25", v)

		cached, err := srv.Get(cacheKeyPrefix + KeyPublicPageSize)
		require.NoError(t, err)
		assert.Equal(t, "25", cached)

		// second read is served from the cache
		v, err = p.Get(ctx, KeyPublicPageSize)
		require.NoError(t, err)
		assert.Equal(t, "25", v)
		assert.Equal(t, 1, queries.reads)
	})

	t.Run("works without a cache", func(t *testing.T) {
		queries := &fakeConfigQueries{values: map[string]string{KeyMaintenanceBanner: "maintenance tonight"}}
		p := NewProvider(queries, nil, nil)

		v, err := p.Get(ctx, KeyMaintenanceBanner)
		require.NoError(t, err)
		assert.Equal(t, "maintenance tonight", v)
	})
}

func TestProviderTypedGetters(t *testing.T) {
	ctx := context.Background()

	t.Run("bool", func(t *testing.T) {
		p, _, _ := newTestProvider(t, map[string]string{KeyClaimNotifyEnabled: "false"})

		enabled, err := p.GetBool(ctx, KeyClaimNotifyEnabled)
		require.NoError(t, err)
		assert.False(t, enabled)
	})

	t.Run("int with unparsable override", func(t *testing.T) {
		p, _, _ := newTestProvider(t, map[string]string{KeyPublicPageSize: "not-a-number"})

		n, err := p.GetInt(ctx, KeyPublicPageSize, 50)
		require.NoError(t, err)
		assert.Equal(t, 50, n)
	})
}

func TestProviderSet(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown key", func(t *testing.T) {
		p, _, _ := newTestProvider(t, nil)

		err := p.Set(ctx, "no_such_key", "x")
		require.ErrorIs(t, err, ErrUnknownKey)
	})

	t.Run("stores and invalidates the cached entry", func(t *testing.T) {
		p, queries, srv := newTestProvider(t, map[string]string{KeyPublicPageSize: "25"})

		// populate the cache
		_, err := p.Get(ctx, KeyPublicPageSize)
		require.NoError(t, err)
		require.True(t, srv.Exists(cacheKeyPrefix+KeyPublicPageSize))

		require.NoError(t, p.Set(ctx, KeyPublicPageSize, "75"))
		assert.Equal(t, "75", queries.values[KeyPublicPageSize])
		assert.False(t, srv.Exists(cacheKeyPrefix+KeyPublicPageSize))

		v, err := p.Get(ctx, KeyPublicPageSize)
		require.NoError(t, err)
		assert.Equal(t, "75", v)
	})
}

func TestProviderGetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults merged with overrides", func(t *testing.T) {
		p, _, _ := newTestProvider(t, map[string]string{
			KeyPublicPageSize: "25",
			"stale_key":       "ignored",
		})

		all, err := p.GetAll(ctx)
		require.NoError(t, err)

		assert.Equal(t, "25", all[KeyPublicPageSize])
		assert.Equal(t, "true", all[KeyClaimNotifyEnabled])
		assert.Equal(t, "", all[KeyMaintenanceBanner])
		assert.NotContains(t, all, "stale_key")
	})
}
