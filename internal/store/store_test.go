package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/config"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/store"
)

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, func(t *testing.T) store.Store {
		t.Helper()
		return store.NewMemoryStore()
	})
}

func TestSQLiteStore(t *testing.T) {
	runStoreContract(t, func(t *testing.T) store.Store {
		t.Helper()
		return newSQLiteStore(t)
	})
}

func TestRedisStore(t *testing.T) {
	runStoreContract(t, func(t *testing.T) store.Store {
		t.Helper()
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		s := store.NewRedisStore(rdb, "test:")
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}

func newSQLiteStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	ctx := context.Background()

	s, err := store.NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "wcm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Migrate(ctx))
	return s
}

func TestSQLiteStore_MigrateIsIdempotent(t *testing.T) {
	t.Parallel()

	s := newSQLiteStore(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestRedisStore_KeysArePrefixed(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	s := store.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "wcm:")
	ctx := context.Background()

	m := testMonitor("m1")
	require.NoError(t, s.CreateMonitor(ctx, &m))
	require.NoError(t, s.InsertVariant(ctx, testVariant("m1", "p", "v")))

	assert.True(t, mr.Exists("wcm:monitor:m1"))
	assert.True(t, mr.Exists("wcm:variant:m1:p:v"))
	members, err := mr.Members("wcm:variants:m1")
	require.NoError(t, err)
	assert.Equal(t, []string{"wcm:variant:m1:p:v"}, members)
}

func TestRedisStore_VariantKeyEscapesSeparators(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	s := store.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "wcm:")
	ctx := context.Background()

	m := testMonitor("shop:matcha")
	require.NoError(t, s.CreateMonitor(ctx, &m))
	require.NoError(t, s.InsertVariant(ctx, testVariant("shop:matcha", "p", "v")))

	assert.True(t, mr.Exists("wcm:variant:shop%3Amatcha:p:v"))
	assert.False(t, mr.Exists("wcm:variant:shop:matcha:p:v"))
}

func TestOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.StorageConfig
		wantErr string
	}{
		{
			name: "memory",
			cfg:  config.StorageConfig{Backend: config.BackendMemory},
		},
		{
			name: "sqlite",
			cfg: config.StorageConfig{
				Backend: config.BackendSQLite,
				SQLite:  config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "open.db")},
			},
		},
		{
			name:    "unknown",
			cfg:     config.StorageConfig{Backend: "mongo"},
			wantErr: `unknown storage backend "mongo"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := store.Open(context.Background(), &tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			assert.NoError(t, s.Ping(context.Background()))
		})
	}
}

func TestOpen_Redis(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	s, err := store.Open(context.Background(), &config.StorageConfig{
		Backend: config.BackendRedis,
		Redis:   config.RedisConfig{Addr: mr.Addr(), Prefix: "wcm:"},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	assert.NoError(t, s.Migrate(context.Background()))
}
