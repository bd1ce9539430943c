package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/store"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// runStoreContract exercises the behavior every Store backend must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Helper()

	t.Run("find missing variant", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		m := createMonitor(t, s, "m1")

		_, err := s.FindVariant(ctx, domain.VariantKey{MonitorID: m.ID, ProductID: "p", VariantID: "v"})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("insert then find", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		m := createMonitor(t, s, "m1")

		v := testVariant(m.ID, "100", "200")
		require.NoError(t, s.InsertVariant(ctx, v))

		got, err := s.FindVariant(ctx, v.Key())
		require.NoError(t, err)
		assert.Equal(t, v.Title, got.Title)
		assert.Equal(t, v.Brand, got.Brand)
		assert.Equal(t, v.Price, got.Price)
		assert.True(t, got.Available)
		assert.True(t, v.CreatedAt.Equal(got.CreatedAt))
		assert.True(t, v.UpdatedAt.Equal(got.UpdatedAt))
	})

	t.Run("ids containing colons stay distinct", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		createMonitor(t, s, "a:1")
		createMonitor(t, s, "a")

		first := testVariant("a:1", "2", "3")
		second := testVariant("a", "1:2", "3")
		second.Price = "$48.00"
		require.NoError(t, s.InsertVariant(ctx, first))
		require.NoError(t, s.InsertVariant(ctx, second))

		got, err := s.FindVariant(ctx, first.Key())
		require.NoError(t, err)
		assert.Equal(t, first.Price, got.Price)

		got, err = s.FindVariant(ctx, second.Key())
		require.NoError(t, err)
		assert.Equal(t, "$48.00", got.Price)

		vs, err := s.ListVariants(ctx, "a", "")
		require.NoError(t, err)
		require.Len(t, vs, 1)
		assert.Equal(t, "1:2", vs[0].ProductID)
	})

	t.Run("insert duplicate key", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		m := createMonitor(t, s, "m1")

		v := testVariant(m.ID, "100", "200")
		require.NoError(t, s.InsertVariant(ctx, v))

		dup := testVariant(m.ID, "100", "200")
		dup.Price = "$99.00"
		assert.ErrorIs(t, s.InsertVariant(ctx, dup), store.ErrDuplicateKey)

		got, err := s.FindVariant(ctx, v.Key())
		require.NoError(t, err)
		assert.Equal(t, v.Price, got.Price)
	})

	t.Run("concurrent inserts of one key admit exactly one", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		m := createMonitor(t, s, "m1")

		const writers = 8
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			success int
			dups    int
		)
		for range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := s.InsertVariant(ctx, testVariant(m.ID, "100", "200"))
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					success++
				case assert.ErrorIs(t, err, store.ErrDuplicateKey):
					dups++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, success)
		assert.Equal(t, writers-1, dups)
	})

	t.Run("update replaces mutable fields and keeps created_at", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		m := createMonitor(t, s, "m1")

		v := testVariant(m.ID, "100", "200")
		require.NoError(t, s.InsertVariant(ctx, v))

		later := v.UpdatedAt.Add(time.Hour)
		upd := *v
		upd.Title = "100g tin"
		upd.Brand = "Other Brand"
		upd.Available = false
		upd.Price = "$30.00"
		upd.CreatedAt = later
		upd.UpdatedAt = later
		require.NoError(t, s.UpdateVariant(ctx, &upd))

		got, err := s.FindVariant(ctx, v.Key())
		require.NoError(t, err)
		assert.Equal(t, "100g tin", got.Title)
		assert.Equal(t, "Other Brand", got.Brand)
		assert.False(t, got.Available)
		assert.Equal(t, "$30.00", got.Price)
		assert.True(t, v.CreatedAt.Equal(got.CreatedAt))
		assert.True(t, later.Equal(got.UpdatedAt))
	})

	t.Run("update missing variant", func(t *testing.T) {
		s := newStore(t)
		m := createMonitor(t, s, "m1")

		err := s.UpdateVariant(context.Background(), testVariant(m.ID, "100", "200"))
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list and delete variants", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		m := createMonitor(t, s, "m1")

		require.NoError(t, s.InsertVariant(ctx, testVariant(m.ID, "p1", "v2")))
		require.NoError(t, s.InsertVariant(ctx, testVariant(m.ID, "p1", "v1")))
		require.NoError(t, s.InsertVariant(ctx, testVariant(m.ID, "p2", "v3")))

		all, err := s.ListVariants(ctx, m.ID, "")
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "v1", all[0].VariantID)
		assert.Equal(t, "v2", all[1].VariantID)
		assert.Equal(t, "v3", all[2].VariantID)

		p1, err := s.ListVariants(ctx, m.ID, "p1")
		require.NoError(t, err)
		assert.Len(t, p1, 2)

		key := domain.VariantKey{MonitorID: m.ID, ProductID: "p1", VariantID: "v1"}
		require.NoError(t, s.DeleteVariant(ctx, key))
		assert.ErrorIs(t, s.DeleteVariant(ctx, key), store.ErrNotFound)

		p1, err = s.ListVariants(ctx, m.ID, "p1")
		require.NoError(t, err)
		require.Len(t, p1, 1)
		assert.Equal(t, "v2", p1[0].VariantID)
	})

	t.Run("monitor crud", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		m := createMonitor(t, s, "m1")
		assert.False(t, m.CreatedAt.IsZero())

		dup := testMonitor("m1")
		assert.ErrorIs(t, s.CreateMonitor(ctx, &dup), store.ErrDuplicateKey)

		got, err := s.GetMonitor(ctx, "m1")
		require.NoError(t, err)
		assert.Equal(t, m.URL, got.URL)
		assert.Equal(t, domain.KindCollection, got.Kind)
		assert.Equal(t, domain.TransportDiscord, got.Transport)
		assert.True(t, got.Enabled)

		got.Name = "renamed"
		got.Kind = domain.KindSearch
		got.Query = "matcha"
		require.NoError(t, s.UpdateMonitor(ctx, got))

		got, err = s.GetMonitor(ctx, "m1")
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Name)
		assert.Equal(t, domain.KindSearch, got.Kind)
		assert.Equal(t, "matcha", got.Query)

		missing := testMonitor("nope")
		assert.ErrorIs(t, s.UpdateMonitor(ctx, &missing), store.ErrNotFound)
		_, err = s.GetMonitor(ctx, "nope")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("create assigns id when empty", func(t *testing.T) {
		s := newStore(t)
		m := testMonitor("")
		require.NoError(t, s.CreateMonitor(context.Background(), &m))
		assert.NotEmpty(t, m.ID)
	})

	t.Run("list monitors enabled only", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		createMonitor(t, s, "a")
		createMonitor(t, s, "b")
		require.NoError(t, s.SetMonitorEnabled(ctx, "b", false))
		assert.ErrorIs(t, s.SetMonitorEnabled(ctx, "zzz", false), store.ErrNotFound)

		all, err := s.ListMonitors(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		enabled, err := s.ListMonitors(ctx, true)
		require.NoError(t, err)
		require.Len(t, enabled, 1)
		assert.Equal(t, "a", enabled[0].ID)
	})

	t.Run("delete monitor cascades variants", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		createMonitor(t, s, "m1")
		createMonitor(t, s, "m2")
		require.NoError(t, s.InsertVariant(ctx, testVariant("m1", "p", "v")))
		require.NoError(t, s.InsertVariant(ctx, testVariant("m2", "p", "v")))

		require.NoError(t, s.DeleteMonitor(ctx, "m1"))
		assert.ErrorIs(t, s.DeleteMonitor(ctx, "m1"), store.ErrNotFound)

		_, err := s.FindVariant(ctx, domain.VariantKey{MonitorID: "m1", ProductID: "p", VariantID: "v"})
		assert.ErrorIs(t, err, store.ErrNotFound)

		left, err := s.ListVariants(ctx, "m1", "")
		require.NoError(t, err)
		assert.Empty(t, left)

		_, err = s.FindVariant(ctx, domain.VariantKey{MonitorID: "m2", ProductID: "p", VariantID: "v"})
		assert.NoError(t, err)
	})

	t.Run("ping", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Ping(context.Background()))
	})
}

func testMonitor(id string) domain.Monitor {
	return domain.Monitor{
		ID:        id,
		Name:      fmt.Sprintf("monitor %s", id),
		URL:       "https://shop.example.com/product-category/matcha/",
		Kind:      domain.KindCollection,
		Currency:  "USD",
		Channel:   "https://discord.com/api/webhooks/1/abc",
		Transport: domain.TransportDiscord,
		Enabled:   true,
	}
}

func createMonitor(t *testing.T, s store.Store, id string) *domain.Monitor {
	t.Helper()
	m := testMonitor(id)
	require.NoError(t, s.CreateMonitor(context.Background(), &m))
	return &m
}

func testVariant(monitorID, productID, variantID string) *domain.PersistedVariant {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &domain.PersistedVariant{
		MonitorID: monitorID,
		ProductID: productID,
		VariantID: variantID,
		Title:     "40g can",
		Brand:     "Marukyu Koyamaen",
		Available: true,
		Price:     "$25.00",
		CreatedAt: now,
		UpdatedAt: now,
	}
}
