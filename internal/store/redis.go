package store

import (
	"cmp"
	"context"
	"fmt"
	"net/url"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// Inserts a hash only when the key does not exist yet and indexes it.
// KEYS[1] hash key, KEYS[2] index set; ARGV field/value pairs.
var insertScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('HSET', KEYS[1], unpack(ARGV))
redis.call('SADD', KEYS[2], KEYS[1])
return 1
`)

// Overwrites fields of an existing hash. KEYS[1] hash key; ARGV field/value pairs.
var updateScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return 0
end
redis.call('HSET', KEYS[1], unpack(ARGV))
return 1
`)

// RedisStore implements Store with one hash per monitor and per variant.
// Per-monitor sets index the variant hashes so that listing and cascade
// deletes avoid SCAN.
type RedisStore struct {
	rdb    redis.UniversalClient
	prefix string
}

// NewRedisStore wraps an existing client. Keys are namespaced by prefix.
func NewRedisStore(rdb redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

// DialRedis connects to addr and verifies the connection.
func DialRedis(ctx context.Context, addr, password string, db int, prefix string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return NewRedisStore(rdb, prefix), nil
}

func (s *RedisStore) monitorKey(id string) string { return s.prefix + "monitor:" + id }
func (s *RedisStore) monitorsKey() string        { return s.prefix + "monitors" }
func (s *RedisStore) variantIndexKey(monitorID string) string {
	return s.prefix + "variants:" + monitorID
}

// variantKey query-escapes each part so a ':' inside an id cannot shift the
// boundary between monitor, product and variant.
func (s *RedisStore) variantKey(k domain.VariantKey) string {
	return s.prefix + "variant:" + url.QueryEscape(k.MonitorID) + ":" +
		url.QueryEscape(k.ProductID) + ":" + url.QueryEscape(k.VariantID)
}

// Close closes the client.
func (s *RedisStore) Close() error { return s.rdb.Close() }

// Ping verifies the server is reachable.
func (s *RedisStore) Ping(ctx context.Context) error { return s.rdb.Ping(ctx).Err() }

// Migrate is a no-op; Redis is schemaless.
func (s *RedisStore) Migrate(context.Context) error { return nil }

// FindVariant retrieves a variant by its key.
func (s *RedisStore) FindVariant(
	ctx context.Context,
	key domain.VariantKey,
) (*domain.PersistedVariant, error) {
	fields, err := s.rdb.HGetAll(ctx, s.variantKey(key)).Result()
	if err != nil {
		return nil, fmt.Errorf("finding variant %s: %w", key, err)
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}
	return decodeVariant(fields)
}

// InsertVariant stores a variant atomically unless its key exists.
func (s *RedisStore) InsertVariant(ctx context.Context, v *domain.PersistedVariant) error {
	key := v.Key()
	n, err := insertScript.Run(ctx, s.rdb,
		[]string{s.variantKey(key), s.variantIndexKey(key.MonitorID)},
		encodeVariant(v)...,
	).Int()
	if err != nil {
		return fmt.Errorf("inserting variant %s: %w", key, err)
	}
	if n == 0 {
		return ErrDuplicateKey
	}
	return nil
}

// UpdateVariant replaces the mutable fields of an existing variant.
func (s *RedisStore) UpdateVariant(ctx context.Context, v *domain.PersistedVariant) error {
	key := v.Key()
	n, err := updateScript.Run(ctx, s.rdb,
		[]string{s.variantKey(key)},
		"title", v.Title,
		"brand", v.Brand,
		"available", formatBool(v.Available),
		"price", v.Price,
		"updated_at", formatTime(v.UpdatedAt),
	).Int()
	if err != nil {
		return fmt.Errorf("updating variant %s: %w", key, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListVariants returns the variants of a monitor, optionally narrowed to one product.
func (s *RedisStore) ListVariants(
	ctx context.Context,
	monitorID, productID string,
) ([]domain.PersistedVariant, error) {
	keys, err := s.rdb.SMembers(ctx, s.variantIndexKey(monitorID)).Result()
	if err != nil {
		return nil, fmt.Errorf("listing variant keys: %w", err)
	}

	cmds, err := s.rdb.Pipelined(ctx, func(p redis.Pipeliner) error {
		for _, k := range keys {
			p.HGetAll(ctx, k)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading variants: %w", err)
	}

	var variants []domain.PersistedVariant
	for _, cmd := range cmds {
		fields, err := cmd.(*redis.MapStringStringCmd).Result()
		if err != nil {
			return nil, fmt.Errorf("loading variant: %w", err)
		}
		if len(fields) == 0 {
			continue
		}
		v, err := decodeVariant(fields)
		if err != nil {
			return nil, err
		}
		if productID != "" && v.ProductID != productID {
			continue
		}
		variants = append(variants, *v)
	}

	slices.SortFunc(variants, func(a, b domain.PersistedVariant) int {
		return cmp.Or(cmp.Compare(a.ProductID, b.ProductID), cmp.Compare(a.VariantID, b.VariantID))
	})
	return variants, nil
}

// DeleteVariant removes a variant by key.
func (s *RedisStore) DeleteVariant(ctx context.Context, key domain.VariantKey) error {
	var del *redis.IntCmd
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		del = p.Del(ctx, s.variantKey(key))
		p.SRem(ctx, s.variantIndexKey(key.MonitorID), s.variantKey(key))
		return nil
	})
	if err != nil {
		return fmt.Errorf("deleting variant %s: %w", key, err)
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateMonitor stores a new monitor atomically unless its id exists.
func (s *RedisStore) CreateMonitor(ctx context.Context, m *domain.Monitor) error {
	prepareMonitor(m)

	n, err := insertScript.Run(ctx, s.rdb,
		[]string{s.monitorKey(m.ID), s.monitorsKey()},
		encodeMonitor(m)...,
	).Int()
	if err != nil {
		return fmt.Errorf("creating monitor: %w", err)
	}
	if n == 0 {
		return ErrDuplicateKey
	}
	return nil
}

// GetMonitor retrieves a monitor by its ID.
func (s *RedisStore) GetMonitor(ctx context.Context, id string) (*domain.Monitor, error) {
	fields, err := s.rdb.HGetAll(ctx, s.monitorKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("getting monitor: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}
	return decodeMonitor(fields)
}

// ListMonitors returns all monitors ordered by creation time.
func (s *RedisStore) ListMonitors(ctx context.Context, enabledOnly bool) ([]domain.Monitor, error) {
	keys, err := s.rdb.SMembers(ctx, s.monitorsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("listing monitor keys: %w", err)
	}

	var monitors []domain.Monitor
	for _, k := range keys {
		fields, err := s.rdb.HGetAll(ctx, k).Result()
		if err != nil {
			return nil, fmt.Errorf("loading monitor: %w", err)
		}
		if len(fields) == 0 {
			continue
		}
		m, err := decodeMonitor(fields)
		if err != nil {
			return nil, err
		}
		if enabledOnly && !m.Enabled {
			continue
		}
		monitors = append(monitors, *m)
	}

	slices.SortFunc(monitors, func(a, b domain.Monitor) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return monitors, nil
}

// UpdateMonitor updates an existing monitor.
func (s *RedisStore) UpdateMonitor(ctx context.Context, m *domain.Monitor) error {
	existing, err := s.GetMonitor(ctx, m.ID)
	if err != nil {
		return err
	}
	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = time.Now().UTC()

	n, err := updateScript.Run(ctx, s.rdb, []string{s.monitorKey(m.ID)}, encodeMonitor(m)...).Int()
	if err != nil {
		return fmt.Errorf("updating monitor: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMonitor removes a monitor, its variants and their index.
func (s *RedisStore) DeleteMonitor(ctx context.Context, id string) error {
	keys, err := s.rdb.SMembers(ctx, s.variantIndexKey(id)).Result()
	if err != nil {
		return fmt.Errorf("listing variant keys: %w", err)
	}

	var del *redis.IntCmd
	_, err = s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		del = p.Del(ctx, s.monitorKey(id))
		p.SRem(ctx, s.monitorsKey(), s.monitorKey(id))
		if len(keys) > 0 {
			p.Del(ctx, keys...)
		}
		p.Del(ctx, s.variantIndexKey(id))
		return nil
	})
	if err != nil {
		return fmt.Errorf("deleting monitor: %w", err)
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetMonitorEnabled enables or disables a monitor.
func (s *RedisStore) SetMonitorEnabled(ctx context.Context, id string, enabled bool) error {
	n, err := updateScript.Run(ctx, s.rdb, []string{s.monitorKey(id)},
		"enabled", formatBool(enabled),
		"updated_at", formatTime(time.Now().UTC()),
	).Int()
	if err != nil {
		return fmt.Errorf("setting monitor enabled: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func encodeVariant(v *domain.PersistedVariant) []any {
	return []any{
		"monitor_id", v.MonitorID,
		"product_id", v.ProductID,
		"variant_id", v.VariantID,
		"title", v.Title,
		"brand", v.Brand,
		"available", formatBool(v.Available),
		"price", v.Price,
		"created_at", formatTime(v.CreatedAt),
		"updated_at", formatTime(v.UpdatedAt),
	}
}

func decodeVariant(f map[string]string) (*domain.PersistedVariant, error) {
	v := &domain.PersistedVariant{
		MonitorID: f["monitor_id"],
		ProductID: f["product_id"],
		VariantID: f["variant_id"],
		Title:     f["title"],
		Brand:     f["brand"],
		Available: f["available"] == "1",
		Price:     f["price"],
	}
	if err := parseTimes(f["created_at"], f["updated_at"], &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, fmt.Errorf("decoding variant %s: %w", v.Key(), err)
	}
	return v, nil
}

func encodeMonitor(m *domain.Monitor) []any {
	return []any{
		"id", m.ID,
		"name", m.Name,
		"url", m.URL,
		"kind", string(m.Kind),
		"query", m.Query,
		"currency", m.Currency,
		"channel", m.Channel,
		"transport", string(m.Transport),
		"enabled", formatBool(m.Enabled),
		"created_at", formatTime(m.CreatedAt),
		"updated_at", formatTime(m.UpdatedAt),
	}
}

func decodeMonitor(f map[string]string) (*domain.Monitor, error) {
	m := &domain.Monitor{
		ID:        f["id"],
		Name:      f["name"],
		URL:       f["url"],
		Kind:      domain.MonitorKind(f["kind"]),
		Query:     f["query"],
		Currency:  f["currency"],
		Channel:   f["channel"],
		Transport: domain.Transport(f["transport"]),
		Enabled:   f["enabled"] == "1",
	}
	if err := parseTimes(f["created_at"], f["updated_at"], &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, fmt.Errorf("decoding monitor %s: %w", m.ID, err)
	}
	return m, nil
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
