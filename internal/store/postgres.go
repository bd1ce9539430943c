package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
// Its methods are exercised by the integration-tagged contract tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
// A poolSize of zero uses the default.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	if poolSize > 0 {
		cfg.MaxConns = int32(poolSize) //nolint:gosec // bounded by config
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return runMigrations(ctx, "migrations/postgres", pgMigrator{s.pool})
}

// FindVariant retrieves a variant by its key.
func (s *PostgresStore) FindVariant(
	ctx context.Context,
	key domain.VariantKey,
) (*domain.PersistedVariant, error) {
	v := &domain.PersistedVariant{}
	err := scanVariant(
		s.pool.QueryRow(ctx, queryFindVariant, key.MonitorID, key.ProductID, key.VariantID),
		v,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding variant %s: %w", key, err)
	}
	return v, nil
}

// InsertVariant inserts a variant; the primary key rejects duplicates.
func (s *PostgresStore) InsertVariant(ctx context.Context, v *domain.PersistedVariant) error {
	tag, err := s.pool.Exec(ctx, queryInsertVariant, variantArgs(v))
	if err != nil {
		return fmt.Errorf("inserting variant %s: %w", v.Key(), err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDuplicateKey
	}
	return nil
}

// UpdateVariant updates the mutable fields of an existing variant.
func (s *PostgresStore) UpdateVariant(ctx context.Context, v *domain.PersistedVariant) error {
	tag, err := s.pool.Exec(ctx, queryUpdateVariant, variantArgs(v))
	if err != nil {
		return fmt.Errorf("updating variant %s: %w", v.Key(), err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListVariants returns the variants of a monitor, optionally narrowed to one product.
func (s *PostgresStore) ListVariants(
	ctx context.Context,
	monitorID, productID string,
) ([]domain.PersistedVariant, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if productID == "" {
		rows, err = s.pool.Query(ctx, queryListVariantsByMonitor, monitorID)
	} else {
		rows, err = s.pool.Query(ctx, queryListVariantsByProduct, monitorID, productID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying variants: %w", err)
	}
	defer rows.Close()

	var variants []domain.PersistedVariant
	for rows.Next() {
		var v domain.PersistedVariant
		if err := scanVariant(rows, &v); err != nil {
			return nil, fmt.Errorf("scanning variant: %w", err)
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating variants: %w", err)
	}

	return variants, nil
}

// DeleteVariant removes a variant by key.
func (s *PostgresStore) DeleteVariant(ctx context.Context, key domain.VariantKey) error {
	tag, err := s.pool.Exec(ctx, queryDeleteVariant, key.MonitorID, key.ProductID, key.VariantID)
	if err != nil {
		return fmt.Errorf("deleting variant %s: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateMonitor inserts a new monitor.
func (s *PostgresStore) CreateMonitor(ctx context.Context, m *domain.Monitor) error {
	prepareMonitor(m)

	tag, err := s.pool.Exec(ctx, queryCreateMonitor, monitorArgs(m))
	if err != nil {
		return fmt.Errorf("creating monitor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDuplicateKey
	}
	return nil
}

// GetMonitor retrieves a monitor by its ID.
func (s *PostgresStore) GetMonitor(ctx context.Context, id string) (*domain.Monitor, error) {
	m := &domain.Monitor{}
	err := scanMonitor(s.pool.QueryRow(ctx, queryGetMonitor, id), m)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting monitor: %w", err)
	}
	return m, nil
}

// ListMonitors returns all monitors, optionally filtered to enabled only.
func (s *PostgresStore) ListMonitors(
	ctx context.Context,
	enabledOnly bool,
) ([]domain.Monitor, error) {
	query := queryListMonitorsAll
	if enabledOnly {
		query = queryListMonitorsEnabled
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying monitors: %w", err)
	}
	defer rows.Close()

	var monitors []domain.Monitor
	for rows.Next() {
		var m domain.Monitor
		if err := scanMonitor(rows, &m); err != nil {
			return nil, fmt.Errorf("scanning monitor: %w", err)
		}
		monitors = append(monitors, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monitors: %w", err)
	}

	return monitors, nil
}

// UpdateMonitor updates an existing monitor.
func (s *PostgresStore) UpdateMonitor(ctx context.Context, m *domain.Monitor) error {
	err := s.pool.QueryRow(ctx, queryUpdateMonitor, monitorArgs(m)).Scan(&m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("updating monitor: %w", err)
	}
	return nil
}

// DeleteMonitor removes a monitor and its variants in one transaction.
func (s *PostgresStore) DeleteMonitor(ctx context.Context, id string) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, queryDeleteMonitorVariants, id); err != nil {
			return fmt.Errorf("deleting monitor variants: %w", err)
		}
		tag, err := tx.Exec(ctx, queryDeleteMonitor, id)
		if err != nil {
			return fmt.Errorf("deleting monitor: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// SetMonitorEnabled enables or disables a monitor.
func (s *PostgresStore) SetMonitorEnabled(ctx context.Context, id string, enabled bool) error {
	tag, err := s.pool.Exec(ctx, querySetMonitorEnabled, id, enabled)
	if err != nil {
		return fmt.Errorf("setting monitor enabled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func variantArgs(v *domain.PersistedVariant) pgx.NamedArgs {
	return pgx.NamedArgs{
		"monitor_id": v.MonitorID,
		"product_id": v.ProductID,
		"variant_id": v.VariantID,
		"title":      v.Title,
		"brand":      v.Brand,
		"available":  v.Available,
		"price":      v.Price,
		"created_at": v.CreatedAt,
		"updated_at": v.UpdatedAt,
	}
}

func monitorArgs(m *domain.Monitor) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":         m.ID,
		"name":       m.Name,
		"url":        m.URL,
		"kind":       string(m.Kind),
		"query":      m.Query,
		"currency":   m.Currency,
		"channel":    m.Channel,
		"transport":  string(m.Transport),
		"enabled":    m.Enabled,
		"created_at": m.CreatedAt,
		"updated_at": m.UpdatedAt,
	}
}

// scanVariant scans a single variant row.
func scanVariant(row pgx.Row, v *domain.PersistedVariant) error {
	return row.Scan(
		&v.MonitorID, &v.ProductID, &v.VariantID,
		&v.Title, &v.Brand, &v.Available, &v.Price,
		&v.CreatedAt, &v.UpdatedAt,
	)
}

// scanMonitor scans a single monitor row.
func scanMonitor(row pgx.Row, m *domain.Monitor) error {
	return row.Scan(
		&m.ID, &m.Name, &m.URL, &m.Kind, &m.Query, &m.Currency,
		&m.Channel, &m.Transport, &m.Enabled, &m.CreatedAt, &m.UpdatedAt,
	)
}

type pgMigrator struct {
	pool *pgxpool.Pool
}

func (p pgMigrator) ensureMigrationsTable(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

func (p pgMigrator) migrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)",
		version,
	).Scan(&exists)
	return exists, err
}

func (p pgMigrator) applyMigration(ctx context.Context, version, sql string) error {
	if _, err := p.pool.Exec(ctx, sql); err != nil {
		return err
	}
	_, err := p.pool.Exec(ctx,
		"INSERT INTO schema_migrations (version) VALUES ($1)",
		version,
	)
	return err
}
