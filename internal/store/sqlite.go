package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// Fixed-width so that text ordering matches time ordering.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements Store on an embedded SQLite database.
// Writes go through a single connection so concurrent writers queue
// instead of failing with SQLITE_BUSY.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path.
// Use ":memory:" for a throwaway database.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	if path == ":memory:" {
		dsn = "file::memory:"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging sqlite database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	return runMigrations(ctx, "migrations/sqlite", sqliteMigrator{s.db})
}

// FindVariant retrieves a variant by its key.
func (s *SQLiteStore) FindVariant(
	ctx context.Context,
	key domain.VariantKey,
) (*domain.PersistedVariant, error) {
	row := s.db.QueryRowContext(ctx, sqliteFindVariant, key.MonitorID, key.ProductID, key.VariantID)

	v := &domain.PersistedVariant{}
	err := scanSQLiteVariant(row, v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding variant %s: %w", key, err)
	}
	return v, nil
}

// InsertVariant inserts a variant; the primary key rejects duplicates.
func (s *SQLiteStore) InsertVariant(ctx context.Context, v *domain.PersistedVariant) error {
	res, err := s.db.ExecContext(ctx, sqliteInsertVariant,
		v.MonitorID, v.ProductID, v.VariantID, v.Title, v.Brand, v.Available, v.Price,
		formatTime(v.CreatedAt), formatTime(v.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting variant %s: %w", v.Key(), err)
	}
	return requireAffected(res, ErrDuplicateKey)
}

// UpdateVariant updates the mutable fields of an existing variant.
func (s *SQLiteStore) UpdateVariant(ctx context.Context, v *domain.PersistedVariant) error {
	res, err := s.db.ExecContext(ctx, sqliteUpdateVariant,
		v.Title, v.Brand, v.Available, v.Price, formatTime(v.UpdatedAt),
		v.MonitorID, v.ProductID, v.VariantID,
	)
	if err != nil {
		return fmt.Errorf("updating variant %s: %w", v.Key(), err)
	}
	return requireAffected(res, ErrNotFound)
}

// ListVariants returns the variants of a monitor, optionally narrowed to one product.
func (s *SQLiteStore) ListVariants(
	ctx context.Context,
	monitorID, productID string,
) ([]domain.PersistedVariant, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if productID == "" {
		rows, err = s.db.QueryContext(ctx, sqliteListVariantsByMonitor, monitorID)
	} else {
		rows, err = s.db.QueryContext(ctx, sqliteListVariantsByProduct, monitorID, productID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying variants: %w", err)
	}
	defer rows.Close()

	var variants []domain.PersistedVariant
	for rows.Next() {
		var v domain.PersistedVariant
		if err := scanSQLiteVariant(rows, &v); err != nil {
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
func (s *SQLiteStore) DeleteVariant(ctx context.Context, key domain.VariantKey) error {
	res, err := s.db.ExecContext(ctx, sqliteDeleteVariant, key.MonitorID, key.ProductID, key.VariantID)
	if err != nil {
		return fmt.Errorf("deleting variant %s: %w", key, err)
	}
	return requireAffected(res, ErrNotFound)
}

// CreateMonitor inserts a new monitor.
func (s *SQLiteStore) CreateMonitor(ctx context.Context, m *domain.Monitor) error {
	prepareMonitor(m)

	res, err := s.db.ExecContext(ctx, sqliteCreateMonitor,
		m.ID, m.Name, m.URL, string(m.Kind), m.Query, m.Currency, m.Channel,
		string(m.Transport), m.Enabled, formatTime(m.CreatedAt), formatTime(m.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("creating monitor: %w", err)
	}
	return requireAffected(res, ErrDuplicateKey)
}

// GetMonitor retrieves a monitor by its ID.
func (s *SQLiteStore) GetMonitor(ctx context.Context, id string) (*domain.Monitor, error) {
	m := &domain.Monitor{}
	err := scanSQLiteMonitor(s.db.QueryRowContext(ctx, sqliteGetMonitor, id), m)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting monitor: %w", err)
	}
	return m, nil
}

// ListMonitors returns all monitors, optionally filtered to enabled only.
func (s *SQLiteStore) ListMonitors(ctx context.Context, enabledOnly bool) ([]domain.Monitor, error) {
	query := sqliteListMonitorsAll
	if enabledOnly {
		query = sqliteListMonitorsEnabled
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying monitors: %w", err)
	}
	defer rows.Close()

	var monitors []domain.Monitor
	for rows.Next() {
		var m domain.Monitor
		if err := scanSQLiteMonitor(rows, &m); err != nil {
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
func (s *SQLiteStore) UpdateMonitor(ctx context.Context, m *domain.Monitor) error {
	existing, err := s.GetMonitor(ctx, m.ID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, sqliteUpdateMonitor,
		m.Name, m.URL, string(m.Kind), m.Query, m.Currency, m.Channel,
		string(m.Transport), m.Enabled, formatTime(now), m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating monitor: %w", err)
	}
	if err := requireAffected(res, ErrNotFound); err != nil {
		return err
	}

	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = now
	return nil
}

// DeleteMonitor removes a monitor and its variants in one transaction.
func (s *SQLiteStore) DeleteMonitor(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, sqliteDeleteMonitorVariants, id); err != nil {
		return fmt.Errorf("deleting monitor variants: %w", err)
	}
	res, err := tx.ExecContext(ctx, sqliteDeleteMonitor, id)
	if err != nil {
		return fmt.Errorf("deleting monitor: %w", err)
	}
	if err := requireAffected(res, ErrNotFound); err != nil {
		return err
	}

	return tx.Commit()
}

// SetMonitorEnabled enables or disables a monitor.
func (s *SQLiteStore) SetMonitorEnabled(ctx context.Context, id string, enabled bool) error {
	res, err := s.db.ExecContext(ctx, sqliteSetMonitorEnabled, enabled, formatTime(time.Now().UTC()), id)
	if err != nil {
		return fmt.Errorf("setting monitor enabled: %w", err)
	}
	return requireAffected(res, ErrNotFound)
}

type sqlScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteVariant(row sqlScanner, v *domain.PersistedVariant) error {
	var createdAt, updatedAt string
	if err := row.Scan(
		&v.MonitorID, &v.ProductID, &v.VariantID,
		&v.Title, &v.Brand, &v.Available, &v.Price,
		&createdAt, &updatedAt,
	); err != nil {
		return err
	}
	return parseTimes(createdAt, updatedAt, &v.CreatedAt, &v.UpdatedAt)
}

func scanSQLiteMonitor(row sqlScanner, m *domain.Monitor) error {
	var (
		kind, transport      string
		createdAt, updatedAt string
	)
	if err := row.Scan(
		&m.ID, &m.Name, &m.URL, &kind, &m.Query, &m.Currency,
		&m.Channel, &transport, &m.Enabled, &createdAt, &updatedAt,
	); err != nil {
		return err
	}
	m.Kind = domain.MonitorKind(kind)
	m.Transport = domain.Transport(transport)
	return parseTimes(createdAt, updatedAt, &m.CreatedAt, &m.UpdatedAt)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func parseTimes(created, updated string, createdAt, updatedAt *time.Time) error {
	var err error
	if *createdAt, err = time.Parse(sqliteTimeLayout, created); err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	if *updatedAt, err = time.Parse(sqliteTimeLayout, updated); err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}

func requireAffected(res sql.Result, errNone error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return errNone
	}
	return nil
}

type sqliteMigrator struct {
	db *sql.DB
}

func (m sqliteMigrator) ensureMigrationsTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

func (m sqliteMigrator) migrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	err := m.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = ?)",
		version,
	).Scan(&exists)
	return exists, err
}

func (m sqliteMigrator) applyMigration(ctx context.Context, version, sqlText string) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, sqlText); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}
