// Package store defines the datastore abstraction for the monitor.
// All business logic depends on the Store interface (or the narrower
// VariantStore), never on concrete implementations. This enables mock-based
// testing without a running database.
package store

import (
	"context"

	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// VariantStore is the persistence contract used by change detection.
type VariantStore interface {
	// FindVariant returns the variant stored under key, or ErrNotFound.
	FindVariant(ctx context.Context, key domain.VariantKey) (*domain.PersistedVariant, error)
	// InsertVariant stores a new variant, or returns ErrDuplicateKey when one
	// already exists under the same key.
	InsertVariant(ctx context.Context, v *domain.PersistedVariant) error
	// UpdateVariant replaces title, brand, availability, price and
	// updated_at of the variant matching v's key, or returns ErrNotFound.
	UpdateVariant(ctx context.Context, v *domain.PersistedVariant) error
}

// Store defines all data access operations for the monitor.
type Store interface {
	VariantStore

	// Variants
	ListVariants(ctx context.Context, monitorID, productID string) ([]domain.PersistedVariant, error)
	DeleteVariant(ctx context.Context, key domain.VariantKey) error

	// Monitors
	CreateMonitor(ctx context.Context, m *domain.Monitor) error
	GetMonitor(ctx context.Context, id string) (*domain.Monitor, error)
	ListMonitors(ctx context.Context, enabledOnly bool) ([]domain.Monitor, error)
	UpdateMonitor(ctx context.Context, m *domain.Monitor) error
	DeleteMonitor(ctx context.Context, id string) error
	SetMonitorEnabled(ctx context.Context, id string, enabled bool) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
	Close() error
}
