package store

import (
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

var (
	// ErrNotFound is returned when no record matches the requested key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when inserting a record whose key exists.
	ErrDuplicateKey = errors.New("duplicate key")
)

// prepareMonitor assigns an id and timestamps to a monitor about to be created.
func prepareMonitor(m *domain.Monitor) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}
