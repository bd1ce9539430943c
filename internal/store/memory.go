package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// MemoryStore implements Store with mutex-guarded maps. State is lost on exit.
type MemoryStore struct {
	mu       sync.RWMutex
	monitors map[string]domain.Monitor
	variants map[domain.VariantKey]domain.PersistedVariant
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		monitors: make(map[string]domain.Monitor),
		variants: make(map[domain.VariantKey]domain.PersistedVariant),
	}
}

// FindVariant returns a copy of the stored variant.
func (s *MemoryStore) FindVariant(
	_ context.Context,
	key domain.VariantKey,
) (*domain.PersistedVariant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.variants[key]
	if !ok {
		return nil, ErrNotFound
	}
	return &v, nil
}

// InsertVariant stores v unless its key is taken.
func (s *MemoryStore) InsertVariant(_ context.Context, v *domain.PersistedVariant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := v.Key()
	if _, ok := s.variants[key]; ok {
		return ErrDuplicateKey
	}
	s.variants[key] = *v
	return nil
}

// UpdateVariant replaces the mutable fields of an existing variant.
func (s *MemoryStore) UpdateVariant(_ context.Context, v *domain.PersistedVariant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := v.Key()
	existing, ok := s.variants[key]
	if !ok {
		return ErrNotFound
	}

	existing.Title = v.Title
	existing.Brand = v.Brand
	existing.Available = v.Available
	existing.Price = v.Price
	existing.UpdatedAt = v.UpdatedAt
	s.variants[key] = existing
	return nil
}

// ListVariants returns the variants of a monitor, optionally narrowed to one
// product, ordered by product then variant id.
func (s *MemoryStore) ListVariants(
	_ context.Context,
	monitorID, productID string,
) ([]domain.PersistedVariant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.PersistedVariant
	for k, v := range s.variants {
		if k.MonitorID != monitorID {
			continue
		}
		if productID != "" && k.ProductID != productID {
			continue
		}
		out = append(out, v)
	}

	slices.SortFunc(out, func(a, b domain.PersistedVariant) int {
		return cmp.Or(cmp.Compare(a.ProductID, b.ProductID), cmp.Compare(a.VariantID, b.VariantID))
	})
	return out, nil
}

// DeleteVariant removes a variant. Deleting a missing key returns ErrNotFound.
func (s *MemoryStore) DeleteVariant(_ context.Context, key domain.VariantKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.variants[key]; !ok {
		return ErrNotFound
	}
	delete(s.variants, key)
	return nil
}

// CreateMonitor stores a new monitor, assigning an id when empty.
func (s *MemoryStore) CreateMonitor(_ context.Context, m *domain.Monitor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID != "" {
		if _, ok := s.monitors[m.ID]; ok {
			return ErrDuplicateKey
		}
	}
	prepareMonitor(m)
	s.monitors[m.ID] = *m
	return nil
}

// GetMonitor returns a monitor by id.
func (s *MemoryStore) GetMonitor(_ context.Context, id string) (*domain.Monitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.monitors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

// ListMonitors returns monitors ordered by creation time.
func (s *MemoryStore) ListMonitors(_ context.Context, enabledOnly bool) ([]domain.Monitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Monitor, 0, len(s.monitors))
	for _, m := range s.monitors {
		if enabledOnly && !m.Enabled {
			continue
		}
		out = append(out, m)
	}

	slices.SortFunc(out, func(a, b domain.Monitor) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

// UpdateMonitor replaces an existing monitor's configuration.
func (s *MemoryStore) UpdateMonitor(_ context.Context, m *domain.Monitor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.monitors[m.ID]
	if !ok {
		return ErrNotFound
	}
	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = time.Now().UTC()
	s.monitors[m.ID] = *m
	return nil
}

// DeleteMonitor removes a monitor and every variant recorded under it.
func (s *MemoryStore) DeleteMonitor(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.monitors[id]; !ok {
		return ErrNotFound
	}
	delete(s.monitors, id)
	for k := range s.variants {
		if k.MonitorID == id {
			delete(s.variants, k)
		}
	}
	return nil
}

// SetMonitorEnabled toggles a monitor.
func (s *MemoryStore) SetMonitorEnabled(_ context.Context, id string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.monitors[id]
	if !ok {
		return ErrNotFound
	}
	m.Enabled = enabled
	m.UpdatedAt = time.Now().UTC()
	s.monitors[id] = m
	return nil
}

// Migrate is a no-op.
func (s *MemoryStore) Migrate(context.Context) error { return nil }

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
