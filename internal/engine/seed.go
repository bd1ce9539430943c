package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/store"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// SeedMonitors upserts monitors by id. Configured fields win over what is
// stored; monitors not listed are left alone.
func SeedMonitors(ctx context.Context, s store.Store, monitors []domain.Monitor, log *slog.Logger) error {
	var errs []error

	for i := range monitors {
		m := monitors[i]

		existing, err := s.GetMonitor(ctx, m.ID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			if err := s.CreateMonitor(ctx, &m); err != nil {
				errs = append(errs, fmt.Errorf("creating monitor %s: %w", m.ID, err))
				continue
			}
			log.Info("seeded monitor", "id", m.ID, "kind", m.Kind, "url", m.URL)
		case err != nil:
			errs = append(errs, fmt.Errorf("getting monitor %s: %w", m.ID, err))
		default:
			m.CreatedAt = existing.CreatedAt
			if err := s.UpdateMonitor(ctx, &m); err != nil {
				errs = append(errs, fmt.Errorf("updating monitor %s: %w", m.ID, err))
				continue
			}
			log.Debug("monitor updated from config", "id", m.ID)
		}
	}

	return errors.Join(errs...)
}
