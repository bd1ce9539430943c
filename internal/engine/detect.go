package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/metrics"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/store"
	"github.com/joshlee247/woocommerce-discord-monitor/pkg/price"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// Detector classifies a product snapshot against the persisted variant
// state and records what changed.
type Detector struct {
	store store.VariantStore
	now   func() time.Time
	log   *slog.Logger
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithDetectorClock sets the clock used for variant timestamps.
func WithDetectorClock(now func() time.Time) DetectorOption {
	return func(d *Detector) {
		d.now = now
	}
}

// WithDetectorLogger sets the logger.
func WithDetectorLogger(l *slog.Logger) DetectorOption {
	return func(d *Detector) {
		d.log = l
	}
}

// NewDetector creates a Detector backed by vs.
func NewDetector(vs store.VariantStore, opts ...DetectorOption) *Detector {
	d := &Detector{
		store: vs,
		now:   time.Now,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectAndRecord walks the product's variants in order, inserting unseen
// ones and updating those whose price or availability changed. It returns
// the most significant classification over all variants.
//
// A variant whose price cannot be normalized is skipped for this cycle.
// Any other store error aborts the check.
func (d *Detector) DetectAndRecord(
	ctx context.Context,
	m *domain.Monitor,
	p *domain.ProductSnapshot,
) (domain.Classification, error) {
	result := domain.Unchanged

	for i := range p.Variants {
		v := &p.Variants[i]

		class, err := d.detectVariant(ctx, m, p, v)
		if err != nil {
			var malformed *price.MalformedPriceError
			if errors.As(err, &malformed) {
				metrics.MalformedPricesTotal.Inc()
				d.log.Warn("skipping variant with malformed price",
					"monitor", m.ID,
					"product", p.ID,
					"variant", v.ID,
					"price", malformed.Raw,
					"error", err,
				)
				continue
			}
			return domain.Unchanged, err
		}

		result = domain.Max(result, class)
	}

	return result, nil
}

func (d *Detector) detectVariant(
	ctx context.Context,
	m *domain.Monitor,
	p *domain.ProductSnapshot,
	v *domain.VariantSnapshot,
) (domain.Classification, error) {
	key := domain.VariantKey{MonitorID: m.ID, ProductID: p.ID, VariantID: v.ID}

	existing, err := d.store.FindVariant(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		now := d.now().UTC()
		pv := &domain.PersistedVariant{
			MonitorID: key.MonitorID,
			ProductID: key.ProductID,
			VariantID: key.VariantID,
			Title:     v.Title,
			Brand:     p.Brand,
			Available: v.Available,
			Price:     v.Price,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := d.store.InsertVariant(ctx, pv); err != nil {
			return domain.Unchanged, fmt.Errorf("inserting variant %s: %w", key, err)
		}
		metrics.VariantsNewTotal.Inc()
		d.log.Debug("new variant", "key", key.String(), "title", v.Title, "available", v.Available)
		return domain.New, nil
	}
	if err != nil {
		return domain.Unchanged, fmt.Errorf("finding variant %s: %w", key, err)
	}

	samePrice, err := price.Equal(existing.Price, v.Price)
	if err != nil {
		return domain.Unchanged, err
	}
	if samePrice && existing.Available == v.Available {
		return domain.Unchanged, nil
	}

	updated := *existing
	updated.Title = v.Title
	updated.Brand = p.Brand
	updated.Available = v.Available
	updated.Price = v.Price
	updated.UpdatedAt = d.now().UTC()

	if err := d.store.UpdateVariant(ctx, &updated); err != nil {
		return domain.Unchanged, fmt.Errorf("updating variant %s: %w", key, err)
	}

	metrics.VariantsUpdatedTotal.Inc()
	d.log.Debug("variant changed",
		"key", key.String(),
		"old_price", existing.Price,
		"new_price", v.Price,
		"was_available", existing.Available,
		"available", v.Available,
	)
	return domain.Updated, nil
}
