package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/metrics"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/notify"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// Failure stages for product checks.
const (
	stageFetch    = "fetch"
	stageDetect   = "detect"
	stagePrune    = "prune"
	stageCompose  = "compose"
	stageDispatch = "dispatch"
)

// ProductCheckError reports a product check that failed at one stage.
type ProductCheckError struct {
	MonitorID  string
	ProductURL string
	Stage      string
	Err        error
}

func (e *ProductCheckError) Error() string {
	return fmt.Sprintf("monitor %s: %s %s: %v", e.MonitorID, e.Stage, e.ProductURL, e.Err)
}

func (e *ProductCheckError) Unwrap() error { return e.Err }

func (eng *Engine) runProduct(ctx context.Context, m *domain.Monitor, res *MonitorResult) error {
	return eng.fetchAndCheck(ctx, m, m.URL, res)
}

func (eng *Engine) runCollection(ctx context.Context, m *domain.Monitor, res *MonitorResult) error {
	refs, err := eng.source.Collection(ctx, m.URL)
	if err != nil {
		return fmt.Errorf("listing collection: %w", err)
	}
	return eng.runListing(ctx, m, refs, res)
}

func (eng *Engine) runSearch(ctx context.Context, m *domain.Monitor, res *MonitorResult) error {
	refs, err := eng.source.Search(ctx, m.URL, m.Query)
	if err != nil {
		return fmt.Errorf("searching %q: %w", m.Query, err)
	}
	return eng.runListing(ctx, m, refs, res)
}

// runListing resolves and checks each listed product in order. One
// product's failure does not stop the rest; all failures are joined.
func (eng *Engine) runListing(
	ctx context.Context,
	m *domain.Monitor,
	refs []domain.ProductRef,
	res *MonitorResult,
) error {
	var errs []error
	seen := make(map[string]struct{}, len(refs))

	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		// A listing may show the same product twice; check it once.
		if _, dup := seen[ref.URL]; dup {
			continue
		}
		seen[ref.URL] = struct{}{}

		if err := eng.fetchAndCheck(ctx, m, ref.URL, res); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (eng *Engine) fetchAndCheck(ctx context.Context, m *domain.Monitor, url string, res *MonitorResult) error {
	ctx, span := eng.tracer.Start(ctx, "engine.CheckProduct", trace.WithAttributes(
		attribute.String("product.url", url),
	))
	defer span.End()

	res.Products++

	start := time.Now()
	err := eng.checkProduct(ctx, m, url, res)
	eng.productDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("kind", string(m.Kind)),
		attribute.Bool("failed", err != nil),
	))
	if err != nil {
		res.Failed++
		metrics.ProductChecksTotal.WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "product check failed")

		var pce *ProductCheckError
		if errors.As(err, &pce) {
			metrics.ProductCheckFailuresTotal.WithLabelValues(pce.Stage).Inc()
		}
		eng.log.Error("product check failed", "monitor", m.ID, "product_url", url, "error", err)
	}
	return err
}

func (eng *Engine) checkProduct(ctx context.Context, m *domain.Monitor, url string, res *MonitorResult) error {
	fail := func(stage string, err error) error {
		return &ProductCheckError{MonitorID: m.ID, ProductURL: url, Stage: stage, Err: err}
	}

	p, err := eng.source.Product(ctx, url)
	if err != nil {
		return fail(stageFetch, err)
	}

	class, err := eng.detector.DetectAndRecord(ctx, m, p)
	if err != nil {
		return fail(stageDetect, err)
	}

	metrics.ProductChecksTotal.WithLabelValues(class.String()).Inc()
	switch class {
	case domain.New:
		res.New++
	case domain.Updated:
		res.Updated++
	default:
		res.Unchanged++
	}

	// The new state is already recorded; pruning must not cost the announcement.
	defer eng.pruneAfterCheck(ctx, m, p, res)

	if !class.Notify() {
		return nil
	}

	payload, err := eng.composer.Compose(m, p, class, m.Kind)
	if err != nil {
		return fail(stageCompose, err)
	}

	sendCtx := ctx
	if eng.notifyTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, eng.notifyTimeout)
		defer cancel()
	}

	if err := eng.notifier.Send(sendCtx, notify.DestinationFor(m), payload); err != nil {
		return fail(stageDispatch, err)
	}

	res.Notified++
	eng.log.Info("notification sent",
		"monitor", m.ID,
		"product", p.Title,
		"classification", class.String(),
		"transport", m.Transport,
	)
	return nil
}

// pruneAfterCheck removes variants p no longer lists. Failures are logged
// and counted under the prune stage; the next check retries them.
func (eng *Engine) pruneAfterCheck(ctx context.Context, m *domain.Monitor, p *domain.ProductSnapshot, res *MonitorResult) {
	// An empty id would list every variant of the monitor.
	if !eng.prune || p.ID == "" {
		return
	}

	pruned, err := eng.pruneMissing(ctx, m, p)
	res.Pruned += pruned
	if err != nil {
		metrics.ProductCheckFailuresTotal.WithLabelValues(stagePrune).Inc()
		eng.log.Warn("pruning missing variants failed",
			"monitor", m.ID,
			"product_url", p.URL,
			"error", &ProductCheckError{MonitorID: m.ID, ProductURL: p.URL, Stage: stagePrune, Err: err},
		)
	}
}

// pruneMissing deletes persisted variants of p that the snapshot no longer
// lists.
func (eng *Engine) pruneMissing(ctx context.Context, m *domain.Monitor, p *domain.ProductSnapshot) (int, error) {
	persisted, err := eng.store.ListVariants(ctx, m.ID, p.ID)
	if err != nil {
		return 0, fmt.Errorf("listing variants: %w", err)
	}

	current := make(map[string]struct{}, len(p.Variants))
	for i := range p.Variants {
		current[p.Variants[i].ID] = struct{}{}
	}

	var pruned int
	for i := range persisted {
		if _, ok := current[persisted[i].VariantID]; ok {
			continue
		}
		key := persisted[i].Key()
		if err := eng.store.DeleteVariant(ctx, key); err != nil {
			return pruned, fmt.Errorf("deleting variant %s: %w", key, err)
		}
		pruned++
		metrics.VariantsPrunedTotal.Inc()
		eng.log.Info("pruned variant missing from storefront", "key", key.String(), "title", persisted[i].Title)
	}

	return pruned, nil
}
