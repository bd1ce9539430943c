// Package engine runs monitor checks: it fetches storefront state, detects
// variant changes and dispatches notifications.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/metrics"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/notify"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/store"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/storefront"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

const (
	defaultConcurrency   = 4
	defaultNotifyTimeout = 15 * time.Second
	tracerName           = "github.com/joshlee247/woocommerce-discord-monitor/internal/engine"
)

// ErrCheckInProgress is returned by RunMonitor when another check of the same
// monitor has not finished yet.
var ErrCheckInProgress = errors.New("check already in progress")

// Engine checks monitors against their storefronts.
type Engine struct {
	store    store.Store
	source   storefront.Source
	notifier notify.Notifier
	composer *notify.Composer
	detector *Detector
	log      *slog.Logger
	tracer   trace.Tracer
	meter    metric.Meter
	now      func() time.Time

	monitorChecks   metric.Int64Counter
	productDuration metric.Float64Histogram

	concurrency   int
	notifyTimeout time.Duration
	prune         bool

	// inFlight holds one *sync.Mutex per monitor id. Scheduled cycles and
	// API-triggered checks share it.
	inFlight sync.Map
}

// MonitorResult summarizes one monitor check.
type MonitorResult struct {
	MonitorID string `json:"monitor_id"`
	Kind      string `json:"kind"`
	Products  int    `json:"products"`
	New       int    `json:"new"`
	Updated   int    `json:"updated"`
	Unchanged int    `json:"unchanged"`
	Failed    int    `json:"failed"`
	Notified  int    `json:"notified"`
	Pruned    int    `json:"pruned"`
	Skipped   bool   `json:"skipped,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	src storefront.Source,
	n notify.Notifier,
	c *notify.Composer,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:         s,
		source:        src,
		notifier:      n,
		composer:      c,
		log:           slog.Default(),
		tracer:        otel.Tracer(tracerName),
		meter:         otel.Meter(tracerName),
		now:           time.Now,
		concurrency:   defaultConcurrency,
		notifyTimeout: defaultNotifyTimeout,
		prune:         true,
	}
	for _, opt := range opts {
		opt(eng)
	}
	eng.detector = NewDetector(s,
		WithDetectorClock(eng.now),
		WithDetectorLogger(eng.log),
	)
	eng.initInstruments()
	return eng
}

// initInstruments creates the OTLP instruments, falling back to no-ops
// when the meter rejects them.
func (eng *Engine) initInstruments() {
	var err error
	eng.monitorChecks, err = eng.meter.Int64Counter("wcm.monitor.checks",
		metric.WithDescription("Monitor checks by kind and result."),
	)
	if err != nil {
		eng.log.Warn("creating monitor check counter", "error", err)
		eng.monitorChecks, _ = noop.NewMeterProvider().Meter(tracerName).Int64Counter("wcm.monitor.checks")
	}

	eng.productDuration, err = eng.meter.Float64Histogram("wcm.product.check.duration",
		metric.WithDescription("Duration of product checks."),
		metric.WithUnit("s"),
	)
	if err != nil {
		eng.log.Warn("creating product duration histogram", "error", err)
		eng.productDuration, _ = noop.NewMeterProvider().Meter(tracerName).Float64Histogram("wcm.product.check.duration")
	}
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithClock sets the clock used for variant timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// WithConcurrency bounds how many monitors are checked at once.
func WithConcurrency(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithNotifyTimeout bounds each notification dispatch.
func WithNotifyTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.notifyTimeout = d
	}
}

// WithPruneMissingVariants controls whether persisted variants that vanish
// from a product page are deleted.
func WithPruneMissingVariants(prune bool) EngineOption {
	return func(e *Engine) {
		e.prune = prune
	}
}

// WithMeter sets the meter used for OTLP check instruments.
func WithMeter(m metric.Meter) EngineOption {
	return func(e *Engine) {
		e.meter = m
	}
}

// WithTracer sets the tracer used for check spans.
func WithTracer(t trace.Tracer) EngineOption {
	return func(e *Engine) {
		e.tracer = t
	}
}

// RunAll checks every enabled monitor, at most concurrency at a time. A
// failing monitor does not stop the others; their errors are joined.
func (eng *Engine) RunAll(ctx context.Context) ([]MonitorResult, error) {
	ctx, span := eng.tracer.Start(ctx, "engine.RunAll")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.CheckCycleDuration.Observe(time.Since(start).Seconds())
	}()

	monitors, err := eng.store.ListMonitors(ctx, true)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing monitors")
		return nil, fmt.Errorf("listing monitors: %w", err)
	}

	metrics.MonitorsEnabled.Set(float64(len(monitors)))
	span.SetAttributes(attribute.Int("monitors", len(monitors)))
	eng.log.Info("check cycle starting", "monitors", len(monitors))

	results := make([]MonitorResult, len(monitors))
	errs := make([]error, len(monitors))

	var g errgroup.Group
	g.SetLimit(eng.concurrency)

	for i := range monitors {
		g.Go(func() error {
			res, err := eng.RunMonitor(ctx, &monitors[i])
			results[i] = *res
			if errors.Is(err, ErrCheckInProgress) {
				eng.log.Info("monitor skipped, check already running", "monitor", monitors[i].ID)
				return nil
			}
			errs[i] = err
			return nil
		})
	}
	_ = g.Wait()

	metrics.CheckCyclesTotal.Inc()
	metrics.LastCycleTimestamp.Set(float64(eng.now().Unix()))

	err = errors.Join(errs...)
	if err != nil {
		span.SetStatus(codes.Error, "one or more monitors failed")
	}

	eng.log.Info("check cycle complete",
		"monitors", len(monitors),
		"duration", time.Since(start),
		"failed", countFailed(results),
	)

	return results, err
}

// CheckMonitor checks a single monitor by id, enabled or not.
func (eng *Engine) CheckMonitor(ctx context.Context, id string) (*MonitorResult, error) {
	m, err := eng.store.GetMonitor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting monitor %s: %w", id, err)
	}
	return eng.RunMonitor(ctx, m)
}

// RunMonitor runs the driver for m's kind. The returned result is never nil.
// At most one check of a given monitor runs at a time; a second caller gets
// a Skipped result and ErrCheckInProgress.
func (eng *Engine) RunMonitor(ctx context.Context, m *domain.Monitor) (*MonitorResult, error) {
	release, ok := eng.claim(m.ID)
	if !ok {
		return &MonitorResult{MonitorID: m.ID, Kind: string(m.Kind), Skipped: true},
			fmt.Errorf("monitor %s: %w", m.ID, ErrCheckInProgress)
	}
	defer release()

	ctx, span := eng.tracer.Start(ctx, "engine.RunMonitor", trace.WithAttributes(
		attribute.String("monitor.id", m.ID),
		attribute.String("monitor.kind", string(m.Kind)),
		attribute.String("monitor.url", m.URL),
	))
	defer span.End()

	res := &MonitorResult{MonitorID: m.ID, Kind: string(m.Kind)}

	var err error
	switch m.Kind {
	case domain.KindProduct:
		err = eng.runProduct(ctx, m, res)
	case domain.KindCollection:
		err = eng.runCollection(ctx, m, res)
	case domain.KindSearch:
		err = eng.runSearch(ctx, m, res)
	default:
		err = fmt.Errorf("unknown monitor kind %q", m.Kind)
	}

	span.SetAttributes(
		attribute.Int("products", res.Products),
		attribute.Int("failed", res.Failed),
		attribute.Int("notified", res.Notified),
	)

	result := "ok"
	if err != nil {
		result = "error"
	}
	eng.monitorChecks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", string(m.Kind)),
		attribute.String("result", result),
	))

	if err != nil {
		res.Error = err.Error()
		metrics.MonitorChecksTotal.WithLabelValues(string(m.Kind), "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "monitor check failed")
		eng.log.Error("monitor check failed", "monitor", m.ID, "url", m.URL, "error", err)
		return res, err
	}

	metrics.MonitorChecksTotal.WithLabelValues(string(m.Kind), "ok").Inc()
	eng.log.Info("monitor checked",
		"monitor", m.ID,
		"kind", m.Kind,
		"products", res.Products,
		"new", res.New,
		"updated", res.Updated,
		"notified", res.Notified,
	)
	return res, nil
}

// claim takes the monitor's in-flight lock without waiting.
func (eng *Engine) claim(id string) (release func(), ok bool) {
	v, _ := eng.inFlight.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	if !mu.TryLock() {
		return nil, false
	}
	return mu.Unlock, true
}

func countFailed(results []MonitorResult) int {
	var n int
	for i := range results {
		if results[i].Error != "" {
			n++
		}
	}
	return n
}
