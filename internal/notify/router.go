package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/metrics"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// ErrUnknownTransport is returned for destinations with no registered notifier.
var ErrUnknownTransport = errors.New("no notifier registered for transport")

// Router dispatches each payload to the notifier registered for the
// destination's transport.
type Router struct {
	notifiers map[domain.Transport]Notifier
	log       *slog.Logger
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithRoute registers n for transport t.
func WithRoute(t domain.Transport, n Notifier) RouterOption {
	return func(r *Router) {
		r.notifiers[t] = n
	}
}

// WithRouterLogger sets the logger.
func WithRouterLogger(l *slog.Logger) RouterOption {
	return func(r *Router) {
		r.log = l
	}
}

// NewRouter creates a Router.
func NewRouter(opts ...RouterOption) *Router {
	r := &Router{
		notifiers: make(map[domain.Transport]Notifier),
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Send delivers p through the destination's transport. Failures are
// returned as *DispatchError.
func (r *Router) Send(ctx context.Context, dest Destination, p *Payload) error {
	transport := string(dest.Transport)

	n, ok := r.notifiers[dest.Transport]
	if !ok {
		metrics.NotificationFailuresTotal.WithLabelValues(transport).Inc()
		return &DispatchError{Transport: dest.Transport, Channel: dest.Channel, Err: ErrUnknownTransport}
	}

	start := time.Now()
	err := n.Send(ctx, dest, p)
	metrics.NotificationDuration.WithLabelValues(transport).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.NotificationFailuresTotal.WithLabelValues(transport).Inc()
		return &DispatchError{Transport: dest.Transport, Channel: dest.Channel, Err: err}
	}

	metrics.NotificationsSentTotal.WithLabelValues(transport).Inc()
	r.log.Debug("notification sent", "transport", transport, "channel", dest.Channel, "title", p.Title)
	return nil
}
