package storefront

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"
)

// HostLimiter throttles requests with one token bucket per host, so that
// monitors on different stores do not slow each other down.
type HostLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	perSecond float64
	burst     int
}

// NewHostLimiter creates a limiter allowing perSecond requests per host
// with the given burst. A non-positive perSecond disables throttling.
func NewHostLimiter(perSecond float64, burst int) *HostLimiter {
	if burst < 1 {
		burst = 1
	}
	return &HostLimiter{
		limiters:  make(map[string]*rate.Limiter),
		perSecond: perSecond,
		burst:     burst,
	}
}

// Wait blocks until a request to host is allowed, or the context is canceled.
func (h *HostLimiter) Wait(ctx context.Context, host string) error {
	if h.perSecond <= 0 {
		return nil
	}
	if err := h.limiter(host).Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

func (h *HostLimiter) limiter(host string) *rate.Limiter {
	h.mu.Lock()
	defer h.mu.Unlock()

	l, ok := h.limiters[host]
	if !ok {
		l = rate.NewLimiter(rate.Limit(h.perSecond), h.burst)
		h.limiters[host] = l
	}
	return l
}
