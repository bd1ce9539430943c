package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It
// is used for transports that are not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards payloads with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// Send logs and discards a single notification.
func (n *NoOpNotifier) Send(_ context.Context, dest Destination, p *Payload) error {
	n.log.Debug("notification discarded (no backend configured)",
		"transport", dest.Transport,
		"channel", dest.Channel,
		"title", p.Title,
	)
	return nil
}
