// Package notify builds change notifications and delivers them over
// Discord, Telegram or email.
package notify

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// Payload is a transport-neutral rich notification, shaped after a
// Discord embed.
type Payload struct {
	Title    string
	URL      string
	Author   Author
	ImageURL string
	Color    int
	Fields   []Field
	Footer   string
}

// Author identifies the storefront a notification came from.
type Author struct {
	Name    string
	URL     string
	IconURL string
}

// Field is a named value shown in the notification body.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Destination addresses a notification.
type Destination struct {
	Transport domain.Transport
	Channel   string
}

// DestinationFor returns where notifications for m are delivered.
func DestinationFor(m *domain.Monitor) Destination {
	return Destination{Transport: m.Transport, Channel: m.Channel}
}

// Notifier delivers a payload to a destination.
type Notifier interface {
	Send(ctx context.Context, dest Destination, p *Payload) error
}

// DispatchError reports a notification that could not be delivered.
type DispatchError struct {
	Transport domain.Transport
	Channel   string
	Err       error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatching %s notification to %s: %v", e.Transport, e.Channel, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// Text renders the payload as plain text with markdown-style links, for
// transports without rich embeds.
func (p *Payload) Text() string {
	var b strings.Builder
	b.WriteString(p.Title)
	b.WriteString("\n")
	if p.URL != "" {
		b.WriteString(p.URL)
		b.WriteString("\n")
	}
	if p.Author.Name != "" {
		fmt.Fprintf(&b, "Store: %s\n", p.Author.Name)
	}
	b.WriteString("\n")
	for _, f := range p.Fields {
		fmt.Fprintf(&b, "%s: %s\n", f.Name, f.Value)
	}
	if p.Footer != "" {
		b.WriteString("\n")
		b.WriteString(p.Footer)
	}
	return b.String()
}

// runWithContext runs a blocking call that has no context support,
// returning early when ctx is done. The call itself keeps running until
// its own client timeout fires.
func runWithContext(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
