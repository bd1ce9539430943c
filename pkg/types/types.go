// Package domain defines the core business types for the WooCommerce monitor.
package domain

import (
	"fmt"
	"time"
)

// MonitorKind identifies which kind of storefront page a monitor polls.
type MonitorKind string

// Monitor kind constants.
const (
	KindProduct    MonitorKind = "product"
	KindCollection MonitorKind = "collection"
	KindSearch     MonitorKind = "search"
)

// Valid reports whether k is a known monitor kind.
func (k MonitorKind) Valid() bool {
	switch k {
	case KindProduct, KindCollection, KindSearch:
		return true
	default:
		return false
	}
}

// Transport names the delivery mechanism for a monitor's notifications.
type Transport string

// Transport constants.
const (
	TransportDiscord  Transport = "discord"
	TransportTelegram Transport = "telegram"
	TransportEmail    Transport = "email"
)

// Valid reports whether t is a known transport.
func (t Transport) Valid() bool {
	switch t {
	case TransportDiscord, TransportTelegram, TransportEmail:
		return true
	default:
		return false
	}
}

// Monitor is a configured target to poll and the destination for its
// notifications. The engine treats it as read-only during a check cycle.
type Monitor struct {
	ID        string      `json:"id"              db:"id"`
	Name      string      `json:"name,omitempty"  db:"name"`
	URL       string      `json:"url"             db:"url"`
	Kind      MonitorKind `json:"kind"            db:"kind"`
	Query     string      `json:"query,omitempty" db:"query"`
	Currency  string      `json:"currency"        db:"currency"`
	Channel   string      `json:"channel"         db:"channel"`
	Transport Transport   `json:"transport"       db:"transport"`
	Enabled   bool        `json:"enabled"         db:"enabled"`
	CreatedAt time.Time   `json:"created_at"      db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"      db:"updated_at"`
}

// ProductRef is a lightweight listing entry from a collection or search page.
type ProductRef struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Price    string `json:"price,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// ProductSnapshot is the current state of a product as fetched from the
// storefront. Snapshots are never persisted.
type ProductSnapshot struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Brand       string            `json:"brand"`
	Type        string            `json:"type"`
	URL         string            `json:"url"`
	ImageURL    string            `json:"image_url,omitempty"`
	Description string            `json:"description,omitempty"`
	Price       string            `json:"price"`
	Variants    []VariantSnapshot `json:"variants"`
}

// AnyAvailable reports whether at least one variant is in stock.
func (p *ProductSnapshot) AnyAvailable() bool {
	for i := range p.Variants {
		if p.Variants[i].Available {
			return true
		}
	}
	return false
}

// VariantSnapshot is a purchasable option of a product as fetched.
// Price is the raw storefront string.
type VariantSnapshot struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Available bool   `json:"available"`
}

// VariantKey uniquely identifies a persisted variant.
type VariantKey struct {
	MonitorID string `json:"monitor_id"`
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
}

// String renders the key as monitor/product/variant.
func (k VariantKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.MonitorID, k.ProductID, k.VariantID)
}

// PersistedVariant is the last-known state of a variant for a monitor.
// Price holds the raw string as observed and is compared only after
// normalization.
type PersistedVariant struct {
	MonitorID string    `json:"monitor_id" db:"monitor_id"`
	ProductID string    `json:"product_id" db:"product_id"`
	VariantID string    `json:"variant_id" db:"variant_id"`
	Title     string    `json:"title"      db:"title"`
	Brand     string    `json:"brand"      db:"brand"`
	Available bool      `json:"available"  db:"available"`
	Price     string    `json:"price"      db:"price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Key returns the identifying key of the variant.
func (v *PersistedVariant) Key() VariantKey {
	return VariantKey{MonitorID: v.MonitorID, ProductID: v.ProductID, VariantID: v.VariantID}
}

// Classification is the outcome of a change check. Values are ordered
// Unchanged < Updated < New so that aggregation is a maximum.
type Classification int

// Classification constants.
const (
	Unchanged Classification = iota
	Updated
	New
)

// String returns the wire name of the classification.
func (c Classification) String() string {
	switch c {
	case Updated:
		return "update"
	case New:
		return "new"
	default:
		return "unchanged"
	}
}

// Notify reports whether the classification warrants a notification.
func (c Classification) Notify() bool {
	return c == Updated || c == New
}

// Max returns the more significant of two classifications.
func Max(a, b Classification) Classification {
	if b > a {
		return b
	}
	return a
}
