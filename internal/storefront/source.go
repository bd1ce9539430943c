// Package storefront fetches product state from WooCommerce storefronts,
// abstracted behind the Source interface for testability.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// Source returns structured product records for storefront pages.
type Source interface {
	// Product fetches a product page with its variants.
	Product(ctx context.Context, url string) (*domain.ProductSnapshot, error)
	// Collection lists the products of a category page.
	Collection(ctx context.Context, url string) ([]domain.ProductRef, error)
	// Search lists the products matching query on the store rooted at url.
	Search(ctx context.Context, url, query string) ([]domain.ProductRef, error)
}

var (
	// ErrMissingField is wrapped when a required element is absent from a page.
	ErrMissingField = errors.New("missing required field")
	// ErrUnexpectedStatus is wrapped when a page responds with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// FetchError reports a storefront page that could not be fetched or parsed.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// FormatURL drops the query string and ensures a trailing slash.
func FormatURL(raw string) string {
	u, _, _ := strings.Cut(raw, "?")
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u
}

// SearchURL builds the product search URL for the store rooted at base.
func SearchURL(base, query string) string {
	return FormatURL(base) + "products/?s=" + url.QueryEscape(query)
}
