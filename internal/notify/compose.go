package notify

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joshlee247/woocommerce-discord-monitor/pkg/price"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// Embed colors by classification.
const (
	// ColorNew marks a product seen for the first time.
	ColorNew = 0xF8FAFC
	// ColorInStock marks an updated product with at least one available variant.
	ColorInStock = 0x4ADE80
	// ColorOutOfStock marks an updated product with nothing available.
	ColorOutOfStock = 0xF43F5E
)

// Footer prefixes by classification. The monitor kind is appended after " | ".
const (
	// FooterNew is the footer of a first-seen product.
	FooterNew = "🆕 New product"
	// FooterInStock is the footer of an updated product that can be bought.
	FooterInStock = "✅ In stock"
	// FooterOutOfStock is the footer of an updated product that is sold out.
	FooterOutOfStock = "❌ Out of stock"
)

const (
	noVariants          = "None"
	defaultLinkCurrency = "USD"
	listSeparator       = ", "
)

// ErrNothingToCompose is returned for unchanged products.
var ErrNothingToCompose = errors.New("nothing to compose for unchanged product")

// Composer turns a classified product into a notification payload.
type Composer struct {
	IconURL      string
	CheckoutURL  string
	LinkCurrency string
	Locale       string
}

// Compose builds the payload for product under monitor. source is the kind
// of monitor that surfaced the product and only affects the footer.
func (c *Composer) Compose(
	monitor *domain.Monitor,
	product *domain.ProductSnapshot,
	class domain.Classification,
	source domain.MonitorKind,
) (*Payload, error) {
	if !class.Notify() {
		return nil, ErrNothingToCompose
	}

	formatted, err := price.Format(product.Price, monitor.Currency, c.locale())
	if err != nil {
		return nil, fmt.Errorf("formatting price for %s: %w", product.URL, err)
	}

	available := c.variantLinks(product.Variants)

	p := &Payload{
		Title:    product.Title,
		URL:      withQuery(product.URL, "currency", c.linkCurrency()),
		Author:   c.author(monitor.URL),
		ImageURL: product.ImageURL,
		Fields: []Field{
			{Name: "Brand", Value: product.Brand, Inline: true},
			{Name: "Type", Value: product.Type, Inline: true},
			{Name: "Price", Value: formatted, Inline: true},
			{Name: "Available variants", Value: available, Inline: true},
		},
	}

	switch {
	case class == domain.New:
		p.Color, p.Footer = ColorNew, FooterNew
	case product.AnyAvailable():
		p.Color, p.Footer = ColorInStock, FooterInStock
	default:
		p.Color, p.Footer = ColorOutOfStock, FooterOutOfStock
	}

	if suffix := sourceSuffix(source); suffix != "" {
		p.Footer += " | " + suffix
	}

	return p, nil
}

func (c *Composer) author(monitorURL string) Author {
	a := Author{URL: monitorURL, IconURL: c.IconURL}
	if u, err := url.Parse(monitorURL); err == nil {
		a.Name = u.Hostname()
	}
	return a
}

func (c *Composer) variantLinks(variants []domain.VariantSnapshot) string {
	links := make([]string, 0, len(variants))
	for _, v := range variants {
		if !v.Available {
			continue
		}
		links = append(links, fmt.Sprintf("[%s](%s?add-to-cart=%s&quantity=1&currency=%s)",
			v.Title, c.CheckoutURL, url.QueryEscape(v.ID), url.QueryEscape(c.linkCurrency())))
	}
	if len(links) == 0 {
		return noVariants
	}
	return strings.Join(links, listSeparator)
}

func (c *Composer) linkCurrency() string {
	if c.LinkCurrency == "" {
		return defaultLinkCurrency
	}
	return c.LinkCurrency
}

func (c *Composer) locale() string {
	if c.Locale == "" {
		return price.DefaultLocale
	}
	return c.Locale
}

func sourceSuffix(kind domain.MonitorKind) string {
	switch kind {
	case domain.KindCollection:
		return "📦 Collection monitoring"
	case domain.KindProduct:
		return "📦 Product monitoring"
	case domain.KindSearch:
		return "🔍 Search monitoring"
	default:
		return ""
	}
}

// withQuery sets key=value on rawURL, leaving unparseable URLs untouched.
func withQuery(rawURL, key, value string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}
