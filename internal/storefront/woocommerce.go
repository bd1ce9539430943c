package storefront

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/metrics"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

const (
	defaultUserAgent    = "wc-monitor/1.0"
	defaultProductType  = "Matcha"
	defaultFetchTimeout = 30 * time.Second
	unknownBrand        = "Unknown Brand"
	unknownSize         = "Unknown size"
	maxPageBytes        = 10 << 20
)

// Page selectors for WooCommerce themes.
const (
	selProductTitle     = "h1.product_title"
	selPrice            = "span.woocs_price_USD"
	selImage            = "img.wp-post-image"
	selShortDescription = "div.woocommerce-product-details__short-description"
	selProductID        = `input[name="product_id"]`
	selAddToCartButton  = `button[name="add-to-cart"]`
	selAddToCartInput   = `input[name="add-to-cart"]`
	selSiteName         = `meta[property="og:site_name"]`
	selBrand            = "div.brand"
	selVariantRow       = "div.product-form-row"
	selVariantSize      = "dl.pa.pa-pa_size dd"
	selStock            = "p.stock"
	selListingItem      = "li.product"
	selListingTitle     = "h4"
	selListingTitleAlt  = "h2.woocommerce-loop-product__title"
	selListingLink      = "a.woocommerce-loop-product__link"
)

// WooCommerce implements Source by scraping WooCommerce storefront pages.
type WooCommerce struct {
	client       *http.Client
	userAgent    string
	productType  string
	fetchTimeout time.Duration
	limiter      *HostLimiter
	log          *slog.Logger
}

// Option configures the WooCommerce source.
type Option func(*WooCommerce)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(w *WooCommerce) {
		w.client = hc
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(w *WooCommerce) {
		w.userAgent = ua
	}
}

// WithProductType sets the product type reported for every product.
func WithProductType(t string) Option {
	return func(w *WooCommerce) {
		w.productType = t
	}
}

// WithFetchTimeout bounds each page request.
func WithFetchTimeout(d time.Duration) Option {
	return func(w *WooCommerce) {
		w.fetchTimeout = d
	}
}

// WithHostLimiter throttles requests per host.
func WithHostLimiter(l *HostLimiter) Option {
	return func(w *WooCommerce) {
		w.limiter = l
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *WooCommerce) {
		w.log = l
	}
}

// NewWooCommerce creates a WooCommerce source.
func NewWooCommerce(opts ...Option) *WooCommerce {
	w := &WooCommerce{
		client:       &http.Client{Timeout: defaultFetchTimeout},
		userAgent:    defaultUserAgent,
		productType:  defaultProductType,
		fetchTimeout: defaultFetchTimeout,
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Product fetches a product page and extracts the product with its variants.
// A product without variation rows yields a single variant keyed by the
// product id.
func (w *WooCommerce) Product(ctx context.Context, rawURL string) (*domain.ProductSnapshot, error) {
	pageURL := FormatURL(rawURL)

	doc, err := w.fetch(ctx, "product", pageURL)
	if err != nil {
		return nil, err
	}

	p, err := w.parseProduct(doc, pageURL)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	return p, nil
}

// Collection lists the products of a category page.
func (w *WooCommerce) Collection(ctx context.Context, rawURL string) ([]domain.ProductRef, error) {
	pageURL := FormatURL(rawURL)

	doc, err := w.fetch(ctx, "collection", pageURL)
	if err != nil {
		return nil, err
	}
	return parseListing(doc, pageURL), nil
}

// Search lists the products matching query.
func (w *WooCommerce) Search(ctx context.Context, rawURL, query string) ([]domain.ProductRef, error) {
	pageURL := SearchURL(rawURL, query)

	doc, err := w.fetch(ctx, "search", pageURL)
	if err != nil {
		return nil, err
	}
	return parseListing(doc, pageURL), nil
}

func (w *WooCommerce) fetch(ctx context.Context, page, pageURL string) (*goquery.Document, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}

	if w.limiter != nil {
		if err := w.limiter.Wait(ctx, u.Host); err != nil {
			return nil, &FetchError{URL: pageURL, Err: err}
		}
	}

	if w.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.fetchTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("creating HTTP request: %w", err)}
	}
	req.Header.Set("User-Agent", w.userAgent)
	req.Header.Set("Accept", "text/html")

	start := time.Now()
	resp, err := w.client.Do(req)
	metrics.StorefrontRequestDuration.WithLabelValues(page).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StorefrontRequestsTotal.WithLabelValues(page, "error").Inc()
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.StorefrontRequestsTotal.WithLabelValues(page, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxPageBytes))
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("parsing HTML: %w", err)}
	}

	w.log.Debug("fetched storefront page", "page", page, "url", pageURL, "status", resp.StatusCode)
	return doc, nil
}

func (w *WooCommerce) parseProduct(doc *goquery.Document, pageURL string) (*domain.ProductSnapshot, error) {
	title := text(doc.Find(selProductTitle))
	if title == "" {
		return nil, fmt.Errorf("%w: product title", ErrMissingField)
	}

	price := text(doc.Find(selPrice))
	if price == "" {
		return nil, fmt.Errorf("%w: price", ErrMissingField)
	}

	id := productID(doc)
	if id == "" {
		return nil, fmt.Errorf("%w: product id", ErrMissingField)
	}

	image, _ := doc.Find(selImage).First().Attr("src")

	p := &domain.ProductSnapshot{
		ID:          id,
		Title:       title,
		Brand:       brand(doc),
		Type:        w.productType,
		URL:         pageURL,
		ImageURL:    image,
		Description: text(doc.Find(selShortDescription)),
		Price:       price,
	}

	doc.Find(selVariantRow).Each(func(_ int, row *goquery.Selection) {
		variantID, ok := row.Attr("data-variation_id")
		variantID = strings.TrimSpace(variantID)
		if !ok || variantID == "" {
			w.log.Debug("skipping variation row without id", "url", pageURL)
			return
		}

		size := text(row.Find(selVariantSize))
		if size == "" {
			size = unknownSize
		}

		variantPrice := text(row.Find(selPrice))
		if variantPrice == "" {
			variantPrice = price
		}

		p.Variants = append(p.Variants, domain.VariantSnapshot{
			ID:        variantID,
			ProductID: id,
			Title:     size,
			Price:     variantPrice,
			Available: row.Find(selStock).First().HasClass("in-stock"),
		})
	})

	if len(p.Variants) == 0 {
		p.Variants = []domain.VariantSnapshot{{
			ID:        id,
			ProductID: id,
			Title:     title,
			Price:     price,
			Available: simpleProductAvailable(doc),
		}}
	}

	return p, nil
}

func parseListing(doc *goquery.Document, pageURL string) []domain.ProductRef {
	base, _ := url.Parse(pageURL)

	var refs []domain.ProductRef
	doc.Find(selListingItem).Each(func(_ int, item *goquery.Selection) {
		href, ok := item.Find(selListingLink).First().Attr("href")
		href = strings.TrimSpace(href)
		if !ok || href == "" {
			return
		}
		if base != nil {
			if u, err := base.Parse(href); err == nil {
				href = u.String()
			}
		}

		title := text(item.Find(selListingTitle))
		if title == "" {
			title = text(item.Find(selListingTitleAlt))
		}
		image, _ := item.Find(selImage).First().Attr("src")

		refs = append(refs, domain.ProductRef{
			Title:    title,
			URL:      href,
			Price:    text(item.Find(selPrice)),
			ImageURL: image,
		})
	})

	return refs
}

func productID(doc *goquery.Document) string {
	for _, sel := range []string{selProductID, selAddToCartButton, selAddToCartInput} {
		if v, ok := doc.Find(sel).First().Attr("value"); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func brand(doc *goquery.Document) string {
	if v, ok := doc.Find(selSiteName).First().Attr("content"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if b := text(doc.Find(selBrand)); b != "" {
		return b
	}
	return unknownBrand
}

// simpleProductAvailable reads the page-level stock notice, falling back to
// the presence of an add-to-cart button when the theme shows none.
func simpleProductAvailable(doc *goquery.Document) bool {
	stock := doc.Find(selStock).First()
	if stock.Length() > 0 {
		return stock.HasClass("in-stock")
	}
	return doc.Find(selAddToCartButton).Length() > 0
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.First().Text())
}
