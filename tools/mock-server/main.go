// Package main implements a mock WooCommerce storefront for local development.
// It renders product, category and search pages from a JSON catalog fixture
// using the same markup the monitor scrapes, and exposes an admin endpoint to
// flip stock and prices so restocks and price changes can be triggered by hand.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

type catalog struct {
	SiteName string     `json:"siteName"`
	Products []*product `json:"products"`
}

type product struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Price       string     `json:"price"`
	Image       string     `json:"image"`
	Description string     `json:"description"`
	InStock     bool       `json:"inStock"`
	Variants    []*variant `json:"variants"`
}

type variant struct {
	ID      string `json:"id"`
	Size    string `json:"size"`
	Price   string `json:"price"`
	InStock bool   `json:"inStock"`
}

var errUnknownProduct = errors.New("unknown product")

// shop holds the mutable catalog served by the handlers.
type shop struct {
	mu      sync.RWMutex
	catalog *catalog
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/catalog.json", "path to catalog fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "products", len(c.Products))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock storefront", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, &shop{catalog: c})),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, s *shop) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /product/{slug}/{$}", productHandler(logger, s))
	mux.HandleFunc("GET /product-category/{category}/{$}", categoryHandler(logger, s))
	mux.HandleFunc("GET /products/{$}", searchHandler(logger, s))
	mux.HandleFunc("POST /admin/products/{slug}", updateHandler(logger, s))
	return mux
}

func loadFixture(path string) (*catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var c catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &c, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

var productPage = template.Must(template.New("product").Parse(`<!DOCTYPE html>
<html>
<head><meta property="og:site_name" content="{{.SiteName}}"></head>
<body>
<h1 class="product_title">{{.P.Title}}</h1>
<p class="price"><span class="woocs_price_USD">{{.P.Price}}</span></p>
{{if .P.Image}}<img class="wp-post-image" src="{{.P.Image}}">{{end}}
<div class="woocommerce-product-details__short-description">{{.P.Description}}</div>
<form class="cart">
<input type="hidden" name="product_id" value="{{.P.ID}}">
{{range .P.Variants}}<div class="product-form-row" data-variation_id="{{.ID}}">
<dl class="pa pa-pa_size"><dt>Size</dt><dd>{{.Size}}</dd></dl>
<span class="woocs_price_USD">{{.Price}}</span>
{{if .InStock}}<p class="stock in-stock">In stock</p>{{else}}<p class="stock out-of-stock">Out of stock</p>{{end}}
</div>
{{else}}{{if .P.InStock}}<p class="stock in-stock">In stock</p>{{else}}<p class="stock out-of-stock">Out of stock</p>{{end}}
{{end}}</form>
</body>
</html>
`))

var listingPage = template.Must(template.New("listing").Parse(`<!DOCTYPE html>
<html>
<head><meta property="og:site_name" content="{{.SiteName}}"></head>
<body>
<ul class="products">
{{range .Products}}<li class="product">
<a class="woocommerce-loop-product__link" href="/product/{{.Slug}}/">
{{if .Image}}<img class="wp-post-image" src="{{.Image}}">{{end}}
<h2 class="woocommerce-loop-product__title">{{.Title}}</h2>
<span class="woocs_price_USD">{{.Price}}</span>
</a>
</li>
{{end}}</ul>
</body>
</html>
`))

func productHandler(logger *slog.Logger, s *shop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")

		s.mu.RLock()
		defer s.mu.RUnlock()

		p := s.find(slug)
		if p == nil {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		productPage.Execute(w, struct {
			SiteName string
			P        *product
		}{s.catalog.SiteName, p})
		logger.Info("product", "slug", slug, "variants", len(p.Variants))
	}
}

func categoryHandler(logger *slog.Logger, s *shop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.PathValue("category")

		s.mu.RLock()
		defer s.mu.RUnlock()

		var matched []*product
		for _, p := range s.catalog.Products {
			if p.Category == category {
				matched = append(matched, p)
			}
		}
		if len(matched) == 0 {
			http.NotFound(w, r)
			return
		}

		s.renderListing(w, matched)
		logger.Info("category", "category", category, "matched", len(matched))
	}
}

func searchHandler(logger *slog.Logger, s *shop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		words := strings.Fields(strings.ToLower(r.URL.Query().Get("s")))

		s.mu.RLock()
		defer s.mu.RUnlock()

		// A product matches when its title contains every query word.
		var matched []*product
		for _, p := range s.catalog.Products {
			title := strings.ToLower(p.Title)
			ok := true
			for _, word := range words {
				if !strings.Contains(title, word) {
					ok = false
					break
				}
			}
			if ok {
				matched = append(matched, p)
			}
		}

		s.renderListing(w, matched)
		logger.Info("search", "query", r.URL.Query().Get("s"), "matched", len(matched))
	}
}

// updateHandler changes stock or price of a product or one of its variants.
// Form values: variant (optional variant id), price, in_stock.
func updateHandler(logger *slog.Logger, s *shop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var inStock *bool
		if v := r.Form.Get("in_stock"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "in_stock: "+err.Error(), http.StatusBadRequest)
				return
			}
			inStock = &b
		}

		if err := s.update(r.PathValue("slug"), r.Form.Get("variant"), r.Form.Get("price"), inStock); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Info("updated product", "slug", r.PathValue("slug"), "variant", r.Form.Get("variant"),
			"price", r.Form.Get("price"), "in_stock", r.Form.Get("in_stock"))
	}
}

func (s *shop) find(slug string) *product {
	for _, p := range s.catalog.Products {
		if p.Slug == slug {
			return p
		}
	}
	return nil
}

func (s *shop) update(slug, variantID, price string, inStock *bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(slug)
	if p == nil {
		return fmt.Errorf("%w: %s", errUnknownProduct, slug)
	}

	if variantID == "" {
		if price != "" {
			p.Price = price
		}
		if inStock != nil {
			p.InStock = *inStock
		}
		return nil
	}

	for _, v := range p.Variants {
		if v.ID != variantID {
			continue
		}
		if price != "" {
			v.Price = price
		}
		if inStock != nil {
			v.InStock = *inStock
		}
		return nil
	}
	return fmt.Errorf("%w: %s variant %s", errUnknownProduct, slug, variantID)
}

// renderListing must be called with s.mu held.
func (s *shop) renderListing(w http.ResponseWriter, products []*product) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	listingPage.Execute(w, struct {
		SiteName string
		Products []*product
	}{s.catalog.SiteName, products})
}
