package storefront_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/storefront"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

const variableProductPage = `<!DOCTYPE html>
<html><head>
<meta property="og:site_name" content="Marukyu Koyamaen">
</head><body>
<h1 class="product_title entry-title">Aoarashi</h1>
<p class="price"><span class="woocs_price_USD">$25.00</span></p>
<img class="wp-post-image" src="https://shop.example/aoarashi.jpg">
<div class="woocommerce-product-details__short-description">
  <p>Smooth matcha with a refreshing finish.</p>
</div>
<form class="cart">
  <input type="hidden" name="product_id" value="1186">
  <div class="product-form-row" data-variation_id="1187">
    <dl class="pa pa-pa_size"><dt>Size</dt><dd>40g can</dd></dl>
    <span class="woocs_price_USD">$25.00</span>
    <p class="stock in-stock">In stock</p>
  </div>
  <div class="product-form-row" data-variation_id="1188">
    <dl class="pa pa-pa_size"><dt>Size</dt><dd>100g bag</dd></dl>
    <span class="woocs_price_USD">$48.00</span>
    <p class="stock out-of-stock">Out of stock</p>
  </div>
  <div class="product-form-row" data-variation_id="1189">
    <p class="stock in-stock">In stock</p>
  </div>
  <div class="product-form-row">
    <dl class="pa pa-pa_size"><dt>Size</dt><dd>orphan</dd></dl>
  </div>
</form>
</body></html>`

const simpleProductPage = `<html><body>
<div class="brand">Ippodo</div>
<h1 class="product_title">Sayaka</h1>
<span class="woocs_price_USD">$32.00</span>
<form class="cart">
  <button type="submit" name="add-to-cart" value="2001" class="single_add_to_cart_button">Add to cart</button>
</form>
</body></html>`

const listingPage = `<html><body>
<ul class="products">
  <li class="product">
    <a class="woocommerce-loop-product__link" href="/product/aoarashi/">
      <img class="wp-post-image" src="https://shop.example/aoarashi.jpg">
      <h4>Aoarashi</h4>
      <span class="woocs_price_USD">$25.00</span>
    </a>
  </li>
  <li class="product">
    <a class="woocommerce-loop-product__link" href="https://shop.example/product/isuzu/">
      <h2 class="woocommerce-loop-product__title">Isuzu</h2>
    </a>
  </li>
  <li class="product">
    <h4>No link</h4>
  </li>
</ul>
</body></html>`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSource(t *testing.T, srv *httptest.Server, opts ...storefront.Option) *storefront.WooCommerce {
	t.Helper()
	base := []storefront.Option{
		storefront.WithHTTPClient(srv.Client()),
		storefront.WithLogger(quietLogger()),
	}
	return storefront.NewWooCommerce(append(base, opts...)...)
}

func TestWooCommerce_Product(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		status    int
		wantErr   error
		checkFunc func(t *testing.T, p *domain.ProductSnapshot)
	}{
		{
			name:   "variable product",
			body:   variableProductPage,
			status: http.StatusOK,
			checkFunc: func(t *testing.T, p *domain.ProductSnapshot) {
				t.Helper()
				assert.Equal(t, "1186", p.ID)
				assert.Equal(t, "Aoarashi", p.Title)
				assert.Equal(t, "Marukyu Koyamaen", p.Brand)
				assert.Equal(t, "Matcha", p.Type)
				assert.Equal(t, "$25.00", p.Price)
				assert.Equal(t, "https://shop.example/aoarashi.jpg", p.ImageURL)
				assert.Equal(t, "Smooth matcha with a refreshing finish.", p.Description)

				require.Len(t, p.Variants, 3)
				assert.Equal(t, domain.VariantSnapshot{
					ID: "1187", ProductID: "1186", Title: "40g can", Price: "$25.00", Available: true,
				}, p.Variants[0])
				assert.Equal(t, domain.VariantSnapshot{
					ID: "1188", ProductID: "1186", Title: "100g bag", Price: "$48.00", Available: false,
				}, p.Variants[1])
				assert.Equal(t, "Unknown size", p.Variants[2].Title)
				assert.Equal(t, "$25.00", p.Variants[2].Price)
				assert.True(t, p.AnyAvailable())
			},
		},
		{
			name:   "simple product synthesizes one variant",
			body:   simpleProductPage,
			status: http.StatusOK,
			checkFunc: func(t *testing.T, p *domain.ProductSnapshot) {
				t.Helper()
				assert.Equal(t, "2001", p.ID)
				assert.Equal(t, "Ippodo", p.Brand)
				require.Len(t, p.Variants, 1)
				assert.Equal(t, domain.VariantSnapshot{
					ID: "2001", ProductID: "2001", Title: "Sayaka", Price: "$32.00", Available: true,
				}, p.Variants[0])
			},
		},
		{
			name:    "missing title",
			body:    `<html><body><span class="woocs_price_USD">$1.00</span></body></html>`,
			status:  http.StatusOK,
			wantErr: storefront.ErrMissingField,
		},
		{
			name:    "missing price",
			body:    `<html><body><h1 class="product_title">X</h1></body></html>`,
			status:  http.StatusOK,
			wantErr: storefront.ErrMissingField,
		},
		{
			name:    "missing product id",
			body:    `<html><body><h1 class="product_title">X</h1><span class="woocs_price_USD">$1.00</span></body></html>`,
			status:  http.StatusOK,
			wantErr: storefront.ErrMissingField,
		},
		{
			name:    "not found",
			body:    "gone",
			status:  http.StatusNotFound,
			wantErr: storefront.ErrUnexpectedStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/product/aoarashi/", r.URL.Path)
				assert.Empty(t, r.URL.RawQuery)
				assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
				w.Header().Set("Content-Type", "text/html")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			src := newSource(t, srv, storefront.WithUserAgent("test-agent"))
			p, err := src.Product(context.Background(), srv.URL+"/product/aoarashi?currency=JPY")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				var fe *storefront.FetchError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, srv.URL+"/product/aoarashi/", fe.URL)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, srv.URL+"/product/aoarashi/", p.URL)
			tt.checkFunc(t, p)
		})
	}
}

func TestWooCommerce_Product_SimpleOutOfStock(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
<h1 class="product_title">Sayaka</h1>
<span class="woocs_price_USD">$32.00</span>
<input type="hidden" name="add-to-cart" value="2001">
<p class="stock out-of-stock">Out of stock</p>
</body></html>`))
	}))
	defer srv.Close()

	p, err := newSource(t, srv).Product(context.Background(), srv.URL+"/product/sayaka/")
	require.NoError(t, err)
	assert.Equal(t, "Unknown Brand", p.Brand)
	require.Len(t, p.Variants, 1)
	assert.False(t, p.Variants[0].Available)
}

func TestWooCommerce_Collection(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product-category/matcha/", r.URL.Path)
		_, _ = w.Write([]byte(listingPage))
	}))
	defer srv.Close()

	refs, err := newSource(t, srv).Collection(context.Background(), srv.URL+"/product-category/matcha")
	require.NoError(t, err)
	require.Len(t, refs, 2)

	assert.Equal(t, domain.ProductRef{
		Title:    "Aoarashi",
		URL:      srv.URL + "/product/aoarashi/",
		Price:    "$25.00",
		ImageURL: "https://shop.example/aoarashi.jpg",
	}, refs[0])
	assert.Equal(t, "Isuzu", refs[1].Title)
	assert.Equal(t, "https://shop.example/product/isuzu/", refs[1].URL)
}

func TestWooCommerce_Search(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/", r.URL.Path)
		assert.Equal(t, "wako matcha", r.URL.Query().Get("s"))
		_, _ = w.Write([]byte(listingPage))
	}))
	defer srv.Close()

	refs, err := newSource(t, srv).Search(context.Background(), srv.URL, "wako matcha")
	require.NoError(t, err)
	assert.Len(t, refs, 2)
}

func TestWooCommerce_EmptyListing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>No products were found.</p></body></html>`))
	}))
	defer srv.Close()

	refs, err := newSource(t, srv).Collection(context.Background(), srv.URL+"/product-category/empty/")
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestWooCommerce_FetchTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	src := newSource(t, srv, storefront.WithFetchTimeout(50*time.Millisecond))
	_, err := src.Product(context.Background(), srv.URL+"/product/slow/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestWooCommerce_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(listingPage))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := newSource(t, srv, storefront.WithHostLimiter(storefront.NewHostLimiter(0.001, 1)))
	_, err := src.Collection(ctx, srv.URL+"/product-category/matcha/")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "adds trailing slash", in: "https://shop.example/product/a", want: "https://shop.example/product/a/"},
		{name: "keeps trailing slash", in: "https://shop.example/product/a/", want: "https://shop.example/product/a/"},
		{name: "drops query", in: "https://shop.example/product/a/?currency=JPY", want: "https://shop.example/product/a/"},
		{name: "drops query without slash", in: "https://shop.example/product/a?x=1&y=2", want: "https://shop.example/product/a/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, storefront.FormatURL(tt.in))
		})
	}
}

func TestSearchURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://shop.example/products/?s=wako+matcha%26tea",
		storefront.SearchURL("https://shop.example", "wako matcha&tea"),
	)
	assert.Equal(t,
		"https://shop.example/products/?s=isuzu",
		storefront.SearchURL("https://shop.example/?lang=en", "isuzu"),
	)
}

func TestFetchError(t *testing.T) {
	t.Parallel()

	err := &storefront.FetchError{URL: "https://shop.example/p/", Err: storefront.ErrMissingField}
	assert.Equal(t, "fetching https://shop.example/p/: missing required field", err.Error())
	assert.ErrorIs(t, err, storefront.ErrMissingField)
}
