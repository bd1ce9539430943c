package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshlee247/woocommerce-discord-monitor/pkg/price"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

func testComposer() *Composer {
	return &Composer{
		IconURL:     "https://shop.example/favicon.ico",
		CheckoutURL: "https://shop.example/cart/checkout/",
	}
}

func testMonitor() *domain.Monitor {
	return &domain.Monitor{
		ID:        "m1",
		URL:       "https://shop.example/product-category/matcha/",
		Kind:      domain.KindCollection,
		Currency:  "USD",
		Channel:   "123",
		Transport: domain.TransportDiscord,
	}
}

func testProduct(available ...bool) *domain.ProductSnapshot {
	p := &domain.ProductSnapshot{
		ID:       "1186",
		Title:    "Aoarashi",
		Brand:    "Marukyu Koyamaen",
		Type:     "Matcha",
		URL:      "https://shop.example/product/aoarashi/",
		ImageURL: "https://shop.example/aoarashi.jpg",
		Price:    "$1,234.5",
	}
	titles := []string{"40g can", "100g bag", "200g bag"}
	ids := []string{"1187", "1188", "1189"}
	for i, a := range available {
		p.Variants = append(p.Variants, domain.VariantSnapshot{
			ID: ids[i], ProductID: "1186", Title: titles[i], Price: "$25.00", Available: a,
		})
	}
	return p
}

func fieldValue(p *Payload, name string) string {
	for _, f := range p.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

func TestComposer_Compose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		product      *domain.ProductSnapshot
		class        domain.Classification
		source       domain.MonitorKind
		wantColor    int
		wantFooter   string
		wantVariants string
	}{
		{
			name:         "new product from collection",
			product:      testProduct(true, false),
			class:        domain.New,
			source:       domain.KindCollection,
			wantColor:    ColorNew,
			wantFooter:   "🆕 New product | 📦 Collection monitoring",
			wantVariants: "[40g can](https://shop.example/cart/checkout/?add-to-cart=1187&quantity=1&currency=USD)",
		},
		{
			name:       "updated and in stock from product",
			product:    testProduct(true, true),
			class:      domain.Updated,
			source:     domain.KindProduct,
			wantColor:  ColorInStock,
			wantFooter: "✅ In stock | 📦 Product monitoring",
			wantVariants: "[40g can](https://shop.example/cart/checkout/?add-to-cart=1187&quantity=1&currency=USD), " +
				"[100g bag](https://shop.example/cart/checkout/?add-to-cart=1188&quantity=1&currency=USD)",
		},
		{
			name:         "updated and sold out from search",
			product:      testProduct(false, false),
			class:        domain.Updated,
			source:       domain.KindSearch,
			wantColor:    ColorOutOfStock,
			wantFooter:   "❌ Out of stock | 🔍 Search monitoring",
			wantVariants: "None",
		},
		{
			name:         "new product with no variants",
			product:      testProduct(),
			class:        domain.New,
			source:       domain.MonitorKind("other"),
			wantColor:    ColorNew,
			wantFooter:   "🆕 New product",
			wantVariants: "None",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := testComposer().Compose(testMonitor(), tt.product, tt.class, tt.source)
			require.NoError(t, err)

			assert.Equal(t, "Aoarashi", p.Title)
			assert.Equal(t, "https://shop.example/product/aoarashi/?currency=USD", p.URL)
			assert.Equal(t, Author{
				Name:    "shop.example",
				URL:     "https://shop.example/product-category/matcha/",
				IconURL: "https://shop.example/favicon.ico",
			}, p.Author)
			assert.Equal(t, "https://shop.example/aoarashi.jpg", p.ImageURL)
			assert.Equal(t, tt.wantColor, p.Color)
			assert.Equal(t, tt.wantFooter, p.Footer)

			require.Len(t, p.Fields, 4)
			for _, f := range p.Fields {
				assert.True(t, f.Inline, f.Name)
			}
			assert.Equal(t, "Marukyu Koyamaen", fieldValue(p, "Brand"))
			assert.Equal(t, "Matcha", fieldValue(p, "Type"))
			assert.Equal(t, "$1,234.50", fieldValue(p, "Price"))
			assert.Equal(t, tt.wantVariants, fieldValue(p, "Available variants"))
		})
	}
}

func TestComposer_Compose_Unchanged(t *testing.T) {
	t.Parallel()

	p, err := testComposer().Compose(testMonitor(), testProduct(true), domain.Unchanged, domain.KindProduct)
	require.ErrorIs(t, err, ErrNothingToCompose)
	assert.Nil(t, p)
}

func TestComposer_Compose_PriceErrors(t *testing.T) {
	t.Parallel()

	m := testMonitor()
	m.Currency = "ZZZ"
	_, err := testComposer().Compose(m, testProduct(true), domain.New, domain.KindProduct)
	var unsupported *price.UnsupportedCurrencyError
	require.ErrorAs(t, err, &unsupported)

	bad := testProduct(true)
	bad.Price = "call for price"
	_, err = testComposer().Compose(testMonitor(), bad, domain.New, domain.KindProduct)
	require.ErrorIs(t, err, price.ErrMalformedPrice)
}

func TestComposer_Compose_LinkCurrencyAndLocale(t *testing.T) {
	t.Parallel()

	c := testComposer()
	c.LinkCurrency = "EUR"
	c.Locale = "de-DE"

	m := testMonitor()
	m.Currency = "EUR"

	p, err := c.Compose(m, testProduct(true), domain.New, domain.KindProduct)
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example/product/aoarashi/?currency=EUR", p.URL)
	assert.Contains(t, fieldValue(p, "Available variants"), "currency=EUR")
	assert.Contains(t, fieldValue(p, "Price"), "1.234,50")
}

func TestComposer_Compose_Pure(t *testing.T) {
	t.Parallel()

	product := testProduct(true, false)
	first, err := testComposer().Compose(testMonitor(), product, domain.Updated, domain.KindProduct)
	require.NoError(t, err)
	second, err := testComposer().Compose(testMonitor(), product, domain.Updated, domain.KindProduct)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "https://shop.example/product/aoarashi/", product.URL)
}

func TestPayload_Text(t *testing.T) {
	t.Parallel()

	text := testPayload().Text()
	assert.Contains(t, text, "Aoarashi\nhttps://shop.example/product/aoarashi/?currency=USD\n")
	assert.Contains(t, text, "Store: shop.example")
	assert.Contains(t, text, "Price: $25.00\n")
	assert.Contains(t, text, "✅ In stock | 📦 Product monitoring")
}
