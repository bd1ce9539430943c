package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

func testPayload() *Payload {
	return &Payload{
		Title: "Aoarashi",
		URL:   "https://shop.example/product/aoarashi/?currency=USD",
		Author: Author{
			Name:    "shop.example",
			URL:     "https://shop.example/product/aoarashi/",
			IconURL: "https://shop.example/favicon.ico",
		},
		ImageURL: "https://shop.example/aoarashi.jpg",
		Color:    ColorInStock,
		Fields: []Field{
			{Name: "Brand", Value: "Marukyu Koyamaen", Inline: true},
			{Name: "Type", Value: "Matcha", Inline: true},
			{Name: "Price", Value: "$25.00", Inline: true},
			{Name: "Available variants", Value: "[40g can](https://shop.example/checkout/?add-to-cart=1187&quantity=1&currency=USD)", Inline: true},
		},
		Footer: FooterInStock + " | 📦 Product monitoring",
	}
}

func TestDiscordNotifier_Send(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		channel    string
		botToken   string
		statusCode int
		wantPath   string
		wantAuth   string
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "webhook url posts directly",
			channel:    "/api/webhooks/1/abc",
			statusCode: http.StatusNoContent,
			wantPath:   "/api/webhooks/1/abc",
		},
		{
			name:       "channel id posts through bot api",
			channel:    "123456789",
			botToken:   "secret",
			statusCode: http.StatusOK,
			wantPath:   "/channels/123456789/messages",
			wantAuth:   "Bot secret",
		},
		{
			name:       "discord returns 429 rate limited",
			channel:    "/api/webhooks/1/abc",
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "discord returns 400 error",
			channel:    "/api/webhooks/1/abc",
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errMsg:     "discord returned 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received discordMessage

			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					assert.Equal(t, http.MethodPost, r.Method)
					if tt.wantPath != "" {
						assert.Equal(t, tt.wantPath, r.URL.Path)
					}
					assert.Equal(t, tt.wantAuth, r.Header.Get("Authorization"))

					err := json.NewDecoder(r.Body).Decode(&received)
					assert.NoError(t, err)

					w.WriteHeader(tt.statusCode)
				}),
			)
			defer srv.Close()

			channel := tt.channel
			if tt.botToken == "" {
				channel = srv.URL + tt.channel
			}

			d := NewDiscordNotifier(tt.botToken, WithDiscordBaseURL(srv.URL+"/"))
			err := d.Send(context.Background(),
				Destination{Transport: domain.TransportDiscord, Channel: channel},
				testPayload(),
			)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.Len(t, received.Embeds, 1)

			embed := received.Embeds[0]
			assert.Equal(t, ColorInStock, embed.Color)
			assert.Equal(t, "Aoarashi", embed.Title)
			assert.Equal(t, "https://shop.example/product/aoarashi/?currency=USD", embed.URL)
			require.NotNil(t, embed.Author)
			assert.Equal(t, "shop.example", embed.Author.Name)
			assert.Equal(t, "https://shop.example/favicon.ico", embed.Author.IconURL)
			require.NotNil(t, embed.Image)
			assert.Equal(t, "https://shop.example/aoarashi.jpg", embed.Image.URL)
			require.NotNil(t, embed.Footer)
			assert.Equal(t, "✅ In stock | 📦 Product monitoring", embed.Footer.Text)

			fieldMap := make(map[string]string)
			for _, f := range embed.Fields {
				assert.True(t, f.Inline)
				fieldMap[f.Name] = f.Value
			}
			assert.Equal(t, "$25.00", fieldMap["Price"])
			assert.Equal(t, "Marukyu Koyamaen", fieldMap["Brand"])
		})
	}
}

func TestDiscordNotifier_Send_NoImage(t *testing.T) {
	t.Parallel()

	var received discordMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(t, err)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	p := testPayload()
	p.ImageURL = ""
	p.Fields[0].Value = ""

	d := NewDiscordNotifier("")
	err := d.Send(context.Background(), Destination{Channel: srv.URL}, p)
	require.NoError(t, err)

	require.Len(t, received.Embeds, 1)
	assert.Nil(t, received.Embeds[0].Image)
	assert.Equal(t, "-", received.Embeds[0].Fields[0].Value)
}

func TestDiscordNotifier_ChannelIDWithoutToken(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("")
	err := d.Send(context.Background(), Destination{Channel: "123456789"}, testPayload())
	require.ErrorIs(t, err, ErrMissingBotToken)
}

func TestDiscordNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("")
	err := d.Send(context.Background(), Destination{Channel: "http://127.0.0.1:1"}, testPayload()) // nothing listening
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending discord message")
}

func TestDiscordNotifier_InvalidWebhookURL(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("")
	err := d.Send(context.Background(), Destination{Channel: "https://disc ord.com/api/webhooks/1"}, testPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating discord request")
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	d := NewDiscordNotifier("", WithHTTPClient(custom))
	assert.Same(t, custom, d.client)
}

func TestWithDiscordBaseURL(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("token", WithDiscordBaseURL(""))
	assert.Equal(t, defaultDiscordBaseURL, d.baseURL)

	d = NewDiscordNotifier("token", WithDiscordBaseURL("http://localhost:9999/api/"))
	target, bot, err := d.target("42")
	require.NoError(t, err)
	assert.True(t, bot)
	assert.Equal(t, "http://localhost:9999/api/channels/42/messages", target)
}

func variantLinkList(n int) string {
	links := make([]string, n)
	for i := range links {
		links[i] = fmt.Sprintf("[%dg tin](https://shop.example/cart/checkout/?add-to-cart=%d&quantity=1&currency=USD)", 20+i, 1000+i)
	}
	return strings.Join(links, ", ")
}

func TestFitFieldValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		value      string
		wantSuffix string
		wantSame   bool
	}{
		{name: "short value untouched", value: "Marukyu Koyamaen", wantSame: true},
		{name: "exactly at the limit", value: strings.Repeat("é", maxFieldValue), wantSame: true},
		{name: "long link list cut at an item", value: variantLinkList(30), wantSuffix: " more"},
		{name: "single oversized item", value: strings.Repeat("x", 2000), wantSuffix: "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fitFieldValue(tt.value)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), maxFieldValue)
			if tt.wantSame {
				assert.Equal(t, tt.value, got)
				return
			}
			assert.True(t, strings.HasSuffix(got, tt.wantSuffix), "got %q", got)
		})
	}
}

func TestFitFieldValue_CountsDroppedLinks(t *testing.T) {
	t.Parallel()

	links := strings.Split(variantLinkList(30), ", ")
	got := fitFieldValue(strings.Join(links, ", "))

	kept := strings.Count(got, "add-to-cart=")
	require.Positive(t, kept)
	assert.True(t, strings.HasSuffix(got, fmt.Sprintf(", …and %d more", len(links)-kept)), "got %q", got)
	assert.True(t, strings.HasPrefix(got, links[0]))
}

func TestDiscordNotifier_Send_ManyVariants(t *testing.T) {
	t.Parallel()

	var received discordMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	p := testPayload()
	p.Fields[3].Value = variantLinkList(25)

	require.NoError(t, NewDiscordNotifier("").Send(context.Background(), Destination{Channel: srv.URL}, p))

	require.Len(t, received.Embeds, 1)
	value := received.Embeds[0].Fields[3].Value
	assert.LessOrEqual(t, utf8.RuneCountInString(value), maxFieldValue)
	assert.Contains(t, value, "more")
}
