package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	defaultDiscordBaseURL = "https://discord.com/api/v10"

	// maxFieldValue is Discord's limit on an embed field value, in characters.
	maxFieldValue = 1024
)

// ErrMissingBotToken is returned when a channel id destination is used
// without a configured bot token.
var ErrMissingBotToken = errors.New("discord bot token not configured")

// DiscordNotifier implements Notifier via Discord. A destination channel
// that is an http(s) URL is treated as a webhook; anything else is a
// channel id posted to through the bot API.
type DiscordNotifier struct {
	botToken string
	baseURL  string
	client   *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(botToken string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		botToken: botToken,
		baseURL:  defaultDiscordBaseURL,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// WithDiscordBaseURL overrides the Discord API base URL.
func WithDiscordBaseURL(u string) DiscordOption {
	return func(d *DiscordNotifier) {
		if u != "" {
			d.baseURL = strings.TrimSuffix(u, "/")
		}
	}
}

// discordMessage is the JSON body shared by webhooks and channel messages.
type discordMessage struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title  string              `json:"title"`
	URL    string              `json:"url,omitempty"`
	Color  int                 `json:"color"`
	Author *discordAuthor      `json:"author,omitempty"`
	Image  *discordImage       `json:"image,omitempty"`
	Fields []discordEmbedField `json:"fields,omitempty"`
	Footer *discordFooter      `json:"footer,omitempty"`
}

type discordAuthor struct {
	Name    string `json:"name"`
	URL     string `json:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

type discordImage struct {
	URL string `json:"url"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordFooter struct {
	Text string `json:"text"`
}

// Send posts p as a single embed.
func (d *DiscordNotifier) Send(ctx context.Context, dest Destination, p *Payload) error {
	target, bot, err := d.target(dest.Channel)
	if err != nil {
		return err
	}
	return d.post(ctx, target, bot, discordMessage{Embeds: []discordEmbed{buildEmbed(p)}})
}

func (d *DiscordNotifier) target(channel string) (target string, bot bool, err error) {
	if strings.HasPrefix(channel, "http://") || strings.HasPrefix(channel, "https://") {
		return channel, false, nil
	}
	if d.botToken == "" {
		return "", false, ErrMissingBotToken
	}
	return fmt.Sprintf("%s/channels/%s/messages", d.baseURL, url.PathEscape(channel)), true, nil
}

func buildEmbed(p *Payload) discordEmbed {
	embed := discordEmbed{
		Title: p.Title,
		URL:   p.URL,
		Color: p.Color,
	}

	if p.Author.Name != "" {
		embed.Author = &discordAuthor{Name: p.Author.Name, URL: p.Author.URL, IconURL: p.Author.IconURL}
	}
	if p.ImageURL != "" {
		embed.Image = &discordImage{URL: p.ImageURL}
	}
	for _, f := range p.Fields {
		value := f.Value
		if value == "" {
			// Discord rejects empty field values.
			value = "-"
		}
		embed.Fields = append(embed.Fields, discordEmbedField{Name: f.Name, Value: fitFieldValue(value), Inline: f.Inline})
	}
	if p.Footer != "" {
		embed.Footer = &discordFooter{Text: p.Footer}
	}

	return embed
}

// fitFieldValue keeps value within maxFieldValue. Comma separated lists such
// as variant links are cut at an item boundary and end with "…and N more".
func fitFieldValue(value string) string {
	if utf8.RuneCountInString(value) <= maxFieldValue {
		return value
	}

	items := strings.Split(value, listSeparator)
	for keep := len(items) - 1; keep > 0; keep-- {
		out := strings.Join(items[:keep], listSeparator) + moreSuffix(len(items)-keep)
		if utf8.RuneCountInString(out) <= maxFieldValue {
			return out
		}
	}

	// A single oversized item: cut on a rune boundary.
	runes := []rune(value)
	return string(runes[:maxFieldValue-1]) + "…"
}

func moreSuffix(n int) string {
	return listSeparator + "…and " + strconv.Itoa(n) + " more"
}

func (d *DiscordNotifier) post(ctx context.Context, target string, bot bool, payload discordMessage) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		target,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bot {
		req.Header.Set("Authorization", "Bot "+d.botToken)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
