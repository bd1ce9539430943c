package notify

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier implements Notifier via the Telegram Bot API. The
// destination channel is a numeric chat id.
type TelegramNotifier struct {
	token    string
	endpoint string
	client   *http.Client

	mu  sync.Mutex
	bot *tgbotapi.BotAPI
}

// TelegramOption configures a TelegramNotifier.
type TelegramOption func(*TelegramNotifier)

// WithTelegramHTTPClient sets a custom HTTP client.
func WithTelegramHTTPClient(c *http.Client) TelegramOption {
	return func(n *TelegramNotifier) {
		n.client = c
	}
}

// WithTelegramEndpoint overrides the API endpoint format, which takes the
// token and method name.
func WithTelegramEndpoint(endpoint string) TelegramOption {
	return func(n *TelegramNotifier) {
		if endpoint != "" {
			n.endpoint = endpoint
		}
	}
}

// NewTelegramNotifier creates a TelegramNotifier. The bot is authenticated
// lazily on the first send.
func NewTelegramNotifier(token string, opts ...TelegramOption) *TelegramNotifier {
	n := &TelegramNotifier{
		token:    token,
		endpoint: tgbotapi.APIEndpoint,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Send posts p as a markdown text message.
func (n *TelegramNotifier) Send(ctx context.Context, dest Destination, p *Payload) error {
	chatID, err := strconv.ParseInt(dest.Channel, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram chat id %q: %w", dest.Channel, err)
	}

	return runWithContext(ctx, func() error {
		bot, err := n.botAPI()
		if err != nil {
			return err
		}

		msg := tgbotapi.NewMessage(chatID, p.Text())
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := bot.Send(msg); err != nil {
			return fmt.Errorf("sending telegram message: %w", err)
		}
		return nil
	})
}

func (n *TelegramNotifier) botAPI() (*tgbotapi.BotAPI, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.bot != nil {
		return n.bot, nil
	}

	bot, err := tgbotapi.NewBotAPIWithClient(n.token, n.endpoint, n.client)
	if err != nil {
		return nil, fmt.Errorf("authenticating telegram bot: %w", err)
	}
	n.bot = bot
	return bot, nil
}
