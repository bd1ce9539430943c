package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/config"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/engine"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/notify"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/store"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/storefront"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/telemetry"
	"github.com/joshlee247/woocommerce-discord-monitor/pkg/logger"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

// app holds the wired components shared by serve and check.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	store  store.Store
	engine *engine.Engine

	shutdownTelemetry telemetry.ShutdownFunc
}

func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(viper.GetString("env-file")); err != nil {
		return nil, err
	}

	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*slog.Logger, io.Closer) {
	return logger.NewWithFile(cfg.Logging.Level, cfg.Logging.Format, logger.FileOptions{
		Path:       cfg.Logging.File.Path,
		MaxSizeMB:  cfg.Logging.File.MaxSizeMB,
		MaxBackups: cfg.Logging.File.MaxBackups,
		MaxAgeDays: cfg.Logging.File.MaxAgeDays,
		Compress:   cfg.Logging.File.Compress,
	})
}

// newApp opens and migrates the store, seeds the configured monitors and
// builds the engine.
func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	shutdown, err := telemetry.Setup(ctx, &cfg.Telemetry, Version)
	if err != nil {
		return nil, err
	}

	s, err := store.Open(ctx, &cfg.Storage)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("opening %s store: %w", cfg.Storage.Backend, err), shutdown(ctx))
	}

	a := &app{cfg: cfg, log: log, store: s, shutdownTelemetry: shutdown}

	if err := s.Migrate(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("running migrations: %w", err), a.Close(ctx))
	}

	monitors := make([]domain.Monitor, len(cfg.Monitors))
	for i := range cfg.Monitors {
		monitors[i] = cfg.Monitors[i].ToDomain()
	}
	if err := engine.SeedMonitors(ctx, s, monitors, log); err != nil {
		return nil, errors.Join(fmt.Errorf("seeding monitors: %w", err), a.Close(ctx))
	}

	src := storefront.NewWooCommerce(
		storefront.WithUserAgent(cfg.Storefront.UserAgent),
		storefront.WithProductType(cfg.Storefront.ProductType),
		storefront.WithFetchTimeout(cfg.HTTP.FetchTimeout),
		storefront.WithHostLimiter(storefront.NewHostLimiter(
			cfg.Storefront.RateLimit.PerSecond,
			cfg.Storefront.RateLimit.Burst,
		)),
		storefront.WithLogger(log),
	)

	composer := &notify.Composer{
		IconURL:      cfg.Storefront.IconURL,
		CheckoutURL:  cfg.Storefront.CheckoutURL,
		LinkCurrency: cfg.Storefront.LinkCurrency,
		Locale:       cfg.Storefront.Locale,
	}

	a.engine = engine.NewEngine(s, src, newRouter(&cfg.Notifications, log), composer,
		engine.WithLogger(log),
		engine.WithConcurrency(cfg.Engine.Concurrency),
		engine.WithNotifyTimeout(cfg.Notifications.Timeout),
		engine.WithPruneMissingVariants(cfg.Engine.Prune()),
	)

	return a, nil
}

// newRouter registers a notifier per transport. Transports without
// credentials log instead of sending.
func newRouter(cfg *config.NotificationsConfig, log *slog.Logger) *notify.Router {
	opts := []notify.RouterOption{
		notify.WithRouterLogger(log),
		notify.WithRoute(domain.TransportDiscord, notify.NewDiscordNotifier(
			cfg.Discord.BotToken,
			notify.WithDiscordBaseURL(cfg.Discord.BaseURL),
		)),
	}

	if cfg.Telegram.BotToken != "" {
		opts = append(opts, notify.WithRoute(domain.TransportTelegram, notify.NewTelegramNotifier(
			cfg.Telegram.BotToken,
			notify.WithTelegramEndpoint(cfg.Telegram.APIEndpoint),
		)))
	} else {
		opts = append(opts, notify.WithRoute(domain.TransportTelegram, notify.NewNoOpNotifier(log)))
	}

	if cfg.Email.Host != "" && cfg.Email.From != "" {
		opts = append(opts, notify.WithRoute(domain.TransportEmail, notify.NewEmailNotifier(
			cfg.Email.Host,
			cfg.Email.Port,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.From,
		)))
	} else {
		opts = append(opts, notify.WithRoute(domain.TransportEmail, notify.NewNoOpNotifier(log)))
	}

	return notify.NewRouter(opts...)
}

// Close releases the store and flushes telemetry.
func (a *app) Close(ctx context.Context) error {
	var errs []error
	if err := a.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing store: %w", err))
	}
	if err := a.shutdownTelemetry(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down telemetry: %w", err))
	}
	return errors.Join(errs...)
}
