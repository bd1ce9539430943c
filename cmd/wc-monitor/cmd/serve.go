package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/api/handlers"
	mw "github.com/joshlee247/woocommerce-discord-monitor/internal/api/middleware"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/config"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/engine"
	"github.com/joshlee247/woocommerce-discord-monitor/internal/store"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and scheduler",
		Long: "Start the HTTP API and poll every enabled monitor on the configured\n" +
			"interval. A first check cycle runs immediately.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, logFile := newLogger(cfg)
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		log.Error("startup failed", "error", err)
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.Close(closeCtx); err != nil {
			log.Error("closing app", "error", err)
		}
	}()

	sched, err := engine.NewScheduler(a.engine, cfg.Engine.PollInterval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	e := newServer(&cfg.Server, a.store, a.engine, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "poll_interval", cfg.Engine.PollInterval)

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	sched.Start()
	sched.RunNow()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		log.Error("server error", "error", err)
		stop()
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("check cycle still running at shutdown")
	}

	log.Info("server stopped")
	return nil
}

// newServer builds the Echo instance with the Huma API mounted on it.
func newServer(
	cfg *config.ServerConfig,
	s store.Store,
	checker handlers.Checker,
	log *slog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	e.Use(mw.RequestLog(log), mw.Recovery(log), mw.Metrics())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("WooCommerce Monitor API", Version))

	handlers.RegisterHealthRoutes(api, handlers.NewHealthHandler(s))
	handlers.RegisterMonitorRoutes(api, handlers.NewMonitorsHandler(s))
	handlers.RegisterVariantRoutes(api, handlers.NewVariantsHandler(s))
	handlers.RegisterCheckRoutes(api, handlers.NewCheckHandler(checker))

	return e
}
