package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/engine"
)

func checkCmd() *cobra.Command {
	var monitorID string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run one check cycle and exit",
		Long: "Run a single check cycle in-process against the configured store, without\n" +
			"starting the API server. Notifications are sent as in serve.",
		Example: `  wc-monitor check
  wc-monitor check --monitor matcha-collection --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCheck(monitorID)
		},
	}
	cmd.Flags().StringVar(&monitorID, "monitor", "", "check only this monitor (enabled or not)")

	return cmd
}

func runCheck(monitorID string) error {
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
		return err
	}

	var (
		results []engine.MonitorResult
		runErr  error
	)
	if monitorID != "" {
		var res *engine.MonitorResult
		res, runErr = a.engine.CheckMonitor(ctx, monitorID)
		if res != nil {
			results = append(results, *res)
		}
	} else {
		results, runErr = a.engine.RunAll(ctx)
	}

	closeErr := a.Close(context.WithoutCancel(ctx))

	if results != nil {
		if jsonOutput() {
			if err := outputJSON(results); err != nil {
				return err
			}
		} else if err := printResultsTable(results); err != nil {
			return err
		}
	}

	return errors.Join(runErr, closeErr)
}
