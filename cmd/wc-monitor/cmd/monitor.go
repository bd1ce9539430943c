package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshlee247/woocommerce-discord-monitor/internal/engine"
	domain "github.com/joshlee247/woocommerce-discord-monitor/pkg/types"
)

func monitorCmd() *cobra.Command {
	monitorRoot := &cobra.Command{
		Use:   "monitor",
		Short: "Manage monitors on a running server",
		Long: "Manage the product, collection and search monitors of a running\n" +
			"wc-monitor server through its API.",
	}

	monitorRoot.AddCommand(
		monitorListCmd(),
		monitorGetCmd(),
		monitorCreateCmd(),
		monitorEnableCmd(),
		monitorDisableCmd(),
		monitorDeleteCmd(),
		monitorVariantsCmd(),
		monitorCheckCmd(),
	)

	return monitorRoot
}

func monitorListCmd() *cobra.Command {
	var enabledOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List monitors",
		Example: `  wc-monitor monitor list
  wc-monitor monitor list --enabled --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			monitors, err := newClient().ListMonitors(context.Background(), enabledOnly)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(monitors)
			}
			if len(monitors) == 0 {
				fmt.Println("No monitors found.")
				return nil
			}
			return printMonitorTable(monitors)
		},
	}
	cmd.Flags().BoolVar(&enabledOnly, "enabled", false, "only list enabled monitors")

	return cmd
}

func monitorGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show monitor details",
		Example: `  wc-monitor monitor get matcha-collection`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := newClient().GetMonitor(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(m)
			}
			return printMonitorDetail(m)
		},
	}
}

func monitorCreateCmd() *cobra.Command {
	var (
		m        domain.Monitor
		kind     string
		trans    string
		disabled bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a monitor",
		Long: "Create a monitor. The server validates it the same way it validates\n" +
			"monitors in the config file and polls it from the next cycle.",
		Example: `  # Watch a collection page and post to a Discord channel
  wc-monitor monitor create --url https://shop.example/product-category/matcha/ \
    --kind collection --channel 123456789012345678

  # Search a shop and send results to a Telegram chat in EUR
  wc-monitor monitor create --url https://shop.example/ --kind search \
    --query "ceremonial matcha" --transport telegram --channel -1001234567 --currency EUR`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if m.URL == "" || kind == "" || m.Channel == "" {
				return fmt.Errorf("--url, --kind and --channel are required")
			}
			m.Kind = domain.MonitorKind(kind)
			m.Transport = domain.Transport(trans)
			m.Enabled = !disabled

			created, err := newClient().CreateMonitor(context.Background(), &m)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Monitor created: %s (%s)\n", created.ID, created.URL)
			return nil
		},
	}
	cmd.Flags().StringVar(&m.ID, "id", "", "monitor id (generated when empty)")
	cmd.Flags().StringVar(&m.Name, "name", "", "display name")
	cmd.Flags().StringVar(&m.URL, "url", "", "product, collection or shop URL")
	cmd.Flags().StringVar(&kind, "kind", "", "monitor kind (product, collection, search)")
	cmd.Flags().StringVar(&m.Query, "query", "", "search terms (search monitors)")
	cmd.Flags().StringVar(&m.Currency, "currency", "", "ISO 4217 display currency (default USD)")
	cmd.Flags().StringVar(&m.Channel, "channel", "", "channel id, webhook URL, chat id or email address")
	cmd.Flags().StringVar(&trans, "transport", "", "notification transport (discord, telegram, email)")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "create the monitor disabled")

	return cmd
}

func monitorEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "enable <id>",
		Short:   "Enable a monitor",
		Example: `  wc-monitor monitor enable matcha-collection`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runMonitorSetEnabled(args[0], true)
		},
	}
}

func monitorDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "disable <id>",
		Short:   "Disable a monitor",
		Example: `  wc-monitor monitor disable matcha-collection`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runMonitorSetEnabled(args[0], false)
		},
	}
}

func monitorDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a monitor and its recorded variants",
		Example: `  wc-monitor monitor delete matcha-collection`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := newClient().DeleteMonitor(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Monitor %s deleted.\n", args[0])
			return nil
		},
	}
}

func monitorVariantsCmd() *cobra.Command {
	var productID string

	cmd := &cobra.Command{
		Use:   "variants <id>",
		Short: "Show recorded variants of a monitor",
		Example: `  wc-monitor monitor variants matcha-collection
  wc-monitor monitor variants matcha-collection --product 4521`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			variants, err := newClient().ListVariants(context.Background(), args[0], productID)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(variants)
			}
			if len(variants) == 0 {
				fmt.Println("No variants recorded.")
				return nil
			}
			return printVariantsTable(variants)
		},
	}
	cmd.Flags().StringVar(&productID, "product", "", "only show variants of this product id")

	return cmd
}

func monitorCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [id]",
		Short: "Check one monitor, or all enabled monitors, now",
		Example: `  wc-monitor monitor check matcha-collection
  wc-monitor monitor check`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()

			var results []engine.MonitorResult
			if len(args) == 1 {
				res, err := c.CheckMonitor(context.Background(), args[0])
				if err != nil {
					return err
				}
				results = append(results, *res)
			} else {
				resp, err := c.CheckAll(context.Background())
				if err != nil {
					return err
				}
				results = resp.Results
			}

			if jsonOutput() {
				return outputJSON(results)
			}
			return printResultsTable(results)
		},
	}
}

func runMonitorSetEnabled(id string, enabled bool) error {
	if err := newClient().SetMonitorEnabled(context.Background(), id, enabled); err != nil {
		return err
	}

	action := "enabled"
	if !enabled {
		action = "disabled"
	}
	fmt.Printf("Monitor %s %s.\n", id, action)
	return nil
}
