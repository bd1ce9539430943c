// Package cmd implements the wc-monitor CLI commands.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/joshlee247/woocommerce-discord-monitor/internal/api/client"
)

var rootCmd = &cobra.Command{
	Use:   "wc-monitor",
	Short: "Watch WooCommerce storefronts for new products, restocks and price changes",
	Long: "wc-monitor polls WooCommerce product, collection and search pages, records\n" +
		"every variant's price and availability, and notifies Discord, Telegram or\n" +
		"email when a product appears or changes.",
	SilenceUsage: true,
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file loaded before the config")
	rootCmd.PersistentFlags().String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json)")

	for _, name := range []string{"config", "env-file", "server", "output"} {
		cobra.CheckErr(viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)))
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(monitorCmd())
	rootCmd.AddCommand(versionCmd())
}

// initConfig lets every persistent flag be set from a WCM_ variable, e.g.
// WCM_CONFIG or WCM_ENV_FILE.
func initConfig() {
	viper.SetEnvPrefix("WCM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
