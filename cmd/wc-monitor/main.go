// Package main is the entry point for wc-monitor.
package main

import (
	"os"

	"github.com/joshlee247/woocommerce-discord-monitor/cmd/wc-monitor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
