// Package main generates CLI reference documentation from the wc-monitor command tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/joshlee247/woocommerce-discord-monitor/cmd/wc-monitor/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	manDir := flag.String("man", "", "also write man pages to this directory")
	flag.Parse()

	if err := os.MkdirAll(*output, 0o750); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	if err := doc.GenMarkdownTree(root, *output); err != nil {
		log.Fatalf("generating docs: %v", err)
	}
	fmt.Printf("CLI docs generated in %s/\n", *output)

	if *manDir == "" {
		return
	}
	if err := os.MkdirAll(*manDir, 0o750); err != nil {
		log.Fatalf("creating man directory: %v", err)
	}
	header := &doc.GenManHeader{Title: "WC-MONITOR", Section: "1", Source: "wc-monitor " + cmd.Version}
	if err := doc.GenManTree(root, header, *manDir); err != nil {
		log.Fatalf("generating man pages: %v", err)
	}
	fmt.Printf("man pages generated in %s/\n", *manDir)
}
