package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lumen",
		Short: "Accessible server-driven UI widgets for Go",
		Long: `Lumen is a server-driven component view layer for Go with
accessible widgets built in.

Commands serve the widget gallery over HTTP/WebSocket, render
static snapshots, and publish snapshots to S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		renderCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
