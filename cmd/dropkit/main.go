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

const banner = `
  ╔╦╗┬─┐┌─┐┌─┐┬┌─┬┌┬┐
   ║║├┬┘│ │├─┘├┴┐│ │
  ═╩╝┴└─└─┘┴  ┴ ┴┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "dropkit",
		Short: "Server-driven file upload widget",
		Long: `Dropkit is a server-driven upload widget for Go web applications.

The widget state lives on the server; a thin JavaScript client forwards
gestures over WebSocket and applies markup patches. Features include:

  • Drag-drop and picker intake with server-side validation
  • Camera capture driven by a server-side session state machine
  • Temp upload store on disk or S3
  • Prometheus metrics and structured logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		cleanupCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Dropkit ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}
