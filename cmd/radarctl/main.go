// Command radarctl is a thin HTTP client talking to a running radar
// server's admin endpoints, grounded on cmd/aleutian/cmd_chat.go's
// pattern of cobra subcommands that POST/GET against a local service and
// print the decoded JSON response.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var serverURL string

func main() {
	rootCmd := &cobra.Command{
		Use:   "radarctl",
		Short: "Admin CLI for the Opportunity Radar server",
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "radar server base URL")

	rootCmd.AddCommand(
		newTriggerScrapeCmd(),
		newEmbedMissingCmd(),
		newListSourcesCmd(),
		newGetMatchesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
