package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newTriggerScrapeCmd() *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "trigger-scrape",
		Short: "Run one source adapter (or every adapter) synchronously",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result map[string]any
			if err := postJSON("/v1/scrape/trigger", map[string]string{"source": source}, &result); err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "source name (omit to run every registered source)")
	return cmd
}

func newListSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-sources",
		Short: "List registered ingestion source names",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result map[string]any
			if err := getJSON("/v1/sources", &result); err != nil {
				return err
			}
			return printJSON(result)
		},
	}
}

func newEmbedMissingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "embed-missing",
		Short: "Backfill embeddings for every active opportunity missing one",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result map[string]any
			if err := postJSON("/v1/embeddings/backfill", struct{}{}, &result); err != nil {
				return err
			}
			return printJSON(result)
		},
	}
}

func newGetMatchesCmd() *cobra.Command {
	var profileID string
	var limit int
	cmd := &cobra.Command{
		Use:   "get-matches",
		Short: "Fetch the top persisted matches for a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if profileID == "" {
				return fmt.Errorf("--profile-id is required")
			}
			var result map[string]any
			path := fmt.Sprintf("/v1/matches/top?profile_id=%s&limit=%d", profileID, limit)
			if err := getJSON(path, &result); err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	cmd.Flags().StringVar(&profileID, "profile-id", "", "profile ID to fetch matches for")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of matches to return")
	return cmd
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
