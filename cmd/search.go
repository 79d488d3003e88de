package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCmd(app *app) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run a headless browser web search and print the top result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.browser.Search(cmd.Context(), query)
			if err != nil {
				return err
			}

			encoded, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("encode search result: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return err
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search query")
	_ = cmd.MarkFlagRequired("query")

	return cmd
}
