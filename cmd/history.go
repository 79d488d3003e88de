package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	resultadapter "github.com/bnema/claude-agentcore-cli/internal/adapters/render/result"
)

func newHistoryCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded invocations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := app.history.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				encoded, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return fmt.Errorf("encode history: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), resultadapter.RenderHistory(records))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
