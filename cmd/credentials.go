package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCredentialsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credentials",
		Short: "Inspect credential resolution",
	}

	cmd.AddCommand(newCredentialsCheckCmd(app))

	return cmd
}

func newCredentialsCheckCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Resolve an API key through the tier chain and report its source",
		Long:  "check walks the credential tiers (AgentCore workload identity, Secrets Manager, local environment) and reports which one produced a key. The key itself is printed masked, never in cleartext.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			credential, err := app.resolver.Resolve(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "source: %s\nkey:    %s\n",
				credential.Source, credential.Masked())
			return err
		},
	}
}
