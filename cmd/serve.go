package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/claude-agentcore-cli/internal/server"
)

func newServeCmd(app *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the AgentCore runtime HTTP contract",
		Long:  "serve exposes POST /invocations and GET /ping, the contract a Bedrock AgentCore runtime expects from a hosted agent. Invocations run the multi-agent workflow when a browser is available and fall back to a direct Claude call otherwise.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(addr, app.service, app.logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "Listen address")

	return cmd
}
