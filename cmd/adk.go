package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/cmd/launcher"
	"google.golang.org/adk/cmd/launcher/full"

	"github.com/bnema/claude-agentcore-cli/internal/adapters/model/claude"
)

// newADKCmd runs the Claude agent inside the Agent Development Kit launcher
// (web UI, API server, or console loop, chosen by the forwarded arguments).
// The API key comes from the same tier chain as every other command.
func newADKCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:                "adk [launcher args]",
		Short:              "Run the agent under the ADK launcher",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			credential, err := app.resolver.Resolve(ctx)
			if err != nil {
				return err
			}

			model := claude.NewADKModel(credential.Value, app.cfg.Model(), app.cfg.MaxTokens())

			claudeAgent, err := llmagent.New(llmagent.Config{
				Name:        "claude_agentcore_agent",
				Model:       model,
				Description: "A concise assistant powered by Anthropic Claude.",
				Instruction: "You are a helpful assistant. Respond briefly and accurately.",
			})
			if err != nil {
				return fmt.Errorf("create agent: %w", err)
			}

			launcherConfig := &launcher.Config{
				AgentLoader: agent.NewSingleLoader(claudeAgent),
			}

			l := full.NewLauncher()
			if err := l.Execute(ctx, launcherConfig, args); err != nil {
				return fmt.Errorf("run launcher: %w\n\n%s", err, l.CommandLineSyntax())
			}

			return nil
		},
	}
}
