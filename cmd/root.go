package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cac",
		Short:         "Claude AgentCore CLI (cac): invoke Claude with tiered AWS credentials",
		Long:          "cac (Claude AgentCore CLI) resolves an Anthropic API key from Bedrock AgentCore workload identity, AWS Secrets Manager, or the local environment, then invokes Claude directly, serves the AgentCore runtime HTTP contract, or runs an ADK agent loop.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newInvokeCmd(app),
		newServeCmd(app),
		newSearchCmd(app),
		newCredentialsCmd(app),
		newHistoryCmd(app),
		newADKCmd(app),
	)

	return rootCmd
}
