package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	resultadapter "github.com/bnema/claude-agentcore-cli/internal/adapters/render/result"
	"github.com/bnema/claude-agentcore-cli/internal/domain"
)

const defaultInvokePrompt = "please say hello"

func newInvokeCmd(app *app) *cobra.Command {
	var model string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "invoke [prompt]",
		Short: "Send a prompt to Claude and print the response",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := defaultInvokePrompt
			if len(args) == 1 && args[0] != "" {
				prompt = args[0]
			}

			activeModel := app.cfg.Model()
			service := app.service
			if model != "" {
				activeModel = model
				service = app.serviceFor(model)
			}

			var result domain.InvocationResult
			invoke := func(ctx context.Context) error {
				var err error
				result, err = service.Invoke(ctx, prompt)
				return err
			}

			if asJSON {
				if err := invoke(cmd.Context()); err != nil {
					return err
				}
			} else {
				label := fmt.Sprintf("Asking %s...", activeModel)
				if err := runInvokeSpinner(cmd.Context(), cmd.ErrOrStderr(), label, invoke); err != nil {
					return err
				}
			}

			if err := writeInvocationOutput(cmd, result, asJSON); err != nil {
				return err
			}

			if result.Status == domain.InvocationStatusFailed {
				return fmt.Errorf("invocation failed: %s", result.Error)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "Model ID override (default: configured model)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeInvocationOutput(cmd *cobra.Command, result domain.InvocationResult, asJSON bool) error {
	if asJSON {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode invocation result: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return err
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), resultadapter.Render(result))
	return err
}
