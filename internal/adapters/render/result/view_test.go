package result

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/claude-agentcore-cli/internal/domain"
)

func TestRenderSuccessResult(t *testing.T) {
	t.Parallel()

	out := Render(domain.InvocationResult{
		AgentResponse: "Hello there!",
		PromptUsed:    "please say hello",
		Model:         "claude-3-5-sonnet-20241022",
		Status:        domain.InvocationStatusSuccess,
	})

	assert.Contains(t, out, "Claude Agent Response")
	assert.Contains(t, out, "claude-3-5-sonnet-20241022")
	assert.Contains(t, out, "please say hello")
	assert.Contains(t, out, "success")
	assert.Contains(t, out, "Hello there!")
}

func TestRenderFailedResultShowsError(t *testing.T) {
	t.Parallel()

	out := Render(domain.InvocationResult{
		PromptUsed: "please say hello",
		Model:      "claude-3-5-sonnet-20241022",
		Status:     domain.InvocationStatusFailed,
		Error:      "model provider request failed",
	})

	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "model provider request failed")
}

func TestRenderHistoryEmpty(t *testing.T) {
	t.Parallel()

	out := RenderHistory(nil)
	assert.Contains(t, out, "invocations: 0")
	assert.Contains(t, out, "No invocations recorded.")
}

func TestRenderHistoryListsRecords(t *testing.T) {
	t.Parallel()

	out := RenderHistory([]domain.InvocationRecord{
		{
			ID:        "inv-1",
			Prompt:    "please say hello",
			Model:     "claude-3-5-sonnet-20241022",
			Status:    domain.InvocationStatusSuccess,
			Source:    domain.SourceLocalConfig,
			CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
	})

	assert.Contains(t, out, "invocations: 1")
	assert.Contains(t, out, "please say hello")
	assert.Contains(t, out, "local_config")
}
