package claude

import (
	"context"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/bnema/claude-agentcore-cli/internal/domain"
	"github.com/bnema/claude-agentcore-cli/internal/ports"
)

// Client sends a single user prompt to the Anthropic Messages API and returns
// the concatenated text blocks of the reply.
type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
}

var _ ports.ModelClient = (*Client)(nil)

func NewClient(apiKey, model string, maxTokens int64, opts ...option.RequestOption) *Client {
	return &Client{
		api:       anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...),
		model:     model,
		maxTokens: maxTokens,
	}
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	message, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrModelProvider, err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: response contained no text", domain.ErrModelProvider)
	}

	return sb.String(), nil
}

// Factory builds per-invocation clients so the resolved key never outlives
// the call that needed it.
type Factory struct {
	model     string
	maxTokens int64
}

var _ ports.ModelClientFactory = Factory{}

func NewFactory(model string, maxTokens int64) Factory {
	return Factory{model: model, maxTokens: maxTokens}
}

func (f Factory) NewClient(apiKey string) ports.ModelClient {
	return NewClient(apiKey, f.model, f.maxTokens)
}

func (f Factory) Model() string {
	return f.model
}
