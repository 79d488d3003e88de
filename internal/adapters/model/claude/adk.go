package claude

import (
	"context"
	"fmt"
	"iter"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/bnema/claude-agentcore-cli/internal/domain"
)

// ADKModel adapts the Anthropic Messages API to the model.LLM contract so a
// Claude-backed agent can run under the ADK launcher. Only text parts are
// translated; tool and media parts are out of scope for the console and web
// launcher modes this serves.
type ADKModel struct {
	api       anthropic.Client
	model     string
	maxTokens int64
}

var _ model.LLM = (*ADKModel)(nil)

func NewADKModel(apiKey, modelName string, maxTokens int64, opts ...option.RequestOption) *ADKModel {
	return &ADKModel{
		api:       anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...),
		model:     modelName,
		maxTokens: maxTokens,
	}
}

func (m *ADKModel) Name() string {
	return m.model
}

// GenerateContent calls the underlying model. Streaming requests are served
// as a single complete response marked TurnComplete.
func (m *ADKModel) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {
		resp, err := m.generate(ctx, req, stream)
		yield(resp, err)
	}
}

func (m *ADKModel) generate(ctx context.Context, req *model.LLMRequest, stream bool) (*model.LLMResponse, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(m.model),
		MaxTokens: m.maxTokens,
		Messages:  toAnthropicMessages(req.Contents),
	}
	if system := contentText(systemInstruction(req)); system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	message, err := m.api.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelProvider, err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}
	if sb.Len() == 0 {
		return nil, fmt.Errorf("%w: response contained no text", domain.ErrModelProvider)
	}

	resp := &model.LLMResponse{
		Content:      genai.NewContentFromText(sb.String(), genai.RoleModel),
		FinishReason: genai.FinishReasonStop,
	}
	if stream {
		resp.TurnComplete = true
	}

	return resp, nil
}

func systemInstruction(req *model.LLMRequest) *genai.Content {
	if req.Config == nil {
		return nil
	}

	return req.Config.SystemInstruction
}

// toAnthropicMessages maps the conversation history onto Anthropic message
// params. The Messages API requires at least one message, so an empty history
// gets a nudge in the user role.
func toAnthropicMessages(contents []*genai.Content) []anthropic.MessageParam {
	messages := make([]anthropic.MessageParam, 0, len(contents))
	for _, content := range contents {
		text := contentText(content)
		if text == "" {
			continue
		}

		if content.Role == genai.RoleModel {
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(text)))
			continue
		}

		messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(text)))
	}

	if len(messages) == 0 {
		messages = append(messages, anthropic.NewUserMessage(
			anthropic.NewTextBlock("Handle the requests as specified in the System Instruction."),
		))
	}

	return messages
}

func contentText(content *genai.Content) string {
	if content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	return sb.String()
}
