package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bnema/claude-agentcore-cli/internal/domain"
	"github.com/bnema/claude-agentcore-cli/internal/ports"
)

// Service orchestrates one invocation: resolve a credential, call the model,
// emit a structured result. The credential is resolved once per invocation and
// is read-only afterwards.
type Service struct {
	resolver ports.CredentialResolver
	models   ports.ModelClientFactory
	browser  ports.BrowserAgent
	history  ports.InvocationRepository
	clock    ports.Clock
	logger   *zap.Logger
}

// NewService wires the invocation workflow. browser and history may be nil:
// without a browser agent, delegation degrades to the single-agent path;
// without history, invocations are simply not recorded.
func NewService(
	resolver ports.CredentialResolver,
	models ports.ModelClientFactory,
	browser ports.BrowserAgent,
	history ports.InvocationRepository,
	clock ports.Clock,
	logger *zap.Logger,
) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		resolver: resolver,
		models:   models,
		browser:  browser,
		history:  history,
		clock:    clock,
		logger:   logger,
	}
}

// Invoke sends the prompt to Claude. A credential failure is fatal and
// returned as an error before any model call; a model failure is surfaced
// inside the result with status "failed", not as an error.
func (s *Service) Invoke(ctx context.Context, prompt string) (domain.InvocationResult, error) {
	credential, err := s.resolver.Resolve(ctx)
	if err != nil {
		return domain.InvocationResult{}, fmt.Errorf("resolve credential: %w", err)
	}

	result := domain.InvocationResult{
		PromptUsed: prompt,
		Model:      s.models.Model(),
	}

	text, err := s.models.NewClient(credential.Value).Complete(ctx, prompt)
	if err != nil {
		s.logger.Warn("model call failed", zap.Error(err))
		result.Status = domain.InvocationStatusFailed
		result.Error = err.Error()
	} else {
		result.AgentResponse = text
		result.Status = domain.InvocationStatusSuccess
	}

	s.record(ctx, prompt, result.Status, credential.Source)

	return result, nil
}

// InvokeWithDelegation runs the multi-agent workflow: a browser search for
// the prompt, then a Claude analysis of the top result. When no browser agent
// is available the workflow degrades to the plain single-agent invocation.
func (s *Service) InvokeWithDelegation(ctx context.Context, prompt string) (domain.DelegationResult, error) {
	if s.browser == nil {
		return s.invokeSingle(ctx, prompt)
	}

	browserRes, err := s.browser.Search(ctx, prompt)
	if err != nil {
		s.logger.Warn("browser delegation failed, falling back to single agent", zap.Error(err))
		return s.invokeSingle(ctx, prompt)
	}

	analysisPrompt := fmt.Sprintf(
		"A web search for %q returned this top result: %q. Summarize the result for the user and mention the original search query.",
		prompt, browserRes.FirstResultTitle,
	)

	invocation, err := s.Invoke(ctx, analysisPrompt)
	if err != nil {
		return domain.DelegationResult{}, err
	}

	result := domain.DelegationResult{
		Workflow:      domain.WorkflowMultiAgentDelegation,
		BrowserResult: &browserRes,
		Analysis:      invocation.AgentResponse,
		FinalResponse: invocation.AgentResponse,
		Status:        invocation.Status,
		Error:         invocation.Error,
	}

	return result, nil
}

func (s *Service) invokeSingle(ctx context.Context, prompt string) (domain.DelegationResult, error) {
	invocation, err := s.Invoke(ctx, prompt)
	if err != nil {
		return domain.DelegationResult{}, err
	}

	return domain.DelegationResult{
		Workflow:      domain.WorkflowSingleAgent,
		FinalResponse: invocation.AgentResponse,
		Status:        invocation.Status,
		Error:         invocation.Error,
	}, nil
}

// record persists an invocation trace. Failures are logged, never fatal, and
// the record carries neither the credential nor the response text.
func (s *Service) record(ctx context.Context, prompt string, status domain.InvocationStatus, source domain.CredentialSource) {
	if s.history == nil {
		return
	}

	err := s.history.Append(ctx, domain.InvocationRecord{
		ID:        uuid.NewString(),
		Prompt:    prompt,
		Model:     s.models.Model(),
		Status:    status,
		Source:    source,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		s.logger.Warn("record invocation", zap.Error(err))
	}
}
