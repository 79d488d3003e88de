package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/claude-agentcore-cli/internal/domain"
	"github.com/bnema/claude-agentcore-cli/internal/ports/mocks"
)

const testModel = "claude-3-5-sonnet-20241022"

func TestInvokeEmitsSuccessResult(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewMockCredentialResolver(t)
	factory := mocks.NewMockModelClientFactory(t)
	client := mocks.NewMockModelClient(t)

	resolver.EXPECT().Resolve(mock.Anything).
		Return(domain.Credential{Value: "sk-test-123", Source: domain.SourceLocalConfig}, nil).Once()
	factory.EXPECT().Model().Return(testModel)
	factory.EXPECT().NewClient("sk-test-123").Return(client).Once()
	client.EXPECT().Complete(mock.Anything, "please say hello").Return("Hello! How can I help?", nil).Once()

	service := NewService(resolver, factory, nil, nil, nil, nil)

	result, err := service.Invoke(context.Background(), "please say hello")
	require.NoError(t, err)
	assert.Equal(t, domain.InvocationStatusSuccess, result.Status)
	assert.Equal(t, testModel, result.Model)
	assert.Equal(t, "please say hello", result.PromptUsed)
	assert.Equal(t, "Hello! How can I help?", result.AgentResponse)
	assert.Empty(t, result.Error)
}

func TestInvokeCredentialFailureIsFatal(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewMockCredentialResolver(t)
	factory := mocks.NewMockModelClientFactory(t)

	resolver.EXPECT().Resolve(mock.Anything).
		Return(domain.Credential{}, domain.ErrCredentialUnavailable).Once()

	service := NewService(resolver, factory, nil, nil, nil, nil)

	_, err := service.Invoke(context.Background(), "please say hello")
	require.ErrorIs(t, err, domain.ErrCredentialUnavailable)
}

func TestInvokeModelFailureBecomesFailedResult(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewMockCredentialResolver(t)
	factory := mocks.NewMockModelClientFactory(t)
	client := mocks.NewMockModelClient(t)

	resolver.EXPECT().Resolve(mock.Anything).
		Return(domain.Credential{Value: "sk-test-123", Source: domain.SourceLocalConfig}, nil).Once()
	factory.EXPECT().Model().Return(testModel)
	factory.EXPECT().NewClient("sk-test-123").Return(client).Once()
	client.EXPECT().Complete(mock.Anything, "please say hello").
		Return("", domain.ErrModelProvider).Once()

	service := NewService(resolver, factory, nil, nil, nil, nil)

	result, err := service.Invoke(context.Background(), "please say hello")
	require.NoError(t, err)
	assert.Equal(t, domain.InvocationStatusFailed, result.Status)
	assert.Empty(t, result.AgentResponse)
	assert.Contains(t, result.Error, "model provider request failed")
}

func TestInvokeRecordsInvocationWithoutSecrets(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewMockCredentialResolver(t)
	factory := mocks.NewMockModelClientFactory(t)
	client := mocks.NewMockModelClient(t)
	history := mocks.NewMockInvocationRepository(t)
	clock := mocks.NewMockClock(t)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	resolver.EXPECT().Resolve(mock.Anything).
		Return(domain.Credential{Value: "sk-test-123", Source: domain.SourceSecretStore}, nil).Once()
	factory.EXPECT().Model().Return(testModel)
	factory.EXPECT().NewClient("sk-test-123").Return(client).Once()
	client.EXPECT().Complete(mock.Anything, "please say hello").Return("Hello!", nil).Once()
	clock.EXPECT().Now().Return(now).Once()
	history.EXPECT().Append(mock.Anything, mock.MatchedBy(func(record domain.InvocationRecord) bool {
		return record.Prompt == "please say hello" &&
			record.Model == testModel &&
			record.Status == domain.InvocationStatusSuccess &&
			record.Source == domain.SourceSecretStore &&
			record.CreatedAt.Equal(now) &&
			record.ID != ""
	})).Return(nil).Once()

	service := NewService(resolver, factory, nil, history, clock, nil)

	_, err := service.Invoke(context.Background(), "please say hello")
	require.NoError(t, err)
}

func TestInvokeHistoryFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewMockCredentialResolver(t)
	factory := mocks.NewMockModelClientFactory(t)
	client := mocks.NewMockModelClient(t)
	history := mocks.NewMockInvocationRepository(t)
	clock := mocks.NewMockClock(t)

	resolver.EXPECT().Resolve(mock.Anything).
		Return(domain.Credential{Value: "sk-test-123", Source: domain.SourceLocalConfig}, nil).Once()
	factory.EXPECT().Model().Return(testModel)
	factory.EXPECT().NewClient("sk-test-123").Return(client).Once()
	client.EXPECT().Complete(mock.Anything, "please say hello").Return("Hello!", nil).Once()
	clock.EXPECT().Now().Return(time.Now()).Once()
	history.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	service := NewService(resolver, factory, nil, history, clock, nil)

	result, err := service.Invoke(context.Background(), "please say hello")
	require.NoError(t, err)
	assert.Equal(t, domain.InvocationStatusSuccess, result.Status)
}

func TestInvokeWithDelegationRunsMultiAgentWorkflow(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewMockCredentialResolver(t)
	factory := mocks.NewMockModelClientFactory(t)
	client := mocks.NewMockModelClient(t)
	browser := mocks.NewMockBrowserAgent(t)

	browser.EXPECT().Search(mock.Anything, "hello world").Return(domain.BrowserResult{
		URL:              "https://www.google.com",
		SearchQuery:      "hello world",
		FirstResultTitle: "\"Hello, World!\" program - Wikipedia",
		Status:           domain.InvocationStatusSuccess,
	}, nil).Once()
	resolver.EXPECT().Resolve(mock.Anything).
		Return(domain.Credential{Value: "sk-test-123", Source: domain.SourceLocalConfig}, nil).Once()
	factory.EXPECT().Model().Return(testModel)
	factory.EXPECT().NewClient("sk-test-123").Return(client).Once()
	client.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "hello world") && strings.Contains(prompt, "Wikipedia")
	})).Return("The search found the Wikipedia article about hello world programs.", nil).Once()

	service := NewService(resolver, factory, browser, nil, nil, nil)

	result, err := service.InvokeWithDelegation(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, domain.WorkflowMultiAgentDelegation, result.Workflow)
	require.NotNil(t, result.BrowserResult)
	assert.Equal(t, "hello world", result.BrowserResult.SearchQuery)
	assert.Equal(t, result.Analysis, result.FinalResponse)
	assert.Equal(t, domain.InvocationStatusSuccess, result.Status)
}

func TestInvokeWithDelegationDegradesWhenBrowserFails(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewMockCredentialResolver(t)
	factory := mocks.NewMockModelClientFactory(t)
	client := mocks.NewMockModelClient(t)
	browser := mocks.NewMockBrowserAgent(t)

	browser.EXPECT().Search(mock.Anything, "hello world").
		Return(domain.BrowserResult{Status: domain.InvocationStatusFailed}, domain.ErrBrowserUnavailable).Once()
	resolver.EXPECT().Resolve(mock.Anything).
		Return(domain.Credential{Value: "sk-test-123", Source: domain.SourceLocalConfig}, nil).Once()
	factory.EXPECT().Model().Return(testModel)
	factory.EXPECT().NewClient("sk-test-123").Return(client).Once()
	client.EXPECT().Complete(mock.Anything, "hello world").Return("Hello!", nil).Once()

	service := NewService(resolver, factory, browser, nil, nil, nil)

	result, err := service.InvokeWithDelegation(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, domain.WorkflowSingleAgent, result.Workflow)
	assert.Nil(t, result.BrowserResult)
	assert.Equal(t, "Hello!", result.FinalResponse)
}

func TestInvokeWithDelegationWithoutBrowserUsesSingleAgent(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewMockCredentialResolver(t)
	factory := mocks.NewMockModelClientFactory(t)
	client := mocks.NewMockModelClient(t)

	resolver.EXPECT().Resolve(mock.Anything).
		Return(domain.Credential{Value: "sk-test-123", Source: domain.SourceLocalConfig}, nil).Once()
	factory.EXPECT().Model().Return(testModel)
	factory.EXPECT().NewClient("sk-test-123").Return(client).Once()
	client.EXPECT().Complete(mock.Anything, "hello world").Return("Hello!", nil).Once()

	service := NewService(resolver, factory, nil, nil, nil, nil)

	result, err := service.InvokeWithDelegation(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, domain.WorkflowSingleAgent, result.Workflow)
	assert.Equal(t, "Hello!", result.FinalResponse)
}
