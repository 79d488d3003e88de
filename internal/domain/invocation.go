package domain

import "time"

type InvocationStatus string

const (
	InvocationStatusSuccess InvocationStatus = "success"
	InvocationStatusFailed  InvocationStatus = "failed"
)

// InvocationResult is the single structured result the process emits for a prompt.
type InvocationResult struct {
	AgentResponse string           `json:"agent_response"`
	PromptUsed    string           `json:"prompt_used"`
	Model         string           `json:"model"`
	Status        InvocationStatus `json:"status"`
	Error         string           `json:"error,omitempty"`
}

// BrowserResult is what the browser agent extracts for a delegated search task.
type BrowserResult struct {
	URL              string           `json:"url"`
	SearchQuery      string           `json:"search_query"`
	FirstResultTitle string           `json:"first_result_title"`
	Status           InvocationStatus `json:"status"`
}

const (
	WorkflowMultiAgentDelegation = "multi_agent_delegation"
	WorkflowSingleAgent          = "single_agent"
)

// DelegationResult is the multi-agent workflow output: a browser search followed
// by a Claude analysis of what the search found.
type DelegationResult struct {
	Workflow      string           `json:"workflow"`
	BrowserResult *BrowserResult   `json:"playwright_agent_result,omitempty"`
	Analysis      string           `json:"claude_agent_analysis,omitempty"`
	FinalResponse string           `json:"final_response"`
	Status        InvocationStatus `json:"status"`
	Error         string           `json:"error,omitempty"`
}

// InvocationRecord is the persisted trace of one invocation. It never carries
// the credential or the full model response.
type InvocationRecord struct {
	ID        string
	Prompt    string
	Model     string
	Status    InvocationStatus
	Source    CredentialSource
	CreatedAt time.Time
}
