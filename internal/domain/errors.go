package domain

import "errors"

var (
	// ErrCredentialUnavailable means every tier of the fallback chain was
	// exhausted. Callers must treat it as fatal and abort before any model call.
	ErrCredentialUnavailable = errors.New("no api key available from any credential source")

	// ErrSecretMalformed means the secret store returned structured data that
	// holds no recognized API key field.
	ErrSecretMalformed = errors.New("secret payload has no recognized api key field")

	// ErrRuntimeIdentityUnavailable is expected outside the AgentCore runtime
	// and must fall through to the next tier, never propagate.
	ErrRuntimeIdentityUnavailable = errors.New("agentcore outbound identity unavailable")

	ErrModelProvider      = errors.New("model provider request failed")
	ErrBrowserUnavailable = errors.New("browser agent unavailable")
)
