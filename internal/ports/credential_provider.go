package ports

import (
	"context"

	"github.com/bnema/claude-agentcore-cli/internal/domain"
)

// CredentialProvider is one tier of the fallback chain. Resolve returns the raw
// API key or an error meaning "this tier is unavailable, try the next one".
// Implementations must never log the resolved value.
type CredentialProvider interface {
	Source() domain.CredentialSource
	Resolve(ctx context.Context) (string, error)
}

// CredentialResolver walks the ordered tiers and returns the first credential
// that resolves, or domain.ErrCredentialUnavailable when all tiers fail.
type CredentialResolver interface {
	Resolve(ctx context.Context) (domain.Credential, error)
}
