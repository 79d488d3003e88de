package ports

import (
	"context"

	"github.com/bnema/claude-agentcore-cli/internal/domain"
)

// BrowserAgent runs a delegated web search and extracts the top result.
type BrowserAgent interface {
	Search(ctx context.Context, query string) (domain.BrowserResult, error)
}
