package ports

import (
	"context"

	"github.com/bnema/claude-agentcore-cli/internal/domain"
)

type InvocationRepository interface {
	Append(ctx context.Context, record domain.InvocationRecord) error
	List(ctx context.Context) ([]domain.InvocationRecord, error)
}
