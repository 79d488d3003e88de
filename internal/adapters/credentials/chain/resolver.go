package chain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/claude-agentcore-cli/internal/domain"
	"github.com/bnema/claude-agentcore-cli/internal/ports"
	"go.uber.org/zap"
)

const DefaultTierTimeout = 5 * time.Second

// Resolver walks an ordered list of credential tiers and stops at the first
// one that yields a key. Tier failures are swallowed and only surfaced in
// aggregate when every tier is exhausted; the secret value itself is never
// logged.
type Resolver struct {
	providers []ports.CredentialProvider
	timeout   time.Duration
	logger    *zap.Logger
}

var _ ports.CredentialResolver = (*Resolver)(nil)

var errEmptyCredential = errors.New("provider returned an empty credential")

func NewResolver(timeout time.Duration, logger *zap.Logger, providers ...ports.CredentialProvider) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTierTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Resolver{
		providers: providers,
		timeout:   timeout,
		logger:    logger,
	}
}

// Resolve attempts each tier once, top-down. A tier failure means "move to
// the next tier", never "retry this tier". Parent-context cancellation aborts
// the whole chain.
func (r *Resolver) Resolve(ctx context.Context) (domain.Credential, error) {
	tierErrs := make([]error, 0, len(r.providers))

	for _, provider := range r.providers {
		if err := ctx.Err(); err != nil {
			return domain.Credential{}, err
		}

		value, err := r.resolveTier(ctx, provider)
		if err != nil {
			r.logger.Debug("credential tier failed",
				zap.String("source", string(provider.Source())),
				zap.Error(err),
			)
			tierErrs = append(tierErrs, fmt.Errorf("%s: %w", provider.Source(), err))
			continue
		}

		r.logger.Info("credential resolved", zap.String("source", string(provider.Source())))

		return domain.Credential{Value: value, Source: provider.Source()}, nil
	}

	return domain.Credential{}, fmt.Errorf("%w: %w", domain.ErrCredentialUnavailable, errors.Join(tierErrs...))
}

// resolveTier bounds each outbound attempt so an unreachable dependency
// cannot stall startup; a timeout is a tier failure, not a process failure.
func (r *Resolver) resolveTier(ctx context.Context, provider ports.CredentialProvider) (string, error) {
	tierCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	value, err := provider.Resolve(tierCtx)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", errEmptyCredential
	}

	return value, nil
}
