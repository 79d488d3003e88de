package envvar

import (
	"context"
	"errors"
	"strings"

	"github.com/bnema/claude-agentcore-cli/internal/domain"
	"github.com/bnema/claude-agentcore-cli/internal/ports"
)

// KeySource abstracts the ANTHROPIC_API_KEY read so tests can inject values
// without mutating process environment state.
type KeySource interface {
	APIKey() string
}

// Provider is the last-resort tier: a key from local process configuration.
// It is local and side-effect-free.
type Provider struct {
	settings KeySource
}

var _ ports.CredentialProvider = (*Provider)(nil)

var errKeyNotSet = errors.New("ANTHROPIC_API_KEY is not set")

func NewProvider(settings KeySource) *Provider {
	return &Provider{settings: settings}
}

func (*Provider) Source() domain.CredentialSource {
	return domain.SourceLocalConfig
}

func (p *Provider) Resolve(_ context.Context) (string, error) {
	key := strings.TrimSpace(p.settings.APIKey())
	if key == "" {
		return "", errKeyNotSet
	}

	return key, nil
}
