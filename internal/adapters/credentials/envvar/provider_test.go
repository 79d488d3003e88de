package envvar

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/claude-agentcore-cli/internal/config"
	"github.com/bnema/claude-agentcore-cli/internal/domain"
)

func TestResolveReturnsConfiguredKey(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set("anthropic_api_key", "  sk-test-123  ")
	provider := NewProvider(config.NewFromViper(v))

	key, err := provider.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", key)
	assert.Equal(t, domain.SourceLocalConfig, provider.Source())
}

func TestResolveFailsWhenKeyNotSet(t *testing.T) {
	// Host environment bleeds through BindEnv, so pin the bound variable.
	t.Setenv("ANTHROPIC_API_KEY", "")

	provider := NewProvider(config.NewFromViper(viper.New()))

	_, err := provider.Resolve(context.Background())
	require.ErrorIs(t, err, errKeyNotSet)
}
