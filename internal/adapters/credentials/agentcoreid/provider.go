package agentcoreid

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcore"

	"github.com/bnema/claude-agentcore-cli/internal/domain"
	"github.com/bnema/claude-agentcore-cli/internal/ports"
)

// IdentityClient is the subset of the AgentCore data-plane API the provider
// needs, kept narrow for mock injection in tests.
type IdentityClient interface {
	GetWorkloadAccessToken(
		ctx context.Context,
		params *bedrockagentcore.GetWorkloadAccessTokenInput,
		optFns ...func(*bedrockagentcore.Options),
	) (*bedrockagentcore.GetWorkloadAccessTokenOutput, error)
	GetResourceApiKey(
		ctx context.Context,
		params *bedrockagentcore.GetResourceApiKeyInput,
		optFns ...func(*bedrockagentcore.Options),
	) (*bedrockagentcore.GetResourceApiKeyOutput, error)
}

// Settings is the configuration surface this tier reads.
type Settings interface {
	OutboundIdentityARN() string
	WorkloadName() string
	Region() string
	InAgentCoreRuntime() bool
}

// Provider is the top-priority credential tier: an outbound identity binding
// scoped to the running workload. Every failure mode is reported as
// domain.ErrRuntimeIdentityUnavailable so the chain falls through instead of
// propagating.
type Provider struct {
	settings Settings
	client   IdentityClient
}

var _ ports.CredentialProvider = (*Provider)(nil)

// NewProvider creates the tier. A nil client is dialed lazily on first
// Resolve, so an unconfigured tier never touches AWS.
func NewProvider(settings Settings, client IdentityClient) *Provider {
	return &Provider{settings: settings, client: client}
}

func (*Provider) Source() domain.CredentialSource {
	return domain.SourceRuntimeIdentity
}

func (p *Provider) Resolve(ctx context.Context) (string, error) {
	providerName := p.settings.OutboundIdentityARN()
	if providerName == "" {
		return "", fmt.Errorf("%w: outbound identity not configured", domain.ErrRuntimeIdentityUnavailable)
	}
	if !p.settings.InAgentCoreRuntime() {
		return "", fmt.Errorf("%w: not executing inside the agentcore runtime", domain.ErrRuntimeIdentityUnavailable)
	}

	workloadName := p.settings.WorkloadName()
	if workloadName == "" {
		return "", fmt.Errorf("%w: workload name not configured", domain.ErrRuntimeIdentityUnavailable)
	}

	if p.client == nil {
		client, err := NewIdentityClient(ctx, p.settings.Region())
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrRuntimeIdentityUnavailable, err)
		}
		p.client = client
	}

	tokenOut, err := p.client.GetWorkloadAccessToken(ctx, &bedrockagentcore.GetWorkloadAccessTokenInput{
		WorkloadName: aws.String(workloadName),
	})
	if err != nil {
		return "", fmt.Errorf("%w: get workload access token: %v", domain.ErrRuntimeIdentityUnavailable, err)
	}
	if tokenOut == nil || aws.ToString(tokenOut.WorkloadAccessToken) == "" {
		return "", fmt.Errorf("%w: empty workload access token", domain.ErrRuntimeIdentityUnavailable)
	}

	keyOut, err := p.client.GetResourceApiKey(ctx, &bedrockagentcore.GetResourceApiKeyInput{
		ResourceCredentialProviderName: aws.String(providerName),
		WorkloadIdentityToken:          tokenOut.WorkloadAccessToken,
	})
	if err != nil {
		return "", fmt.Errorf("%w: get resource api key: %v", domain.ErrRuntimeIdentityUnavailable, err)
	}

	apiKey := aws.ToString(keyOut.ApiKey)
	if apiKey == "" {
		return "", fmt.Errorf("%w: empty credential response", domain.ErrRuntimeIdentityUnavailable)
	}

	return apiKey, nil
}

// NewIdentityClient builds a regional AgentCore data-plane client.
func NewIdentityClient(ctx context.Context, region string) (IdentityClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return bedrockagentcore.NewFromConfig(cfg), nil
}
