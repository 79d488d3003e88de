package awssm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/tidwall/gjson"

	"github.com/bnema/claude-agentcore-cli/internal/domain"
	"github.com/bnema/claude-agentcore-cli/internal/ports"
)

// SecretsClient is the subset of the Secrets Manager API the provider needs.
type SecretsClient interface {
	GetSecretValue(
		ctx context.Context,
		params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options),
	) (*secretsmanager.GetSecretValueOutput, error)
}

// Settings is the configuration surface this tier reads.
type Settings interface {
	SecretARN() string
	Region() string
	SecretKeyFields() []string
}

// Provider is the managed secret store tier. The secret payload may be a raw
// string or a JSON object holding the key under one of a fixed set of
// recognized field names.
type Provider struct {
	settings Settings
	client   SecretsClient
}

var _ ports.CredentialProvider = (*Provider)(nil)

var errSecretNotConfigured = errors.New("secrets manager secret arn not configured")

// NewProvider creates the tier. A nil client is dialed lazily on first
// Resolve, so an unconfigured tier never touches AWS.
func NewProvider(settings Settings, client SecretsClient) *Provider {
	return &Provider{settings: settings, client: client}
}

func (*Provider) Source() domain.CredentialSource {
	return domain.SourceSecretStore
}

func (p *Provider) Resolve(ctx context.Context) (string, error) {
	secretARN := p.settings.SecretARN()
	if secretARN == "" {
		return "", errSecretNotConfigured
	}

	if p.client == nil {
		client, err := NewSecretsClient(ctx, p.settings.Region())
		if err != nil {
			return "", err
		}
		p.client = client
	}

	out, err := p.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretARN),
	})
	if err != nil {
		return "", fmt.Errorf("get secret value: %w", err)
	}

	payload := aws.ToString(out.SecretString)
	if strings.TrimSpace(payload) == "" {
		return "", errors.New("secret value is empty")
	}

	return ExtractKey(payload, p.settings.SecretKeyFields())
}

// ExtractKey pulls the API key out of a secret payload. Recognized JSON field
// names are probed in order; anything that is not a JSON object (including
// malformed JSON) is used verbatim as the key. A valid object with no
// recognized field is reported as domain.ErrSecretMalformed so the chain
// falls through.
func ExtractKey(payload string, fields []string) (string, error) {
	trimmed := strings.TrimSpace(payload)

	if !gjson.Valid(trimmed) {
		return trimmed, nil
	}

	parsed := gjson.Parse(trimmed)
	if parsed.Type == gjson.String {
		return parsed.String(), nil
	}
	if !parsed.IsObject() {
		return trimmed, nil
	}

	for _, field := range fields {
		if value := parsed.Get(field); value.Exists() && value.String() != "" {
			return value.String(), nil
		}
	}

	return "", domain.ErrSecretMalformed
}

// NewSecretsClient builds a regional Secrets Manager client.
func NewSecretsClient(ctx context.Context, region string) (SecretsClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return secretsmanager.NewFromConfig(cfg), nil
}
