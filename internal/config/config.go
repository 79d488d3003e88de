package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/cac"

	keyAPIKey              = "anthropic_api_key"
	keyRegion              = "aws_region"
	keySecretARN           = "secrets_manager_secret_arn"
	keyOutboundIdentityARN = "agentcore_outbound_identity_arn"
	keyWorkloadName        = "agentcore_workload_name"
	keyModel               = "model"
	keyMaxTokens           = "max_tokens"
	keyTierTimeout         = "tier_timeout"
	keyLogLevel            = "log_level"
	keySecretKeyFields     = "secret_key_fields"

	keyExecutionEnv     = "aws_execution_env"
	keyAgentCoreRuntime = "bedrock_agentcore_runtime"
	keyECSMetadataURI   = "ecs_container_metadata_uri"
	keyECSMetadataURIV4 = "ecs_container_metadata_uri_v4"
	fargateExecutionEnv = "AWS_ECS_FARGATE"

	DefaultModel  = "claude-3-5-sonnet-20241022"
	DefaultRegion = "us-east-1"
)

// defaultSecretKeyFields is the fixed probe order for structured secret payloads.
var defaultSecretKeyFields = []string{"api_key_value", "api_key", "key", "value", "token"}

// Config reads process configuration through a non-global viper instance so
// tests can inject values without touching the real environment.
type Config struct {
	v *viper.Viper
}

// Load reads an optional .env from the working directory into the process
// environment (existing variables win), merges an optional
// ~/.config/cac/config.toml, and binds the documented environment variables.
func Load() (*Config, error) {
	// Same semantics as python-dotenv: never override real env.
	_ = gotenv.Load()

	v := viper.New()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return NewFromViper(v), nil
}

// NewFromViper wires defaults and env bindings onto an existing viper
// instance. Tests call this with values injected via v.Set.
func NewFromViper(v *viper.Viper) *Config {
	bindings := map[string]string{
		keyAPIKey:              "ANTHROPIC_API_KEY",
		keyRegion:              "AWS_REGION",
		keySecretARN:           "SECRETS_MANAGER_SECRET_ARN",
		keyOutboundIdentityARN: "AGENTCORE_OUTBOUND_IDENTITY_ARN",
		keyWorkloadName:        "AGENTCORE_WORKLOAD_NAME",
		keyModel:               "CAC_MODEL",
		keyMaxTokens:           "CAC_MAX_TOKENS",
		keyTierTimeout:         "CAC_TIER_TIMEOUT",
		keyLogLevel:            "CAC_LOG_LEVEL",
		keyExecutionEnv:        "AWS_EXECUTION_ENV",
		keyAgentCoreRuntime:    "BEDROCK_AGENTCORE_RUNTIME",
		keyECSMetadataURI:      "ECS_CONTAINER_METADATA_URI",
		keyECSMetadataURIV4:    "ECS_CONTAINER_METADATA_URI_V4",
	}
	for key, env := range bindings {
		_ = v.BindEnv(key, env)
	}

	v.SetDefault(keyRegion, DefaultRegion)
	v.SetDefault(keyModel, DefaultModel)
	v.SetDefault(keyMaxTokens, 1024)
	v.SetDefault(keyTierTimeout, 5*time.Second)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keySecretKeyFields, defaultSecretKeyFields)

	return &Config{v: v}
}

// APIKey is the local-configuration credential tier (ANTHROPIC_API_KEY).
func (c *Config) APIKey() string {
	return c.v.GetString(keyAPIKey)
}

func (c *Config) Region() string {
	return c.v.GetString(keyRegion)
}

func (c *Config) SecretARN() string {
	return c.v.GetString(keySecretARN)
}

func (c *Config) OutboundIdentityARN() string {
	return c.v.GetString(keyOutboundIdentityARN)
}

func (c *Config) WorkloadName() string {
	return c.v.GetString(keyWorkloadName)
}

func (c *Config) Model() string {
	return c.v.GetString(keyModel)
}

func (c *Config) MaxTokens() int64 {
	return c.v.GetInt64(keyMaxTokens)
}

// TierTimeout bounds each outbound credential tier so an unreachable
// dependency cannot stall startup.
func (c *Config) TierTimeout() time.Duration {
	return c.v.GetDuration(keyTierTimeout)
}

func (c *Config) LogLevel() string {
	return c.v.GetString(keyLogLevel)
}

// SecretKeyFields is the ordered list of recognized field names probed in
// structured secret payloads.
func (c *Config) SecretKeyFields() []string {
	fields := c.v.GetStringSlice(keySecretKeyFields)
	if len(fields) == 0 {
		return defaultSecretKeyFields
	}

	return fields
}

// InAgentCoreRuntime reports whether the process looks like it is executing
// inside the hosted AgentCore runtime.
func (c *Config) InAgentCoreRuntime() bool {
	return c.v.GetString(keyAgentCoreRuntime) != "" ||
		c.v.GetString(keyExecutionEnv) == fargateExecutionEnv ||
		c.v.GetString(keyECSMetadataURI) != "" ||
		c.v.GetString(keyECSMetadataURIV4) != ""
}
