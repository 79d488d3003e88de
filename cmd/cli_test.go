package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	clearCredentialEnv(t)

	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestCredentialsCheckReportsLocalConfigSource(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-api03-local-key")

	stdout, _, err := executeCLI(t, t.TempDir(), "credentials", "check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "local_config")
	assert.Contains(t, stdout, "sk-a...-key")
	assert.NotContains(t, stdout, "sk-ant-api03-local-key")
}

func TestCredentialsCheckFailsWithoutAnyTier(t *testing.T) {
	clearCredentialEnv(t)

	_, _, err := executeCLI(t, t.TempDir(), "credentials", "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no api key available")
}

func TestInvokeFailsWithoutCredentials(t *testing.T) {
	clearCredentialEnv(t)

	_, _, err := executeCLI(t, t.TempDir(), "invoke", "--json", "please say hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no api key available")
}

func TestHistoryEmptyShowsPlaceholder(t *testing.T) {
	clearCredentialEnv(t)

	stdout, _, err := executeCLI(t, t.TempDir(), "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "invocations: 0")
	assert.Contains(t, stdout, "No invocations recorded.")
}

func TestHistoryJSONListsRecordedInvocations(t *testing.T) {
	clearCredentialEnv(t)

	home := t.TempDir()
	require.NoError(t, writeHistoryFixture(home))

	stdout, _, err := executeCLI(t, home, "history", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "please say hello")
	assert.Contains(t, stdout, "success")
}

func TestRejectsUnknownCommand(t *testing.T) {
	clearCredentialEnv(t)

	_, _, err := executeCLI(t, t.TempDir(), "definitely-not-a-command")
	require.Error(t, err)
}

// clearCredentialEnv makes the tier chain deterministic regardless of the
// host environment. No tier is configured afterwards and no network is
// reachable from any of them.
func clearCredentialEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"ANTHROPIC_API_KEY",
		"SECRETS_MANAGER_SECRET_ARN",
		"AGENTCORE_OUTBOUND_IDENTITY_ARN",
		"AGENTCORE_WORKLOAD_NAME",
		"BEDROCK_AGENTCORE_RUNTIME",
		"AWS_EXECUTION_ENV",
		"ECS_CONTAINER_METADATA_URI",
		"ECS_CONTAINER_METADATA_URI_V4",
	} {
		t.Setenv(key, "")
	}
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeHistoryFixture(home string) error {
	configDir := filepath.Join(home, ".config", "cac")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	history := `version = 1

[[invocations]]
id = "inv-1"
prompt = "please say hello"
model = "claude-3-5-sonnet-20241022"
status = "success"
source = "local_config"
created_at = "2025-06-01T12:00:00Z"
`

	return os.WriteFile(filepath.Join(configDir, "history.toml"), []byte(history), 0o600)
}
