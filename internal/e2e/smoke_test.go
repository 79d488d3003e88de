package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runCAC(t, binaryPath, home, nil, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "dev")

	stdout, stderr, err = runCAC(t, binaryPath, home,
		map[string]string{"ANTHROPIC_API_KEY": "sk-ant-api03-smoke-key"},
		"credentials", "check",
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "local_config")
	assert.NotContains(t, stdout, "sk-ant-api03-smoke-key")

	stdout, stderr, err = runCAC(t, binaryPath, home, nil, "history")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "invocations: 0")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "cac-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/cac")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build cac binary: %s", string(output))
	return binaryPath
}

func runCAC(t *testing.T, binaryPath, home string, env map[string]string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(cleanEnv(), "HOME="+home)
	for key, value := range env {
		cmd.Env = append(cmd.Env, key+"="+value)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// cleanEnv drops credential variables the host may carry so the tier chain
// sees only what the test injects.
func cleanEnv() []string {
	drop := map[string]bool{
		"ANTHROPIC_API_KEY":               true,
		"SECRETS_MANAGER_SECRET_ARN":      true,
		"AGENTCORE_OUTBOUND_IDENTITY_ARN": true,
		"AGENTCORE_WORKLOAD_NAME":         true,
		"BEDROCK_AGENTCORE_RUNTIME":       true,
		"AWS_EXECUTION_ENV":               true,
		"HOME":                            true,
	}

	env := make([]string, 0, len(os.Environ()))
	for _, entry := range os.Environ() {
		name, _, _ := strings.Cut(entry, "=")
		if drop[name] {
			continue
		}
		env = append(env, entry)
	}

	return env
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
