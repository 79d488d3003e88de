package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialMaskedRedactsShortValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "****", Credential{Value: ""}.Masked())
	assert.Equal(t, "****", Credential{Value: "sk-12345"}.Masked())
}

func TestCredentialMaskedKeepsOnlyEdges(t *testing.T) {
	t.Parallel()

	masked := Credential{Value: "sk-ant-api03-secret-tail"}.Masked()
	assert.Equal(t, "sk-a...tail", masked)
	assert.NotContains(t, masked, "secret")
}
