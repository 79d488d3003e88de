package domain

// CredentialSource identifies which tier of the fallback chain produced an API key.
type CredentialSource string

const (
	SourceRuntimeIdentity CredentialSource = "runtime_identity"
	SourceSecretStore     CredentialSource = "secret_store"
	SourceLocalConfig     CredentialSource = "local_config"
)

type Credential struct {
	Value  string
	Source CredentialSource
}

// Masked returns a redacted form of the key suitable for diagnostics.
// The cleartext value must never appear in logs or command output.
func (c Credential) Masked() string {
	if len(c.Value) <= 8 {
		return "****"
	}

	return c.Value[:4] + "..." + c.Value[len(c.Value)-4:]
}
