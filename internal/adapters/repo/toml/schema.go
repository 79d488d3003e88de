package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version     int                `toml:"version"`
	Invocations []invocationSchema `toml:"invocations"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported history schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type invocationSchema struct {
	ID        string `toml:"id"`
	Prompt    string `toml:"prompt"`
	Model     string `toml:"model"`
	Status    string `toml:"status"`
	Source    string `toml:"source,omitempty"`
	CreatedAt string `toml:"created_at"`
}
