package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bnema/claude-agentcore-cli/internal/domain"
	"github.com/bnema/claude-agentcore-cli/internal/ports"
)

const (
	historyFileMode   = 0o600
	historyDirMode    = 0o700
	historyConfigDir  = ".config/cac"
	historyConfigFile = "history.toml"
	tempFilePattern   = ".history-*.toml.tmp"
)

// Repository persists invocation records in a versioned TOML file. Records
// never include credentials or model responses.
type Repository struct {
	historyPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.InvocationRepository = (*Repository)(nil)

func NewRepository() (*Repository, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	return NewRepositoryAt(filepath.Join(homeDir, historyConfigDir, historyConfigFile))
}

func NewRepositoryAt(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve history path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Repository{historyPath: absPath, mu: lockForPath(absPath)}, nil
}

func (r *Repository) Append(ctx context.Context, record domain.InvocationRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	file.Invocations = append(file.Invocations, toSchema(record))

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) List(ctx context.Context) ([]domain.InvocationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}
	file.applyDefaults()

	records := make([]domain.InvocationRecord, 0, len(file.Invocations))
	for _, entry := range file.Invocations {
		records = append(records, fromSchema(entry))
	}

	return records, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.historyPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read history file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode history file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.historyPath), historyDirMode); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode history file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.historyPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp history file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("write temp history file: %w", err)
	}
	if err := tempFile.Chmod(historyFileMode); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("chmod temp history file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("close temp history file: %w", err)
	}

	if err := os.Rename(tempPath, r.historyPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replace history file: %w", err)
	}

	return nil
}

func toSchema(record domain.InvocationRecord) invocationSchema {
	return invocationSchema{
		ID:        record.ID,
		Prompt:    record.Prompt,
		Model:     record.Model,
		Status:    string(record.Status),
		Source:    string(record.Source),
		CreatedAt: record.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func fromSchema(entry invocationSchema) domain.InvocationRecord {
	createdAt, err := time.Parse(time.RFC3339, entry.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}

	return domain.InvocationRecord{
		ID:        entry.ID,
		Prompt:    entry.Prompt,
		Model:     entry.Model,
		Status:    domain.InvocationStatus(entry.Status),
		Source:    domain.CredentialSource(entry.Source),
		CreatedAt: createdAt,
	}
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
