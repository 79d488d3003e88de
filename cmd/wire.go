package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/bnema/claude-agentcore-cli/internal/adapters/browser"
	"github.com/bnema/claude-agentcore-cli/internal/adapters/credentials/agentcoreid"
	"github.com/bnema/claude-agentcore-cli/internal/adapters/credentials/awssm"
	"github.com/bnema/claude-agentcore-cli/internal/adapters/credentials/chain"
	"github.com/bnema/claude-agentcore-cli/internal/adapters/credentials/envvar"
	"github.com/bnema/claude-agentcore-cli/internal/adapters/model/claude"
	tomlrepo "github.com/bnema/claude-agentcore-cli/internal/adapters/repo/toml"
	"github.com/bnema/claude-agentcore-cli/internal/application"
	"github.com/bnema/claude-agentcore-cli/internal/config"
	"github.com/bnema/claude-agentcore-cli/internal/logging"
	"github.com/bnema/claude-agentcore-cli/internal/ports"
)

type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	resolver ports.CredentialResolver
	browser  ports.BrowserAgent
	history  ports.InvocationRepository
	service  *application.Service
}

func wireApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel())
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	history, err := tomlrepo.NewRepository()
	if err != nil {
		return nil, fmt.Errorf("wire invocation history: %w", err)
	}

	// Clients are nil here so unconfigured tiers never dial AWS.
	resolver := chain.NewResolver(cfg.TierTimeout(), logger,
		agentcoreid.NewProvider(cfg, nil),
		awssm.NewProvider(cfg, nil),
		envvar.NewProvider(cfg),
	)

	a := &app{
		cfg:      cfg,
		logger:   logger,
		resolver: resolver,
		browser:  browser.NewAgent(),
		history:  history,
	}
	a.service = a.serviceFor(cfg.Model())

	return a, nil
}

// serviceFor builds an application service bound to the given model. The
// invoke command uses it when the model flag overrides the configured default.
func (a *app) serviceFor(model string) *application.Service {
	factory := claude.NewFactory(model, a.cfg.MaxTokens())
	return application.NewService(a.resolver, factory, a.browser, a.history, ports.SystemClock{}, a.logger)
}
