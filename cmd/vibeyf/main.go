// Command vibeyf runs the music recommendation questionnaire.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driven/backend"
	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driven/pacing"
	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/vibeyf-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driven"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driving"
	"github.com/custodia-labs/vibeyf-cli/internal/core/services"
	"github.com/custodia-labs/vibeyf-cli/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetFactory(buildServices)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// buildServices wires the adapters and core services for one invocation.
func buildServices(opts cli.Options) (*cli.Services, func(), error) {
	home, err := file.HomeDir()
	if err != nil {
		return nil, nil, err
	}

	var configStore driven.ConfigStore
	if opts.NoConfig {
		configStore = memory.NewConfigStore()
	} else {
		store, err := file.NewConfigStore(home)
		if err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}
		configStore = store
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("read settings: %w", err)
	}

	backendURL := settings.Backend.URL
	if opts.BackendURL != "" {
		backendURL = opts.BackendURL
	}
	client := backend.NewClient(backend.Config{
		BaseURL: backendURL,
		Timeout: settings.Backend.Timeout,
	})
	logger.Debug("backend %s, timeout %s", client.BaseURL(), settings.Backend.Timeout)

	cleanup := func() {}
	var runs driven.RunStore
	if settings.History.Enabled {
		store, err := sqlite.NewStore(filepath.Join(home, "data"))
		if err != nil {
			logger.Warn("run history unavailable: %v", err)
		} else {
			runs = store.RunStore()
			cleanup = func() {
				if err := store.Close(); err != nil {
					logger.Warn("close run archive: %v", err)
				}
			}
		}
	}

	loader := services.NewLoader(client, settings.Questionnaire.ListMarkers)
	submitter := services.NewSubmitter(client)
	engine := services.NewEngine(
		loader,
		submitter,
		services.NewRenderer(pacing.New(settings.Reveal.Delay)),
		runs,
		client.BaseURL(),
	)
	// Runs served over MCP are not paced.
	runners := func() driving.QuestionnaireRunner {
		return services.NewEngine(loader, submitter, services.NewRenderer(nil), runs, client.BaseURL())
	}

	return &cli.Services{
		Runner:        engine,
		Questionnaire: loader,
		Health:        services.NewHealthService(client),
		History:       services.NewHistoryService(runs),
		Settings:      settingsService,
		Runners:       runners,
		LogPath:       filepath.Join(home, "logs", "vibeyf.log"),
	}, cleanup, nil
}
