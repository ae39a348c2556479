// Command bordermap edits border maps and exports them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/bordermap/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bordermap/internal/adapters/driven/export/geojsonmap"
	"github.com/custodia-labs/bordermap/internal/adapters/driven/export/jsmap"
	"github.com/custodia-labs/bordermap/internal/adapters/driven/export/svgmap"
	"github.com/custodia-labs/bordermap/internal/adapters/driven/refimage"
	"github.com/custodia-labs/bordermap/internal/adapters/driven/storage/router"
	"github.com/custodia-labs/bordermap/internal/adapters/driving/cli"
	"github.com/custodia-labs/bordermap/internal/core/ports/driven"
	"github.com/custodia-labs/bordermap/internal/core/services"
	"github.com/custodia-labs/bordermap/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	env, err := file.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading environment: %v\n", err)
		return err
	}

	configStore, err := file.NewConfigStore(env.ConfigDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening config: %v\n", err)
		return err
	}
	configStore.ApplyEnv(env)

	settingsService := services.NewSettingsService(configStore)
	if err := settingsService.Validate(); err != nil {
		logger.Warn("config %s: %v, using defaults", configStore.Path(), err)
	}
	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading settings: %v\n", err)
		return err
	}

	exporters := []driven.Exporter{
		jsmap.New(),
		svgmap.New(),
		geojsonmap.New(),
	}
	documentService := services.NewDocumentService(router.NewDefault(), refimage.New(), exporters, *settings)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Document: documentService,
		Settings: settingsService,
	})

	return cli.Execute(ctx)
}
