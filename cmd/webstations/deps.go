package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trip5/webstations/internal/application/handlers"
	"github.com/trip5/webstations/internal/domain/ports"
	"github.com/trip5/webstations/internal/domain/services"
	"github.com/trip5/webstations/internal/infrastructure/catalog/sqlite"
	"github.com/trip5/webstations/internal/infrastructure/config"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config         *config.Config
	BasePath       string
	ConvertHandler *handlers.ConvertHandler
	IndexHandler   *handlers.IndexHandler
}

// internalDeps holds all dependencies including low-level components.
// Used internally by helper functions.
type internalDeps struct {
	Deps
	catalog        *sqlite.Repository
	convertService *services.ConvertService
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	return withInternalDeps(ctx, func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including low-level components.
// Used by commands that need direct catalog or service access.
func withInternalDeps(ctx context.Context, fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	catalogPath := cfg.CatalogPath(cwd)
	if err := os.MkdirAll(filepath.Dir(catalogPath), 0755); err != nil {
		return fmt.Errorf("creating catalog directory: %w", err)
	}

	catalog, err := sqlite.NewRepository(config.CatalogConfig{Path: catalogPath})
	if err != nil {
		return fmt.Errorf("creating catalog repository: %w", err)
	}
	defer catalog.Close()

	if err := catalog.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring catalog schema: %w", err)
	}

	convertService := services.NewConvertService(catalog)
	indexService := services.NewIndexService()

	deps := &internalDeps{
		Deps: Deps{
			Config:         cfg,
			BasePath:       cwd,
			ConvertHandler: handlers.NewConvertHandler(convertService),
			IndexHandler:   handlers.NewIndexHandler(indexService),
		},
		catalog:        catalog,
		convertService: convertService,
	}

	return fn(deps)
}

// withCatalog provides direct catalog access for commands that need it.
func withCatalog(ctx context.Context, fn func(ports.Catalog) error) error {
	return withInternalDeps(ctx, func(d *internalDeps) error {
		return fn(d.catalog)
	})
}
