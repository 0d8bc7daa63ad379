// Package app wires the engine together and hosts the interactive loop.
// It owns the cross-component orchestration the components themselves avoid:
// the confession flow, snapshot backup/restore and the full reset.
package app

import (
	"context"

	"github.com/luoyh/lovestory/internal/anniversary"
	"github.com/luoyh/lovestory/internal/config"
	"github.com/luoyh/lovestory/internal/content"
	"github.com/luoyh/lovestory/internal/logging"
	"github.com/luoyh/lovestory/internal/storage"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	gateway  *storage.Gateway
	content  *content.Repository
	registry *anniversary.Registry
}

// New opens the local store, builds the gateway and loads both components.
// When the database cannot be opened the app degrades to an in-memory store
// rather than failing: everything works, nothing survives the process.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) *App {
	var kv storage.KV
	sq, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Warn(ctx, "falling back to in-memory store", "path", cfg.DatabasePath, "error", err)
		kv = storage.NewMemoryKV()
	} else {
		kv = sq
	}

	gw := storage.NewGateway(ctx, kv, log)
	repo := content.NewRepository(gw, log)
	reg := anniversary.NewRegistry(gw, log)
	repo.LoadAll(ctx)
	reg.Load(ctx)

	return &App{config: cfg, log: log, gateway: gw, content: repo, registry: reg}
}

// NewWithGateway builds an App over an existing gateway. Intended for tests.
func NewWithGateway(ctx context.Context, cfg *config.Config, log logging.Logger, gw *storage.Gateway) *App {
	repo := content.NewRepository(gw, log)
	reg := anniversary.NewRegistry(gw, log)
	repo.LoadAll(ctx)
	reg.Load(ctx)
	return &App{config: cfg, log: log, gateway: gw, content: repo, registry: reg}
}

func (a *App) Gateway() *storage.Gateway       { return a.gateway }
func (a *App) Content() *content.Repository    { return a.content }
func (a *App) Registry() *anniversary.Registry { return a.registry }

// ResetAll clears every namespaced key and restores all collections and the
// confession flag to their defaults.
func (a *App) ResetAll(ctx context.Context) {
	a.gateway.ClearAll(ctx)
	a.content.ResetToDefaults(ctx)
	a.gateway.ResetConfessionOnly(ctx)
	a.registry.ResetToDefaults(ctx)
	a.log.Info(ctx, "all data reset to defaults")
}
