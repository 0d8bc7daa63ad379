package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/luoyh/lovestory/internal/app"
	"github.com/luoyh/lovestory/internal/config"
	"github.com/luoyh/lovestory/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx := context.Background()
	a := app.New(ctx, cfg, logger)
	a.Run(ctx)
}
