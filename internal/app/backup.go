package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/luoyh/lovestory/internal/common"
	"github.com/luoyh/lovestory/internal/storage"
)

// ExportToFile writes the current snapshot as pretty-printed JSON into the
// configured backup directory. The filename carries a timestamp to avoid
// collisions.
func (a *App) ExportToFile(ctx context.Context) (string, error) {
	snap := a.gateway.ExportSnapshot(ctx)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	if err := os.MkdirAll(a.config.BackupDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := fmt.Sprintf("love_story_backup_%d.json", time.Now().UnixMilli())
	path := filepath.Join(a.config.BackupDir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}

	a.log.Info(ctx, "snapshot exported", "path", path)
	return path, nil
}

// ImportFromFile restores a snapshot from the named file and reloads both
// components so in-memory state matches the store again. An empty path means
// the user dismissed the file picker: the pending operation resolves to
// "no change occurred" instead of hanging.
func (a *App) ImportFromFile(ctx context.Context, path string, opts storage.ImportOptions) error {
	if path == "" {
		return common.ErrImportCancelled
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot file: %w", err)
	}

	if err := a.gateway.ImportSnapshot(ctx, data, opts); err != nil {
		return err
	}

	a.content.LoadAll(ctx)
	a.registry.Load(ctx)
	a.log.Info(ctx, "snapshot imported", "path", path)
	return nil
}
