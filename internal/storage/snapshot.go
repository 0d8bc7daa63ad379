package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/luoyh/lovestory/internal/common"
	"github.com/luoyh/lovestory/internal/models"
)

// ImportOptions controls snapshot restoration. Confession status is only
// overwritten when IncludeConfession is set, so a casual data import cannot
// accidentally reset the relationship state.
type ImportOptions struct {
	IncludeConfession bool
}

// ExportSnapshot reads the current persisted state into a versioned
// snapshot. Absent collections fall back to the compiled-in defaults, so a
// fresh install still exports a complete file.
func (g *Gateway) ExportSnapshot(ctx context.Context) models.Snapshot {
	return models.Snapshot{
		Version:       models.SnapshotVersion,
		ExportTime:    time.Now().Format(time.RFC3339),
		Confession:    g.ConfessionStatus(ctx),
		Story:         Get(ctx, g, KeyStory, models.DefaultStory()),
		Memory:        Get(ctx, g, KeyMemory, models.DefaultMemory()),
		Journey:       Get(ctx, g, KeyJourney, models.DefaultJourney()),
		Anniversaries: Get(ctx, g, KeyAnniversaries, models.DefaultAnniversaries()),
	}
}

// ImportSnapshot restores state from a raw snapshot payload. The top level
// must be a JSON object; each recognized field is applied independently and
// only when it matches the expected type, so one malformed field never
// blocks the rest (best-effort per-field restore). Unknown fields are
// ignored.
func (g *Gateway) ImportSnapshot(ctx context.Context, raw []byte, opts ImportOptions) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidSnapshot, err)
	}
	if fields == nil {
		return fmt.Errorf("%w: payload is null", common.ErrInvalidSnapshot)
	}

	importField[[]models.StoryEntry](ctx, g, fields, "story", KeyStory)
	importField[[]models.MemoryEntry](ctx, g, fields, "memory", KeyMemory)
	importField[string](ctx, g, fields, "journey", KeyJourney)
	importField[[]models.AnniversaryItem](ctx, g, fields, "anniversaries", KeyAnniversaries)

	if opts.IncludeConfession {
		importField[models.ConfessionStatus](ctx, g, fields, "confession", KeyConfession)
	}

	return nil
}

// importField applies a single snapshot field when it is present, non-null
// and unmarshals to the expected type. Anything else is skipped with a
// warning.
func importField[T any](ctx context.Context, g *Gateway, fields map[string]json.RawMessage, name, key string) {
	raw, ok := fields[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		g.log.Warn(ctx, "skipping malformed snapshot field", "field", name, "error", err)
		return
	}
	g.Set(ctx, key, v)
}
