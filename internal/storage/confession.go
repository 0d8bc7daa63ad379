package storage

import (
	"context"
	"time"

	"github.com/luoyh/lovestory/internal/models"
)

// ConfessionStatus returns the stored status, or the zero "not asked" state
// when nothing is stored.
func (g *Gateway) ConfessionStatus(ctx context.Context) models.ConfessionStatus {
	return Get(ctx, g, KeyConfession, models.ConfessionStatus{})
}

// SetConfessionAccepted marks the confession accepted and stamps the current
// time. The transition is one-way; only ResetConfessionOnly reverts it.
func (g *Gateway) SetConfessionAccepted(ctx context.Context) bool {
	ts := time.Now().UnixMilli()
	return g.Set(ctx, KeyConfession, models.ConfessionStatus{Accepted: true, Timestamp: &ts})
}

// ResetConfessionOnly clears the acceptance flag without touching any other
// stored data.
func (g *Gateway) ResetConfessionOnly(ctx context.Context) bool {
	return g.Set(ctx, KeyConfession, models.ConfessionStatus{})
}

// IsConfessionAccepted is a boolean convenience over ConfessionStatus.
func (g *Gateway) IsConfessionAccepted(ctx context.Context) bool {
	return g.ConfessionStatus(ctx).Accepted
}
