// Package anniversary owns the dated milestone collection, including the two
// protected defaults, the confession-gated primary-item selection and the
// elapsed-day computation.
package anniversary

import (
	"context"
	"slices"
	"time"

	"github.com/luoyh/lovestory/internal/common"
	"github.com/luoyh/lovestory/internal/logging"
	"github.com/luoyh/lovestory/internal/models"
	"github.com/luoyh/lovestory/internal/storage"
)

type Registry struct {
	gw  *storage.Gateway
	log logging.Logger

	items []models.AnniversaryItem
	// cursor is the carousel position. Pure UI state, never persisted.
	cursor int
}

func NewRegistry(gw *storage.Gateway, log logging.Logger) *Registry {
	return &Registry{gw: gw, log: log}
}

// Load populates the collection from the gateway, falling back to a fresh
// copy of the defaults when nothing valid is persisted.
func (r *Registry) Load(ctx context.Context) {
	r.items = storage.Get(ctx, r.gw, storage.KeyAnniversaries, models.DefaultAnniversaries())
	// A reload can shrink the collection and strand the carousel cursor.
	if r.cursor >= len(r.items) {
		r.cursor = 0
	}
	r.log.Info(ctx, "anniversaries loaded", "count", len(r.items))
}

func (r *Registry) save(ctx context.Context) {
	r.gw.Set(ctx, storage.KeyAnniversaries, r.items)
}

// Items returns a copy of the collection in insertion order.
func (r *Registry) Items() []models.AnniversaryItem {
	return slices.Clone(r.items)
}

func (r *Registry) find(id string) int {
	return slices.IndexFunc(r.items, func(i models.AnniversaryItem) bool { return i.ID == id })
}

// Add appends a new milestone. New items get priority len+1, so they sort
// after every existing item until the priority is edited.
func (r *Registry) Add(ctx context.Context, f models.AnniversaryFields) models.AnniversaryItem {
	item := models.AnniversaryItem{
		ID:       models.NewID("anniversary"),
		Name:     f.Name,
		Date:     f.Date,
		Icon:     models.NormalizeIcon(f.Icon),
		Priority: len(r.items) + 1,
	}
	r.items = append(r.items, item)
	r.save(ctx)
	return item
}

// Update merges the non-nil patch fields into the matching item.
func (r *Registry) Update(ctx context.Context, id string, p models.AnniversaryPatch) error {
	idx := r.find(id)
	if idx < 0 {
		return common.ErrNotFound
	}
	item := &r.items[idx]
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Date != nil {
		item.Date = *p.Date
	}
	if p.Icon != nil {
		item.Icon = models.NormalizeIcon(string(*p.Icon))
	}
	if p.Priority != nil {
		item.Priority = *p.Priority
	}
	r.save(ctx)
	return nil
}

// Remove deletes the matching item. Protected defaults are never removed.
func (r *Registry) Remove(ctx context.Context, id string) error {
	idx := r.find(id)
	if idx < 0 {
		return common.ErrNotFound
	}
	if r.items[idx].IsDefault {
		return common.ErrProtectedDefault
	}
	r.items = slices.Delete(r.items, idx, idx+1)
	if r.cursor >= len(r.items) && r.cursor > 0 {
		r.cursor = len(r.items) - 1
	}
	r.save(ctx)
	return nil
}

// SetTogetherDate stamps the protected "together" milestone with today's
// local calendar date. Fired once when the confession is accepted; calling
// it again just restamps today.
func (r *Registry) SetTogetherDate(ctx context.Context) {
	idx := r.find(models.AnniversaryTogetherID)
	if idx < 0 {
		return
	}
	r.items[idx].Date = time.Now().Format("2006-01-02")
	r.save(ctx)
}

// Primary resolves the milestone shown on the summary display: among items
// with a date, excluding the "together" item while the confession is
// unaccepted, the one with the lowest priority wins. Ties keep the earliest
// item in insertion order. Reports false when no item qualifies.
func (r *Registry) Primary(ctx context.Context) (models.AnniversaryItem, bool) {
	accepted := r.gw.IsConfessionAccepted(ctx)
	best := -1
	for i, item := range r.items {
		if item.Date == "" {
			continue
		}
		if item.ID == models.AnniversaryTogetherID && !accepted {
			continue
		}
		if best < 0 || item.Priority < r.items[best].Priority {
			best = i
		}
	}
	if best < 0 {
		return models.AnniversaryItem{}, false
	}
	return r.items[best], true
}

// ResetToDefaults reloads fresh defaults and blanks the "together" date, so
// a reset never carries a relationship date over from a prior session.
func (r *Registry) ResetToDefaults(ctx context.Context) {
	r.items = models.DefaultAnniversaries()
	for i := range r.items {
		if r.items[i].ID == models.AnniversaryTogetherID {
			r.items[i].Date = ""
		}
	}
	r.cursor = 0
	r.save(ctx)
}

// Current returns the item under the carousel cursor.
func (r *Registry) Current() (models.AnniversaryItem, bool) {
	if len(r.items) == 0 {
		return models.AnniversaryItem{}, false
	}
	return r.items[r.cursor], true
}

// Next advances the carousel cursor with wrap-around.
func (r *Registry) Next() {
	if len(r.items) > 0 {
		r.cursor = (r.cursor + 1) % len(r.items)
	}
}

// Prev moves the carousel cursor back with wrap-around.
func (r *Registry) Prev() {
	if len(r.items) > 0 {
		r.cursor = (r.cursor - 1 + len(r.items)) % len(r.items)
	}
}

// GoTo jumps the carousel cursor to index when it is in range.
func (r *Registry) GoTo(index int) {
	if index >= 0 && index < len(r.items) {
		r.cursor = index
	}
}
