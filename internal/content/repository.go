// Package content owns the three narrative collections: story entries,
// memory entries and the free-text journey note. Every mutation persists
// through the storage gateway before returning.
package content

import (
	"context"
	"slices"
	"time"

	"github.com/luoyh/lovestory/internal/common"
	"github.com/luoyh/lovestory/internal/logging"
	"github.com/luoyh/lovestory/internal/models"
	"github.com/luoyh/lovestory/internal/storage"
)

type Repository struct {
	gw  *storage.Gateway
	log logging.Logger

	story   []models.StoryEntry
	memory  []models.MemoryEntry
	journey string
	loaded  bool
}

func NewRepository(gw *storage.Gateway, log logging.Logger) *Repository {
	return &Repository{gw: gw, log: log}
}

// LoadAll populates the collections from the gateway, falling back to fresh
// copies of the compiled-in defaults when nothing is persisted.
func (r *Repository) LoadAll(ctx context.Context) {
	r.story = storage.Get(ctx, r.gw, storage.KeyStory, models.DefaultStory())
	r.memory = storage.Get(ctx, r.gw, storage.KeyMemory, models.DefaultMemory())
	r.journey = storage.Get(ctx, r.gw, storage.KeyJourney, models.DefaultJourney())
	r.loaded = true
	r.log.Info(ctx, "content loaded", "stories", len(r.story), "memories", len(r.memory))
}

// Loaded reports whether LoadAll has run.
func (r *Repository) Loaded() bool {
	return r.loaded
}

// Story returns a copy of the story collection in display order.
func (r *Repository) Story() []models.StoryEntry {
	return slices.Clone(r.story)
}

// Memory returns a copy of the memory collection in display order.
func (r *Repository) Memory() []models.MemoryEntry {
	return slices.Clone(r.memory)
}

// Journey returns the current journey note.
func (r *Repository) Journey() string {
	return r.journey
}

func (r *Repository) saveStory(ctx context.Context) {
	r.gw.Set(ctx, storage.KeyStory, r.story)
}

func (r *Repository) saveMemory(ctx context.Context) {
	r.gw.Set(ctx, storage.KeyMemory, r.memory)
}

func (r *Repository) saveJourney(ctx context.Context) {
	r.gw.Set(ctx, storage.KeyJourney, r.journey)
}

// AddStory creates a story entry and inserts it at position at when
// 0 <= at < len, otherwise appends (pass -1 for the default append).
func (r *Repository) AddStory(ctx context.Context, f models.StoryFields, at int) models.StoryEntry {
	e := models.StoryEntry{
		ID:        models.NewID("story"),
		Date:      f.Date,
		Content:   f.Content,
		CreatedAt: time.Now().UnixMilli(),
	}
	r.story = insertAt(r.story, at, e)
	r.saveStory(ctx)
	return e
}

// UpdateStory edits the entry at index in place. Id and creation time are
// preserved.
func (r *Repository) UpdateStory(ctx context.Context, index int, f models.StoryFields) error {
	if index < 0 || index >= len(r.story) {
		return common.ErrIndexOutOfRange
	}
	r.story[index].Date = f.Date
	r.story[index].Content = f.Content
	r.saveStory(ctx)
	return nil
}

// RemoveStory removes the entry at index.
func (r *Repository) RemoveStory(ctx context.Context, index int) error {
	var err error
	r.story, err = removeAt(r.story, index)
	if err != nil {
		return err
	}
	r.saveStory(ctx)
	return nil
}

// MoveStory removes the entry at from and reinserts it at to, shifting the
// entries in between.
func (r *Repository) MoveStory(ctx context.Context, from, to int) error {
	var err error
	r.story, err = moveItem(r.story, from, to)
	if err != nil {
		return err
	}
	r.saveStory(ctx)
	return nil
}

// AddMemory creates a memory entry, by the same insertion rules as AddStory.
func (r *Repository) AddMemory(ctx context.Context, f models.MemoryFields, at int) models.MemoryEntry {
	e := models.MemoryEntry{
		ID:        models.NewID("memory"),
		Caption:   f.Caption,
		Date:      f.Date,
		Icon:      f.Icon,
		ImageURL:  f.ImageURL,
		CreatedAt: time.Now().UnixMilli(),
	}
	r.memory = insertAt(r.memory, at, e)
	r.saveMemory(ctx)
	return e
}

// UpdateMemory edits the entry at index in place. Id and creation time are
// preserved.
func (r *Repository) UpdateMemory(ctx context.Context, index int, f models.MemoryFields) error {
	if index < 0 || index >= len(r.memory) {
		return common.ErrIndexOutOfRange
	}
	r.memory[index].Caption = f.Caption
	r.memory[index].Date = f.Date
	r.memory[index].Icon = f.Icon
	r.memory[index].ImageURL = f.ImageURL
	r.saveMemory(ctx)
	return nil
}

// RemoveMemory removes the entry at index.
func (r *Repository) RemoveMemory(ctx context.Context, index int) error {
	var err error
	r.memory, err = removeAt(r.memory, index)
	if err != nil {
		return err
	}
	r.saveMemory(ctx)
	return nil
}

// MoveMemory reorders the memory collection, by the same rules as MoveStory.
func (r *Repository) MoveMemory(ctx context.Context, from, to int) error {
	var err error
	r.memory, err = moveItem(r.memory, from, to)
	if err != nil {
		return err
	}
	r.saveMemory(ctx)
	return nil
}

// UpdateJourney replaces the journey note wholesale.
func (r *Repository) UpdateJourney(ctx context.Context, text string) {
	r.journey = text
	r.saveJourney(ctx)
}

// ResetToDefaults discards the current collections, reloads fresh default
// copies and persists all three.
func (r *Repository) ResetToDefaults(ctx context.Context) {
	r.story = models.DefaultStory()
	r.memory = models.DefaultMemory()
	r.journey = models.DefaultJourney()
	r.saveStory(ctx)
	r.saveMemory(ctx)
	r.saveJourney(ctx)
}

func insertAt[T any](s []T, i int, v T) []T {
	if i >= 0 && i < len(s) {
		return slices.Insert(s, i, v)
	}
	return append(s, v)
}

func removeAt[T any](s []T, i int) ([]T, error) {
	if i < 0 || i >= len(s) {
		return s, common.ErrIndexOutOfRange
	}
	return slices.Delete(s, i, i+1), nil
}

func moveItem[T any](s []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) {
		return s, common.ErrIndexOutOfRange
	}
	v := s[from]
	s = slices.Delete(s, from, from+1)
	return slices.Insert(s, to, v), nil
}
