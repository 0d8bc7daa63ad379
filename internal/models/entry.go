// Package models defines the entity types of the love story engine:
// narrative story entries, photo-memory entries, anniversary milestones,
// the confession status flag and the versioned snapshot envelope.
package models

// StoryEntry is one record on the story timeline. The Date field is a free
// display label ("2025.10.11", "直到现在", ...); the slice order is the
// display order.
type StoryEntry struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

// StoryFields carries the user-editable fields of a StoryEntry.
type StoryFields struct {
	Date    string
	Content string
}

// MemoryEntry is one record in the photo-memory gallery. Icon and ImageURL
// are cosmetic and may be empty.
type MemoryEntry struct {
	ID        string `json:"id"`
	Caption   string `json:"caption"`
	Date      string `json:"date"`
	Icon      string `json:"icon"`
	ImageURL  string `json:"imageUrl"`
	CreatedAt int64  `json:"createdAt"`
}

// MemoryFields carries the user-editable fields of a MemoryEntry.
type MemoryFields struct {
	Caption  string
	Date     string
	Icon     string
	ImageURL string
}
