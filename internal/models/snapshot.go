package models

// SnapshotVersion identifies the export file format.
const SnapshotVersion = "3.0"

// Snapshot is the versioned full-state export/import payload. ExportTime is
// an RFC 3339 timestamp. On import every field is individually optional.
type Snapshot struct {
	Version       string            `json:"version"`
	ExportTime    string            `json:"exportTime"`
	Confession    ConfessionStatus  `json:"confession"`
	Story         []StoryEntry      `json:"story"`
	Memory        []MemoryEntry     `json:"memory"`
	Journey       string            `json:"journey"`
	Anniversaries []AnniversaryItem `json:"anniversaries"`
}
