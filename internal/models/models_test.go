package models

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_Format(t *testing.T) {
	id := NewID("story")

	parts := strings.Split(id, "_")
	require.Len(t, parts, 3)
	assert.Equal(t, "story", parts[0])
	_, err := strconv.ParseInt(parts[1], 10, 64)
	assert.NoError(t, err, "middle part is a unix-milli timestamp")
	assert.Len(t, parts[2], 9)
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := NewID("x")
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestNormalizeIcon(t *testing.T) {
	tests := []struct {
		in   string
		want AnniversaryIcon
	}{
		{"meet", IconMeet},
		{"heart", IconHeart},
		{"calendar", IconCalendar},
		{"star", IconStar},
		{"gift", IconGift},
		{"", IconCalendar},
		{"sparkles", IconCalendar},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeIcon(tt.in), "input %q", tt.in)
	}
}

func TestDefaults_EachCallReturnsIndependentCopy(t *testing.T) {
	a := DefaultStory()
	a[0].Content = "tampered"
	assert.NotEqual(t, "tampered", DefaultStory()[0].Content)

	anns := DefaultAnniversaries()
	anns[0].Date = "tampered"
	assert.NotEqual(t, "tampered", DefaultAnniversaries()[0].Date)
}

func TestDefaults_AreStableAcrossCalls(t *testing.T) {
	assert.Equal(t, DefaultStory(), DefaultStory())
	assert.Equal(t, DefaultMemory(), DefaultMemory())
	assert.Equal(t, DefaultAnniversaries(), DefaultAnniversaries())
}

func TestDefaultStory_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range DefaultStory() {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestDefaultAnniversaries_ProtectedPair(t *testing.T) {
	items := DefaultAnniversaries()
	require.Len(t, items, 2)
	for _, i := range items {
		assert.True(t, i.IsDefault)
	}
	assert.Equal(t, AnniversaryMeetID, items[0].ID)
	assert.Equal(t, AnniversaryTogetherID, items[1].ID)
	assert.Empty(t, items[1].Date)
}
