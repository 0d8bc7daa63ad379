package content

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luoyh/lovestory/internal/common"
	"github.com/luoyh/lovestory/internal/logging"
	"github.com/luoyh/lovestory/internal/models"
	"github.com/luoyh/lovestory/internal/storage"
)

func newTestRepo(t *testing.T) (*Repository, *storage.Gateway) {
	t.Helper()
	ctx := context.Background()
	gw := storage.NewGateway(ctx, storage.NewMemoryKV(), logging.NewDiscard())
	r := NewRepository(gw, logging.NewDiscard())
	r.LoadAll(ctx)
	return r, gw
}

func TestLoadAll_EmptyStore_FallsBackToDefaults(t *testing.T) {
	r, _ := newTestRepo(t)

	assert.True(t, r.Loaded())
	assert.Equal(t, models.DefaultStory(), r.Story())
	assert.Equal(t, models.DefaultMemory(), r.Memory())
	assert.Equal(t, models.DefaultJourney(), r.Journey())
}

func TestLoadAll_MutatingLoadedData_DoesNotCorruptDefaults(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.RemoveStory(ctx, 0))
	r.UpdateJourney(ctx, "changed")

	// A second repository over an empty store still sees pristine defaults.
	r2 := NewRepository(storage.NewGateway(ctx, storage.NewMemoryKV(), logging.NewDiscard()), logging.NewDiscard())
	r2.LoadAll(ctx)
	assert.Equal(t, models.DefaultStory(), r2.Story())
	assert.Equal(t, models.DefaultJourney(), r2.Journey())
}

func TestAddStory_Append(t *testing.T) {
	r, _ := newTestRepo(t)
	before := r.Story()

	e := r.AddStory(context.Background(), models.StoryFields{Date: "2025.01.01", Content: "Hello"}, -1)

	got := r.Story()
	require.Len(t, got, len(before)+1)
	last := got[len(got)-1]
	assert.Equal(t, e.ID, last.ID)
	assert.Equal(t, "2025.01.01", last.Date)
	assert.Equal(t, "Hello", last.Content)
	assert.NotEmpty(t, last.ID)
	assert.NotZero(t, last.CreatedAt)
}

func TestAddStory_AtEveryValidPosition(t *testing.T) {
	ctx := context.Background()
	base := len(models.DefaultStory())

	for at := 0; at < base; at++ {
		t.Run(fmt.Sprintf("at_%d", at), func(t *testing.T) {
			r, _ := newTestRepo(t)
			before := r.Story()

			e := r.AddStory(ctx, models.StoryFields{Date: "d", Content: "c"}, at)

			got := r.Story()
			require.Len(t, got, base+1)
			assert.Equal(t, e.ID, got[at].ID)
			// All prior ids are preserved.
			for _, prev := range before {
				assert.True(t, containsID(got, prev.ID))
			}
		})
	}
}

func TestAddStory_OutOfRangeIndex_Appends(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	e := r.AddStory(ctx, models.StoryFields{Content: "x"}, 999)
	got := r.Story()
	assert.Equal(t, e.ID, got[len(got)-1].ID)
}

func TestRemoveStory(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	before := r.Story()

	require.NoError(t, r.RemoveStory(ctx, 0))
	got := r.Story()
	require.Len(t, got, len(before)-1)
	assert.False(t, containsID(got, before[0].ID))

	assert.ErrorIs(t, r.RemoveStory(ctx, -1), common.ErrIndexOutOfRange)
	assert.ErrorIs(t, r.RemoveStory(ctx, len(got)), common.ErrIndexOutOfRange)
}

func TestUpdateStory_EditsInPlaceAndPersists(t *testing.T) {
	r, gw := newTestRepo(t)
	ctx := context.Background()
	before := r.Story()

	require.NoError(t, r.UpdateStory(ctx, 1, models.StoryFields{Date: "2026.01.01", Content: "rewritten"}))

	got := r.Story()
	require.Len(t, got, len(before))
	assert.Equal(t, before[1].ID, got[1].ID)
	assert.Equal(t, before[1].CreatedAt, got[1].CreatedAt)
	assert.Equal(t, "2026.01.01", got[1].Date)
	assert.Equal(t, "rewritten", got[1].Content)
	assert.Equal(t, before[0], got[0])

	r2 := NewRepository(gw, logging.NewDiscard())
	r2.LoadAll(ctx)
	assert.Equal(t, got, r2.Story())
}

func TestUpdateStory_OutOfBounds_NoChange(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	before := r.Story()

	assert.ErrorIs(t, r.UpdateStory(ctx, -1, models.StoryFields{Content: "x"}), common.ErrIndexOutOfRange)
	assert.ErrorIs(t, r.UpdateStory(ctx, len(before), models.StoryFields{Content: "x"}), common.ErrIndexOutOfRange)
	assert.Equal(t, before, r.Story())
}

func TestUpdateMemory_EditsInPlaceAndPersists(t *testing.T) {
	r, gw := newTestRepo(t)
	ctx := context.Background()
	before := r.Memory()

	f := models.MemoryFields{Caption: "new cap", Date: "2026.02.02", Icon: "star", ImageURL: "new.png"}
	require.NoError(t, r.UpdateMemory(ctx, 0, f))

	got := r.Memory()
	require.Len(t, got, len(before))
	assert.Equal(t, before[0].ID, got[0].ID)
	assert.Equal(t, before[0].CreatedAt, got[0].CreatedAt)
	assert.Equal(t, "new cap", got[0].Caption)
	assert.Equal(t, "star", got[0].Icon)
	assert.Equal(t, "new.png", got[0].ImageURL)

	assert.ErrorIs(t, r.UpdateMemory(ctx, len(got), f), common.ErrIndexOutOfRange)

	r2 := NewRepository(gw, logging.NewDiscard())
	r2.LoadAll(ctx)
	assert.Equal(t, got, r2.Memory())
}

func TestMoveStory_ShiftsIntermediates(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	before := r.Story()

	require.NoError(t, r.MoveStory(ctx, 0, 2))

	got := r.Story()
	assert.Equal(t, before[1].ID, got[0].ID)
	assert.Equal(t, before[2].ID, got[1].ID)
	assert.Equal(t, before[0].ID, got[2].ID)
}

func TestMoveStory_InverseMoveRestoresOrder(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	before := r.Story()

	require.NoError(t, r.MoveStory(ctx, 1, 4))
	require.NoError(t, r.MoveStory(ctx, 4, 1))

	assert.Equal(t, before, r.Story())
}

func TestMoveStory_OutOfBounds_NoChange(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	before := r.Story()

	assert.ErrorIs(t, r.MoveStory(ctx, -1, 0), common.ErrIndexOutOfRange)
	assert.ErrorIs(t, r.MoveStory(ctx, 0, len(before)), common.ErrIndexOutOfRange)
	assert.Equal(t, before, r.Story())
}

func TestMemoryCollection_AddRemoveMove(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	base := len(models.DefaultMemory())

	e := r.AddMemory(ctx, models.MemoryFields{Caption: "cap", Date: "2025.02.02", ImageURL: "img.png"}, 0)
	got := r.Memory()
	require.Len(t, got, base+1)
	assert.Equal(t, e.ID, got[0].ID)
	assert.Equal(t, "img.png", got[0].ImageURL)

	require.NoError(t, r.MoveMemory(ctx, 0, base))
	assert.Equal(t, e.ID, r.Memory()[base].ID)

	require.NoError(t, r.RemoveMemory(ctx, base))
	assert.Len(t, r.Memory(), base)
}

func TestUpdateJourney_PersistsAcrossReload(t *testing.T) {
	r, gw := newTestRepo(t)
	ctx := context.Background()

	r.UpdateJourney(ctx, "new text")

	r2 := NewRepository(gw, logging.NewDiscard())
	r2.LoadAll(ctx)
	assert.Equal(t, "new text", r2.Journey())
}

func TestMutations_PersistAcrossReload(t *testing.T) {
	r, gw := newTestRepo(t)
	ctx := context.Background()

	e := r.AddStory(ctx, models.StoryFields{Date: "d", Content: "c"}, -1)

	r2 := NewRepository(gw, logging.NewDiscard())
	r2.LoadAll(ctx)
	assert.True(t, containsID(r2.Story(), e.ID))
}

func TestResetToDefaults(t *testing.T) {
	r, gw := newTestRepo(t)
	ctx := context.Background()

	r.AddStory(ctx, models.StoryFields{Content: "extra"}, -1)
	r.UpdateJourney(ctx, "scribbles")

	r.ResetToDefaults(ctx)

	assert.Equal(t, models.DefaultStory(), r.Story())
	assert.Equal(t, models.DefaultMemory(), r.Memory())
	assert.Equal(t, models.DefaultJourney(), r.Journey())

	// The reset is persisted, not just in memory.
	r2 := NewRepository(gw, logging.NewDiscard())
	r2.LoadAll(ctx)
	assert.Equal(t, models.DefaultStory(), r2.Story())
}

func TestStory_ReturnsCopy(t *testing.T) {
	r, _ := newTestRepo(t)

	got := r.Story()
	got[0].Content = "tampered"

	assert.NotEqual(t, "tampered", r.Story()[0].Content)
}

func TestRepository_UnavailableStore_WorksInMemory(t *testing.T) {
	ctx := context.Background()
	gw := storage.NewGateway(ctx, nil, logging.NewDiscard())
	require.False(t, gw.Available())

	r := NewRepository(gw, logging.NewDiscard())
	r.LoadAll(ctx)

	assert.Equal(t, models.DefaultStory(), r.Story())
	e := r.AddStory(ctx, models.StoryFields{Content: "in memory only"}, -1)
	assert.True(t, containsID(r.Story(), e.ID))
}

func containsID(entries []models.StoryEntry, id string) bool {
	for _, e := range entries {
		if e.ID == id {
			return true
		}
	}
	return false
}
