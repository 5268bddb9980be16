package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fvs_dash/internal/common"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(nil, nil)
	require.NoError(t, err)
	return store
}

func strPtr(s string) *string { return &s }

func TestNewStore(t *testing.T) {
	t.Run("rejects id shared between collections", func(t *testing.T) {
		pipeline := []PipelineItem{{ID: "a1", Title: "Idea", ContentType: ContentTypeBlog}}
		scheduled := []ScheduledItem{{ID: "a1", Title: "Post", ContentType: ContentTypeBlog, DayKey: "2024-08-19", Status: StatusScheduled, Priority: PriorityMedium}}
		_, err := NewStore(pipeline, scheduled)
		assert.ErrorIs(t, err, common.ErrDuplicate)
	})

	t.Run("rejects non canonical day key", func(t *testing.T) {
		scheduled := []ScheduledItem{{ID: "a1", Title: "Post", ContentType: ContentTypeBlog, DayKey: "2024-8-19", Status: StatusScheduled, Priority: PriorityMedium}}
		_, err := NewStore(nil, scheduled)
		assert.ErrorIs(t, err, common.ErrInvalidDateInput)
	})

	t.Run("copies the initial slices", func(t *testing.T) {
		pipeline := []PipelineItem{{ID: "a1", Title: "Idea", ContentType: ContentTypeBlog}}
		store, err := NewStore(pipeline, nil)
		require.NoError(t, err)

		pipeline[0].Title = "Mutated"
		got, err := store.FindIdea("a1")
		require.NoError(t, err)
		assert.Equal(t, "Idea", got.Title)
	})
}

func TestStoreAddIdea(t *testing.T) {
	store := newTestStore(t)

	t.Run("rejects blank title", func(t *testing.T) {
		_, err := store.AddIdea(IdeaInput{Title: "   ", ContentType: ContentTypeBlog})
		assert.ErrorIs(t, err, common.ErrRequiredField)
	})

	t.Run("rejects unknown content type", func(t *testing.T) {
		_, err := store.AddIdea(IdeaInput{Title: "Episode 12", ContentType: "video"})
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	})

	t.Run("prepends newest first", func(t *testing.T) {
		first, err := store.AddIdea(IdeaInput{Title: "First", ContentType: ContentTypePodcast})
		require.NoError(t, err)
		second, err := store.AddIdea(IdeaInput{Title: "Second", ContentType: ContentTypeShorts})
		require.NoError(t, err)

		items := store.PipelineItems()
		require.Len(t, items, 2)
		assert.Equal(t, second.ID, items[0].ID)
		assert.Equal(t, first.ID, items[1].ID)
		assert.NotEmpty(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestStoreUpdateIdea(t *testing.T) {
	store := newTestStore(t)
	idea, err := store.AddIdea(IdeaInput{Title: "Episode 12", Description: "Guest TBD", ContentType: ContentTypePodcast})
	require.NoError(t, err)

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.UpdateIdea("missing", IdeaPatch{Title: strPtr("New")})
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("nil fields stay unchanged", func(t *testing.T) {
		got, err := store.UpdateIdea(idea.ID, IdeaPatch{Description: strPtr("Guest confirmed")})
		require.NoError(t, err)
		assert.Equal(t, "Episode 12", got.Title)
		assert.Equal(t, "Guest confirmed", got.Description)
		assert.Equal(t, ContentTypePodcast, got.ContentType)
	})

	t.Run("blank title rejected without partial apply", func(t *testing.T) {
		_, err := store.UpdateIdea(idea.ID, IdeaPatch{Title: strPtr("  ")})
		assert.ErrorIs(t, err, common.ErrRequiredField)

		got, err := store.FindIdea(idea.ID)
		require.NoError(t, err)
		assert.Equal(t, "Episode 12", got.Title)
	})
}

func TestStoreSchedule(t *testing.T) {
	t.Run("moves the idea out of the pipeline under a fresh id", func(t *testing.T) {
		store := newTestStore(t)
		idea, err := store.AddIdea(IdeaInput{Title: "Episode 12", Description: "Guest TBD", ContentType: ContentTypePodcast})
		require.NoError(t, err)

		item, err := store.Schedule(idea.ID, "2024-08-19")
		require.NoError(t, err)

		assert.NotEqual(t, idea.ID, item.ID)
		assert.Equal(t, "Episode 12", item.Title)
		assert.Equal(t, "Guest TBD", item.Description)
		assert.Equal(t, ContentTypePodcast, item.ContentType)
		assert.Equal(t, "2024-08-19", item.DayKey)
		assert.Equal(t, StatusScheduled, item.Status)
		assert.Equal(t, PriorityMedium, item.Priority)

		assert.Empty(t, store.PipelineItems())
		_, err = store.FindIdea(idea.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("invalid day key leaves the pipeline untouched", func(t *testing.T) {
		store := newTestStore(t)
		idea, err := store.AddIdea(IdeaInput{Title: "Episode 12", ContentType: ContentTypePodcast})
		require.NoError(t, err)

		_, err = store.Schedule(idea.ID, "2024-8-19")
		assert.ErrorIs(t, err, common.ErrInvalidDateInput)
		assert.Len(t, store.PipelineItems(), 1)
	})

	t.Run("stale pipeline id", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.Schedule("missing", "2024-08-19")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestStoreCreateScheduled(t *testing.T) {
	store := newTestStore(t)

	t.Run("defaults status and priority", func(t *testing.T) {
		item, err := store.CreateScheduled(ScheduledInput{Title: "Launch recap", ContentType: ContentTypeBlog, DayKey: "2024-09-02"})
		require.NoError(t, err)
		assert.Equal(t, StatusScheduled, item.Status)
		assert.Equal(t, PriorityMedium, item.Priority)
	})

	t.Run("honours explicit status and priority", func(t *testing.T) {
		item, err := store.CreateScheduled(ScheduledInput{
			Title: "Teaser", ContentType: ContentTypeShorts, DayKey: "2024-09-03",
			Status: StatusReview, Priority: PriorityHigh,
		})
		require.NoError(t, err)
		assert.Equal(t, StatusReview, item.Status)
		assert.Equal(t, PriorityHigh, item.Priority)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := store.CreateScheduled(ScheduledInput{Title: "Teaser", ContentType: ContentTypeShorts, DayKey: "2024-09-03", Status: "done"})
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	})
}

func TestStoreReschedule(t *testing.T) {
	store := newTestStore(t)
	item, err := store.CreateScheduled(ScheduledInput{Title: "Post", ContentType: ContentTypeBlog, DayKey: "2024-08-29"})
	require.NoError(t, err)

	t.Run("moves to the new day, identity preserved", func(t *testing.T) {
		moved, err := store.Reschedule(item.ID, "2024-08-22")
		require.NoError(t, err)
		assert.Equal(t, item.ID, moved.ID)
		assert.Equal(t, "2024-08-22", moved.DayKey)
	})

	t.Run("same day is a no-op", func(t *testing.T) {
		before, err := store.FindScheduled(item.ID)
		require.NoError(t, err)

		after, err := store.Reschedule(item.ID, before.DayKey)
		require.NoError(t, err)
		assert.Equal(t, before, after)

		current, err := store.FindScheduled(item.ID)
		require.NoError(t, err)
		assert.Equal(t, before, current)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Reschedule("missing", "2024-08-30")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("invalid day key", func(t *testing.T) {
		_, err := store.Reschedule(item.ID, "tomorrow")
		assert.ErrorIs(t, err, common.ErrInvalidDateInput)
	})
}

func TestStoreUnschedule(t *testing.T) {
	store := newTestStore(t)
	item, err := store.CreateScheduled(ScheduledInput{
		Title: "Post", Description: "Draft ready", ContentType: ContentTypeBlog,
		DayKey: "2024-08-29", Status: StatusReview, Priority: PriorityHigh,
	})
	require.NoError(t, err)

	idea, err := store.Unschedule(item.ID)
	require.NoError(t, err)

	t.Run("returns to the pipeline under a fresh id", func(t *testing.T) {
		assert.NotEqual(t, item.ID, idea.ID)
		assert.Equal(t, "Post", idea.Title)
		assert.Equal(t, "Draft ready", idea.Description)
		assert.Equal(t, ContentTypeBlog, idea.ContentType)

		items := store.PipelineItems()
		require.Len(t, items, 1)
		assert.Equal(t, idea.ID, items[0].ID)
		assert.Empty(t, store.ScheduledItems())
	})

	t.Run("old scheduled id is gone", func(t *testing.T) {
		_, err := store.FindScheduled(item.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)

		err = store.Delete(item.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestStoreEdit(t *testing.T) {
	store := newTestStore(t)
	item, err := store.CreateScheduled(ScheduledInput{Title: "Post", ContentType: ContentTypeBlog, DayKey: "2024-08-29"})
	require.NoError(t, err)

	t.Run("shallow merge", func(t *testing.T) {
		got, err := store.Edit(item.ID, ItemPatch{Status: strPtr(StatusInProduction), Priority: strPtr(PriorityLow)})
		require.NoError(t, err)
		assert.Equal(t, StatusInProduction, got.Status)
		assert.Equal(t, PriorityLow, got.Priority)
		assert.Equal(t, "Post", got.Title)
		assert.Equal(t, "2024-08-29", got.DayKey)
	})

	t.Run("day key edit moves the item directly", func(t *testing.T) {
		got, err := store.Edit(item.ID, ItemPatch{DayKey: strPtr("2024-09-05")})
		require.NoError(t, err)
		assert.Equal(t, "2024-09-05", got.DayKey)
	})

	t.Run("invalid day key", func(t *testing.T) {
		_, err := store.Edit(item.ID, ItemPatch{DayKey: strPtr("09/05/2024")})
		assert.ErrorIs(t, err, common.ErrInvalidDateInput)
	})

	t.Run("invalid enum value", func(t *testing.T) {
		_, err := store.Edit(item.ID, ItemPatch{Status: strPtr("archived")})
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	})
}

func TestStoreDelete(t *testing.T) {
	store := newTestStore(t)
	item, err := store.CreateScheduled(ScheduledInput{Title: "Post", ContentType: ContentTypeBlog, DayKey: "2024-08-29"})
	require.NoError(t, err)

	assert.NoError(t, store.Delete(item.ID))
	assert.ErrorIs(t, store.Delete(item.ID), common.ErrNotFound)
}

// The two collections never share an id, through any sequence of conversions.
func TestStoreCollectionsStayDisjoint(t *testing.T) {
	store := newTestStore(t)

	idea, err := store.AddIdea(IdeaInput{Title: "Episode 12", ContentType: ContentTypePodcast})
	require.NoError(t, err)
	item, err := store.Schedule(idea.ID, "2024-08-19")
	require.NoError(t, err)
	back, err := store.Unschedule(item.ID)
	require.NoError(t, err)
	again, err := store.Schedule(back.ID, "2024-08-20")
	require.NoError(t, err)

	ids := map[string]int{}
	for _, it := range store.PipelineItems() {
		ids[it.ID]++
	}
	for _, it := range store.ScheduledItems() {
		ids[it.ID]++
	}
	for id, n := range ids {
		assert.Equal(t, 1, n, "id %s appears %d times", id, n)
	}
	assert.NotEqual(t, idea.ID, item.ID)
	assert.NotEqual(t, item.ID, back.ID)
	assert.NotEqual(t, back.ID, again.ID)
}
