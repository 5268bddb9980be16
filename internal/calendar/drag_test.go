package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fvs_dash/internal/common"
)

func TestSessionBegin(t *testing.T) {
	t.Run("rejects unknown source kind", func(t *testing.T) {
		s := NewSession()
		err := s.Begin(DragSource{Kind: "sidebar", ID: "a1"})
		assert.ErrorIs(t, err, common.ErrInvalidInput)
		assert.False(t, s.Active())
	})

	t.Run("rejects empty id", func(t *testing.T) {
		s := NewSession()
		err := s.Begin(DragSource{Kind: DragSourcePipeline})
		assert.ErrorIs(t, err, common.ErrRequiredField)
	})

	t.Run("rejects a second concurrent drag", func(t *testing.T) {
		s := NewSession()
		require.NoError(t, s.Begin(DragSource{Kind: DragSourcePipeline, ID: "a1"}))

		err := s.Begin(DragSource{Kind: DragSourceCalendar, ID: "b2"})
		assert.ErrorIs(t, err, common.ErrDragAlreadyActive)

		src, ok := s.Source()
		require.True(t, ok)
		assert.Equal(t, "a1", src.ID)
	})
}

func TestSessionEnd(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Begin(DragSource{Kind: DragSourcePipeline, ID: "a1"}))

	s.End()
	assert.False(t, s.Active())

	// Abandoned drags end the session without a drop; a repeat is harmless.
	s.End()
	assert.False(t, s.Active())

	require.NoError(t, s.Begin(DragSource{Kind: DragSourceCalendar, ID: "b2"}))
	assert.True(t, s.Active())
}

func TestSessionResolveDrop(t *testing.T) {
	t.Run("no active drag", func(t *testing.T) {
		store := newTestStore(t)
		s := NewSession()
		_, err := s.ResolveDrop(store, "2024-08-19")
		assert.ErrorIs(t, err, common.ErrNoActiveDrag)
	})

	t.Run("invalid target day key", func(t *testing.T) {
		store := newTestStore(t)
		s := NewSession()
		require.NoError(t, s.Begin(DragSource{Kind: DragSourcePipeline, ID: "a1"}))

		_, err := s.ResolveDrop(store, "2024-8-19")
		assert.ErrorIs(t, err, common.ErrInvalidDateInput)
		assert.True(t, s.Active(), "resolution failure keeps the session open")
	})

	t.Run("pipeline source resolves to schedule", func(t *testing.T) {
		store := newTestStore(t)
		idea, err := store.AddIdea(IdeaInput{Title: "Episode 12", ContentType: ContentTypePodcast})
		require.NoError(t, err)

		s := NewSession()
		require.NoError(t, s.Begin(DragSource{Kind: DragSourcePipeline, ID: idea.ID}))

		decision, err := s.ResolveDrop(store, "2024-08-19")
		require.NoError(t, err)
		assert.Equal(t, DropSchedule, decision.Kind)
		assert.Equal(t, idea.ID, decision.PipelineID)
		assert.Equal(t, "2024-08-19", decision.TargetDayKey)

		// The session decides, never mutates.
		assert.Len(t, store.PipelineItems(), 1)
		assert.Empty(t, store.ScheduledItems())
	})

	t.Run("calendar source on its own day resolves to noop", func(t *testing.T) {
		store := newTestStore(t)
		item, err := store.CreateScheduled(ScheduledInput{Title: "Post", ContentType: ContentTypeBlog, DayKey: "2024-08-29"})
		require.NoError(t, err)

		s := NewSession()
		require.NoError(t, s.Begin(DragSource{Kind: DragSourceCalendar, ID: item.ID}))

		decision, err := s.ResolveDrop(store, "2024-08-29")
		require.NoError(t, err)
		assert.Equal(t, DropNoop, decision.Kind)
	})

	t.Run("calendar source on another day resolves to reschedule", func(t *testing.T) {
		store := newTestStore(t)
		item, err := store.CreateScheduled(ScheduledInput{Title: "Post", ContentType: ContentTypeBlog, DayKey: "2024-08-29"})
		require.NoError(t, err)

		s := NewSession()
		require.NoError(t, s.Begin(DragSource{Kind: DragSourceCalendar, ID: item.ID}))

		decision, err := s.ResolveDrop(store, "2024-08-22")
		require.NoError(t, err)
		assert.Equal(t, DropReschedule, decision.Kind)
		assert.Equal(t, item.ID, decision.ScheduledID)
		assert.Equal(t, "2024-08-22", decision.TargetDayKey)

		// Store untouched until the reschedule is confirmed.
		current, err := store.FindScheduled(item.ID)
		require.NoError(t, err)
		assert.Equal(t, "2024-08-29", current.DayKey)
	})

	t.Run("stale calendar reference", func(t *testing.T) {
		store := newTestStore(t)
		item, err := store.CreateScheduled(ScheduledInput{Title: "Post", ContentType: ContentTypeBlog, DayKey: "2024-08-29"})
		require.NoError(t, err)

		s := NewSession()
		require.NoError(t, s.Begin(DragSource{Kind: DragSourceCalendar, ID: item.ID}))
		require.NoError(t, store.Delete(item.ID))

		_, err = s.ResolveDrop(store, "2024-08-22")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("mid-drag edit is reflected in the decision", func(t *testing.T) {
		store := newTestStore(t)
		item, err := store.CreateScheduled(ScheduledInput{Title: "Post", ContentType: ContentTypeBlog, DayKey: "2024-08-29"})
		require.NoError(t, err)

		s := NewSession()
		require.NoError(t, s.Begin(DragSource{Kind: DragSourceCalendar, ID: item.ID}))

		// A direct form edit moves the item while the drag is in flight.
		_, err = store.Edit(item.ID, ItemPatch{DayKey: strPtr("2024-08-22")})
		require.NoError(t, err)

		decision, err := s.ResolveDrop(store, "2024-08-22")
		require.NoError(t, err)
		assert.Equal(t, DropNoop, decision.Kind)
	})
}
