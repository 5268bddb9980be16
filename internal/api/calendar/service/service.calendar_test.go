package calsvc

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fvs_dash/internal/calendar"
	"fvs_dash/internal/common"
)

// fakeRepo is an in-memory stand-in for the MongoDB base service, keyed by
// document id.
type fakeRepo[T any] struct {
	mu   sync.Mutex
	docs map[string]T
}

func newFakeRepo[T any]() *fakeRepo[T] {
	return &fakeRepo[T]{docs: make(map[string]T)}
}

func (r *fakeRepo[T]) InsertOne(_ context.Context, data T) (T, error) {
	return data, nil
}

func (r *fakeRepo[T]) Find(_ context.Context, _ interface{}, _ *options.FindOptions) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, 0, len(r.docs))
	for _, doc := range r.docs {
		out = append(out, doc)
	}
	return out, nil
}

func (r *fakeRepo[T]) FindOne(_ context.Context, _ interface{}, _ *options.FindOneOptions) (T, error) {
	var zero T
	return zero, common.ErrNotFound
}

func (r *fakeRepo[T]) FindOneByID(_ context.Context, id string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		var zero T
		return zero, common.ErrNotFound
	}
	return doc, nil
}

func (r *fakeRepo[T]) UpsertByID(_ context.Context, id string, data T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[id] = data
	return data, nil
}

func (r *fakeRepo[T]) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

func (r *fakeRepo[T]) DeleteMany(_ context.Context, _ interface{}) (int64, error) {
	return 0, nil
}

func (r *fakeRepo[T]) CountDocuments(_ context.Context, _ interface{}) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.docs)), nil
}

func (r *fakeRepo[T]) DocumentExists(_ context.Context, _ interface{}) (bool, error) {
	return false, nil
}

func (r *fakeRepo[T]) has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.docs[id]
	return ok
}

func newTestService(t *testing.T) (*CalendarService, *fakeRepo[calendar.PipelineItem], *fakeRepo[calendar.ScheduledItem]) {
	t.Helper()
	store, err := calendar.NewStore(nil, nil)
	require.NoError(t, err)

	pipelineRepo := newFakeRepo[calendar.PipelineItem]()
	scheduledRepo := newFakeRepo[calendar.ScheduledItem]()
	svc := &CalendarService{
		store:         store,
		drag:          calendar.NewSession(),
		gate:          calendar.NewGate(),
		pipelineRepo:  pipelineRepo,
		scheduledRepo: scheduledRepo,
	}
	return svc, pipelineRepo, scheduledRepo
}

func TestServiceScheduleWritesBehind(t *testing.T) {
	svc, pipelineRepo, scheduledRepo := newTestService(t)

	idea, err := svc.AddIdea(calendar.IdeaInput{Title: "Episode 12", ContentType: calendar.ContentTypePodcast})
	require.NoError(t, err)
	assert.True(t, pipelineRepo.has(idea.ID))

	item, err := svc.Schedule(idea.ID, "2024-08-19")
	require.NoError(t, err)

	assert.False(t, pipelineRepo.has(idea.ID), "scheduled idea leaves the pipeline collection")
	assert.True(t, scheduledRepo.has(item.ID))
}

func TestServiceDropScheduleAppliesImmediately(t *testing.T) {
	svc, _, scheduledRepo := newTestService(t)

	idea, err := svc.AddIdea(calendar.IdeaInput{Title: "Episode 12", ContentType: calendar.ContentTypePodcast})
	require.NoError(t, err)

	require.NoError(t, svc.BeginDrag(calendar.DragSource{Kind: calendar.DragSourcePipeline, ID: idea.ID}))
	result, err := svc.Drop("2024-08-19")
	require.NoError(t, err)

	assert.Equal(t, calendar.DropSchedule, result.Decision.Kind)
	require.NotNil(t, result.Scheduled)
	assert.Equal(t, "2024-08-19", result.Scheduled.DayKey)
	assert.True(t, scheduledRepo.has(result.Scheduled.ID))
	assert.Nil(t, result.Pending)

	// The drag ended with the drop; a new one can begin.
	require.NoError(t, svc.BeginDrag(calendar.DragSource{Kind: calendar.DragSourceCalendar, ID: result.Scheduled.ID}))
	svc.EndDrag()
}

func TestServiceDropRescheduleGoesThroughGate(t *testing.T) {
	svc, _, scheduledRepo := newTestService(t)

	item, err := svc.CreateScheduled(calendar.ScheduledInput{Title: "Post", ContentType: calendar.ContentTypeBlog, DayKey: "2024-08-29"})
	require.NoError(t, err)

	require.NoError(t, svc.BeginDrag(calendar.DragSource{Kind: calendar.DragSourceCalendar, ID: item.ID}))
	result, err := svc.Drop("2024-08-22")
	require.NoError(t, err)

	assert.Equal(t, calendar.DropReschedule, result.Decision.Kind)
	require.NotNil(t, result.Pending)
	assert.Equal(t, item.ID, result.Pending.ScheduledID)

	// Staged, not applied: the store and the database still show the
	// original day.
	current, err := svc.FindScheduled(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-08-29", current.DayKey)
	persisted, err := scheduledRepo.FindOneByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-08-29", persisted.DayKey)

	moved, err := svc.ConfirmReschedule()
	require.NoError(t, err)
	assert.Equal(t, "2024-08-22", moved.DayKey)
	persisted, err = scheduledRepo.FindOneByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-08-22", persisted.DayKey)
}

func TestServiceCancelRescheduleLeavesEverythingInPlace(t *testing.T) {
	svc, _, _ := newTestService(t)

	item, err := svc.CreateScheduled(calendar.ScheduledInput{Title: "Post", ContentType: calendar.ContentTypeBlog, DayKey: "2024-08-29"})
	require.NoError(t, err)

	require.NoError(t, svc.BeginDrag(calendar.DragSource{Kind: calendar.DragSourceCalendar, ID: item.ID}))
	_, err = svc.Drop("2024-08-22")
	require.NoError(t, err)

	svc.CancelReschedule()

	_, ok := svc.PendingReschedule()
	assert.False(t, ok)
	current, err := svc.FindScheduled(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-08-29", current.DayKey)

	_, err = svc.ConfirmReschedule()
	assert.ErrorIs(t, err, common.ErrNoPendingReschedule)
}

func TestServiceDropNoop(t *testing.T) {
	svc, _, _ := newTestService(t)

	item, err := svc.CreateScheduled(calendar.ScheduledInput{Title: "Post", ContentType: calendar.ContentTypeBlog, DayKey: "2024-08-29"})
	require.NoError(t, err)

	require.NoError(t, svc.BeginDrag(calendar.DragSource{Kind: calendar.DragSourceCalendar, ID: item.ID}))
	result, err := svc.Drop("2024-08-29")
	require.NoError(t, err)

	assert.Equal(t, calendar.DropNoop, result.Decision.Kind)
	assert.Nil(t, result.Scheduled)
	assert.Nil(t, result.Pending)

	_, ok := svc.PendingReschedule()
	assert.False(t, ok)
}

func TestServiceUnscheduleSwapsCollections(t *testing.T) {
	svc, pipelineRepo, scheduledRepo := newTestService(t)

	item, err := svc.CreateScheduled(calendar.ScheduledInput{Title: "Post", ContentType: calendar.ContentTypeBlog, DayKey: "2024-08-29"})
	require.NoError(t, err)

	idea, err := svc.Unschedule(item.ID)
	require.NoError(t, err)

	assert.NotEqual(t, item.ID, idea.ID)
	assert.False(t, scheduledRepo.has(item.ID))
	assert.True(t, pipelineRepo.has(idea.ID))
}

func TestServiceViews(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateScheduled(calendar.ScheduledInput{Title: "Episode", ContentType: calendar.ContentTypePodcast, DayKey: "2024-08-19"})
	require.NoError(t, err)
	_, err = svc.CreateScheduled(calendar.ScheduledInput{Title: "Recap", ContentType: calendar.ContentTypeBlog, DayKey: "2024-08-05"})
	require.NoError(t, err)

	agenda := svc.AgendaView(calendar.FilterCriteria{})
	require.Len(t, agenda, 2)
	assert.Equal(t, "2024-08-05", agenda[0].DayKey)

	filtered := svc.AgendaView(calendar.FilterCriteria{ContentType: calendar.ContentTypePodcast})
	require.Len(t, filtered, 1)
	assert.Equal(t, "Episode", filtered[0].Title)

	upcoming, err := svc.UpcomingView("2024-08-10", 5, calendar.FilterCriteria{})
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "2024-08-19", upcoming[0].DayKey)
}
