package calsvc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "fvs_dash/internal/api/base/service"
	"fvs_dash/internal/calendar"
	"fvs_dash/internal/common"
	"fvs_dash/internal/global"
	"fvs_dash/internal/logger"
)

// persistTimeout bounds each write-behind MongoDB operation.
const persistTimeout = 5 * time.Second

// CalendarService owns the scheduling engine and keeps MongoDB in sync
// with it. The in-memory store is the source of truth: mutations apply to
// the store first and are then forwarded to the database. A persistence
// failure is logged, never surfaced, so the calendar stays responsive.
//
// The engine is single-threaded; the mutex serializes the concurrent
// fiber handlers in front of it.
type CalendarService struct {
	mu    sync.Mutex
	store *calendar.Store
	drag  *calendar.Session
	gate  *calendar.Gate

	pipelineRepo  basesvc.BaseServiceMongo[calendar.PipelineItem]
	scheduledRepo basesvc.BaseServiceMongo[calendar.ScheduledItem]
}

var (
	calendarOnce sync.Once
	calendarInst *CalendarService
	calendarErr  error
)

// GetCalendarService returns the process-wide calendar service, creating
// it on first use. Load must run before the service answers requests.
func GetCalendarService() (*CalendarService, error) {
	calendarOnce.Do(func() {
		pipelineCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CalendarPipelineItems)
		if !exist {
			calendarErr = fmt.Errorf("failed to get %s collection: %v", global.MongoDB_ColNames.CalendarPipelineItems, common.ErrNotFound)
			return
		}
		scheduledCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CalendarScheduledItems)
		if !exist {
			calendarErr = fmt.Errorf("failed to get %s collection: %v", global.MongoDB_ColNames.CalendarScheduledItems, common.ErrNotFound)
			return
		}

		store, err := calendar.NewStore(nil, nil)
		if err != nil {
			calendarErr = err
			return
		}

		calendarInst = &CalendarService{
			store:         store,
			drag:          calendar.NewSession(),
			gate:          calendar.NewGate(),
			pipelineRepo:  basesvc.NewBaseServiceMongo[calendar.PipelineItem](pipelineCol),
			scheduledRepo: basesvc.NewBaseServiceMongo[calendar.ScheduledItem](scheduledCol),
		}
	})
	return calendarInst, calendarErr
}

// Load hydrates the engine from MongoDB. Called once at startup, before
// the server accepts traffic.
func (s *CalendarService) Load(ctx context.Context) (int, int, error) {
	pipeline, err := s.pipelineRepo.Find(ctx, bson.M{}, nil)
	if err != nil {
		return 0, 0, err
	}
	scheduled, err := s.scheduledRepo.Find(ctx, bson.M{}, nil)
	if err != nil {
		return 0, 0, err
	}

	store, err := calendar.NewStore(pipeline, scheduled)
	if err != nil {
		return 0, 0, err
	}

	s.mu.Lock()
	s.store = store
	s.mu.Unlock()
	return len(pipeline), len(scheduled), nil
}

// ==========================
// Pipeline operations
// ==========================

// AddIdea creates a pipeline idea.
func (s *CalendarService) AddIdea(input calendar.IdeaInput) (calendar.PipelineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.store.AddIdea(input)
	if err != nil {
		return calendar.PipelineItem{}, err
	}
	s.persistIdea(item)
	return item, nil
}

// UpdateIdea applies a partial edit to a pipeline idea.
func (s *CalendarService) UpdateIdea(id string, patch calendar.IdeaPatch) (calendar.PipelineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.store.UpdateIdea(id, patch)
	if err != nil {
		return calendar.PipelineItem{}, err
	}
	s.persistIdea(item)
	return item, nil
}

// DeleteIdea removes a pipeline idea.
func (s *CalendarService) DeleteIdea(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteIdea(id); err != nil {
		return err
	}
	s.removeIdea(id)
	return nil
}

// PipelineItems lists the pipeline, newest first.
func (s *CalendarService) PipelineItems() []calendar.PipelineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.PipelineItems()
}

// ==========================
// Scheduled operations
// ==========================

// Schedule converts a pipeline idea into a scheduled item on the given day.
func (s *CalendarService) Schedule(pipelineID, dayKey string) (calendar.ScheduledItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduleLocked(pipelineID, dayKey)
}

func (s *CalendarService) scheduleLocked(pipelineID, dayKey string) (calendar.ScheduledItem, error) {
	item, err := s.store.Schedule(pipelineID, dayKey)
	if err != nil {
		return calendar.ScheduledItem{}, err
	}
	s.removeIdea(pipelineID)
	s.persistScheduled(item)
	return item, nil
}

// CreateScheduled creates a scheduled item directly, without a pipeline
// ancestor.
func (s *CalendarService) CreateScheduled(input calendar.ScheduledInput) (calendar.ScheduledItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.store.CreateScheduled(input)
	if err != nil {
		return calendar.ScheduledItem{}, err
	}
	s.persistScheduled(item)
	return item, nil
}

// Unschedule returns a scheduled item to the pipeline as a fresh idea.
func (s *CalendarService) Unschedule(scheduledID string) (calendar.PipelineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idea, err := s.store.Unschedule(scheduledID)
	if err != nil {
		return calendar.PipelineItem{}, err
	}
	s.removeScheduled(scheduledID)
	s.persistIdea(idea)
	return idea, nil
}

// Edit shallow-merges a patch into a scheduled item. Day key edits here
// bypass the reschedule confirmation.
func (s *CalendarService) Edit(scheduledID string, patch calendar.ItemPatch) (calendar.ScheduledItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.store.Edit(scheduledID, patch)
	if err != nil {
		return calendar.ScheduledItem{}, err
	}
	s.persistScheduled(item)
	return item, nil
}

// Delete removes a scheduled item.
func (s *CalendarService) Delete(scheduledID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(scheduledID); err != nil {
		return err
	}
	s.removeScheduled(scheduledID)
	return nil
}

// FindScheduled returns a scheduled item by id.
func (s *CalendarService) FindScheduled(id string) (calendar.ScheduledItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.FindScheduled(id)
}

// ==========================
// Drag protocol
// ==========================

// DropResult is the outcome of resolving a drop. Exactly one of Scheduled
// and Pending is set for the schedule and reschedule kinds; a noop carries
// neither.
type DropResult struct {
	Decision  calendar.DropDecision       `json:"decision"`
	Scheduled *calendar.ScheduledItem     `json:"scheduled,omitempty"`
	Pending   *calendar.RescheduleRequest `json:"pending,omitempty"`
}

// BeginDrag starts a drag session for the given source.
func (s *CalendarService) BeginDrag(source calendar.DragSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.Begin(source)
}

// Drop resolves the active drag against the target day and acts on the
// decision: a schedule is applied immediately, a reschedule is staged for
// confirmation, a noop does nothing. The drag session ends in every
// successful case; a failed resolution keeps it open so the UI can retry
// or abandon.
func (s *CalendarService) Drop(targetDayKey string) (DropResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	decision, err := s.drag.ResolveDrop(s.store, targetDayKey)
	if err != nil {
		return DropResult{}, err
	}

	result := DropResult{Decision: decision}
	switch decision.Kind {
	case calendar.DropSchedule:
		item, err := s.scheduleLocked(decision.PipelineID, decision.TargetDayKey)
		if err != nil {
			return DropResult{}, err
		}
		result.Scheduled = &item

	case calendar.DropReschedule:
		req := calendar.RescheduleRequest{
			ScheduledID:  decision.ScheduledID,
			TargetDayKey: decision.TargetDayKey,
		}
		s.gate.Stage(req)
		result.Pending = &req

	case calendar.DropNoop:
		// Nothing to apply.
	}

	s.drag.End()
	return result, nil
}

// EndDrag clears the drag session without resolving a drop. Safe to call
// with no active session.
func (s *CalendarService) EndDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.End()
}

// ==========================
// Reschedule gate
// ==========================

// PendingReschedule returns the staged reschedule, if any.
func (s *CalendarService) PendingReschedule() (calendar.RescheduleRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate.Pending()
}

// ConfirmReschedule applies the staged reschedule.
func (s *CalendarService) ConfirmReschedule() (calendar.ScheduledItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.gate.Confirm(s.store)
	if err != nil {
		return calendar.ScheduledItem{}, err
	}
	s.persistScheduled(item)
	return item, nil
}

// CancelReschedule discards the staged reschedule. The item never moved,
// so there is nothing to roll back.
func (s *CalendarService) CancelReschedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gate.Cancel()
}

// ==========================
// Views
// ==========================

// MonthView returns the month grid, filtered.
func (s *CalendarService) MonthView(year int, month time.Month, criteria calendar.FilterCriteria) (map[string][]calendar.ScheduledItem, error) {
	s.mu.Lock()
	items := s.store.ScheduledItems()
	s.mu.Unlock()

	return calendar.MonthGrid(calendar.ApplyFilters(items, criteria), year, month)
}

// AgendaView returns all scheduled items ordered by day, filtered.
func (s *CalendarService) AgendaView(criteria calendar.FilterCriteria) []calendar.ScheduledItem {
	s.mu.Lock()
	items := s.store.ScheduledItems()
	s.mu.Unlock()

	return calendar.Agenda(calendar.ApplyFilters(items, criteria))
}

// UpcomingView returns the scheduled items at or after fromDayKey,
// filtered and truncated to limit.
func (s *CalendarService) UpcomingView(fromDayKey string, limit int, criteria calendar.FilterCriteria) ([]calendar.ScheduledItem, error) {
	s.mu.Lock()
	items := s.store.ScheduledItems()
	s.mu.Unlock()

	return calendar.Upcoming(calendar.ApplyFilters(items, criteria), fromDayKey, limit)
}

// ==========================
// Write-behind persistence
// ==========================

func (s *CalendarService) persistIdea(item calendar.PipelineItem) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if _, err := s.pipelineRepo.UpsertByID(ctx, item.ID, item); err != nil {
		logger.GetErrorLogger().WithError(err).WithField("id", item.ID).Error("Failed to persist pipeline item")
	}
}

func (s *CalendarService) removeIdea(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.pipelineRepo.DeleteByID(ctx, id); err != nil {
		logger.GetErrorLogger().WithError(err).WithField("id", id).Error("Failed to remove pipeline item")
	}
}

func (s *CalendarService) persistScheduled(item calendar.ScheduledItem) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if _, err := s.scheduledRepo.UpsertByID(ctx, item.ID, item); err != nil {
		logger.GetErrorLogger().WithError(err).WithField("id", item.ID).Error("Failed to persist scheduled item")
	}
}

func (s *CalendarService) removeScheduled(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.scheduledRepo.DeleteByID(ctx, id); err != nil {
		logger.GetErrorLogger().WithError(err).WithField("id", id).Error("Failed to remove scheduled item")
	}
}
