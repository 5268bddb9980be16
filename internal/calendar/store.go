package calendar

import (
	"strings"

	"fvs_dash/internal/common"
	"fvs_dash/internal/utility"
)

// Store is the in-memory source of truth for the two entity collections:
// undated pipeline ideas and dated scheduled items. An item's identity
// belongs to exactly one collection at any instant; schedule and unschedule
// convert between the collections under a fresh id.
//
// All operations are synchronous and atomic with respect to each other. The
// store itself is not safe for concurrent use; callers serialize access.
type Store struct {
	pipeline  []PipelineItem  // insertion order is display order, newest first
	scheduled []ScheduledItem // addressed by day key, not by position
}

// IdeaInput is the payload for creating a pipeline idea.
type IdeaInput struct {
	Title       string
	Description string
	ContentType string
}

// IdeaPatch carries the fields of a pipeline idea edit; nil means unchanged.
type IdeaPatch struct {
	Title       *string
	Description *string
	ContentType *string
}

// ScheduledInput is the payload for creating a scheduled item in place,
// without a pipeline ancestor. Status and Priority fall back to their
// defaults when empty.
type ScheduledInput struct {
	Title       string
	Description string
	ContentType string
	DayKey      string
	Status      string
	Priority    string
}

// ItemPatch carries the fields of a scheduled item edit; nil means
// unchanged. Day key changes through this path are direct form edits and
// deliberately bypass the reschedule confirmation gate.
type ItemPatch struct {
	Title       *string
	Description *string
	ContentType *string
	Status      *string
	Priority    *string
	DayKey      *string
}

// NewStore builds a store from the initial collections supplied by the
// persistence collaborator. It rejects state violating the engine's
// invariants: non-canonical day keys or an id present in both collections.
func NewStore(pipeline []PipelineItem, scheduled []ScheduledItem) (*Store, error) {
	seen := make(map[string]struct{}, len(pipeline)+len(scheduled))
	for _, it := range pipeline {
		if _, dup := seen[it.ID]; dup {
			return nil, common.ErrDuplicate
		}
		seen[it.ID] = struct{}{}
	}
	for _, it := range scheduled {
		if _, dup := seen[it.ID]; dup {
			return nil, common.ErrDuplicate
		}
		seen[it.ID] = struct{}{}
		if !IsDayKey(it.DayKey) {
			return nil, common.ErrInvalidDateInput
		}
	}

	s := &Store{
		pipeline:  make([]PipelineItem, len(pipeline)),
		scheduled: make([]ScheduledItem, len(scheduled)),
	}
	copy(s.pipeline, pipeline)
	copy(s.scheduled, scheduled)
	return s, nil
}

// AddIdea validates and prepends a new pipeline idea (newest first).
func (s *Store) AddIdea(input IdeaInput) (PipelineItem, error) {
	if strings.TrimSpace(input.Title) == "" {
		return PipelineItem{}, common.ErrRequiredField
	}
	if !IsValidContentType(input.ContentType) {
		return PipelineItem{}, common.ErrInvalidInput
	}

	now := utility.CurrentTimeInMilli()
	item := PipelineItem{
		ID:          newID(),
		Title:       input.Title,
		Description: input.Description,
		ContentType: input.ContentType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.pipeline = append([]PipelineItem{item}, s.pipeline...)
	return item, nil
}

// UpdateIdea applies a partial edit to a pipeline idea.
func (s *Store) UpdateIdea(id string, patch IdeaPatch) (PipelineItem, error) {
	idx := s.ideaIndex(id)
	if idx < 0 {
		return PipelineItem{}, common.ErrNotFound
	}

	item := &s.pipeline[idx]
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return PipelineItem{}, common.ErrRequiredField
		}
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.ContentType != nil {
		if !IsValidContentType(*patch.ContentType) {
			return PipelineItem{}, common.ErrInvalidInput
		}
		item.ContentType = *patch.ContentType
	}
	item.UpdatedAt = utility.CurrentTimeInMilli()
	return *item, nil
}

// DeleteIdea removes a pipeline idea. Deleting an absent id fails loudly so
// callers can detect stale UI state.
func (s *Store) DeleteIdea(id string) error {
	idx := s.ideaIndex(id)
	if idx < 0 {
		return common.ErrNotFound
	}
	s.pipeline = append(s.pipeline[:idx], s.pipeline[idx+1:]...)
	return nil
}

// Schedule converts a pipeline idea into a scheduled item on the given day.
// The idea leaves the pipeline; the new item gets a fresh id, status
// "scheduled" and medium priority. A stale pipeline id (deleted since the
// drag began) fails with not-found.
func (s *Store) Schedule(pipelineID, dayKey string) (ScheduledItem, error) {
	if !IsDayKey(dayKey) {
		return ScheduledItem{}, common.ErrInvalidDateInput
	}
	idx := s.ideaIndex(pipelineID)
	if idx < 0 {
		return ScheduledItem{}, common.ErrNotFound
	}

	idea := s.pipeline[idx]
	s.pipeline = append(s.pipeline[:idx], s.pipeline[idx+1:]...)

	now := utility.CurrentTimeInMilli()
	item := ScheduledItem{
		ID:          newID(),
		Title:       idea.Title,
		Description: idea.Description,
		ContentType: idea.ContentType,
		DayKey:      dayKey,
		Status:      StatusScheduled,
		Priority:    PriorityMedium,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.scheduled = append(s.scheduled, item)
	return item, nil
}

// CreateScheduled creates a scheduled item directly, without a pipeline
// ancestor.
func (s *Store) CreateScheduled(input ScheduledInput) (ScheduledItem, error) {
	if strings.TrimSpace(input.Title) == "" {
		return ScheduledItem{}, common.ErrRequiredField
	}
	if !IsValidContentType(input.ContentType) {
		return ScheduledItem{}, common.ErrInvalidInput
	}
	if !IsDayKey(input.DayKey) {
		return ScheduledItem{}, common.ErrInvalidDateInput
	}

	status := input.Status
	if status == "" {
		status = StatusScheduled
	} else if !IsValidStatus(status) {
		return ScheduledItem{}, common.ErrInvalidInput
	}

	priority := input.Priority
	if priority == "" {
		priority = PriorityMedium
	} else if !IsValidPriority(priority) {
		return ScheduledItem{}, common.ErrInvalidInput
	}

	now := utility.CurrentTimeInMilli()
	item := ScheduledItem{
		ID:          newID(),
		Title:       input.Title,
		Description: input.Description,
		ContentType: input.ContentType,
		DayKey:      input.DayKey,
		Status:      status,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.scheduled = append(s.scheduled, item)
	return item, nil
}

// Reschedule moves a scheduled item to a new day, preserving its identity.
// Targeting the item's current day is a no-op: the unchanged item is
// returned and nothing mutates.
func (s *Store) Reschedule(scheduledID, newDayKey string) (ScheduledItem, error) {
	if !IsDayKey(newDayKey) {
		return ScheduledItem{}, common.ErrInvalidDateInput
	}
	idx := s.scheduledIndex(scheduledID)
	if idx < 0 {
		return ScheduledItem{}, common.ErrNotFound
	}

	item := &s.scheduled[idx]
	if SameDay(item.DayKey, newDayKey) {
		return *item, nil
	}
	item.DayKey = newDayKey
	item.UpdatedAt = utility.CurrentTimeInMilli()
	return *item, nil
}

// Unschedule removes a scheduled item from the calendar and returns it to
// the pipeline as a fresh idea, carrying over title, description and
// content type. Day key, status and priority are lost.
func (s *Store) Unschedule(scheduledID string) (PipelineItem, error) {
	idx := s.scheduledIndex(scheduledID)
	if idx < 0 {
		return PipelineItem{}, common.ErrNotFound
	}

	item := s.scheduled[idx]
	s.scheduled = append(s.scheduled[:idx], s.scheduled[idx+1:]...)

	now := utility.CurrentTimeInMilli()
	idea := PipelineItem{
		ID:          newID(),
		Title:       item.Title,
		Description: item.Description,
		ContentType: item.ContentType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.pipeline = append([]PipelineItem{idea}, s.pipeline...)
	return idea, nil
}

// Edit shallow-merges a patch into a scheduled item. Day key edits here are
// direct form edits and do not pass through the reschedule gate.
func (s *Store) Edit(scheduledID string, patch ItemPatch) (ScheduledItem, error) {
	idx := s.scheduledIndex(scheduledID)
	if idx < 0 {
		return ScheduledItem{}, common.ErrNotFound
	}

	item := &s.scheduled[idx]
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return ScheduledItem{}, common.ErrRequiredField
		}
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.ContentType != nil {
		if !IsValidContentType(*patch.ContentType) {
			return ScheduledItem{}, common.ErrInvalidInput
		}
		item.ContentType = *patch.ContentType
	}
	if patch.Status != nil {
		if !IsValidStatus(*patch.Status) {
			return ScheduledItem{}, common.ErrInvalidInput
		}
		item.Status = *patch.Status
	}
	if patch.Priority != nil {
		if !IsValidPriority(*patch.Priority) {
			return ScheduledItem{}, common.ErrInvalidInput
		}
		item.Priority = *patch.Priority
	}
	if patch.DayKey != nil {
		if !IsDayKey(*patch.DayKey) {
			return ScheduledItem{}, common.ErrInvalidDateInput
		}
		item.DayKey = *patch.DayKey
	}
	item.UpdatedAt = utility.CurrentTimeInMilli()
	return *item, nil
}

// Delete removes a scheduled item. Deleting an already-deleted id fails
// with not-found rather than silently succeeding.
func (s *Store) Delete(scheduledID string) error {
	idx := s.scheduledIndex(scheduledID)
	if idx < 0 {
		return common.ErrNotFound
	}
	s.scheduled = append(s.scheduled[:idx], s.scheduled[idx+1:]...)
	return nil
}

// PipelineItems returns a copy of the pipeline collection in display order.
func (s *Store) PipelineItems() []PipelineItem {
	out := make([]PipelineItem, len(s.pipeline))
	copy(out, s.pipeline)
	return out
}

// ScheduledItems returns a copy of the scheduled collection in insertion
// order.
func (s *Store) ScheduledItems() []ScheduledItem {
	out := make([]ScheduledItem, len(s.scheduled))
	copy(out, s.scheduled)
	return out
}

// FindIdea returns the pipeline idea with the given id.
func (s *Store) FindIdea(id string) (PipelineItem, error) {
	idx := s.ideaIndex(id)
	if idx < 0 {
		return PipelineItem{}, common.ErrNotFound
	}
	return s.pipeline[idx], nil
}

// FindScheduled returns the scheduled item with the given id.
func (s *Store) FindScheduled(id string) (ScheduledItem, error) {
	idx := s.scheduledIndex(id)
	if idx < 0 {
		return ScheduledItem{}, common.ErrNotFound
	}
	return s.scheduled[idx], nil
}

func (s *Store) ideaIndex(id string) int {
	for i := range s.pipeline {
		if s.pipeline[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) scheduledIndex(id string) int {
	for i := range s.scheduled {
		if s.scheduled[i].ID == id {
			return i
		}
	}
	return -1
}
