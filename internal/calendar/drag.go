package calendar

import (
	"fvs_dash/internal/common"
)

// DragKind tags which collection a drag gesture started from.
type DragKind string

const (
	DragSourcePipeline DragKind = "pipeline" // dragging an undated idea
	DragSourceCalendar DragKind = "calendar" // dragging a scheduled item
)

// DragSource identifies the entity being dragged. It holds a reference (the
// id), never a copy of mutable fields, so resolution always sees current
// store state.
type DragSource struct {
	Kind DragKind `json:"kind"`
	ID   string   `json:"id"`
}

// DropKind tags the action a drop over a day cell implies.
type DropKind string

const (
	// DropSchedule: the source was a pipeline idea; schedule it on the
	// target day.
	DropSchedule DropKind = "schedule"
	// DropNoop: the source was a scheduled item dropped on its current day;
	// no gate, no mutation.
	DropNoop DropKind = "noop"
	// DropReschedule: the source was a scheduled item targeting a different
	// day; the caller must route this through the reschedule gate, not
	// apply it directly.
	DropReschedule DropKind = "reschedule"
)

// DropDecision is the outcome of resolving a drop over a target day.
type DropDecision struct {
	Kind         DropKind `json:"kind"`
	PipelineID   string   `json:"pipelineId,omitempty"`  // set for DropSchedule
	ScheduledID  string   `json:"scheduledId,omitempty"` // set for DropReschedule
	TargetDayKey string   `json:"targetDayKey,omitempty"`
}

// Session tracks the entity currently being dragged across the
// asynchronous, UI-driven gesture. At most one session is active; the
// session decides what a drop means but never mutates the store itself,
// which keeps the confirmation policy independent of gesture handling.
type Session struct {
	active bool
	source DragSource
}

// NewSession returns an idle drag session.
func NewSession() *Session {
	return &Session{}
}

// Begin records the dragged entity. Starting a session while one is active
// is rejected rather than silently clobbering state.
func (s *Session) Begin(source DragSource) error {
	if source.Kind != DragSourcePipeline && source.Kind != DragSourceCalendar {
		return common.ErrInvalidInput
	}
	if source.ID == "" {
		return common.ErrRequiredField
	}
	if s.active {
		return common.ErrDragAlreadyActive
	}
	s.active = true
	s.source = source
	return nil
}

// End clears the session unconditionally. Safe to call with no active
// session (abandoned drags call End without ever resolving a drop).
func (s *Session) End() {
	s.active = false
	s.source = DragSource{}
}

// Active reports whether a drag session is in progress.
func (s *Session) Active() bool {
	return s.active
}

// Source returns the active drag source, if any.
func (s *Session) Source() (DragSource, bool) {
	return s.source, s.active
}

// ResolveDrop decides what dropping the dragged entity on targetDayKey
// implies. Calendar-sourced drags re-read the store by id, so an edit that
// happened mid-drag is reflected in the decision.
func (s *Session) ResolveDrop(store *Store, targetDayKey string) (DropDecision, error) {
	if !s.active {
		return DropDecision{}, common.ErrNoActiveDrag
	}
	if !IsDayKey(targetDayKey) {
		return DropDecision{}, common.ErrInvalidDateInput
	}

	switch s.source.Kind {
	case DragSourcePipeline:
		return DropDecision{
			Kind:         DropSchedule,
			PipelineID:   s.source.ID,
			TargetDayKey: targetDayKey,
		}, nil

	case DragSourceCalendar:
		item, err := store.FindScheduled(s.source.ID)
		if err != nil {
			// The item vanished since the drag began (stale reference).
			return DropDecision{}, err
		}
		if SameDay(item.DayKey, targetDayKey) {
			return DropDecision{Kind: DropNoop}, nil
		}
		return DropDecision{
			Kind:         DropReschedule,
			ScheduledID:  item.ID,
			TargetDayKey: targetDayKey,
		}, nil
	}

	return DropDecision{}, common.ErrInvalidState
}
