package calendar

import (
	"fvs_dash/internal/common"
)

// RescheduleRequest stages a move of an already-scheduled item to a new
// day, pending user confirmation.
type RescheduleRequest struct {
	ScheduledID  string `json:"scheduledId"`
	TargetDayKey string `json:"targetDayKey"`
}

// Gate is the confirmation checkpoint for drag-driven reschedules. Between
// Stage and Confirm/Cancel the store is untouched: the calendar keeps
// showing the item on its original day, so a cancelled confirmation needs
// no visual rollback.
type Gate struct {
	pending *RescheduleRequest
}

// NewGate returns a gate with nothing staged.
func NewGate() *Gate {
	return &Gate{}
}

// Stage stores the request as the single pending reschedule. Staging while
// one is already pending replaces it; only one confirmation can be open at
// a time, and the newer drag wins.
func (g *Gate) Stage(req RescheduleRequest) {
	g.pending = &req
}

// Pending returns the staged request, if any.
func (g *Gate) Pending() (RescheduleRequest, bool) {
	if g.pending == nil {
		return RescheduleRequest{}, false
	}
	return *g.pending, true
}

// Confirm applies the staged request against the store and clears the
// pending state. The staged request is consumed even when the apply fails
// (a stale id after a concurrent delete), so the gate never wedges.
func (g *Gate) Confirm(store *Store) (ScheduledItem, error) {
	if g.pending == nil {
		return ScheduledItem{}, common.ErrNoPendingReschedule
	}

	req := *g.pending
	g.pending = nil

	return store.Reschedule(req.ScheduledID, req.TargetDayKey)
}

// Cancel discards the staged request without touching the store.
// Idempotent: cancelling with nothing staged is a no-op.
func (g *Gate) Cancel() {
	g.pending = nil
}
