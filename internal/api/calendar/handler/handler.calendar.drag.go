package calhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "fvs_dash/internal/api/base/handler"
	caldto "fvs_dash/internal/api/calendar/dto"
	calsvc "fvs_dash/internal/api/calendar/service"
	"fvs_dash/internal/calendar"
	"fvs_dash/internal/logger"
)

// DragHandler serves the drag-and-drop protocol and the reschedule
// confirmation that drag-driven moves go through.
type DragHandler struct {
	service *calsvc.CalendarService
}

// NewDragHandler creates a DragHandler.
func NewDragHandler() (*DragHandler, error) {
	service, err := calsvc.GetCalendarService()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar service: %v", err)
	}
	return &DragHandler{service: service}, nil
}

// Begin starts a drag session for a pipeline idea or a scheduled item.
func (h *DragHandler) Begin(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input caldto.DragBeginInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		source := calendar.DragSource{Kind: calendar.DragKind(input.Kind), ID: input.ID}
		if err := h.service.BeginDrag(source); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, source, nil)
	})
}

// Drop resolves the active drag against a target day. A pipeline source
// schedules immediately; a calendar source moving day stages a reschedule
// for confirmation; dropping on the item's own day does nothing.
func (h *DragHandler) Drop(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input caldto.DragDropInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		result, err := h.service.Drop(input.TargetDayKey)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		if result.Scheduled != nil {
			logger.LogCalendarMutation("schedule", "scheduled_item", result.Scheduled.ID, c, map[string]interface{}{
				"dayKey": result.Scheduled.DayKey,
				"via":    "drag",
			})
		}
		return basehdl.HandleResponse(c, result, nil)
	})
}

// End abandons the active drag without a drop. Idempotent.
func (h *DragHandler) End(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		h.service.EndDrag()
		return basehdl.HandleResponse(c, fiber.Map{"active": false}, nil)
	})
}

// Pending returns the reschedule awaiting confirmation, if any.
func (h *DragHandler) Pending(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		req, ok := h.service.PendingReschedule()
		if !ok {
			return basehdl.HandleResponse(c, fiber.Map{"pending": nil}, nil)
		}
		return basehdl.HandleResponse(c, fiber.Map{"pending": req}, nil)
	})
}

// Confirm applies the staged reschedule.
func (h *DragHandler) Confirm(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		item, err := h.service.ConfirmReschedule()
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCalendarMutation("reschedule", "scheduled_item", item.ID, c, map[string]interface{}{
			"dayKey": item.DayKey,
		})
		return basehdl.HandleResponse(c, item, nil)
	})
}

// Cancel discards the staged reschedule. The item never left its original
// day, so the calendar needs no rollback.
func (h *DragHandler) Cancel(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		h.service.CancelReschedule()
		return basehdl.HandleResponse(c, fiber.Map{"pending": nil}, nil)
	})
}
