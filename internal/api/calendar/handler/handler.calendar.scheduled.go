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

// ScheduledHandler serves the dated items on the calendar.
type ScheduledHandler struct {
	service *calsvc.CalendarService
}

// NewScheduledHandler creates a ScheduledHandler.
func NewScheduledHandler() (*ScheduledHandler, error) {
	service, err := calsvc.GetCalendarService()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar service: %v", err)
	}
	return &ScheduledHandler{service: service}, nil
}

// FindOne returns one scheduled item by id.
func (h *ScheduledHandler) FindOne(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		item, err := h.service.FindScheduled(c.Params("id"))
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, item, nil)
	})
}

// Create adds a scheduled item directly on a day, without a pipeline
// ancestor.
func (h *ScheduledHandler) Create(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input caldto.ScheduledCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		item, err := h.service.CreateScheduled(calendar.ScheduledInput{
			Title:       input.Title,
			Description: input.Description,
			ContentType: input.ContentType,
			DayKey:      input.DayKey,
			Status:      input.Status,
			Priority:    input.Priority,
		})
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCalendarMutation("create", "scheduled_item", item.ID, c, map[string]interface{}{
			"dayKey": item.DayKey,
		})
		return basehdl.HandleResponse(c, item, nil)
	})
}

// Update shallow-merges a partial edit into a scheduled item. A dayKey in
// the payload moves the item directly, without the reschedule
// confirmation.
func (h *ScheduledHandler) Update(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")
		var input caldto.ScheduledUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		item, err := h.service.Edit(id, calendar.ItemPatch{
			Title:       input.Title,
			Description: input.Description,
			ContentType: input.ContentType,
			Status:      input.Status,
			Priority:    input.Priority,
			DayKey:      input.DayKey,
		})
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCalendarMutation("update", "scheduled_item", id, c, nil)
		return basehdl.HandleResponse(c, item, nil)
	})
}

// Delete removes a scheduled item.
func (h *ScheduledHandler) Delete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")
		if err := h.service.Delete(id); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCalendarMutation("delete", "scheduled_item", id, c, nil)
		return basehdl.HandleResponse(c, fiber.Map{"id": id}, nil)
	})
}

// Unschedule returns a scheduled item to the pipeline as a fresh idea.
func (h *ScheduledHandler) Unschedule(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")
		idea, err := h.service.Unschedule(id)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCalendarMutation("unschedule", "pipeline_item", idea.ID, c, map[string]interface{}{
			"scheduledId": id,
		})
		return basehdl.HandleResponse(c, idea, nil)
	})
}
