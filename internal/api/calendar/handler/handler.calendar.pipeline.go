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

// PipelineHandler serves the undated idea pipeline.
type PipelineHandler struct {
	service *calsvc.CalendarService
}

// NewPipelineHandler creates a PipelineHandler.
func NewPipelineHandler() (*PipelineHandler, error) {
	service, err := calsvc.GetCalendarService()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar service: %v", err)
	}
	return &PipelineHandler{service: service}, nil
}

// List returns the pipeline, newest first.
func (h *PipelineHandler) List(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		return basehdl.HandleResponse(c, h.service.PipelineItems(), nil)
	})
}

// Create adds a pipeline idea.
func (h *PipelineHandler) Create(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input caldto.IdeaCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		item, err := h.service.AddIdea(calendar.IdeaInput{
			Title:       input.Title,
			Description: input.Description,
			ContentType: input.ContentType,
		})
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCalendarMutation("create", "pipeline_item", item.ID, c, map[string]interface{}{
			"contentType": item.ContentType,
		})
		return basehdl.HandleResponse(c, item, nil)
	})
}

// Update applies a partial edit to a pipeline idea.
func (h *PipelineHandler) Update(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")
		var input caldto.IdeaUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		item, err := h.service.UpdateIdea(id, calendar.IdeaPatch{
			Title:       input.Title,
			Description: input.Description,
			ContentType: input.ContentType,
		})
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCalendarMutation("update", "pipeline_item", id, c, nil)
		return basehdl.HandleResponse(c, item, nil)
	})
}

// Delete removes a pipeline idea.
func (h *PipelineHandler) Delete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id := c.Params("id")
		if err := h.service.DeleteIdea(id); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCalendarMutation("delete", "pipeline_item", id, c, nil)
		return basehdl.HandleResponse(c, fiber.Map{"id": id}, nil)
	})
}

// Schedule converts a pipeline idea into a scheduled item on a day.
func (h *PipelineHandler) Schedule(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input caldto.ScheduleInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		item, err := h.service.Schedule(input.PipelineID, input.DayKey)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		logger.LogCalendarMutation("schedule", "scheduled_item", item.ID, c, map[string]interface{}{
			"pipelineId": input.PipelineID,
			"dayKey":     item.DayKey,
		})
		return basehdl.HandleResponse(c, item, nil)
	})
}
