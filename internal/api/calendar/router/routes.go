// Package router registers the calendar domain routes: pipeline CRUD,
// scheduled CRUD, the drag protocol, the reschedule confirmation and the
// read-only views.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	calhdl "fvs_dash/internal/api/calendar/handler"
	apirouter "fvs_dash/internal/api/router"
)

// Register mounts all calendar routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	pipelineHandler, err := calhdl.NewPipelineHandler()
	if err != nil {
		return fmt.Errorf("create pipeline handler: %w", err)
	}
	scheduledHandler, err := calhdl.NewScheduledHandler()
	if err != nil {
		return fmt.Errorf("create scheduled handler: %w", err)
	}
	dragHandler, err := calhdl.NewDragHandler()
	if err != nil {
		return fmt.Errorf("create drag handler: %w", err)
	}
	viewHandler, err := calhdl.NewViewHandler()
	if err != nil {
		return fmt.Errorf("create view handler: %w", err)
	}

	// Pipeline: the undated idea backlog.
	pipeline := v1.Group("/pipeline")
	pipeline.Get("/", pipelineHandler.List)
	pipeline.Post("/", pipelineHandler.Create)
	pipeline.Put("/:id", pipelineHandler.Update)
	pipeline.Delete("/:id", pipelineHandler.Delete)
	pipeline.Post("/schedule", pipelineHandler.Schedule)

	// Scheduled: the dated items on the calendar.
	scheduled := v1.Group("/scheduled")
	scheduled.Post("/", scheduledHandler.Create)
	scheduled.Get("/:id", scheduledHandler.FindOne)
	scheduled.Put("/:id", scheduledHandler.Update)
	scheduled.Delete("/:id", scheduledHandler.Delete)
	scheduled.Post("/:id/unschedule", scheduledHandler.Unschedule)

	// Drag protocol and the reschedule confirmation it feeds.
	drag := v1.Group("/calendar/drag")
	drag.Post("/begin", dragHandler.Begin)
	drag.Post("/drop", dragHandler.Drop)
	drag.Post("/end", dragHandler.End)

	reschedule := v1.Group("/calendar/reschedule")
	reschedule.Get("/pending", dragHandler.Pending)
	reschedule.Post("/confirm", dragHandler.Confirm)
	reschedule.Post("/cancel", dragHandler.Cancel)

	// Views.
	views := v1.Group("/calendar/views")
	views.Get("/month", viewHandler.Month)
	views.Get("/agenda", viewHandler.Agenda)
	views.Get("/upcoming", viewHandler.Upcoming)

	return nil
}
