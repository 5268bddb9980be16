package calhdl

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "fvs_dash/internal/api/base/handler"
	caldto "fvs_dash/internal/api/calendar/dto"
	calsvc "fvs_dash/internal/api/calendar/service"
	"fvs_dash/internal/calendar"
)

// ViewHandler serves the read-only projections of the calendar.
type ViewHandler struct {
	service *calsvc.CalendarService
}

// NewViewHandler creates a ViewHandler.
func NewViewHandler() (*ViewHandler, error) {
	service, err := calsvc.GetCalendarService()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar service: %v", err)
	}
	return &ViewHandler{service: service}, nil
}

// filterCriteria reads the shared contentType/status query filters.
func filterCriteria(c fiber.Ctx) (calendar.FilterCriteria, error) {
	input := caldto.ViewFilterInput{
		ContentType: c.Query("contentType"),
		Status:      c.Query("status"),
	}
	if err := basehdl.ValidateInput(&input); err != nil {
		return calendar.FilterCriteria{}, err
	}
	return calendar.FilterCriteria{
		ContentType: input.ContentType,
		Status:      input.Status,
	}, nil
}

// Month returns the month grid: one cell per day of the requested month,
// empty days included.
func (h *ViewHandler) Month(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := caldto.MonthViewInput{
			Year:  fiber.Query[int](c, "year"),
			Month: fiber.Query[int](c, "month"),
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		criteria, err := filterCriteria(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		grid, err := h.service.MonthView(input.Year, time.Month(input.Month), criteria)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, grid, nil)
	})
}

// Agenda returns every scheduled item ordered by day.
func (h *ViewHandler) Agenda(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		criteria, err := filterCriteria(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, h.service.AgendaView(criteria), nil)
	})
}

// Upcoming returns the items scheduled on or after a day, nearest first.
// "from" defaults to today, "limit" to 5.
func (h *ViewHandler) Upcoming(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := caldto.UpcomingViewInput{
			From:  c.Query("from"),
			Limit: fiber.Query[int](c, "limit"),
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		if input.From == "" {
			input.From = calendar.ToDayKey(time.Now())
		}
		if input.Limit == 0 {
			input.Limit = 5
		}
		criteria, err := filterCriteria(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		items, err := h.service.UpcomingView(input.From, input.Limit, criteria)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, items, nil)
	})
}
