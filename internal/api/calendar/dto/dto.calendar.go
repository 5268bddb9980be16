package caldto

// IdeaCreateInput is the payload for adding a pipeline idea.
type IdeaCreateInput struct {
	Title       string `json:"title" validate:"required,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
	ContentType string `json:"contentType" validate:"required,content_type"`
}

// IdeaUpdateInput is the payload for a partial pipeline idea edit. Nil
// fields stay unchanged.
type IdeaUpdateInput struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,no_xss"`
	Description *string `json:"description,omitempty" validate:"omitempty,no_xss"`
	ContentType *string `json:"contentType,omitempty" validate:"omitempty,content_type"`
}

// ScheduledCreateInput creates a scheduled item directly on a day, without
// a pipeline ancestor.
type ScheduledCreateInput struct {
	Title       string `json:"title" validate:"required,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
	ContentType string `json:"contentType" validate:"required,content_type"`
	DayKey      string `json:"dayKey" validate:"required,day_key"`
	Status      string `json:"status,omitempty" validate:"omitempty,item_status"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,item_priority"`
}

// ScheduledUpdateInput is the payload for a partial scheduled item edit.
// A dayKey here is a direct form edit and moves the item without the
// reschedule confirmation.
type ScheduledUpdateInput struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,no_xss"`
	Description *string `json:"description,omitempty" validate:"omitempty,no_xss"`
	ContentType *string `json:"contentType,omitempty" validate:"omitempty,content_type"`
	Status      *string `json:"status,omitempty" validate:"omitempty,item_status"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,item_priority"`
	DayKey      *string `json:"dayKey,omitempty" validate:"omitempty,day_key"`
}

// ScheduleInput schedules a pipeline idea onto a day.
type ScheduleInput struct {
	PipelineID string `json:"pipelineId" validate:"required"`
	DayKey     string `json:"dayKey" validate:"required,day_key"`
}

// DragBeginInput starts a drag session.
type DragBeginInput struct {
	Kind string `json:"kind" validate:"required,oneof=pipeline calendar"`
	ID   string `json:"id" validate:"required"`
}

// DragDropInput resolves a drop over a day cell.
type DragDropInput struct {
	TargetDayKey string `json:"targetDayKey" validate:"required,day_key"`
}

// ViewFilterInput carries the optional query filters shared by the view
// endpoints. "all" is equivalent to omitting the filter.
type ViewFilterInput struct {
	ContentType string `query:"contentType" validate:"omitempty,content_type|eq=all"`
	Status      string `query:"status" validate:"omitempty,item_status|eq=all"`
}

// MonthViewInput addresses one month of the grid view.
type MonthViewInput struct {
	Year  int `query:"year" validate:"required,min=1"`
	Month int `query:"month" validate:"required,min=1,max=12"`
}

// UpcomingViewInput addresses the upcoming list view.
type UpcomingViewInput struct {
	From  string `query:"from" validate:"omitempty,day_key"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
}
