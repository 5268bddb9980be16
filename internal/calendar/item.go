// Package calendar implements the scheduling engine behind the strategic
// content calendar: an in-memory store of undated pipeline ideas and dated
// scheduled items, the drag-session decision logic, the staged reschedule
// confirmation gate, and the read-side view projections.
//
// The engine never performs I/O. Persistence and user-facing notification
// are the caller's responsibility after each successful mutation.
package calendar

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentType values (closed enum).
const (
	ContentTypePodcast = "podcast" // Podcast episode
	ContentTypeShorts  = "shorts"  // Short-form video
	ContentTypeBlog    = "blog"    // Blog post
)

// ScheduledItem status values (closed enum).
const (
	StatusNew          = "new"          // Freshly created
	StatusInProduction = "inProduction" // Being produced
	StatusReview       = "review"       // In review
	StatusScheduled    = "scheduled"    // Placed on the calendar
	StatusPublished    = "published"    // Published
)

// Priority values (closed enum).
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// IsValidContentType reports whether v is a member of the content type enum.
func IsValidContentType(v string) bool {
	switch v {
	case ContentTypePodcast, ContentTypeShorts, ContentTypeBlog:
		return true
	}
	return false
}

// IsValidStatus reports whether v is a member of the status enum.
func IsValidStatus(v string) bool {
	switch v {
	case StatusNew, StatusInProduction, StatusReview, StatusScheduled, StatusPublished:
		return true
	}
	return false
}

// IsValidPriority reports whether v is a member of the priority enum.
func IsValidPriority(v string) bool {
	switch v {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// PipelineItem is a content idea that has not been placed on the calendar.
type PipelineItem struct {
	ID          string `json:"id" bson:"_id"`                                     // Item id (stable for the item's lifetime)
	Title       string `json:"title" bson:"title" index:"text"`                   // Idea title
	Description string `json:"description,omitempty" bson:"description,omitempty"` // Optional description
	ContentType string `json:"contentType" bson:"contentType" index:"single:1"`   // podcast, shorts, blog
	CreatedAt   int64  `json:"createdAt" bson:"createdAt" index:"single:-1"`      // Creation timestamp (ms)
	UpdatedAt   int64  `json:"updatedAt" bson:"updatedAt"`                        // Last update timestamp (ms)
}

// ScheduledItem is a content item assigned to a specific calendar day.
type ScheduledItem struct {
	ID          string `json:"id" bson:"_id"`                                     // Item id (distinct from any pipeline id)
	Title       string `json:"title" bson:"title" index:"text"`                   // Item title
	Description string `json:"description,omitempty" bson:"description,omitempty"` // Optional description
	ContentType string `json:"contentType" bson:"contentType" index:"single:1"`   // podcast, shorts, blog
	DayKey      string `json:"dayKey" bson:"dayKey" index:"single:1"`             // Canonical YYYY-MM-DD day key (sole scheduling attribute)
	Status      string `json:"status" bson:"status" index:"single:1"`             // new, inProduction, review, scheduled, published
	Priority    string `json:"priority" bson:"priority"`                          // low, medium, high
	CreatedAt   int64  `json:"createdAt" bson:"createdAt" index:"single:-1"`      // Creation timestamp (ms)
	UpdatedAt   int64  `json:"updatedAt" bson:"updatedAt"`                        // Last update timestamp (ms)
}

// newID returns a fresh opaque item id.
func newID() string {
	return primitive.NewObjectID().Hex()
}
