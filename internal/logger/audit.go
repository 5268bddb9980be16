package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AuditAction describes one audited action.
type AuditAction struct {
	Action       string                 `json:"action"`        // Action name (e.g. "calendar_schedule")
	ResourceID   string                 `json:"resource_id"`   // Affected resource id
	ResourceType string                 `json:"resource_type"` // Resource type (e.g. "scheduled_item")
	IP           string                 `json:"ip"`            // Client IP
	UserAgent    string                 `json:"user_agent"`    // User agent
	Details      map[string]interface{} `json:"details"`       // Additional details
	Timestamp    time.Time              `json:"timestamp"`     // When it happened
}

// LogAction writes one audit entry.
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}

	audit := AuditAction{
		Action:    action,
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
		Details:   details,
		Timestamp: time.Now(),
	}

	if requestID := c.Get("X-Request-ID"); requestID != "" {
		audit.Details["request_id"] = requestID
	}

	GetAuditLogger().WithFields(logrus.Fields{
		"action":        audit.Action,
		"resource_id":   audit.ResourceID,
		"resource_type": audit.ResourceType,
		"ip":            audit.IP,
		"user_agent":    audit.UserAgent,
		"details":       audit.Details,
		"timestamp":     audit.Timestamp,
	}).Info("Audit log")
}

// LogCalendarMutation logs a calendar mutation (schedule, reschedule,
// unschedule, edit, delete) against the audit trail.
func LogCalendarMutation(operation string, resourceType string, resourceID string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["operation"] = operation
	details["resource_type"] = resourceType
	details["resource_id"] = resourceID

	LogAction("calendar_"+operation, c, details)
}
