package global

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"fvs_dash/internal/calendar"
)

// InitValidator initializes the validator singleton and registers the
// custom validation rules used by the calendar DTOs.
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("day_key", validateDayKey)
	_ = Validate.RegisterValidation("content_type", validateContentType)
	_ = Validate.RegisterValidation("item_status", validateItemStatus)
	_ = Validate.RegisterValidation("item_priority", validateItemPriority)
}

// validateNoXSS rejects values carrying common XSS payloads.
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateDayKey checks the canonical YYYY-MM-DD day key format.
func validateDayKey(fl validator.FieldLevel) bool {
	return calendar.IsDayKey(fl.Field().String())
}

// validateContentType checks the closed content type enum.
func validateContentType(fl validator.FieldLevel) bool {
	return calendar.IsValidContentType(fl.Field().String())
}

// validateItemStatus checks the closed scheduled-item status enum.
func validateItemStatus(fl validator.FieldLevel) bool {
	return calendar.IsValidStatus(fl.Field().String())
}

// validateItemPriority checks the closed priority enum.
func validateItemPriority(fl validator.FieldLevel) bool {
	return calendar.IsValidPriority(fl.Field().String())
}
