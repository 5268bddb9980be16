package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP status code constants used across handlers and services.
const (
	// Success codes (2xx)
	StatusOK        = 200
	StatusCreated   = 201
	StatusAccepted  = 202
	StatusNoContent = 204

	// Client error codes (4xx)
	StatusBadRequest         = 400
	StatusUnauthorized       = 401
	StatusForbidden          = 403
	StatusNotFound           = 404
	StatusMethodNotAllowed   = 405
	StatusConflict           = 409
	StatusGone               = 410
	StatusPreconditionFailed = 412
	StatusTooManyRequests    = 429

	// Server error codes (5xx)
	StatusInternalServerError = 500
	StatusNotImplemented      = 501
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

// Response messages.
const (
	MsgSuccess = "Operation successful"
	MsgCreated = "Created successfully"

	MsgBadRequest      = "Invalid request"
	MsgNotFound        = "Resource not found"
	MsgConflict        = "Data conflict"
	MsgTooManyRequests = "Too many requests"
	MsgInternalError   = "Internal system error"

	MsgValidationError = "Invalid data"
	MsgDatabaseError   = "Database interaction error"
	MsgInvalidFormat   = "Invalid data format"
)

// ErrorCode identifies an error class in the hierarchical taxonomy.
type ErrorCode struct {
	Code        string // Error code (e.g. VAL_001)
	Category    string // Category (e.g. Validation)
	SubCategory string // Sub-category (e.g. Input)
	Description string // Detailed description
}

// Error codes, grouped by category prefix.
var (
	// System errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Internal system error",
	}

	// Validation errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "General data validation error",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Invalid input data",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Invalid data format",
	}

	// Database errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "General database error",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Database connection error",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Data query error",
	}

	// Business logic errors (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "General business logic error",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Business state error",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Business operation error",
	}

	// Calendar protocol errors (CAL_xxx)
	ErrCodeCalendarDate = ErrorCode{
		Code:        "CAL_001",
		Category:    "Calendar",
		SubCategory: "Date",
		Description: "Day key parse or canonicalization error",
	}

	ErrCodeCalendarDrag = ErrorCode{
		Code:        "CAL_002",
		Category:    "Calendar",
		SubCategory: "Drag",
		Description: "Drag gesture protocol violation",
	}

	ErrCodeCalendarGate = ErrorCode{
		Code:        "CAL_003",
		Category:    "Calendar",
		SubCategory: "Gate",
		Description: "Reschedule confirmation protocol violation",
	}
)

// Error is the detailed error structure returned by every service operation.
type Error struct {
	Code       ErrorCode // Detailed error code
	Message    string    // Error message
	StatusCode int       // HTTP status code
	Details    any       // Additional error details
}

// Error returns the error message.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether the error matches target (supports errors.Is).
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError creates a new error with full information.
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors.
var (
	// Validation errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Invalid input data", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Invalid data format", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Missing required field", StatusBadRequest, nil)

	// Database errors
	ErrNotFound    = NewError(ErrCodeDatabaseQuery, "Data not found", StatusNotFound, nil)
	ErrDuplicate   = NewError(ErrCodeDatabaseQuery, "Data already exists", StatusConflict, nil)
	ErrConstraint  = NewError(ErrCodeDatabaseQuery, "Data constraint violation", StatusBadRequest, nil)
	ErrConnection  = NewError(ErrCodeDatabaseConnection, "Database connection error", StatusServiceUnavailable, nil)
	ErrTransaction = NewError(ErrCodeDatabaseQuery, "Database transaction error", StatusInternalServerError, nil)

	// Business logic errors
	ErrInvalidState     = NewError(ErrCodeBusinessState, "Invalid state", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "Invalid operation", StatusBadRequest, nil)

	// Calendar protocol errors
	ErrInvalidDateInput     = NewError(ErrCodeCalendarDate, "Value cannot be resolved to a calendar day", StatusBadRequest, nil)
	ErrDragAlreadyActive    = NewError(ErrCodeCalendarDrag, "A drag session is already active", StatusConflict, nil)
	ErrNoActiveDrag         = NewError(ErrCodeCalendarDrag, "No drag session is active", StatusPreconditionFailed, nil)
	ErrNoPendingReschedule  = NewError(ErrCodeCalendarGate, "No reschedule is pending confirmation", StatusPreconditionFailed, nil)
)

// MongoDB specific errors.
var (
	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, "MongoDB connection error", StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, "MongoDB network error", StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, "MongoDB connection timeout", StatusServiceUnavailable, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, "MongoDB query error", StatusInternalServerError, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, "MongoDB write error", StatusInternalServerError, nil)
	ErrMongoDuplicate  = NewError(ErrCodeDatabaseQuery, "Duplicate data in MongoDB", StatusConflict, nil)
	ErrMongoSystem     = NewError(ErrCodeDatabase, "MongoDB system error", StatusInternalServerError, nil)
)

// ConvertMongoError converts a MongoDB driver error to a system error.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// ErrNotFound passes through untouched so callers can branch on it.
	if errors.Is(err, ErrNotFound) {
		return err
	}

	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return ErrMongoConnection
		case mongoErr.Code >= 300 && mongoErr.Code < 400:
			return ErrMongoQuery
		case mongoErr.Code >= 400 && mongoErr.Code < 500:
			return ErrMongoWrite
		case mongoErr.Code >= 500:
			return ErrMongoSystem
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
