package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"fvs_dash/internal/common"
)

// JSONResponse writes a JSON response with an explicit utf-8 charset.
// Duplicated from the handler package to avoid an import cycle with the
// fiber error handler.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleErrorResponse renders an error in the standard envelope. Used by
// the app-level fiber error handler.
func HandleErrorResponse(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		})
		return
	}
	JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": err.Error(),
		"status":  "error",
	})
}
