package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleErrorResponse trả về envelope lỗi thống nhất cho client.
// Tách riêng để tránh import cycle với handler package.
func HandleErrorResponse(c fiber.Ctx, err error) {
	statusCode := common.StatusInternalServerError
	message := common.MsgInternalError
	details := []interface{}{}

	var customErr *common.Error
	if errors.As(err, &customErr) {
		statusCode = customErr.StatusCode
		message = customErr.Message
		if customErr.Details != nil {
			details = append(details, customErr.Details)
		}
	} else if err != nil {
		message = err.Error()
	}

	JSONResponse(c, statusCode, fiber.Map{
		"statusCode": statusCode,
		"message":    message,
		"success":    false,
		"errors":     details,
	})
}
