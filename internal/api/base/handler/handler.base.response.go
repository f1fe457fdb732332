package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"github.com/AdityaSinghRajawat/VideoVault-server/internal/common"
	"github.com/AdityaSinghRajawat/VideoVault-server/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SendSuccess trả về envelope thành công thống nhất cho toàn bộ API:
// {statusCode, data, message, success: true}
func SendSuccess(c fiber.Ctx, statusCode int, data interface{}, message string) error {
	if message == "" {
		message = common.MsgSuccess
	}
	return JSONResponse(c, statusCode, fiber.Map{
		"statusCode": statusCode,
		"data":       data,
		"message":    message,
		"success":    true,
	})
}

// SendError trả về envelope lỗi thống nhất cho toàn bộ API:
// {statusCode, message, success: false, errors: []}
func SendError(c fiber.Ctx, err error) error {
	statusCode := common.StatusInternalServerError
	message := common.MsgInternalError
	var details []interface{}

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

	if details == nil {
		details = []interface{}{}
	}

	// Lỗi 5xx được ghi vào error log để truy vết
	if statusCode >= 500 {
		logger.GetErrorLogger().WithFields(map[string]interface{}{
			"path":   c.Path(),
			"method": c.Method(),
			"status": statusCode,
		}).Error(message)
	}

	return JSONResponse(c, statusCode, fiber.Map{
		"statusCode": statusCode,
		"message":    message,
		"success":    false,
		"errors":     details,
	})
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo rằng server luôn trả về response cho client, kể cả khi có panic xảy ra.
//
// Parameters:
// - c: Fiber context
// - handler: Function xử lý chính của handler
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Phương thức này đảm bảo format response thống nhất trong toàn bộ ứng dụng.
//
// Parameters:
// - c: Fiber context
// - data: Dữ liệu trả về cho client (có thể là nil nếu chỉ trả về lỗi)
// - err: Lỗi nếu có (nil nếu không có lỗi)
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		SendError(c, err)
		return
	}
	SendSuccess(c, common.StatusOK, data, common.MsgSuccess)
}

// HandleCreated trả về response thành công với status 201 (tạo mới)
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleCreated(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		SendError(c, err)
		return
	}
	SendSuccess(c, common.StatusCreated, data, common.MsgCreated)
}
