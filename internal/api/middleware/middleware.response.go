package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// ErrorBody tạo body lỗi chuẩn: {success:false, message, code}
func ErrorBody(message string, code string) fiber.Map {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if code != "" {
		body["code"] = code
	}
	return body
}

// HandleErrorResponse xử lý và trả về error response cho client
// Tách riêng để tránh import cycle với handler package
func HandleErrorResponse(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return JSONResponse(c, customErr.StatusCode, ErrorBody(customErr.Message, customErr.Code.Code))
	}

	// Lỗi không xác định: 500 kèm message gốc
	return JSONResponse(c, common.StatusInternalServerError, ErrorBody(err.Error(), common.ErrCodeInternalServer.Code))
}
