// Package basehdl cung cấp các tiện ích dùng chung cho handler: parse body, validate,
// đọc tham số id, lấy user hiện tại và chuẩn hóa response.
package basehdl

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/middleware"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/global"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/logger"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/utility"
)

// BaseHandler được embed vào các domain handler
type BaseHandler struct{}

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	return middleware.JSONResponse(c, statusCode, data)
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler) SafeHandler(c fiber.Ctx, handler func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithRequest(c).WithField("stack", string(debug.Stack())).Errorf("panic in handler: %v", r)

			h.HandleResponse(c, 0, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Unexpected server error: %v", r),
				common.StatusInternalServerError,
				nil,
			))
			err = nil
		}
	}()
	return handler()
}

// HandleResponse chuẩn hóa response trả về cho client.
// Có lỗi thì trả body {success:false, message, code}; không có lỗi thì trả data với statusCode.
func (h *BaseHandler) HandleResponse(c fiber.Ctx, statusCode int, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if !errors.As(err, &customErr) || customErr.StatusCode >= common.StatusInternalServerError {
			logger.WithRequest(c).WithError(err).Error("Request failed")
		}
		_ = middleware.HandleErrorResponse(c, err)
		return
	}
	_ = JSONResponse(c, statusCode, data)
}

// ParseRequestBody parse JSON body vào out. Body rỗng được coi như {}.
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, out interface{}) error {
	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidJSON, common.StatusBadRequest, err)
	}
	return nil
}

// ValidateInput kiểm tra struct tag validate bằng validator toàn cục
func (h *BaseHandler) ValidateInput(input interface{}) error {
	err := global.Validator().Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, err)
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
	}
	return common.NewError(
		common.ErrCodeValidationInput,
		fmt.Sprintf("%s %s", common.MsgValidationError, strings.Join(msgs, "; ")),
		common.StatusBadRequest,
		msgs,
	)
}

// ParseIDParam đọc tham số route và kiểm tra định dạng ObjectID.
// Sai định dạng thì trả lỗi 400 với message truyền vào.
func (h *BaseHandler) ParseIDParam(c fiber.Ctx, name string, invalidMsg string) (string, error) {
	id := c.Params(name)
	if !utility.IsValidID(id) {
		return "", common.NewBadRequest(invalidMsg)
	}
	return id, nil
}

// CurrentUserID lấy user id đã được AuthMiddleware gắn vào context
func (h *BaseHandler) CurrentUserID(c fiber.Ctx) (string, error) {
	userID, ok := c.Locals(middleware.LocalUserID).(string)
	if !ok || userID == "" {
		return "", common.ErrTokenMissing
	}
	return userID, nil
}
