package authhdl

import (
	"github.com/gofiber/fiber/v3"

	authdto "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/auth/dto"
	authsvc "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/auth/service"
	basehdl "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/base/handler"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/logger"
)

// UserHandler xử lý các route đăng ký và đăng nhập
type UserHandler struct {
	basehdl.BaseHandler
	userService *authsvc.UserService
}

// NewUserHandler tạo mới UserHandler
func NewUserHandler(userService *authsvc.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func authBody(result *authsvc.AuthResult) fiber.Map {
	return fiber.Map{
		"success": true,
		"token":   result.Token,
		"user":    result.User,
	}
}

// HandleSignup đăng ký tài khoản mới, trả về 201 {success, token, user}
func (h *UserHandler) HandleSignup(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.SignupInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}

		result, err := h.userService.Signup(c.Context(), &input)
		logger.LogAuth(c, "signup", input.Email, err == nil)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		h.HandleResponse(c, common.StatusCreated, authBody(result), nil)
		return nil
	})
}

// HandleLogin đăng nhập, trả về 200 {success, token, user}
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}

		result, err := h.userService.Login(c.Context(), &input)
		logger.LogAuth(c, "login", input.Email, err == nil)
		if err != nil {
			h.HandleResponse(c, 0, nil, err)
			return nil
		}
		h.HandleResponse(c, common.StatusOK, authBody(result), nil)
		return nil
	})
}
