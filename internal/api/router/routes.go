package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/Devansu-Yadav/TechTv-BackEnd/config"
	basehdl "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/base/handler"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/middleware"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
)

// ============================================================================
// LƯU Ý: CÁCH ĐĂNG KÝ MIDDLEWARE TRONG FIBER V3
// ============================================================================
//
// Không truyền middleware trực tiếp vào route: router.Get(path, mw, handler).
// Tạo group theo prefix rồi gắn middleware bằng .Use() qua RegisterGroupWithMiddleware,
// sau đó đăng ký route trên group trả về.
//
// ============================================================================

// Router giữ cấu hình dùng chung cho các domain router
type Router struct {
	app    *fiber.App
	config *config.Configuration
}

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{Base: "/api"}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App, cfg *config.Configuration) *Router {
	return &Router{
		app:    app,
		config: cfg,
	}
}

// Config trả về cấu hình server
func (r *Router) Config() *config.Configuration {
	return r.config
}

// AuthMiddleware tạo middleware xác thực JWT với secret trong cấu hình
func (r *Router) AuthMiddleware() fiber.Handler {
	secret := ""
	if r.config != nil {
		secret = r.config.JwtSecret
	}
	return middleware.AuthMiddleware(secret)
}

// RegisterGroupWithMiddleware tạo group theo prefix và gắn middleware bằng .Use().
// Middleware chỉ áp dụng cho các route đăng ký trên group trả về.
//
// Ví dụ sử dụng:
//
//	user := RegisterGroupWithMiddleware(api, "/user", []fiber.Handler{r.AuthMiddleware()})
//	user.Get("/likes", handler.HandleList)
func RegisterGroupWithMiddleware(router fiber.Router, prefix string, middlewares []fiber.Handler) fiber.Router {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}
	return routeGroup
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(api fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng. Caller truyền lần lượt Register của từng domain để tránh import cycle.
// Route health và handler 404 cuối cùng được đăng ký ở đây.
func SetupRoutes(app *fiber.App, cfg *config.Configuration, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	api := app.Group(prefix.Base)
	r := NewRouter(app, cfg)

	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	api.Get("/system/health", systemHandler.HandleHealth)

	for _, reg := range regs {
		if err := reg(api, r); err != nil {
			return err
		}
	}

	// Route không khớp
	app.Use(func(c fiber.Ctx) error {
		return middleware.JSONResponse(c, common.StatusNotFound, middleware.ErrorBody(common.MsgRouteNotFound, ""))
	})
	return nil
}
