// Package router đăng ký các route thuộc domain auth: signup, login.
package router

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/auth/handler"
	authsvc "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/auth/service"
	apirouter "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/router"
)

// Register đăng ký route auth với store MongoDB
func Register(api fiber.Router, r *apirouter.Router) error {
	store, err := authsvc.NewAccountStoreMongo()
	if err != nil {
		return fmt.Errorf("failed to create account store: %w", err)
	}
	return RegisterWithStore(api, r, store)
}

// RegisterWithStore đăng ký route auth với store truyền vào
func RegisterWithStore(api fiber.Router, r *apirouter.Router, store authsvc.AccountStore) error {
	cfg := r.Config()
	if cfg == nil || cfg.JwtSecret == "" {
		return fmt.Errorf("JWT_SECRET is required to register auth routes")
	}
	ttl := time.Duration(cfg.JwtTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	userService := authsvc.NewUserService(store, cfg.JwtSecret, ttl)
	return registerUserRoutes(api, userService)
}

func registerUserRoutes(api fiber.Router, userService *authsvc.UserService) error {
	userHandler := authhdl.NewUserHandler(userService)
	api.Post("/auth/signup", userHandler.HandleSignup)
	api.Post("/auth/login", userHandler.HandleLogin)
	return nil
}
