package main

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"

	"github.com/Devansu-Yadav/TechTv-BackEnd/config"
	authrouter "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/auth/router"
	catalogrouter "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/catalog/router"
	libraryrouter "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/library/router"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/middleware"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/router"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/database"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/global"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/logger"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/utility"
)

const healthPath = "/api/system/health"

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết và route của mọi domain.
// Trả về thêm Redis storage của rate limiter (nil nếu dùng bộ nhớ) để đóng khi tắt server.
func InitFiberApp() (*fiber.App, *database.RedisStorage) {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	redisStorage, err := database.NewRedisStorage(cfg, "techtv:limiter:")
	if err != nil {
		// Redis lỗi thì rate limiter quay về lưu trong bộ nhớ
		log.WithError(err).Warn("Redis unavailable, rate limiter falls back to memory storage")
		redisStorage = nil
	}

	// Tránh typed-nil: chỉ gán interface khi có Redis
	var storage fiber.Storage
	if redisStorage != nil {
		storage = redisStorage
	}

	app, err := newFiberApp(cfg, storage,
		catalogrouter.Register,
		libraryrouter.Register,
		authrouter.Register,
	)
	if err != nil {
		log.Fatalf("Failed to setup routes: %v", err)
	}
	return app, redisStorage
}

// newFiberApp dựng app với middleware stack và các hàm đăng ký route truyền vào
func newFiberApp(cfg *config.Configuration, storage fiber.Storage, regs ...router.RegisterFunc) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		// =========================================
		// 1. CẤU HÌNH CƠ BẢN
		// =========================================
		AppName:       "TechTV API",
		ServerHeader:  "TechTV API",
		StrictRouting: false,
		CaseSensitive: true,
		UnescapePath:  true,

		// =========================================
		// 2. CẤU HÌNH PERFORMANCE
		// =========================================
		BodyLimit:       1 * 1024 * 1024, // Body chỉ chứa JSON nhỏ (1MB)
		Concurrency:     256 * 1024,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,

		// =========================================
		// 3. CẤU HÌNH TIMEOUT
		// =========================================
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		// =========================================
		// 4. CẤU HÌNH ERROR HANDLING
		// =========================================
		ErrorHandler: errorHandler,
	})

	// =========================================
	// MIDDLEWARE STACK
	// =========================================

	// 1. Request ID Middleware - ID duy nhất cho mỗi request để trace
	app.Use(requestid.New(requestid.Config{
		Header:    "X-Request-ID",
		Generator: uuid.NewString,
	}))

	// 2. CORS Middleware - đặt trước các middleware khác để xử lý preflight
	app.Use(cors.New(corsConfig(cfg)))

	// 3. Security Headers Middleware
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// 4. Rate Limiting Middleware - chỉ bật khi được enable và Max > 0
	log := logger.GetAppLogger()
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiterConfig(cfg, storage)))
		log.Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
	} else {
		log.Info("Rate limiting disabled")
	}

	// 5. Recover Middleware - panic được chuyển cho ErrorHandler
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithField("panic", e).Error("Panic recovered")
		},
	}))

	if err := router.SetupRoutes(app, cfg, regs...); err != nil {
		return nil, err
	}
	return app, nil
}

// errorHandler trả về lỗi theo format {success:false, message, code}
func errorHandler(c fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		errorCode := common.ErrCodeInternalServer.Code
		switch fiberErr.Code {
		case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge, fiber.StatusMethodNotAllowed:
			errorCode = common.ErrCodeValidationInput.Code
		case fiber.StatusUnauthorized:
			errorCode = common.ErrCodeAuthToken.Code
		case fiber.StatusNotFound:
			errorCode = common.ErrCodeDatabaseQuery.Code
		case fiber.StatusTooManyRequests:
			errorCode = common.ErrCodeBusinessOperation.Code
		}
		return middleware.JSONResponse(c, fiberErr.Code, middleware.ErrorBody(fiberErr.Message, errorCode))
	}

	var customErr *common.Error
	if errors.As(err, &customErr) {
		return middleware.HandleErrorResponse(c, customErr)
	}

	// Lỗi không xác định (kể cả panic): không trả message gốc ra ngoài
	logger.WithRequest(c).WithError(err).Error("Request error")
	return middleware.JSONResponse(c, common.StatusInternalServerError,
		middleware.ErrorBody(common.MsgInternalError, common.ErrCodeInternalServer.Code))
}

func corsConfig(cfg *config.Configuration) cors.Config {
	allowOrigins := utility.SplitAndTrim(cfg.CORS_Origins)
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	allowCredentials := cfg.CORS_AllowCredentials
	if len(allowOrigins) == 1 && allowOrigins[0] == "*" {
		// Fiber không cho phép credentials với wildcard origin
		allowCredentials = false
	}

	return cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: allowCredentials,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}
}

func limiterConfig(cfg *config.Configuration, storage fiber.Storage) limiter.Config {
	return limiter.Config{
		Max:        cfg.RateLimit_Max,
		Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
		Storage:    storage,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return middleware.JSONResponse(c, common.StatusTooManyRequests,
				middleware.ErrorBody(common.MsgTooManyRequests, common.ErrCodeBusinessOperation.Code))
		},
		Next: func(c fiber.Ctx) bool {
			// Bỏ qua health check và preflight
			return c.Path() == healthPath || c.Method() == fiber.MethodOptions
		},
	}
}
