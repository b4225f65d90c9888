package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	authsvc "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/auth/service"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/logger"
)

// LocalUserID là key trong c.Locals chứa id của user đã xác thực
const LocalUserID = "user_id"

// AuthMiddleware xác thực JWT trong header Authorization ("Bearer <token>" hoặc token trần)
// và gắn user id vào c.Locals trước khi handler chạy.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get("Authorization"))
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Missing Authorization header")
			return HandleErrorResponse(c, common.ErrTokenMissing)
		}

		token := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = strings.TrimSpace(parts[1])
		}

		claims, err := authsvc.ParseToken(secret, token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Invalid token")
			return HandleErrorResponse(c, common.ErrTokenInvalid)
		}

		c.Locals(LocalUserID, claims.UserID)
		return c.Next()
	}
}
