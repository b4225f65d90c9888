package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// LogAction ghi một hành động thay đổi dữ liệu người dùng vào audit log.
// action ví dụ: "likes.add", "history.clear", "playlists.videos.remove"
func LogAction(c fiber.Ctx, action string, resourceID string, details map[string]interface{}) {
	fields := logrus.Fields{
		"action":      action,
		"resource_id": resourceID,
		"ip":          c.IP(),
		"user_agent":  c.Get("User-Agent"),
	}

	if userID, ok := c.Locals("user_id").(string); ok {
		fields["user_id"] = userID
	}
	if requestID := c.GetRespHeader("X-Request-ID"); requestID != "" {
		fields["request_id"] = requestID
	}
	if len(details) > 0 {
		fields["details"] = details
	}

	GetAuditLogger().WithFields(fields).Info("Audit log")
}

// LogAuth ghi các thao tác xác thực (signup, login, login thất bại)
func LogAuth(c fiber.Ctx, action string, email string, success bool) {
	GetAuditLogger().WithFields(logrus.Fields{
		"action":  "auth." + action,
		"email":   email,
		"success": success,
		"ip":      c.IP(),
	}).Info("Audit log")
}
