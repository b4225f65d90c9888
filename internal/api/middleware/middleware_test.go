package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authsvc "github.com/Devansu-Yadav/TechTv-BackEnd/internal/api/auth/service"
	"github.com/Devansu-Yadav/TechTv-BackEnd/internal/common"
)

const testSecret = "middleware-test-secret"

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Use(AuthMiddleware(testSecret))
	app.Get("/me", func(c fiber.Ctx) error {
		return c.SendString(c.Locals(LocalUserID).(string))
	})
	return app
}

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestAuthMiddleware_BearerAndBareToken(t *testing.T) {
	app := newAuthApp()
	token, err := authsvc.IssueToken(testSecret, "507f1f77bcf86cd799439011", time.Hour, time.Now())
	require.NoError(t, err)

	for _, header := range []string{"Bearer " + token, token} {
		req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "507f1f77bcf86cd799439011", string(body))
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	resp, err := newAuthApp().Test(httptest.NewRequest(fiber.MethodGet, "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, common.MsgTokenMissing, body["message"])
}

func TestAuthMiddleware_RejectsBadTokens(t *testing.T) {
	expired, err := authsvc.IssueToken(testSecret, "507f1f77bcf86cd799439011", time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	otherSecret, err := authsvc.IssueToken("another-secret", "507f1f77bcf86cd799439011", time.Hour, time.Now())
	require.NoError(t, err)

	cases := map[string]string{
		"expired":      expired,
		"wrong secret": otherSecret,
		"garbage":      "not-a-jwt",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := newAuthApp().Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, common.MsgTokenInvalid, decodeBody(t, resp.Body)["message"])
		})
	}
}

func TestHandleErrorResponse(t *testing.T) {
	app := fiber.New()
	app.Get("/conflict", func(c fiber.Ctx) error {
		return HandleErrorResponse(c, common.NewConflict("Video already exists in liked videos"))
	})
	app.Get("/plain", func(c fiber.Ctx) error {
		return HandleErrorResponse(c, errors.New("boom"))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/conflict", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Video already exists in liked videos", body["message"])
	assert.Equal(t, common.ErrCodeBusinessConflict.Code, body["code"])

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/plain", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "boom", decodeBody(t, resp.Body)["message"])
}
