package middleware

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"archivo/internal/auth"
	"archivo/internal/config"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(RequestIDFrom(c))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, existingID, buf.String())
	})

	t.Run("should replace an oversized request id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))

		resp, _ := app.Test(req)
		assert.Len(t, resp.Header.Get(RequestIDHeader), 36)
	})
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := fiber.New()
	app.Use(RequestID())
	app.Use(Logger(zap.New(core)))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad")
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/test", nil))
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	app.Test(httptest.NewRequest("GET", "/boom", nil))

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 2)

	ok := entries[0]
	assert.Equal(t, zapcore.InfoLevel, ok.Level)
	assert.Equal(t, "http", ok.LoggerName)
	fields := ok.ContextMap()
	assert.NotEmpty(t, fields["request_id"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/test", fields["path"])
	assert.Equal(t, int64(fiber.StatusAccepted), fields["status"])
	assert.Contains(t, fields, "latency_ms")

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, int64(fiber.StatusBadRequest), entries[1].ContextMap()["status"])
}

func signToken(t *testing.T, secret string, claims auth.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestAuth(t *testing.T) {
	verifier, err := auth.NewVerifier(config.AuthConfig{JWTSecret: "s3cret"})
	require.NoError(t, err)
	app := fiber.New()
	app.Use(Auth(verifier, "/health", "/swagger"))

	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("up") })
	app.Get("/swagger/index.html", func(c *fiber.Ctx) error { return c.SendString("docs") })
	app.Get("/api/me", func(c *fiber.Ctx) error {
		pr, ok := PrincipalFrom(c)
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.SendString(pr.Username + "|" + pr.Oficina)
	})

	valid := signToken(t, "s3cret", auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           "7",
		Username:         "ana",
		Oficina:          "Archivo Central",
	})
	expired := signToken(t, "s3cret", auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))},
		UserID:           "7",
	})
	noUser := signToken(t, "s3cret", auth.Claims{Username: "ghost"})
	forged := signToken(t, "other", auth.Claims{UserID: "1"})

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"public path", "/health", "", fiber.StatusOK, "up"},
		{"public prefix", "/swagger/index.html", "", fiber.StatusOK, "docs"},
		{"missing header", "/api/me", "", fiber.StatusUnauthorized, "missing bearer token"},
		{"wrong scheme", "/api/me", "Basic " + valid, fiber.StatusUnauthorized, "missing bearer token"},
		{"valid token", "/api/me", "Bearer " + valid, fiber.StatusOK, "ana|Archivo Central"},
		{"lowercase scheme", "/api/me", "bearer " + valid, fiber.StatusOK, "ana|Archivo Central"},
		{"expired", "/api/me", "Bearer " + expired, fiber.StatusUnauthorized, "token has expired"},
		{"wrong secret", "/api/me", "Bearer " + forged, fiber.StatusUnauthorized, "invalid token"},
		{"no user id", "/api/me", "Bearer " + noUser, fiber.StatusUnauthorized, auth.ErrMissingUserID.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			buf := new(bytes.Buffer)
			buf.ReadFrom(resp.Body)
			assert.Equal(t, tt.wantBody, buf.String())
		})
	}
}
