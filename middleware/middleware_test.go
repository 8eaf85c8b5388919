package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bandhub/band-management-backend/config"
	"github.com/bandhub/band-management-backend/internal/auth"
	"github.com/bandhub/band-management-backend/internal/httpx"
	"github.com/bandhub/band-management-backend/internal/testutil"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func newAuthService(t *testing.T) auth.Service {
	t.Helper()
	db := testutil.NewDB(t, &auth.User{})
	return auth.NewService(auth.NewRepository(db), &config.Config{JWTAccessSecret: testSecret, JWTAccessTTLHours: 1})
}

func loginAs(t *testing.T, svc auth.Service, username string, role auth.Role) string {
	t.Helper()
	ctx := context.Background()
	_, err := svc.Register(ctx, auth.RegisterInput{Username: username, Email: username + "@example.com", Password: "s3cret-pass", Role: role})
	require.NoError(t, err)
	token, _, err := svc.Login(ctx, auth.LoginInput{Login: username, Password: "s3cret-pass"})
	require.NoError(t, err)
	return token
}

func request(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthAndRBAC(t *testing.T) {
	gin.SetMode(gin.TestMode)
	users := newAuthService(t)
	editorToken := loginAs(t, users, "editor", auth.RoleEditor)
	lectorToken := loginAs(t, users, "lector", auth.RoleLector)

	r := gin.New()
	r.GET("/public", OptionalAuth(testSecret, users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"authenticated": httpx.ActorID(c) != nil})
	})
	r.POST("/events", AuthMiddleware(testSecret, users), RequireWriteAccess(), func(c *gin.Context) {
		ac, ok := GetAccessContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user": ac.Username})
	})
	r.GET("/users", AuthMiddleware(testSecret, users), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := request(r, http.MethodPost, "/events", editorToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"editor"}`, w.Body.String())

	assert.Equal(t, http.StatusForbidden, request(r, http.MethodPost, "/events", lectorToken).Code)
	assert.Equal(t, http.StatusForbidden, request(r, http.MethodGet, "/users", editorToken).Code)
	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodPost, "/events", "").Code)
	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodPost, "/events", "garbage").Code)

	w = request(r, http.MethodGet, "/public", "")
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
	w = request(r, http.MethodGet, "/public", lectorToken)
	assert.JSONEq(t, `{"authenticated":true}`, w.Body.String())
	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodGet, "/public", "garbage").Code)
}

func TestAuthRejectsForeignAndExpiredTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	users := newAuthService(t)
	r := gin.New()
	r.GET("/me", AuthMiddleware(testSecret, users), func(c *gin.Context) { c.Status(http.StatusOK) })

	sign := func(secret string, claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}

	future := time.Now().Add(time.Hour).Unix()
	tests := map[string]string{
		"wrong secret":   sign("other", jwt.MapClaims{"user_id": "6f1c2b4e-8d3a-4c7e-9b1f-2a5d6e7f8a9b", "exp": future}),
		"expired":        sign(testSecret, jwt.MapClaims{"user_id": "6f1c2b4e-8d3a-4c7e-9b1f-2a5d6e7f8a9b", "exp": time.Now().Add(-time.Hour).Unix()}),
		"no expiry":      sign(testSecret, jwt.MapClaims{"user_id": "6f1c2b4e-8d3a-4c7e-9b1f-2a5d6e7f8a9b"}),
		"unknown user":   sign(testSecret, jwt.MapClaims{"user_id": "6f1c2b4e-8d3a-4c7e-9b1f-2a5d6e7f8a9b", "exp": future}),
		"malformed user": sign(testSecret, jwt.MapClaims{"user_id": 42, "exp": future}),
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodGet, "/me", token).Code)
		})
	}
}

func TestAuditMiddlewareClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuditMiddleware())
	r.GET("/ip", func(c *gin.Context) { c.String(http.StatusOK, httpx.ClientIP(c)) })

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "forwarded chain", headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, want: "203.0.113.7"},
		{name: "real ip", headers: map[string]string{"X-Real-Ip": "198.51.100.4"}, want: "198.51.100.4"},
		{name: "invalid header falls back", headers: map[string]string{"X-Forwarded-For": "nonsense"}, want: "192.0.2.1"},
		{name: "remote addr", want: "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ip", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestRateLimiterMemoryStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	_, err := RateLimiter("lots", nil)
	assert.Error(t, err)

	limit, err := RateLimiter("2-M", nil)
	require.NoError(t, err)

	r := gin.New()
	r.Use(limit)
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/ping", "").Code)
	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/ping", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, request(r, http.MethodGet, "/ping", "").Code)
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })

	var buf bytes.Buffer
	log.SetDefault(log.New(&buf))

	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	request(r, http.MethodGet, "/ok", "")
	request(r, http.MethodGet, "/missing", "")

	out := buf.String()
	assert.Contains(t, out, "path=/ok")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "component=http")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "status=404")
}
