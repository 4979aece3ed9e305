package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/to404hanga/task_tracker/constants"
	trackerjwt "github.com/to404hanga/task_tracker/web/jwt"
	"go.uber.org/zap"
)

var testKey = []byte("test-key")

func sign(t *testing.T, key []byte, method jwt.SigningMethod, uc trackerjwt.UserClaims) string {
	t.Helper()
	tokenStr, err := jwt.NewWithClaims(method, uc).SignedString(key)
	require.NoError(t, err)
	return tokenStr
}

func newClaims(userID uint64, ssid string, ttl time.Duration) trackerjwt.UserClaims {
	return trackerjwt.UserClaims{
		UserID: userID,
		Ssid:   ssid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
}

func newTestEngine(t *testing.T) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	builder := NewJWTMiddlewareBuilder(trackerjwt.NewRedisJWTHandler(rdb, testKey), loggerv2.NewZapContextLogger(zap.NewNop()), []string{"/GetTaskResult"})
	engine := gin.New()
	engine.Use(builder.CheckLogin())
	handler := func(c *gin.Context) {
		uc, exists := c.Get(constants.ContextUserClaimsKey)
		if !exists {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, fmt.Sprintf("%d", uc.(trackerjwt.UserClaims).UserID))
	}
	engine.GET("/GetTaskResultList", handler)
	engine.GET("/health", handler)
	return engine, mr
}

func TestJWTMiddlewareBuilder_CheckLogin(t *testing.T) {
	engine, mr := newTestEngine(t)
	require.NoError(t, mr.Set("users:ssid:revoked", "1"))

	testCases := []struct {
		name   string
		path   string
		header string
		cookie string
		code   int
		body   string
	}{
		{name: "unchecked path", path: "/health", code: http.StatusOK, body: "anonymous"},
		{name: "missing token", path: "/GetTaskResultList", code: http.StatusUnauthorized},
		{name: "bearer header", path: "/GetTaskResultList", header: "Bearer " + sign(t, testKey, jwt.SigningMethodHS512, newClaims(7, "s1", time.Hour)), code: http.StatusOK, body: "7"},
		{name: "cookie", path: "/GetTaskResultList", cookie: sign(t, testKey, jwt.SigningMethodHS512, newClaims(8, "s2", time.Hour)), code: http.StatusOK, body: "8"},
		{name: "header without bearer", path: "/GetTaskResultList", header: sign(t, testKey, jwt.SigningMethodHS512, newClaims(7, "s1", time.Hour)), code: http.StatusUnauthorized},
		{name: "expired", path: "/GetTaskResultList", header: "Bearer " + sign(t, testKey, jwt.SigningMethodHS512, newClaims(7, "s1", -time.Minute)), code: http.StatusUnauthorized},
		{name: "wrong key", path: "/GetTaskResultList", header: "Bearer " + sign(t, []byte("other"), jwt.SigningMethodHS512, newClaims(7, "s1", time.Hour)), code: http.StatusUnauthorized},
		{name: "wrong method", path: "/GetTaskResultList", header: "Bearer " + sign(t, testKey, jwt.SigningMethodHS256, newClaims(7, "s1", time.Hour)), code: http.StatusUnauthorized},
		{name: "revoked session", path: "/GetTaskResultList", header: "Bearer " + sign(t, testKey, jwt.SigningMethodHS512, newClaims(7, "revoked", time.Hour)), code: http.StatusUnauthorized},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set(constants.HeaderLoginTokenKey, tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: constants.HeaderLoginTokenKey, Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestCORSMiddlewareBuilder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(NewCORSMiddlewareBuilder(
		[]string{"http://localhost:5173"},
		[]string{"GET", "POST"},
		[]string{"Content-Type"},
		[]string{"X-Request-ID"},
		true,
		time.Hour,
	).Build())
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
