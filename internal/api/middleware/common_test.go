package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiddlewareRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.Use(RequestID())
	router.Use(SecurityHeaders())
	router.Use(Metrics())

	router.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	router.GET("/health", HealthCheck(3))
	router.GET("/fresh", NoCache(), APIVersion("v1"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	return router
}

func TestRequestID(t *testing.T) {
	router := setupMiddlewareRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.True(t, strings.HasPrefix(w.Header().Get("X-Request-ID"), "req_"))

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", "given")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "given", w.Header().Get("X-Request-ID"))
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	router := setupMiddlewareRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])

	errBody, ok := response["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", errBody["code"])
	assert.NotEmpty(t, errBody["request_id"])
}

func TestSecurityHeaders(t *testing.T) {
	router := setupMiddlewareRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "https://cdn.plot.ly")
}

func TestHealthCheck(t *testing.T) {
	router := setupMiddlewareRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
	assert.Equal(t, float64(3), response["datasets"])
}

func TestNoCacheAndVersion(t *testing.T) {
	router := setupMiddlewareRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fresh", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
	assert.Equal(t, "v1", w.Header().Get("API-Version"))
}
