package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.POST("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.POST("/api/leads", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "success"}) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	return r
}

func TestCORSAllowedOrigin(t *testing.T) {
	r := newEngine(CORS([]string{"https://rightimagedigital.com"}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://rightimagedigital.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://rightimagedigital.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSWildcardAndPreflight(t *testing.T) {
	r := newEngine(CORS([]string{"*"}))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://anywhere.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	r := newEngine(RequestID(), Logger(logger))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-123", line["request_id"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/ping", line["path"])
	assert.EqualValues(t, 200, line["status"])
	assert.Equal(t, "info", line["level"])
}

func TestRequestIDGenerated(t *testing.T) {
	r := newEngine(RequestID())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)
}

func TestRecoveryReturns500(t *testing.T) {
	var buf bytes.Buffer
	r := newEngine(Recovery(zerolog.New(&buf)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "recovered from panic")
}

func TestRateLimitBlocksAfterLimit(t *testing.T) {
	r := newEngine(RateLimit(RateLimitConfig{RequestLimit: 2, WindowSize: time.Minute}))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pong", w.Body.String())
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Too many requests")
	assert.NotContains(t, w.Body.String(), "pong")
}

func TestRateLimitJSONBody(t *testing.T) {
	r := newEngine(RateLimit(RateLimitConfig{RequestLimit: 1, WindowSize: time.Minute}))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/leads", nil))
		if i == 1 {
			assert.Equal(t, http.StatusTooManyRequests, w.Code)
			assert.JSONEq(t, `{"error":"rate_limit_exceeded","detail":"Too many requests. Please try again later."}`, w.Body.String())
		}
	}
}

func TestRateLimitKeysSeparately(t *testing.T) {
	r := newEngine(RateLimit(RateLimitConfig{RequestLimit: 1, WindowSize: time.Minute}))

	for _, ip := range []string{"10.0.0.1:1234", "10.0.0.2:1234"} {
		req := httptest.NewRequest(http.MethodPost, "/ping", nil)
		req.RemoteAddr = ip
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, ip)
	}
}

func TestSecurityHeaders(t *testing.T) {
	r := newEngine(SecurityHeaders())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "images.unsplash.com")
}
