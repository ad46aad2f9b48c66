package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"psychoai/internal/middleware"
	"psychoai/pkg/log"
)

func newEngine(key string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), key)
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/open", func(c *gin.Context) {
		id, _ := c.Request.Context().Value(log.RequestIDKey).(string)
		c.String(http.StatusOK, id)
	})
	r.GET("/closed", mw.Auth(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRequestID(t *testing.T) {
	r := newEngine("")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	assert.Equal(t, w.Header().Get(middleware.HeaderRequestID), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set(middleware.HeaderRequestID, "abc123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc123", w.Body.String())
}

func TestAuth(t *testing.T) {
	tests := map[string]struct {
		key      string
		header   string
		wantCode int
	}{
		"disabled":    {key: "", header: "", wantCode: http.StatusOK},
		"missing key": {key: "k", header: "", wantCode: http.StatusUnauthorized},
		"wrong key":   {key: "k", header: "x", wantCode: http.StatusUnauthorized},
		"valid key":   {key: "k", header: "k", wantCode: http.StatusOK},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			r := newEngine(tc.key)
			req := httptest.NewRequest(http.MethodGet, "/closed", nil)
			if tc.header != "" {
				req.Header.Set(middleware.HeaderAPIKey, tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.wantCode, w.Code)
		})
	}
}
