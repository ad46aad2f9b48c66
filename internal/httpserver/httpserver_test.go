package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	convHTTP "psychoai/internal/conversation/delivery/http"
	"psychoai/internal/demo"
	"psychoai/internal/httpserver"
	"psychoai/pkg/log"
	"psychoai/pkg/response"
)

type stubUseCase struct{}

func (stubUseCase) CreateAgent(ctx context.Context) (string, error) { return "asst_1", nil }
func (stubUseCase) Cleanup(ctx context.Context)                      {}
func (stubUseCase) Reset(ctx context.Context, userID int64)          {}
func (stubUseCase) Chat(ctx context.Context, userID int64, text string) (string, error) {
	return "echo: " + text, nil
}

func newServer(t *testing.T, cfg httpserver.Config) *httpserver.HTTPServer {
	t.Helper()
	l := log.NewNop()
	cfg.Logger = l
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.Mode == "" {
		cfg.Mode = gin.TestMode
	}
	srv, err := httpserver.New(l, cfg)
	require.NoError(t, err)
	return srv
}

func serve(srv *httpserver.HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()

	_, err := httpserver.New(l, httpserver.Config{Mode: gin.TestMode})
	assert.EqualError(t, err, "port is required")

	_, err = httpserver.New(nil, httpserver.Config{Mode: gin.TestMode, Port: 1})
	assert.EqualError(t, err, "logger is required")
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, httpserver.Config{})

	for _, tc := range []struct{ path, status string }{
		{"/health", "healthy"},
		{"/ready", "ready"},
		{"/live", "alive"},
	} {
		w := serve(srv, http.MethodGet, tc.path, "")
		require.Equal(t, http.StatusOK, w.Code, tc.path)

		var resp response.Resp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]any)
		assert.Equal(t, tc.status, data["status"])
		assert.Equal(t, httpserver.ServiceName, data["service"])
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	}
}

func TestDomainRoutes(t *testing.T) {
	l := log.NewNop()
	srv := newServer(t, httpserver.Config{
		SandboxAPIKey:  "k",
		SandboxHandler: convHTTP.New(l, stubUseCase{}),
		DemoHandler:    demo.New(l, demo.Config{Delay: time.Millisecond, Workers: 1}),
	})

	w := serve(srv, http.MethodPost, "/api/v1/chat", `{"text": "hi"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"text": "hi"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", "k")
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "echo: hi")

	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/hello", "").Code)
	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/hello_busy", "").Code)

	// No Telegram handler in polling mode.
	assert.Equal(t, http.StatusNotFound, serve(srv, http.MethodPost, "/webhook/telegram", "{}").Code)
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newServer(t, httpserver.Config{Port: 18931})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:18931/live")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		require.FailNow(t, "Run did not return after cancel")
	}
}
