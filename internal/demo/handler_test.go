package demo

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psychoai/pkg/log"
)

func newEngine(cfg Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, New(log.NewNop(), cfg))
	return r
}

func get(t *testing.T, r *gin.Engine, path string) helloResp {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var resp helloResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// concurrent fires n requests at once and returns the wall time until all complete.
func concurrent(t *testing.T, r *gin.Engine, path string, n int) time.Duration {
	t.Helper()
	start := time.Now()
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}()
	}
	wg.Wait()
	return time.Since(start)
}

func TestHello(t *testing.T) {
	r := newEngine(Config{Delay: 30 * time.Millisecond, Workers: 1})

	resp := get(t, r, "/hello")
	assert.Equal(t, "Hello, world!", resp.Message)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}$`), resp.ReqID)
	assert.GreaterOrEqual(t, resp.ElapsedSec, 0.03)
}

func TestHelloBusy(t *testing.T) {
	r := newEngine(Config{Delay: 30 * time.Millisecond, Workers: 1})

	resp := get(t, r, "/hello_busy")
	assert.Equal(t, "Hello, world!", resp.Message)
	assert.Len(t, resp.ReqID, 8)
	assert.GreaterOrEqual(t, resp.ElapsedSec, 0.03)
}

func TestNewHelloResp_RoundsToHundredths(t *testing.T) {
	resp := newHelloResp(msgHello, "abcd1234", time.Now().Add(-1201*time.Millisecond))

	assert.Equal(t, "Hello, world!", resp.Message)
	assert.Equal(t, "abcd1234", resp.ReqID)
	assert.InDelta(t, 1.2, resp.ElapsedSec, 0.011)
	assert.Equal(t, math.Round(resp.ElapsedSec*100)/100, resp.ElapsedSec)
}

func TestConcurrency(t *testing.T) {
	const (
		delay   = 50 * time.Millisecond
		workers = 2
		n       = 6
	)
	r := newEngine(Config{Delay: delay, Workers: workers})

	// Parked waits overlap: all requests finish in about one delay.
	elapsed := concurrent(t, r, "/hello", n)
	assert.Less(t, elapsed, 3*delay)

	// Blocking waits queue for slots: ceil(6/2) = 3 delays.
	elapsed = concurrent(t, r, "/hello_busy", n)
	assert.GreaterOrEqual(t, elapsed, 3*delay)
}

func TestNewDefaults(t *testing.T) {
	h := New(log.NewNop(), Config{}).(*handler)
	assert.Equal(t, DefaultDelay, h.delay)
	assert.Equal(t, DefaultWorkers(), h.workers)
}

func TestNewReqID(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		id := newReqID()
		assert.Len(t, id, 8)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 90)
}
