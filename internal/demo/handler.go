package demo

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// msgHello is the greeting both endpoints return; they differ only in how they wait.
const msgHello = "Hello, world!"

// Hello godoc
// @Summary     Non-blocking wait
// @Description Waits the configured delay without holding a worker, then replies.
// @Tags        Demo
// @Produce     json
// @Success     200 {object} helloResp
// @Router      /hello [GET]
func (h *handler) Hello(c *gin.Context) {
	ctx := c.Request.Context()
	start := time.Now()
	reqID := newReqID()

	h.l.Infof(ctx, "internal.demo.Hello: start req_id=%s", reqID)

	timer := time.NewTimer(h.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		h.l.Warnf(ctx, "internal.demo.Hello: req_id=%s cancelled: %v", reqID, ctx.Err())
		return
	case <-timer.C:
	}

	resp := newHelloResp(msgHello, reqID, start)
	h.l.Infof(ctx, "internal.demo.Hello: end req_id=%s elapsed=%.3fs", reqID, resp.ElapsedSec)
	c.JSON(http.StatusOK, resp)
}

// HelloBusy godoc
// @Summary     Blocking wait
// @Description Occupies one worker pool slot for the configured delay, then replies.
// @Description Concurrent requests beyond the pool size queue for a free slot.
// @Tags        Demo
// @Produce     json
// @Success     200 {object} helloResp
// @Router      /hello_busy [GET]
func (h *handler) HelloBusy(c *gin.Context) {
	ctx := c.Request.Context()
	start := time.Now()
	reqID := newReqID()

	h.l.Infof(ctx, "internal.demo.HelloBusy: start req_id=%s", reqID)

	if err := h.blockingWork(ctx); err != nil {
		h.l.Warnf(ctx, "internal.demo.HelloBusy: req_id=%s cancelled: %v", reqID, err)
		return
	}

	resp := newHelloResp(msgHello, reqID, start)
	h.l.Infof(ctx, "internal.demo.HelloBusy: end req_id=%s elapsed=%.3fs", reqID, resp.ElapsedSec)
	c.JSON(http.StatusOK, resp)
}

// blockingWork holds a pool slot while sleeping. The sleep itself ignores ctx.
func (h *handler) blockingWork(ctx context.Context) error {
	if err := h.pool.Acquire(ctx, 1); err != nil {
		return err
	}
	defer h.pool.Release(1)
	time.Sleep(h.delay)
	return nil
}

func newHelloResp(msg, reqID string, start time.Time) helloResp {
	elapsed := time.Since(start).Seconds()
	return helloResp{
		Message:    msg,
		ReqID:      reqID,
		ElapsedSec: math.Round(elapsed*100) / 100,
	}
}

// newReqID returns the first 8 hex characters of a random UUID.
func newReqID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
