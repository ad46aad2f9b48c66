package demo

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"psychoai/pkg/log"
)

// Handler serves the two endpoints that contrast a parked wait with a blocked worker.
type Handler interface {
	// Hello waits by parking the request goroutine on a timer.
	Hello(c *gin.Context)
	// HelloBusy waits while holding one slot of a bounded worker pool.
	HelloBusy(c *gin.Context)
}

// Config tunes the demo handler.
type Config struct {
	// Delay is how long each request waits. Defaults to DefaultDelay.
	Delay time.Duration
	// Workers is the worker pool size for HelloBusy. Defaults to DefaultWorkers().
	Workers int
}

// DefaultDelay is the wait used when Config.Delay is unset.
const DefaultDelay = 5 * time.Second

// DefaultWorkers mirrors the usual default size of a blocking thread pool.
func DefaultWorkers() int {
	return runtime.NumCPU() + 4
}

type handler struct {
	l       log.Logger
	delay   time.Duration
	workers int
	pool    *semaphore.Weighted
}

// New creates the demo handler.
func New(l log.Logger, cfg Config) Handler {
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDelay
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers()
	}
	return &handler{
		l:       l,
		delay:   cfg.Delay,
		workers: cfg.Workers,
		pool:    semaphore.NewWeighted(int64(cfg.Workers)),
	}
}

// RegisterRoutes mounts GET /hello and GET /hello_busy on r.
func RegisterRoutes(r gin.IRouter, h Handler) {
	r.GET("/hello", h.Hello)
	r.GET("/hello_busy", h.HelloBusy)
}
