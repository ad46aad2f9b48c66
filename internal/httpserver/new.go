package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	convHTTP "psychoai/internal/conversation/delivery/http"
	tgDelivery "psychoai/internal/conversation/delivery/telegram"
	"psychoai/internal/demo"
	"psychoai/internal/middleware"
	"psychoai/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	startedAt   time.Time
	mw          middleware.Middleware

	// Conversation domain
	telegramHandler tgDelivery.Handler
	sandboxHandler  convHTTP.Handler

	// Demo endpoints
	demoHandler demo.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// SandboxAPIKey protects the sandbox chat API; empty leaves it open.
	SandboxAPIKey string

	// TelegramHandler is nil in polling mode; the webhook route is then not registered.
	TelegramHandler tgDelivery.Handler
	SandboxHandler  convHTTP.Handler
	DemoHandler     demo.Handler
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		startedAt:       time.Now(),
		mw:              middleware.New(logger, cfg.SandboxAPIKey),
		telegramHandler: cfg.TelegramHandler,
		sandboxHandler:  cfg.SandboxHandler,
		demoHandler:     cfg.DemoHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
