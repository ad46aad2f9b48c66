package telegram

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"psychoai/internal/conversation"
	pkgLog "psychoai/pkg/log"
	pkgTelegram "psychoai/pkg/telegram"
)

// Handler delivers Telegram updates to the conversation use case.
type Handler interface {
	// HandleWebhook is the Gin handler for POST /webhook/telegram.
	HandleWebhook(c *gin.Context)
	// StartPolling consumes updates via getUpdates until ctx is done.
	StartPolling(ctx context.Context) error
	// Wait blocks until in-flight messages are processed or ctx is done.
	Wait(ctx context.Context) error
}

// Config tunes the Telegram delivery.
type Config struct {
	// WebhookSecret, when set, must match the secret token header of webhook requests.
	WebhookSecret string
	// RateLimitPerMin caps chat messages per user. Zero disables the limit.
	RateLimitPerMin int
	// PollTimeout is the long-poll timeout passed to getUpdates.
	PollTimeout time.Duration
}

type handler struct {
	l   pkgLog.Logger
	uc  conversation.UseCase
	bot *pkgTelegram.Bot

	webhookSecret string
	pollTimeout   time.Duration
	limiter       *rateLimiter
	seenMu        sync.Mutex
	seen          *expirable.LRU[int64, struct{}]

	inflight sync.WaitGroup
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc conversation.UseCase, bot *pkgTelegram.Bot, cfg Config) Handler {
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = defaultPollTimeout
	}
	return &handler{
		l:             l,
		uc:            uc,
		bot:           bot,
		webhookSecret: cfg.WebhookSecret,
		pollTimeout:   cfg.PollTimeout,
		limiter:       newRateLimiter(cfg.RateLimitPerMin),
		seen:          expirable.NewLRU[int64, struct{}](seenUpdatesSize, nil, seenUpdatesTTL),
	}
}
