package http

import (
	"github.com/gin-gonic/gin"

	"psychoai/internal/conversation"
	"psychoai/pkg/log"
)

// Handler is the public interface of the sandbox chat API.
type Handler interface {
	Chat(c *gin.Context)
	Reset(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc conversation.UseCase
}

// New creates a sandbox HTTP handler that drives the conversation use case without Telegram.
func New(l log.Logger, uc conversation.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
