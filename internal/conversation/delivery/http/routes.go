package http

import (
	"github.com/gin-gonic/gin"

	"psychoai/internal/middleware"
)

// RegisterRoutes maps the sandbox endpoints onto rg, protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.Auth(), h.Chat)
	rg.POST("/reset", mw.Auth(), h.Reset)
}
