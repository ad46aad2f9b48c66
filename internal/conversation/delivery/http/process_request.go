package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processResetReq binds and validates the reset request body. An empty body resets the sandbox user.
func (h *handler) processResetReq(c *gin.Context) (resetReq, error) {
	var req resetReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	return req, req.validate()
}
