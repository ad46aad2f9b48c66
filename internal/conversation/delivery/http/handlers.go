package http

import (
	"github.com/gin-gonic/gin"

	"psychoai/pkg/response"
)

// Chat godoc
// @Summary     Send a message to the assistant
// @Description Relays text on behalf of a user and waits for the assistant's reply.
// @Tags        Sandbox
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.Chat(ctx, req.UserID, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "internal.conversation.delivery.http.Chat: uc.Chat: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newChatResp(req.UserID, reply))
}

// Reset godoc
// @Summary     Reset a user's conversation
// @Description Forgets the user's thread; the next message starts a new one.
// @Tags        Sandbox
// @Accept      json
// @Produce     json
// @Param       body body resetReq false "User"
// @Success     200  {object} resetResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Router      /api/v1/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResetReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.uc.Reset(ctx, req.UserID)
	response.OK(c, resetResp{UserID: req.UserID})
}
