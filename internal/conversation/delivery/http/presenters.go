package http

import (
	"strings"

	"psychoai/internal/conversation"
)

// SandboxUserID is used when a request does not name a user.
const SandboxUserID int64 = 999999999

// --- Request DTOs ---

type chatReq struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text" binding:"max=4096"`
}

func (r *chatReq) validate() error {
	r.Text = strings.TrimSpace(r.Text)
	if r.Text == "" {
		return conversation.ErrEmptyMessage
	}
	if r.UserID == 0 {
		r.UserID = SandboxUserID
	}
	return nil
}

type resetReq struct {
	UserID int64 `json:"user_id"`
}

func (r *resetReq) validate() error {
	if r.UserID == 0 {
		r.UserID = SandboxUserID
	}
	return nil
}

// --- Response DTOs ---

type chatResp struct {
	UserID int64  `json:"user_id"`
	Reply  string `json:"reply"`
}

func (h *handler) newChatResp(userID int64, reply string) chatResp {
	return chatResp{UserID: userID, Reply: reply}
}

type resetResp struct {
	UserID int64 `json:"user_id"`
}
