package repository

import "psychoai/internal/conversation"

// AppendMessageOptions describes a message to add to a thread.
type AppendMessageOptions struct {
	ThreadID string
	Role     conversation.Role
	Text     string
}

// StartRunOptions describes a run to start.
type StartRunOptions struct {
	ThreadID string
	AgentID  string
}
