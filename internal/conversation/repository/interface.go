package repository

import (
	"context"

	"psychoai/internal/conversation"
)

// Service is the remote conversational service the use case drives.
// Implementations are safe for concurrent use.
type Service interface {
	CreateAgent(ctx context.Context, def conversation.AgentDefinition) (string, error)
	DeleteAgent(ctx context.Context, agentID string) error

	CreateThread(ctx context.Context) (string, error)
	AppendMessage(ctx context.Context, opt AppendMessageOptions) error
	// ListMessages returns the thread's messages, most recent first.
	ListMessages(ctx context.Context, threadID string) ([]conversation.Message, error)

	StartRun(ctx context.Context, opt StartRunOptions) (conversation.Run, error)
	GetRunStatus(ctx context.Context, threadID, runID string) (conversation.RunStatus, error)
}
