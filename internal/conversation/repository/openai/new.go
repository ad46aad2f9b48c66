package openai

import (
	"context"

	goopenai "github.com/sashabaranov/go-openai"

	"psychoai/internal/conversation/repository"
	pkgLog "psychoai/pkg/log"
)

// listLimit bounds how many recent messages are fetched after a run completes.
const listLimit = 20

// listOrder asks for the most recent messages first.
const listOrder = "desc"

// Client is the subset of the Assistants API the repository needs.
// *goopenai.Client satisfies it.
type Client interface {
	CreateAssistant(ctx context.Context, req goopenai.AssistantRequest) (goopenai.Assistant, error)
	DeleteAssistant(ctx context.Context, assistantID string) (goopenai.AssistantDeleteResponse, error)
	CreateThread(ctx context.Context, req goopenai.ThreadRequest) (goopenai.Thread, error)
	CreateMessage(ctx context.Context, threadID string, req goopenai.MessageRequest) (goopenai.Message, error)
	ListMessage(ctx context.Context, threadID string, limit *int, order *string, after *string, before *string, runID *string) (goopenai.MessagesList, error)
	CreateRun(ctx context.Context, threadID string, req goopenai.RunRequest) (goopenai.Run, error)
	RetrieveRun(ctx context.Context, threadID, runID string) (goopenai.Run, error)
}

var _ Client = (*goopenai.Client)(nil)

type implRepository struct {
	client Client
	l      pkgLog.Logger
}

// New creates a repository.Service backed by the OpenAI Assistants API.
func New(client Client, l pkgLog.Logger) repository.Service {
	return &implRepository{
		client: client,
		l:      l,
	}
}
