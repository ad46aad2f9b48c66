package openai

import (
	"context"
	"errors"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"

	"psychoai/internal/conversation"
	"psychoai/internal/conversation/repository"
)

var errNotDeleted = errors.New("assistant was not deleted")

func (r *implRepository) CreateAgent(ctx context.Context, def conversation.AgentDefinition) (string, error) {
	req := goopenai.AssistantRequest{Model: def.Model}
	if def.Name != "" {
		req.Name = &def.Name
	}
	if def.Instructions != "" {
		req.Instructions = &def.Instructions
	}

	a, err := r.client.CreateAssistant(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create assistant: %w", err)
	}
	return a.ID, nil
}

func (r *implRepository) DeleteAgent(ctx context.Context, agentID string) error {
	resp, err := r.client.DeleteAssistant(ctx, agentID)
	if err != nil {
		return fmt.Errorf("delete assistant %s: %w", agentID, err)
	}
	if !resp.Deleted {
		return fmt.Errorf("delete assistant %s: %w", agentID, errNotDeleted)
	}
	return nil
}

func (r *implRepository) CreateThread(ctx context.Context) (string, error) {
	th, err := r.client.CreateThread(ctx, goopenai.ThreadRequest{})
	if err != nil {
		return "", fmt.Errorf("create thread: %w", err)
	}
	return th.ID, nil
}

func (r *implRepository) AppendMessage(ctx context.Context, opt repository.AppendMessageOptions) error {
	_, err := r.client.CreateMessage(ctx, opt.ThreadID, goopenai.MessageRequest{
		Role:    string(opt.Role),
		Content: opt.Text,
	})
	if err != nil {
		return fmt.Errorf("append message to %s: %w", opt.ThreadID, err)
	}
	return nil
}

func (r *implRepository) ListMessages(ctx context.Context, threadID string) ([]conversation.Message, error) {
	limit, order := listLimit, listOrder
	list, err := r.client.ListMessage(ctx, threadID, &limit, &order, nil, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list messages of %s: %w", threadID, err)
	}

	msgs := make([]conversation.Message, 0, len(list.Messages))
	for _, m := range list.Messages {
		msgs = append(msgs, conversation.Message{
			Role: conversation.Role(m.Role),
			Text: firstText(m),
		})
	}
	return msgs, nil
}

// firstText returns the value of the first text block, or "" when the
// message carries only non-text content.
func firstText(m goopenai.Message) string {
	for _, c := range m.Content {
		if c.Type == "text" && c.Text != nil {
			return c.Text.Value
		}
	}
	return ""
}

func (r *implRepository) StartRun(ctx context.Context, opt repository.StartRunOptions) (conversation.Run, error) {
	run, err := r.client.CreateRun(ctx, opt.ThreadID, goopenai.RunRequest{AssistantID: opt.AgentID})
	if err != nil {
		return conversation.Run{}, fmt.Errorf("start run on %s: %w", opt.ThreadID, err)
	}
	return conversation.Run{
		ID:       run.ID,
		ThreadID: run.ThreadID,
		Status:   conversation.RunStatus(run.Status),
	}, nil
}

func (r *implRepository) GetRunStatus(ctx context.Context, threadID, runID string) (conversation.RunStatus, error) {
	run, err := r.client.RetrieveRun(ctx, threadID, runID)
	if err != nil {
		return "", fmt.Errorf("retrieve run %s: %w", runID, err)
	}
	if run.LastError != nil {
		r.l.Warnf(ctx, "internal.conversation.repository.openai.GetRunStatus: run %s %s: %s: %s",
			runID, run.Status, run.LastError.Code, run.LastError.Message)
	}
	return conversation.RunStatus(run.Status), nil
}
