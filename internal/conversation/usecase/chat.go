package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"psychoai/internal/conversation"
	"psychoai/internal/conversation/repository"
)

// Chat sends text to the user's thread, waits for the run and returns the latest agent reply.
// Messages of one user are handled one at a time so a thread never has two runs in flight.
func (uc *implUseCase) Chat(ctx context.Context, userID int64, text string) (string, error) {
	agentID, err := uc.ensureAgent(ctx)
	if err != nil {
		return "", err
	}

	unlock, err := uc.locks.Lock(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "%s: user %d gave up waiting for previous message: %v", LogPrefixChat, userID, err)
		return conversation.MsgProcessingFail, nil
	}
	defer unlock()

	reply, err := uc.converse(ctx, userID, agentID, text)
	if err != nil {
		uc.l.Errorf(ctx, "%s: user %d: %v", LogPrefixChat, userID, err)
		if errors.Is(err, conversation.ErrRunTimeout) {
			return fmt.Sprintf(conversation.MsgRunFailedFmt, conversation.StatusTimeout), nil
		}
		return conversation.MsgProcessingFail, nil
	}
	return reply, nil
}

func (uc *implUseCase) converse(ctx context.Context, userID int64, agentID, text string) (string, error) {
	threadID, created, err := uc.sessions.ResolveOrCreate(ctx, userID)
	if err != nil {
		return "", err
	}
	if created {
		uc.l.Infof(ctx, "%s: created thread for user %d: %s", LogPrefixChat, userID, threadID)
	}

	if err := uc.remote.AppendMessage(ctx, repository.AppendMessageOptions{
		ThreadID: threadID,
		Role:     conversation.RoleUser,
		Text:     text,
	}); err != nil {
		return "", err
	}
	uc.l.Debugf(ctx, "%s: user %d: %s", LogPrefixChat, userID, preview(text))

	run, err := uc.remote.StartRun(ctx, repository.StartRunOptions{
		ThreadID: threadID,
		AgentID:  agentID,
	})
	if err != nil {
		return "", err
	}

	status, err := uc.AwaitCompletion(ctx, threadID, run.ID)
	if err != nil {
		return "", err
	}
	if status != conversation.RunStatusCompleted {
		uc.l.Errorf(ctx, "%s: run %s ended with status %s", LogPrefixChat, run.ID, status)
		return fmt.Sprintf(conversation.MsgRunFailedFmt, status), nil
	}

	msgs, err := uc.remote.ListMessages(ctx, threadID)
	if err != nil {
		return "", err
	}
	for _, m := range msgs {
		if m.Role != conversation.RoleAgent {
			continue
		}
		// Only the newest agent message answers this run; an older one must not be replayed.
		if strings.TrimSpace(m.Text) == "" {
			uc.l.Warnf(ctx, "%s: run %s produced an agent message without text", LogPrefixChat, run.ID)
			return conversation.MsgNoReply, nil
		}
		uc.l.Debugf(ctx, "%s: agent: %s", LogPrefixChat, preview(m.Text))
		return m.Text, nil
	}

	uc.l.Warnf(ctx, "%s: run %s completed without an agent message", LogPrefixChat, run.ID)
	return conversation.MsgNoReply, nil
}

// Reset forgets the user's thread. A run already in flight finishes on the old thread.
func (uc *implUseCase) Reset(ctx context.Context, userID int64) {
	if uc.sessions.Reset(userID) {
		uc.l.Infof(ctx, "%s: reset thread for user %d", LogPrefixReset, userID)
	}
}
