package usecase

import (
	"context"
	"fmt"

	"psychoai/internal/conversation"
)

// CreateAgent creates the remote agent definition and caches its id.
func (uc *implUseCase) CreateAgent(ctx context.Context) (string, error) {
	uc.agentMu.Lock()
	defer uc.agentMu.Unlock()

	if uc.agentID != "" {
		uc.l.Warnf(ctx, "%s: replacing cached agent %s with a new definition", LogPrefixCreateAgent, uc.agentID)
	}
	return uc.createAgentLocked(ctx)
}

// ensureAgent returns the cached agent id, creating the definition on first use.
func (uc *implUseCase) ensureAgent(ctx context.Context) (string, error) {
	uc.agentMu.Lock()
	defer uc.agentMu.Unlock()

	if uc.agentID != "" {
		return uc.agentID, nil
	}
	return uc.createAgentLocked(ctx)
}

func (uc *implUseCase) createAgentLocked(ctx context.Context) (string, error) {
	id, err := uc.remote.CreateAgent(ctx, uc.agent)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixCreateAgent, err)
		return "", fmt.Errorf("%w: %w", conversation.ErrAgentNotCreated, err)
	}
	uc.agentID = id
	uc.l.Infof(ctx, "%s: created agent %q: %s", LogPrefixCreateAgent, uc.agent.Name, id)
	return id, nil
}

// Cleanup deletes the agent definition if one was created. Failures are logged only.
func (uc *implUseCase) Cleanup(ctx context.Context) {
	uc.agentMu.Lock()
	defer uc.agentMu.Unlock()

	if uc.agentID == "" {
		return
	}
	if err := uc.remote.DeleteAgent(ctx, uc.agentID); err != nil {
		uc.l.Errorf(ctx, "%s: failed to delete agent %s: %v", LogPrefixCleanup, uc.agentID, err)
		return
	}
	uc.l.Infof(ctx, "%s: deleted agent %s", LogPrefixCleanup, uc.agentID)
	uc.agentID = ""
}
