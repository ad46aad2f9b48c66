package usecase

import (
	"context"
	"fmt"
	"time"

	"psychoai/internal/conversation"
)

// AwaitCompletion polls a run every pollInterval until it leaves queued/in_progress.
// The wait parks only the calling goroutine. Polling gives up after maxWait with
// conversation.ErrRunTimeout; cancellation of ctx returns ctx.Err(). The last observed
// status is returned alongside any error.
func (uc *implUseCase) AwaitCompletion(ctx context.Context, threadID, runID string) (conversation.RunStatus, error) {
	pollCtx := ctx
	if uc.maxWait > 0 {
		var cancel context.CancelFunc
		pollCtx, cancel = context.WithTimeout(ctx, uc.maxWait)
		defer cancel()
	}

	timer := time.NewTimer(uc.pollInterval)
	defer timer.Stop()

	var last conversation.RunStatus
	for attempt := 1; ; attempt++ {
		status, err := uc.remote.GetRunStatus(pollCtx, threadID, runID)
		if err != nil {
			if pollCtx.Err() != nil {
				return last, uc.pollStopped(ctx, runID, last)
			}
			return last, err
		}
		last = status
		uc.l.Debugf(ctx, "%s: run %s attempt %d status %s", LogPrefixAwaitCompletion, runID, attempt, status)

		if status.IsTerminal() {
			return status, nil
		}

		timer.Reset(uc.pollInterval)
		select {
		case <-timer.C:
		case <-pollCtx.Done():
			return last, uc.pollStopped(ctx, runID, last)
		}
	}
}

func (uc *implUseCase) pollStopped(ctx context.Context, runID string, last conversation.RunStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fmt.Errorf("%w: run %s still %s after %s", conversation.ErrRunTimeout, runID, last, uc.maxWait)
}
