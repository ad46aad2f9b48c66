package telegram

import (
	"context"
	"time"
)

// StartPolling removes any registered webhook and consumes updates with getUpdates
// until ctx is cancelled. Transport failures are logged and retried after a delay.
func (h *handler) StartPolling(ctx context.Context) error {
	if err := h.bot.DeleteWebhook(ctx); err != nil {
		return err
	}
	h.l.Infof(ctx, "%s: long polling started", LogPrefixPolling)

	timeoutSec := int(h.pollTimeout / time.Second)
	var offset int64
	for {
		updates, err := h.bot.GetUpdates(ctx, offset, timeoutSec)
		if err != nil {
			if ctx.Err() != nil {
				h.l.Infof(ctx, "%s: stopped", LogPrefixPolling)
				return nil
			}
			h.l.Warnf(ctx, "%s: getUpdates failed: %v", LogPrefixPolling, err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(pollRetryDelay):
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			h.dispatch(ctx, update)
		}
	}
}
