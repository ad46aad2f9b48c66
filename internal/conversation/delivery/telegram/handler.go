package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"psychoai/internal/conversation"
	pkgResponse "psychoai/pkg/response"
	pkgTelegram "psychoai/pkg/telegram"
)

// HandleWebhook acknowledges the update with HTTP 200 immediately and processes it in a
// background goroutine; an assistant run can take far longer than Telegram waits.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.validateSecret(c.GetHeader(pkgTelegram.SecretTokenHeader)); err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixWebhook, err)
		pkgResponse.Unauthorized(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "%s: failed to parse update: %v", LogPrefixWebhook, err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if !h.dispatch(ctx, update) {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// dispatch hands a message update to a tracked background goroutine.
// It reports false for updates that carry nothing to process.
func (h *handler) dispatch(ctx context.Context, update pkgTelegram.Update) bool {
	msg := update.Message
	if msg == nil || msg.Chat == nil || msg.From == nil || msg.Text == "" {
		return false
	}
	if h.markSeen(update.UpdateID) {
		h.l.Debugf(ctx, "%s: duplicate update %d", LogPrefixWebhook, update.UpdateID)
		return false
	}

	// Detach from the request context, which is cancelled once the response is written.
	bgCtx := context.WithoutCancel(ctx)
	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "%s: %v", LogPrefixProcess, err)
			if sendErr := h.bot.SendMessage(bgCtx, msg.Chat.ID, conversation.MsgProcessingFail); sendErr != nil {
				h.l.Warnf(bgCtx, "%s: failed to send error notice: %v", LogPrefixProcess, sendErr)
			}
		}
	}()
	return true
}

// processMessage handles a single text message: built-in commands first, then chat.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID
	userID := msg.From.ID
	text := strings.TrimSpace(msg.Text)

	if strings.HasPrefix(text, "/") {
		return h.handleCommand(ctx, msg, text)
	}

	if err := h.limiter.Allow(userID); err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixProcess, err)
		return h.bot.SendMessage(ctx, chatID, rateLimitedText)
	}

	if err := h.bot.SendChatAction(ctx, chatID, pkgTelegram.ChatActionTyping); err != nil {
		h.l.Warnf(ctx, "%s: failed to send typing action: %v", LogPrefixProcess, err)
	}

	reply, err := h.uc.Chat(ctx, userID, text)
	if err != nil {
		return fmt.Errorf("chat for user %d: %w", userID, err)
	}

	for _, part := range pkgTelegram.SplitText(reply, pkgTelegram.MaxMessageLength) {
		if err := h.bot.SendMessage(ctx, chatID, part); err != nil {
			return err
		}
	}
	return nil
}

func (h *handler) handleCommand(ctx context.Context, msg *pkgTelegram.Message, text string) error {
	chatID := msg.Chat.ID

	// "/start@psycho_bot arg" -> "/start"
	cmd, _, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")

	switch cmd {
	case CommandStart:
		return h.bot.SendMessageWithMode(ctx, chatID, fmt.Sprintf(welcomeTemplate, escapeMarkdown(msg.From.FirstName)), "Markdown")
	case CommandHelp:
		return h.bot.SendMessageWithMode(ctx, chatID, helpText, "Markdown")
	case CommandReset:
		h.uc.Reset(ctx, msg.From.ID)
		return h.bot.SendMessage(ctx, chatID, resetText)
	default:
		h.l.Debugf(ctx, "%s: ignoring unknown command %q", LogPrefixProcess, cmd)
		return nil
	}
}

// Wait blocks until every dispatched message has been processed or ctx is done.
func (h *handler) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// escapeMarkdown escapes user supplied text for the legacy Markdown parse mode.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
