package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/account"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/event"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/middleware"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
	pkgLog "github.com/Rudra-Tiwari-codes/Calendar-test/pkg/log"
	pkgResponse "github.com/Rudra-Tiwari-codes/Calendar-test/pkg/response"
	pkgTelegram "github.com/Rudra-Tiwari-codes/Calendar-test/pkg/telegram"
)

type handler struct {
	l         pkgLog.Logger
	eventUC   event.UseCase
	accountUC account.UseCase
	bot       *pkgTelegram.Bot
	mw        middleware.Middleware
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine; Telegram expects a response within a few seconds
// while the OAuth and Calendar round-trips can take longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message

	if !h.mw.AllowChat(msg.Chat.ID) {
		h.l.Warnf(ctx, "telegram handler: rate limited chat %d", msg.Chat.ID)
		_ = h.bot.SendMessage(msg.Chat.ID, "You're sending commands too quickly. Please wait a moment.")
		pkgResponse.OK(c, map[string]string{"status": "rate_limited"})
		return
	}

	// Process in a goroutine, return 200 immediately to Telegram.
	go func() {
		// Detach from the HTTP request context, which is cancelled after
		// the response is written.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong handling that. Please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage dispatches a single Telegram message to a command handler.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		ChatID:   msg.Chat.ID,
		Username: msg.From.Username,
	}

	cmd, args := splitCommand(msg.Text)

	switch cmd {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID, startMessage, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID, helpMessage, "Markdown")
	case "/connect":
		return h.handleConnect(ctx, sc)
	case "/status":
		return h.handleStatus(ctx, sc)
	case "/settz":
		return h.handleSetTimezone(ctx, sc, args)
	case "/addevent":
		return h.handleAddEvent(ctx, sc, args)
	case "/myevents":
		return h.handleMyEvents(ctx, sc)
	case "/findevent":
		return h.handleFindEvent(ctx, sc, args)
	case "/updateevent":
		return h.handleUpdateEvent(ctx, sc, args)
	case "/deleteevent":
		return h.handleDeleteEvent(ctx, sc, args)
	default:
		return h.bot.SendMessage(msg.Chat.ID, "Unknown command. Send /help to see what I can do.")
	}
}
