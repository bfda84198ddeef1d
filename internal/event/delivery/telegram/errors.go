package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/event"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/timeparse"
)

// replyError translates domain errors into user-facing chat messages.
func (h *handler) replyError(ctx context.Context, sc model.Scope, err error) error {
	var parseErr *timeparse.UnparseableExpressionError
	var rangeErr *timeparse.InvalidRangeError

	switch {
	case errors.As(err, &parseErr):
		return h.bot.SendMessageWithMode(sc.ChatID,
			fmt.Sprintf("I couldn't understand %q.\n%s", parseErr.Snippet, timeFormatHint), "Markdown")
	case errors.As(err, &rangeErr):
		return h.bot.SendMessage(sc.ChatID,
			"That range ends before it starts. Please give a start time followed by a later end time.")
	case errors.Is(err, event.ErrNotLinked):
		return h.bot.SendMessage(sc.ChatID, "You haven't linked Google Calendar yet. Run /connect first.")
	case errors.Is(err, event.ErrNoUpdates):
		return h.bot.SendMessage(sc.ChatID, "Give me a new time, a new title, or both.")
	case errors.Is(err, event.ErrEventNotFound):
		return h.bot.SendMessage(sc.ChatID, "I couldn't find an event matching that. Try /myevents to see what's scheduled.")
	case errors.Is(err, event.ErrCalendarSync):
		return h.bot.SendMessage(sc.ChatID, "Google Calendar didn't accept that request. Please try again shortly.")
	default:
		h.l.Errorf(ctx, "telegram handler: command failed: %v", err)
		return h.bot.SendMessage(sc.ChatID, "Something went wrong handling that. Please try again.")
	}
}
